package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"course_content_service/internal/content/domain"
	errprocess "course_content_service/pkg/err"
)

// VideoRepository definition video persistence
type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error
	GetByID(ctx context.Context, id string) (*domain.Video, error)
	FindByChapter(ctx context.Context, chapterID string, activeOnly bool) ([]domain.Video, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Video, error)
	NextOrder(ctx context.Context, chapterID string) (int, error)
	Update(ctx context.Context, video *domain.Video) error
	Delete(ctx context.Context, id string) error
	DeleteByChapter(ctx context.Context, chapterID string) error
}

type videoRepository struct {
	coll *mongo.Collection
}

// NewVideoRepository create a VideoRepository
func NewVideoRepository(db *mongo.Database) VideoRepository {
	return &videoRepository{
		coll: db.Collection("videos"),
	}
}

func (r *videoRepository) Create(ctx context.Context, video *domain.Video) error {
	now := time.Now()
	video.ID = primitive.NewObjectID().Hex()
	video.CreatedAt = now
	video.UpdatedAt = now
	if video.Duration == "" {
		video.Duration = domain.ZeroClock
	}

	_, err := r.coll.InsertOne(ctx, video)
	return err
}

func (r *videoRepository) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	var video domain.Video
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if err == mongo.ErrNoDocuments {
		return nil, errprocess.NotFound("video not found")
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) FindByChapter(ctx context.Context, chapterID string, activeOnly bool) ([]domain.Video, error) {
	filter := bson.M{"chapter_id": chapterID}
	if activeOnly {
		filter["is_active"] = true
	}

	opts := options.Find().SetSort(bson.M{"order": 1})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var videos []domain.Video
	if err := cur.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Video, error) {
	opts := options.Find().SetSort(bson.M{"order": 1})
	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}

	var videos []domain.Video
	if err := cur.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// NextOrder returns the highest order among the chapter's videos plus
// one, or 1 when the chapter has no videos yet.
func (r *videoRepository) NextOrder(ctx context.Context, chapterID string) (int, error) {
	opts := options.FindOne().SetSort(bson.M{"order": -1})
	var video domain.Video
	err := r.coll.FindOne(ctx, bson.M{"chapter_id": chapterID}, opts).Decode(&video)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return video.Order + 1, nil
}

func (r *videoRepository) Update(ctx context.Context, video *domain.Video) error {
	video.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": video.ID}, video)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errprocess.NotFound("video not found")
	}
	return nil
}

func (r *videoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *videoRepository) DeleteByChapter(ctx context.Context, chapterID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"chapter_id": chapterID})
	return err
}
