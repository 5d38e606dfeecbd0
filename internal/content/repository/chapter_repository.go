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

// ChapterRepository definition chapter persistence
type ChapterRepository interface {
	Create(ctx context.Context, chapter *domain.Chapter) error
	GetByID(ctx context.Context, id string) (*domain.Chapter, error)
	FindByCourse(ctx context.Context, courseID string) ([]domain.Chapter, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Chapter, error)
	NextOrder(ctx context.Context, courseID string) (int, error)
	Update(ctx context.Context, chapter *domain.Chapter) error
	SetDuration(ctx context.Context, chapterID, duration string) error
	AppendVideo(ctx context.Context, chapterID, videoID string) error
	DetachVideo(ctx context.Context, chapterID, videoID string) error
	Delete(ctx context.Context, id string) error
	DeleteByCourse(ctx context.Context, courseID string) error
}

type chapterRepository struct {
	coll *mongo.Collection
}

// NewChapterRepository create a ChapterRepository
func NewChapterRepository(db *mongo.Database) ChapterRepository {
	return &chapterRepository{
		coll: db.Collection("chapters"),
	}
}

func (r *chapterRepository) Create(ctx context.Context, chapter *domain.Chapter) error {
	now := time.Now()
	chapter.ID = primitive.NewObjectID().Hex()
	chapter.CreatedAt = now
	chapter.UpdatedAt = now
	if chapter.Duration == "" {
		chapter.Duration = domain.ZeroClock
	}
	if chapter.Videos == nil {
		chapter.Videos = []string{}
	}

	_, err := r.coll.InsertOne(ctx, chapter)
	return err
}

func (r *chapterRepository) GetByID(ctx context.Context, id string) (*domain.Chapter, error) {
	var chapter domain.Chapter
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&chapter)
	if err == mongo.ErrNoDocuments {
		return nil, errprocess.NotFound("chapter not found")
	}
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (r *chapterRepository) FindByCourse(ctx context.Context, courseID string) ([]domain.Chapter, error) {
	opts := options.Find().SetSort(bson.M{"order": 1})
	cur, err := r.coll.Find(ctx, bson.M{"course_id": courseID}, opts)
	if err != nil {
		return nil, err
	}

	var chapters []domain.Chapter
	if err := cur.All(ctx, &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

func (r *chapterRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Chapter, error) {
	opts := options.Find().SetSort(bson.M{"order": 1})
	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}

	var chapters []domain.Chapter
	if err := cur.All(ctx, &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

// NextOrder returns the highest order among the course's chapters plus
// one, or 1 when the course has no chapters yet. Gaps left by deletions
// are not reused.
func (r *chapterRepository) NextOrder(ctx context.Context, courseID string) (int, error) {
	opts := options.FindOne().SetSort(bson.M{"order": -1})
	var chapter domain.Chapter
	err := r.coll.FindOne(ctx, bson.M{"course_id": courseID}, opts).Decode(&chapter)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return chapter.Order + 1, nil
}

func (r *chapterRepository) Update(ctx context.Context, chapter *domain.Chapter) error {
	chapter.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": chapter.ID}, chapter)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errprocess.NotFound("chapter not found")
	}
	return nil
}

func (r *chapterRepository) SetDuration(ctx context.Context, chapterID, duration string) error {
	update := bson.M{"$set": bson.M{"duration": duration, "updated_at": time.Now()}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": chapterID}, update)
	return err
}

func (r *chapterRepository) AppendVideo(ctx context.Context, chapterID, videoID string) error {
	update := bson.M{
		"$push": bson.M{"videos": videoID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": chapterID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errprocess.NotFound("chapter not found")
	}
	return nil
}

func (r *chapterRepository) DetachVideo(ctx context.Context, chapterID, videoID string) error {
	update := bson.M{
		"$pull": bson.M{"videos": videoID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": chapterID}, update)
	return err
}

func (r *chapterRepository) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *chapterRepository) DeleteByCourse(ctx context.Context, courseID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"course_id": courseID})
	return err
}
