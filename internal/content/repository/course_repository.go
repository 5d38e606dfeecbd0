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

// CourseRepository definition course persistence
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	Find(ctx context.Context, q *domain.CourseQuery) ([]domain.Course, int64, error)
	Update(ctx context.Context, course *domain.Course) error
	AppendChapter(ctx context.Context, courseID, chapterID string) error
	DetachChapter(ctx context.Context, courseID, chapterID string) error
	SetTotalDuration(ctx context.Context, courseID, duration string) error
	Delete(ctx context.Context, id string) error
}

type courseRepository struct {
	coll *mongo.Collection
}

// NewCourseRepository create a CourseRepository
func NewCourseRepository(db *mongo.Database) CourseRepository {
	return &courseRepository{
		coll: db.Collection("courses"),
	}
}

func (r *courseRepository) Create(ctx context.Context, course *domain.Course) error {
	now := time.Now()
	course.ID = primitive.NewObjectID().Hex()
	course.CreatedAt = now
	course.UpdatedAt = now
	if course.Status == "" {
		course.Status = domain.CourseDraft
	}
	if course.TotalDuration == "" {
		course.TotalDuration = domain.ZeroClock
	}
	if course.Chapters == nil {
		course.Chapters = []string{}
	}
	if course.EnrolledStudents == nil {
		course.EnrolledStudents = []string{}
	}

	_, err := r.coll.InsertOne(ctx, course)
	return err
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	var course domain.Course
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err == mongo.ErrNoDocuments {
		return nil, errprocess.NotFound("course not found")
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) Find(ctx context.Context, q *domain.CourseQuery) ([]domain.Course, int64, error) {
	filter := bson.M{}
	if q.CreatedBy != nil {
		filter["created_by"] = *q.CreatedBy
	}
	if q.Status != nil {
		filter["status"] = *q.Status
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip((q.Page - 1) * q.Limit).
		SetLimit(q.Limit)

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	var courses []domain.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

func (r *courseRepository) Update(ctx context.Context, course *domain.Course) error {
	course.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": course.ID}, course)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errprocess.NotFound("course not found")
	}
	return nil
}

func (r *courseRepository) AppendChapter(ctx context.Context, courseID, chapterID string) error {
	update := bson.M{
		"$push": bson.M{"chapters": chapterID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": courseID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errprocess.NotFound("course not found")
	}
	return nil
}

func (r *courseRepository) DetachChapter(ctx context.Context, courseID, chapterID string) error {
	update := bson.M{
		"$pull": bson.M{"chapters": chapterID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": courseID}, update)
	return err
}

func (r *courseRepository) SetTotalDuration(ctx context.Context, courseID, duration string) error {
	update := bson.M{"$set": bson.M{"total_duration": duration, "updated_at": time.Now()}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": courseID}, update)
	return err
}

func (r *courseRepository) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
