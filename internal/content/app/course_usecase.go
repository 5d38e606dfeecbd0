package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"course_content_service/internal/content/domain"
	"course_content_service/internal/content/repository"
	errprocess "course_content_service/pkg/err"
	"course_content_service/pkg/logger"
)

// CourseUseCase application service for the course entity. Every
// operation takes the authenticated principal and applies the
// ownership check against the course creator.
type CourseUseCase interface {
	CreateCourse(ctx context.Context, principal domain.Principal, req *domain.CreateCourseReq) (*domain.Course, error)
	GetCourse(ctx context.Context, principal domain.Principal, id string) (*domain.CourseDetail, error)
	ListCourses(ctx context.Context, principal domain.Principal, q *domain.CourseQuery) (*domain.CourseListRes, error)
	UpdateCourse(ctx context.Context, principal domain.Principal, id string, req *domain.UpdateCourseReq) (*domain.Course, error)
	PublishCourse(ctx context.Context, principal domain.Principal, id string, publish bool) (*domain.Course, error)
	DeleteCourse(ctx context.Context, principal domain.Principal, id string) error
}

type courseUseCase struct {
	courseRepo  repository.CourseRepository
	chapterRepo repository.ChapterRepository
	videoRepo   repository.VideoRepository
	events      EventPublisher
}

// NewCourseUseCase create a CourseUseCase
func NewCourseUseCase(courseRepo repository.CourseRepository,
	chapterRepo repository.ChapterRepository,
	videoRepo repository.VideoRepository,
	events EventPublisher,
) CourseUseCase {
	return &courseUseCase{
		courseRepo:  courseRepo,
		chapterRepo: chapterRepo,
		videoRepo:   videoRepo,
		events:      events,
	}
}

func (c *courseUseCase) CreateCourse(ctx context.Context, principal domain.Principal, req *domain.CreateCourseReq) (*domain.Course, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	course := domain.Course{
		Name:        req.Name,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		Status:      domain.CourseDraft,
		CreatedBy:   principal.ID,
	}

	if err := c.courseRepo.Create(ctx, &course); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("create course: %v", err))
	}

	logger.Log.Info("course created",
		zap.String("course_id", course.ID),
		zap.String("created_by", course.CreatedBy))

	c.events.Publish(ctx, domain.ContentEvent{
		Action:   domain.EventCreated,
		Entity:   domain.EntityCourse,
		EntityID: course.ID,
		CourseID: course.ID,
	})
	return &course, nil
}

// GetCourse returns the course with its chapters in order and each
// chapter's active videos in order. Only the creator or an admin may
// read it; a missing course stays NotFound for everyone.
func (c *courseUseCase) GetCourse(ctx context.Context, principal domain.Principal, id string) (*domain.CourseDetail, error) {
	course, err := c.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccess(course.CreatedBy) {
		return nil, errprocess.Forbidden("access denied")
	}

	chapters, err := c.chapterRepo.FindByCourse(ctx, id)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("load chapters of course %s: %v", id, err))
	}

	detail := domain.CourseDetail{Course: *course, Chapters: []domain.ChapterDetail{}}
	for _, ch := range chapters {
		videos, err := c.videoRepo.FindByChapter(ctx, ch.ID, true)
		if err != nil {
			return nil, errprocess.Set(fmt.Sprintf("load videos of chapter %s: %v", ch.ID, err))
		}
		if videos == nil {
			videos = []domain.Video{}
		}
		detail.Chapters = append(detail.Chapters, domain.ChapterDetail{Chapter: ch, Videos: videos})
	}
	return &detail, nil
}

// ListCourses pages through courses. Instructors only ever see their
// own courses; admins see everything unless they filter by creator.
func (c *courseUseCase) ListCourses(ctx context.Context, principal domain.Principal, q *domain.CourseQuery) (*domain.CourseListRes, error) {
	if !principal.IsAdmin() {
		q.CreatedBy = &principal.ID
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}

	courses, total, err := c.courseRepo.Find(ctx, q)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("list courses: %v", err))
	}
	if courses == nil {
		courses = []domain.Course{}
	}

	pages := total / q.Limit
	if total%q.Limit != 0 {
		pages++
	}
	return &domain.CourseListRes{
		Courses: courses,
		Page:    q.Page,
		Limit:   q.Limit,
		Total:   total,
		Pages:   pages,
	}, nil
}

func (c *courseUseCase) UpdateCourse(ctx context.Context, principal domain.Principal, id string, req *domain.UpdateCourseReq) (*domain.Course, error) {
	course, err := c.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccess(course.CreatedBy) {
		return nil, errprocess.Forbidden("access denied")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Name != "" {
		course.Name = req.Name
	}
	if req.Description != "" {
		course.Description = req.Description
	}
	if req.Thumbnail != nil {
		course.Thumbnail = *req.Thumbnail
	}

	if err := c.courseRepo.Update(ctx, course); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("update course %s: %v", id, err))
	}

	c.events.Publish(ctx, domain.ContentEvent{
		Action:   domain.EventUpdated,
		Entity:   domain.EntityCourse,
		EntityID: course.ID,
		CourseID: course.ID,
	})
	return course, nil
}

func (c *courseUseCase) PublishCourse(ctx context.Context, principal domain.Principal, id string, publish bool) (*domain.Course, error) {
	course, err := c.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccess(course.CreatedBy) {
		return nil, errprocess.Forbidden("access denied")
	}

	if publish {
		course.Status = domain.CoursePublished
	} else {
		course.Status = domain.CourseDraft
	}

	if err := c.courseRepo.Update(ctx, course); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("publish course %s: %v", id, err))
	}

	logger.Log.Info("course status changed",
		zap.String("course_id", course.ID),
		zap.String("status", string(course.Status)))

	c.events.Publish(ctx, domain.ContentEvent{
		Action:   domain.EventUpdated,
		Entity:   domain.EntityCourse,
		EntityID: course.ID,
		CourseID: course.ID,
	})
	return course, nil
}

// DeleteCourse removes the course and everything under it. Child
// deletions that fail are logged and skipped so one broken chapter
// never strands the rest of the cascade.
func (c *courseUseCase) DeleteCourse(ctx context.Context, principal domain.Principal, id string) error {
	course, err := c.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !principal.CanAccess(course.CreatedBy) {
		return errprocess.Forbidden("access denied")
	}

	chapters, err := c.chapterRepo.FindByCourse(ctx, id)
	if err != nil {
		logger.Log.Warn("cascade continues without chapter list",
			zap.String("course_id", id),
			zap.Error(err))
	}
	for _, ch := range chapters {
		if err := c.videoRepo.DeleteByChapter(ctx, ch.ID); err != nil {
			logger.Log.Warn("cascade left videos behind",
				zap.String("chapter_id", ch.ID),
				zap.Error(err))
		}
	}
	if err := c.chapterRepo.DeleteByCourse(ctx, id); err != nil {
		logger.Log.Warn("cascade left chapters behind",
			zap.String("course_id", id),
			zap.Error(err))
	}

	if err := c.courseRepo.Delete(ctx, id); err != nil {
		return errprocess.Set(fmt.Sprintf("delete course %s: %v", id, err))
	}

	logger.Log.Info("course deleted", zap.String("course_id", id))

	c.events.Publish(ctx, domain.ContentEvent{
		Action:   domain.EventDeleted,
		Entity:   domain.EntityCourse,
		EntityID: id,
		CourseID: id,
	})
	return nil
}
