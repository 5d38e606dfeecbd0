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

// ChapterUseCase application service for the chapter entity. Ownership
// is resolved by walking up to the owning course on every operation,
// reads included.
type ChapterUseCase interface {
	CreateChapter(ctx context.Context, principal domain.Principal, courseID string, req *domain.CreateChapterReq) (*domain.Chapter, error)
	GetChapter(ctx context.Context, principal domain.Principal, id string) (*domain.ChapterDetail, error)
	ListChapters(ctx context.Context, principal domain.Principal, courseID string) ([]domain.Chapter, error)
	UpdateChapter(ctx context.Context, principal domain.Principal, id string, req *domain.UpdateChapterReq) (*domain.Chapter, error)
	DeleteChapter(ctx context.Context, principal domain.Principal, id string) error
}

type chapterUseCase struct {
	courseRepo  repository.CourseRepository
	chapterRepo repository.ChapterRepository
	videoRepo   repository.VideoRepository
	aggregator  *Aggregator
	events      EventPublisher
}

// NewChapterUseCase create a ChapterUseCase
func NewChapterUseCase(courseRepo repository.CourseRepository,
	chapterRepo repository.ChapterRepository,
	videoRepo repository.VideoRepository,
	aggregator *Aggregator,
	events EventPublisher,
) ChapterUseCase {
	return &chapterUseCase{
		courseRepo:  courseRepo,
		chapterRepo: chapterRepo,
		videoRepo:   videoRepo,
		aggregator:  aggregator,
		events:      events,
	}
}

func (c *chapterUseCase) CreateChapter(ctx context.Context, principal domain.Principal, courseID string, req *domain.CreateChapterReq) (*domain.Chapter, error) {
	course, err := c.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccess(course.CreatedBy) {
		return nil, errprocess.Forbidden("access denied")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	order, err := c.chapterRepo.NextOrder(ctx, courseID)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("next chapter order for course %s: %v", courseID, err))
	}

	chapter := domain.Chapter{
		Name:        req.Name,
		Description: req.Description,
		CourseID:    courseID,
		Order:       order,
	}
	if err := c.chapterRepo.Create(ctx, &chapter); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("create chapter: %v", err))
	}
	if err := c.courseRepo.AppendChapter(ctx, courseID, chapter.ID); err != nil {
		logger.Log.Warn("chapter not attached to course list",
			zap.String("chapter_id", chapter.ID),
			zap.Error(err))
	}

	// a fresh chapter has no videos yet, the refresh stores the zero sum
	c.aggregator.RecomputeChapterDuration(ctx, chapter.ID)
	chapter.Duration = domain.FormatClock(0)

	logger.Log.Info("chapter created",
		zap.String("chapter_id", chapter.ID),
		zap.String("course_id", courseID),
		zap.Int("order", chapter.Order))

	c.events.Publish(ctx, domain.ContentEvent{
		Action:   domain.EventCreated,
		Entity:   domain.EntityChapter,
		EntityID: chapter.ID,
		CourseID: courseID,
	})
	return &chapter, nil
}

// GetChapter returns the chapter with all of its videos in order,
// inactive ones included so owners can manage them.
func (c *chapterUseCase) GetChapter(ctx context.Context, principal domain.Principal, id string) (*domain.ChapterDetail, error) {
	chapter, err := c.chapterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	owner, err := c.resolveOwner(ctx, chapter.CourseID)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccess(owner) {
		return nil, errprocess.Forbidden("access denied")
	}
	videos, err := c.videoRepo.FindByChapter(ctx, id, false)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("load videos of chapter %s: %v", id, err))
	}
	if videos == nil {
		videos = []domain.Video{}
	}
	return &domain.ChapterDetail{Chapter: *chapter, Videos: videos}, nil
}

func (c *chapterUseCase) ListChapters(ctx context.Context, principal domain.Principal, courseID string) ([]domain.Chapter, error) {
	course, err := c.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccess(course.CreatedBy) {
		return nil, errprocess.Forbidden("access denied")
	}
	chapters, err := c.chapterRepo.FindByCourse(ctx, courseID)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("load chapters of course %s: %v", courseID, err))
	}
	if chapters == nil {
		chapters = []domain.Chapter{}
	}
	return chapters, nil
}

func (c *chapterUseCase) UpdateChapter(ctx context.Context, principal domain.Principal, id string, req *domain.UpdateChapterReq) (*domain.Chapter, error) {
	chapter, err := c.chapterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	owner, err := c.resolveOwner(ctx, chapter.CourseID)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccess(owner) {
		return nil, errprocess.Forbidden("access denied")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Name != "" {
		chapter.Name = req.Name
	}
	if req.Description != "" {
		chapter.Description = req.Description
	}

	if err := c.chapterRepo.Update(ctx, chapter); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("update chapter %s: %v", id, err))
	}

	c.events.Publish(ctx, domain.ContentEvent{
		Action:   domain.EventUpdated,
		Entity:   domain.EntityChapter,
		EntityID: chapter.ID,
		CourseID: chapter.CourseID,
	})
	return chapter, nil
}

// DeleteChapter removes the chapter and its videos, detaches it from
// the course and refreshes the course total.
func (c *chapterUseCase) DeleteChapter(ctx context.Context, principal domain.Principal, id string) error {
	chapter, err := c.chapterRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	owner, err := c.resolveOwner(ctx, chapter.CourseID)
	if err != nil {
		return err
	}
	if !principal.CanAccess(owner) {
		return errprocess.Forbidden("access denied")
	}

	if err := c.videoRepo.DeleteByChapter(ctx, id); err != nil {
		logger.Log.Warn("cascade left videos behind",
			zap.String("chapter_id", id),
			zap.Error(err))
	}
	if err := c.chapterRepo.Delete(ctx, id); err != nil {
		return errprocess.Set(fmt.Sprintf("delete chapter %s: %v", id, err))
	}
	if err := c.courseRepo.DetachChapter(ctx, chapter.CourseID, id); err != nil {
		logger.Log.Warn("chapter not detached from course list",
			zap.String("chapter_id", id),
			zap.Error(err))
	}

	c.aggregator.RecomputeCourseDuration(ctx, chapter.CourseID)

	logger.Log.Info("chapter deleted",
		zap.String("chapter_id", id),
		zap.String("course_id", chapter.CourseID))

	c.events.Publish(ctx, domain.ContentEvent{
		Action:   domain.EventDeleted,
		Entity:   domain.EntityChapter,
		EntityID: id,
		CourseID: chapter.CourseID,
	})
	return nil
}

func (c *chapterUseCase) resolveOwner(ctx context.Context, courseID string) (string, error) {
	course, err := c.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return "", err
	}
	return course.CreatedBy, nil
}
