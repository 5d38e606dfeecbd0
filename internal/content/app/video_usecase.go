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

// VideoUseCase application service for the video entity. A video's
// duration is the only directly editable duration in the hierarchy;
// chapter and course durations are refreshed from it.
type VideoUseCase interface {
	CreateVideo(ctx context.Context, principal domain.Principal, chapterID string, req *domain.CreateVideoReq) (*domain.Video, error)
	GetVideo(ctx context.Context, principal domain.Principal, id string) (*domain.Video, error)
	ListVideos(ctx context.Context, principal domain.Principal, chapterID string) ([]domain.Video, error)
	UpdateVideo(ctx context.Context, principal domain.Principal, id string, req *domain.UpdateVideoReq) (*domain.Video, error)
	DeleteVideo(ctx context.Context, principal domain.Principal, id string) error
}

type videoUseCase struct {
	courseRepo  repository.CourseRepository
	chapterRepo repository.ChapterRepository
	videoRepo   repository.VideoRepository
	aggregator  *Aggregator
	events      EventPublisher
}

// NewVideoUseCase create a VideoUseCase
func NewVideoUseCase(courseRepo repository.CourseRepository,
	chapterRepo repository.ChapterRepository,
	videoRepo repository.VideoRepository,
	aggregator *Aggregator,
	events EventPublisher,
) VideoUseCase {
	return &videoUseCase{
		courseRepo:  courseRepo,
		chapterRepo: chapterRepo,
		videoRepo:   videoRepo,
		aggregator:  aggregator,
		events:      events,
	}
}

func (v *videoUseCase) CreateVideo(ctx context.Context, principal domain.Principal, chapterID string, req *domain.CreateVideoReq) (*domain.Video, error) {
	chapter, err := v.chapterRepo.GetByID(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	owner, err := v.resolveOwner(ctx, chapter.CourseID)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccess(owner) {
		return nil, errprocess.Forbidden("access denied")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	order, err := v.videoRepo.NextOrder(ctx, chapterID)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("next video order for chapter %s: %v", chapterID, err))
	}

	video := domain.Video{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		VideoURL:    req.VideoURL,
		Duration:    req.Duration,
		ChapterID:   chapterID,
		Order:       order,
		IsActive:    true,
	}
	if err := v.videoRepo.Create(ctx, &video); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("create video: %v", err))
	}
	if err := v.chapterRepo.AppendVideo(ctx, chapterID, video.ID); err != nil {
		logger.Log.Warn("video not attached to chapter list",
			zap.String("video_id", video.ID),
			zap.Error(err))
	}

	v.aggregator.RecomputeFromChapter(ctx, chapterID, chapter.CourseID)

	logger.Log.Info("video created",
		zap.String("video_id", video.ID),
		zap.String("chapter_id", chapterID),
		zap.Int("order", video.Order))

	v.events.Publish(ctx, domain.ContentEvent{
		Action:   domain.EventCreated,
		Entity:   domain.EntityVideo,
		EntityID: video.ID,
		CourseID: chapter.CourseID,
	})
	return &video, nil
}

func (v *videoUseCase) GetVideo(ctx context.Context, principal domain.Principal, id string) (*domain.Video, error) {
	video, err := v.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	chapter, err := v.chapterRepo.GetByID(ctx, video.ChapterID)
	if err != nil {
		return nil, err
	}
	owner, err := v.resolveOwner(ctx, chapter.CourseID)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccess(owner) {
		return nil, errprocess.Forbidden("access denied")
	}
	return video, nil
}

// ListVideos returns the chapter's active videos in playback order.
func (v *videoUseCase) ListVideos(ctx context.Context, principal domain.Principal, chapterID string) ([]domain.Video, error) {
	chapter, err := v.chapterRepo.GetByID(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	owner, err := v.resolveOwner(ctx, chapter.CourseID)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccess(owner) {
		return nil, errprocess.Forbidden("access denied")
	}
	videos, err := v.videoRepo.FindByChapter(ctx, chapterID, true)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("load videos of chapter %s: %v", chapterID, err))
	}
	if videos == nil {
		videos = []domain.Video{}
	}
	return videos, nil
}

func (v *videoUseCase) UpdateVideo(ctx context.Context, principal domain.Principal, id string, req *domain.UpdateVideoReq) (*domain.Video, error) {
	video, err := v.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	chapter, err := v.chapterRepo.GetByID(ctx, video.ChapterID)
	if err != nil {
		return nil, err
	}
	owner, err := v.resolveOwner(ctx, chapter.CourseID)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccess(owner) {
		return nil, errprocess.Forbidden("access denied")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	durationChanged := false
	if req.Title != "" {
		video.Title = req.Title
	}
	if req.Description != "" {
		video.Description = req.Description
	}
	if req.Thumbnail != nil {
		video.Thumbnail = *req.Thumbnail
	}
	if req.VideoURL != "" {
		video.VideoURL = req.VideoURL
	}
	if req.Duration != "" && req.Duration != video.Duration {
		video.Duration = req.Duration
		durationChanged = true
	}
	if req.IsActive != nil {
		video.IsActive = *req.IsActive
	}

	if err := v.videoRepo.Update(ctx, video); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("update video %s: %v", id, err))
	}

	if durationChanged {
		v.aggregator.RecomputeFromChapter(ctx, video.ChapterID, chapter.CourseID)
	}

	v.events.Publish(ctx, domain.ContentEvent{
		Action:   domain.EventUpdated,
		Entity:   domain.EntityVideo,
		EntityID: video.ID,
		CourseID: chapter.CourseID,
	})
	return video, nil
}

// DeleteVideo removes the video, detaches it from the chapter and
// refreshes both derived durations.
func (v *videoUseCase) DeleteVideo(ctx context.Context, principal domain.Principal, id string) error {
	video, err := v.videoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	chapter, err := v.chapterRepo.GetByID(ctx, video.ChapterID)
	if err != nil {
		return err
	}
	owner, err := v.resolveOwner(ctx, chapter.CourseID)
	if err != nil {
		return err
	}
	if !principal.CanAccess(owner) {
		return errprocess.Forbidden("access denied")
	}

	if err := v.videoRepo.Delete(ctx, id); err != nil {
		return errprocess.Set(fmt.Sprintf("delete video %s: %v", id, err))
	}
	if err := v.chapterRepo.DetachVideo(ctx, video.ChapterID, id); err != nil {
		logger.Log.Warn("video not detached from chapter list",
			zap.String("video_id", id),
			zap.Error(err))
	}

	v.aggregator.RecomputeFromChapter(ctx, video.ChapterID, chapter.CourseID)

	logger.Log.Info("video deleted",
		zap.String("video_id", id),
		zap.String("chapter_id", video.ChapterID))

	v.events.Publish(ctx, domain.ContentEvent{
		Action:   domain.EventDeleted,
		Entity:   domain.EntityVideo,
		EntityID: id,
		CourseID: chapter.CourseID,
	})
	return nil
}

func (v *videoUseCase) resolveOwner(ctx context.Context, courseID string) (string, error) {
	course, err := v.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return "", err
	}
	return course.CreatedBy, nil
}
