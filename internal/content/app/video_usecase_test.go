package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"course_content_service/internal/content/domain"
	errprocess "course_content_service/pkg/err"
	"course_content_service/pkg/logger"
)

func chapterFixture() *domain.Chapter {
	return &domain.Chapter{ID: "ch-1", Name: "intro", CourseID: "course-1", Duration: domain.ZeroClock}
}

func TestVideoUseCase_CreateVideo(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	t.Run("create refreshes chapter and course durations", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)
		videos := new(MockVideoRepo)
		events := &RecordingEvents{}

		chapters.On("GetByID", ctx, "ch-1").Return(chapterFixture(), nil).Once()
		courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()
		videos.On("NextOrder", ctx, "ch-1").Return(1, nil).Once()
		videos.On("Create", ctx, mock.Anything).Return(nil).Once()
		chapters.On("AppendVideo", ctx, "ch-1", "video-1").Return(nil).Once()

		// aggregation pass
		videos.On("FindByChapter", ctx, "ch-1", false).Return([]domain.Video{
			{ID: "video-1", Duration: "10:30"},
		}, nil).Once()
		chapters.On("SetDuration", ctx, "ch-1", "10:30").Return(nil).Once()
		chapters.On("FindByCourse", ctx, "course-1").Return([]domain.Chapter{
			{ID: "ch-1", Duration: "10:30"},
		}, nil).Once()
		courses.On("SetTotalDuration", ctx, "course-1", "10:30").Return(nil).Once()

		uc := NewVideoUseCase(courses, chapters, videos, NewAggregator(courses, chapters, videos), events)
		video, err := uc.CreateVideo(ctx, instructor, "ch-1", &domain.CreateVideoReq{
			Title: "ep1", Description: "d", VideoURL: "http://cdn/ep1", Duration: "10:30",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, video.Order)
		assert.True(t, video.IsActive)
		assert.Len(t, events.Events, 1)
		chapters.AssertExpectations(t)
		courses.AssertExpectations(t)
		videos.AssertExpectations(t)
	})

	t.Run("stranger cannot add videos", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)
		videos := new(MockVideoRepo)

		chapters.On("GetByID", ctx, "ch-1").Return(chapterFixture(), nil).Once()
		courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()

		uc := NewVideoUseCase(courses, chapters, videos, NewAggregator(courses, chapters, videos), &RecordingEvents{})
		_, err := uc.CreateVideo(ctx, stranger, "ch-1", &domain.CreateVideoReq{
			Title: "ep1", Description: "d", VideoURL: "http://cdn/ep1",
		})

		assert.Equal(t, errprocess.KindForbidden, errprocess.KindOf(err))
		videos.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestVideoUseCase_UpdateVideo(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	t.Run("duration change triggers the refresh", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)
		videos := new(MockVideoRepo)

		videos.On("GetByID", ctx, "video-1").Return(&domain.Video{
			ID: "video-1", Title: "ep1", ChapterID: "ch-1", Duration: "10:30", IsActive: true,
		}, nil).Once()
		chapters.On("GetByID", ctx, "ch-1").Return(chapterFixture(), nil).Once()
		courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()
		videos.On("Update", ctx, mock.Anything).Return(nil).Once()

		videos.On("FindByChapter", ctx, "ch-1", false).Return([]domain.Video{
			{ID: "video-1", Duration: "12:00"},
		}, nil).Once()
		chapters.On("SetDuration", ctx, "ch-1", "12:00").Return(nil).Once()
		chapters.On("FindByCourse", ctx, "course-1").Return([]domain.Chapter{
			{ID: "ch-1", Duration: "12:00"},
		}, nil).Once()
		courses.On("SetTotalDuration", ctx, "course-1", "12:00").Return(nil).Once()

		uc := NewVideoUseCase(courses, chapters, videos, NewAggregator(courses, chapters, videos), &RecordingEvents{})
		video, err := uc.UpdateVideo(ctx, instructor, "video-1", &domain.UpdateVideoReq{Duration: "12:00"})

		assert.NoError(t, err)
		assert.Equal(t, "12:00", video.Duration)
		chapters.AssertExpectations(t)
		courses.AssertExpectations(t)
	})

	t.Run("metadata change skips the refresh", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)
		videos := new(MockVideoRepo)

		videos.On("GetByID", ctx, "video-1").Return(&domain.Video{
			ID: "video-1", Title: "ep1", ChapterID: "ch-1", Duration: "10:30", IsActive: true,
		}, nil).Once()
		chapters.On("GetByID", ctx, "ch-1").Return(chapterFixture(), nil).Once()
		courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()
		videos.On("Update", ctx, mock.Anything).Return(nil).Once()

		uc := NewVideoUseCase(courses, chapters, videos, NewAggregator(courses, chapters, videos), &RecordingEvents{})
		video, err := uc.UpdateVideo(ctx, instructor, "video-1", &domain.UpdateVideoReq{Title: "episode one"})

		assert.NoError(t, err)
		assert.Equal(t, "episode one", video.Title)
		chapters.AssertNotCalled(t, "SetDuration", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("deactivation keeps the stored duration", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)
		videos := new(MockVideoRepo)

		videos.On("GetByID", ctx, "video-1").Return(&domain.Video{
			ID: "video-1", Title: "ep1", ChapterID: "ch-1", Duration: "10:30", IsActive: true,
		}, nil).Once()
		chapters.On("GetByID", ctx, "ch-1").Return(chapterFixture(), nil).Once()
		courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()
		videos.On("Update", ctx, mock.Anything).Return(nil).Once()

		inactive := false
		uc := NewVideoUseCase(courses, chapters, videos, NewAggregator(courses, chapters, videos), &RecordingEvents{})
		video, err := uc.UpdateVideo(ctx, instructor, "video-1", &domain.UpdateVideoReq{IsActive: &inactive})

		assert.NoError(t, err)
		assert.False(t, video.IsActive)
		assert.Equal(t, "10:30", video.Duration)
	})
}

func TestVideoUseCase_ListVideos(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	t.Run("only active videos are listed", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)
		videos := new(MockVideoRepo)

		chapters.On("GetByID", ctx, "ch-1").Return(chapterFixture(), nil).Once()
		courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()
		videos.On("FindByChapter", ctx, "ch-1", true).Return([]domain.Video{
			{ID: "v-1", IsActive: true, Order: 1},
		}, nil).Once()

		uc := NewVideoUseCase(courses, chapters, videos, NewAggregator(courses, chapters, videos), &RecordingEvents{})
		got, err := uc.ListVideos(ctx, instructor, "ch-1")

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "v-1", got[0].ID)
	})

	t.Run("stranger cannot list another owner's videos", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)
		videos := new(MockVideoRepo)

		chapters.On("GetByID", ctx, "ch-1").Return(chapterFixture(), nil).Once()
		courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()

		uc := NewVideoUseCase(courses, chapters, videos, NewAggregator(courses, chapters, videos), &RecordingEvents{})
		_, err := uc.ListVideos(ctx, stranger, "ch-1")

		assert.Equal(t, errprocess.KindForbidden, errprocess.KindOf(err))
		videos.AssertNotCalled(t, "FindByChapter", ctx, "ch-1", true)
	})

	t.Run("unknown chapter is not found", func(t *testing.T) {
		chapters := new(MockChapterRepo)
		chapters.On("GetByID", ctx, "missing").Return(nil, errprocess.NotFound("chapter not found")).Once()

		uc := NewVideoUseCase(new(MockCourseRepo), chapters, new(MockVideoRepo), NewAggregator(new(MockCourseRepo), chapters, new(MockVideoRepo)), &RecordingEvents{})
		_, err := uc.ListVideos(ctx, stranger, "missing")

		assert.Equal(t, errprocess.KindNotFound, errprocess.KindOf(err))
	})
}

func TestVideoUseCase_GetVideo(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	t.Run("owner reads through the chapter and course walk", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)
		videos := new(MockVideoRepo)

		videos.On("GetByID", ctx, "video-1").Return(&domain.Video{ID: "video-1", ChapterID: "ch-1"}, nil).Once()
		chapters.On("GetByID", ctx, "ch-1").Return(chapterFixture(), nil).Once()
		courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()

		uc := NewVideoUseCase(courses, chapters, videos, NewAggregator(courses, chapters, videos), &RecordingEvents{})
		video, err := uc.GetVideo(ctx, instructor, "video-1")

		assert.NoError(t, err)
		assert.Equal(t, "video-1", video.ID)
		courses.AssertExpectations(t)
	})

	t.Run("stranger is refused", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)
		videos := new(MockVideoRepo)

		videos.On("GetByID", ctx, "video-1").Return(&domain.Video{ID: "video-1", ChapterID: "ch-1"}, nil).Once()
		chapters.On("GetByID", ctx, "ch-1").Return(chapterFixture(), nil).Once()
		courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()

		uc := NewVideoUseCase(courses, chapters, videos, NewAggregator(courses, chapters, videos), &RecordingEvents{})
		_, err := uc.GetVideo(ctx, stranger, "video-1")

		assert.Equal(t, errprocess.KindForbidden, errprocess.KindOf(err))
	})

	t.Run("missing video stays not found", func(t *testing.T) {
		videos := new(MockVideoRepo)
		videos.On("GetByID", ctx, "missing").Return(nil, errprocess.NotFound("video not found")).Once()

		uc := NewVideoUseCase(new(MockCourseRepo), new(MockChapterRepo), videos, NewAggregator(new(MockCourseRepo), new(MockChapterRepo), videos), &RecordingEvents{})
		_, err := uc.GetVideo(ctx, stranger, "missing")

		assert.Equal(t, errprocess.KindNotFound, errprocess.KindOf(err))
	})
}

func TestVideoUseCase_DeleteVideo(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	courses := new(MockCourseRepo)
	chapters := new(MockChapterRepo)
	videos := new(MockVideoRepo)
	events := &RecordingEvents{}

	videos.On("GetByID", ctx, "video-1").Return(&domain.Video{
		ID: "video-1", ChapterID: "ch-1", Duration: "10:30",
	}, nil).Once()
	chapters.On("GetByID", ctx, "ch-1").Return(chapterFixture(), nil).Once()
	courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()
	videos.On("Delete", ctx, "video-1").Return(nil).Once()
	chapters.On("DetachVideo", ctx, "ch-1", "video-1").Return(nil).Once()

	videos.On("FindByChapter", ctx, "ch-1", false).Return([]domain.Video{}, nil).Once()
	chapters.On("SetDuration", ctx, "ch-1", "0:00").Return(nil).Once()
	chapters.On("FindByCourse", ctx, "course-1").Return([]domain.Chapter{
		{ID: "ch-1", Duration: "0:00"},
	}, nil).Once()
	courses.On("SetTotalDuration", ctx, "course-1", "0:00").Return(nil).Once()

	uc := NewVideoUseCase(courses, chapters, videos, NewAggregator(courses, chapters, videos), events)
	err := uc.DeleteVideo(ctx, instructor, "video-1")

	assert.NoError(t, err)
	assert.Len(t, events.Events, 1)
	videos.AssertExpectations(t)
	chapters.AssertExpectations(t)
	courses.AssertExpectations(t)
}
