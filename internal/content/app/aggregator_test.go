package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"course_content_service/internal/content/domain"
	"course_content_service/pkg/logger"
)

func TestAggregator_RecomputeChapterDuration(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	t.Run("sums active and inactive videos", func(t *testing.T) {
		chapters := new(MockChapterRepo)
		videos := new(MockVideoRepo)

		videos.On("FindByChapter", ctx, "ch-1", false).Return([]domain.Video{
			{ID: "v-1", Duration: "10:30", IsActive: true},
			{ID: "v-2", Duration: "4:30", IsActive: false},
		}, nil).Once()
		chapters.On("SetDuration", ctx, "ch-1", "15:00").Return(nil).Once()

		agg := NewAggregator(new(MockCourseRepo), chapters, videos)
		agg.RecomputeChapterDuration(ctx, "ch-1")

		chapters.AssertExpectations(t)
	})

	t.Run("malformed duration counts as zero", func(t *testing.T) {
		chapters := new(MockChapterRepo)
		videos := new(MockVideoRepo)

		videos.On("FindByChapter", ctx, "ch-1", false).Return([]domain.Video{
			{ID: "v-1", Duration: "garbage"},
			{ID: "v-2", Duration: "2:15"},
		}, nil).Once()
		chapters.On("SetDuration", ctx, "ch-1", "2:15").Return(nil).Once()

		agg := NewAggregator(new(MockCourseRepo), chapters, videos)
		agg.RecomputeChapterDuration(ctx, "ch-1")

		chapters.AssertExpectations(t)
	})

	t.Run("store failure never propagates", func(t *testing.T) {
		chapters := new(MockChapterRepo)
		videos := new(MockVideoRepo)

		videos.On("FindByChapter", ctx, "ch-1", false).Return(nil, errors.New("io timeout")).Once()

		agg := NewAggregator(new(MockCourseRepo), chapters, videos)
		agg.RecomputeChapterDuration(ctx, "ch-1")

		chapters.AssertNotCalled(t, "SetDuration", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("minutes never roll into hours at the chapter level", func(t *testing.T) {
		chapters := new(MockChapterRepo)
		videos := new(MockVideoRepo)

		videos.On("FindByChapter", ctx, "ch-1", false).Return([]domain.Video{
			{ID: "v-1", Duration: "40:00"},
			{ID: "v-2", Duration: "35:00"},
		}, nil).Once()
		chapters.On("SetDuration", ctx, "ch-1", "75:00").Return(nil).Once()

		agg := NewAggregator(new(MockCourseRepo), chapters, videos)
		agg.RecomputeChapterDuration(ctx, "ch-1")

		chapters.AssertExpectations(t)
	})
}

func TestAggregator_RecomputeCourseDuration(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	t.Run("course total switches to the hours form", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)

		chapters.On("FindByCourse", ctx, "course-1").Return([]domain.Chapter{
			{ID: "ch-1", Duration: "40:00"},
			{ID: "ch-2", Duration: "35:00"},
		}, nil).Once()
		courses.On("SetTotalDuration", ctx, "course-1", "1:15:00").Return(nil).Once()

		agg := NewAggregator(courses, chapters, new(MockVideoRepo))
		agg.RecomputeCourseDuration(ctx, "course-1")

		courses.AssertExpectations(t)
	})

	t.Run("short totals stay in the minutes form", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)

		chapters.On("FindByCourse", ctx, "course-1").Return([]domain.Chapter{
			{ID: "ch-1", Duration: "10:30"},
		}, nil).Once()
		courses.On("SetTotalDuration", ctx, "course-1", "10:30").Return(nil).Once()

		agg := NewAggregator(courses, chapters, new(MockVideoRepo))
		agg.RecomputeCourseDuration(ctx, "course-1")

		courses.AssertExpectations(t)
	})
}
