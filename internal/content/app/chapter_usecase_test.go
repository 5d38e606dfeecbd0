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

func TestChapterUseCase_CreateChapter(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	t.Run("first chapter gets order 1", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)
		videos := new(MockVideoRepo)
		events := &RecordingEvents{}

		courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()
		chapters.On("NextOrder", ctx, "course-1").Return(1, nil).Once()
		chapters.On("Create", ctx, mock.Anything).Return(nil).Once()
		courses.On("AppendChapter", ctx, "course-1", "chapter-1").Return(nil).Once()
		// empty chapter sums to zero at create
		videos.On("FindByChapter", ctx, "chapter-1", false).Return([]domain.Video{}, nil).Once()
		chapters.On("SetDuration", ctx, "chapter-1", "0:00").Return(nil).Once()

		uc := NewChapterUseCase(courses, chapters, videos, newTestAggregator(courses, chapters, videos), events)
		chapter, err := uc.CreateChapter(ctx, instructor, "course-1", &domain.CreateChapterReq{Name: "intro", Description: "basics"})

		assert.NoError(t, err)
		assert.Equal(t, 1, chapter.Order)
		assert.Equal(t, "course-1", chapter.CourseID)
		assert.Equal(t, "0:00", chapter.Duration)
		assert.Len(t, events.Events, 1)
		chapters.AssertExpectations(t)
		courses.AssertExpectations(t)
		videos.AssertExpectations(t)
	})

	t.Run("order continues past deletions", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)
		videos := new(MockVideoRepo)

		courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()
		chapters.On("NextOrder", ctx, "course-1").Return(6, nil).Once()
		chapters.On("Create", ctx, mock.Anything).Return(nil).Once()
		courses.On("AppendChapter", ctx, "course-1", mock.Anything).Return(nil).Once()
		videos.On("FindByChapter", ctx, "chapter-1", false).Return([]domain.Video{}, nil).Once()
		chapters.On("SetDuration", ctx, "chapter-1", "0:00").Return(nil).Once()

		uc := NewChapterUseCase(courses, chapters, videos, newTestAggregator(courses, chapters, videos), &RecordingEvents{})
		chapter, err := uc.CreateChapter(ctx, instructor, "course-1", &domain.CreateChapterReq{Name: "ch6", Description: "d"})

		assert.NoError(t, err)
		assert.Equal(t, 6, chapter.Order)
	})

	t.Run("stranger cannot add chapters", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)
		courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()

		uc := NewChapterUseCase(courses, chapters, new(MockVideoRepo), newTestAggregator(courses, chapters, new(MockVideoRepo)), &RecordingEvents{})
		_, err := uc.CreateChapter(ctx, stranger, "course-1", &domain.CreateChapterReq{Name: "x", Description: "d"})

		assert.Equal(t, errprocess.KindForbidden, errprocess.KindOf(err))
		chapters.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown course is not found", func(t *testing.T) {
		courses := new(MockCourseRepo)
		courses.On("GetByID", ctx, "nope").Return(nil, errprocess.NotFound("course not found")).Once()

		uc := NewChapterUseCase(courses, new(MockChapterRepo), new(MockVideoRepo), newTestAggregator(courses, new(MockChapterRepo), new(MockVideoRepo)), &RecordingEvents{})
		_, err := uc.CreateChapter(ctx, instructor, "nope", &domain.CreateChapterReq{Name: "x", Description: "d"})

		assert.Equal(t, errprocess.KindNotFound, errprocess.KindOf(err))
	})
}

func TestChapterUseCase_UpdateChapter(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	t.Run("ownership is resolved through the course", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)

		chapters.On("GetByID", ctx, "ch-1").Return(&domain.Chapter{ID: "ch-1", Name: "intro", CourseID: "course-1"}, nil).Once()
		courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()
		chapters.On("Update", ctx, mock.Anything).Return(nil).Once()

		uc := NewChapterUseCase(courses, chapters, new(MockVideoRepo), newTestAggregator(courses, chapters, new(MockVideoRepo)), &RecordingEvents{})
		chapter, err := uc.UpdateChapter(ctx, instructor, "ch-1", &domain.UpdateChapterReq{Name: "week one"})

		assert.NoError(t, err)
		assert.Equal(t, "week one", chapter.Name)
	})

	t.Run("stranger is rejected after the walk-up", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)

		chapters.On("GetByID", ctx, "ch-1").Return(&domain.Chapter{ID: "ch-1", CourseID: "course-1"}, nil).Once()
		courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()

		uc := NewChapterUseCase(courses, chapters, new(MockVideoRepo), newTestAggregator(courses, chapters, new(MockVideoRepo)), &RecordingEvents{})
		_, err := uc.UpdateChapter(ctx, stranger, "ch-1", &domain.UpdateChapterReq{Name: "x"})

		assert.Equal(t, errprocess.KindForbidden, errprocess.KindOf(err))
	})
}

func TestChapterUseCase_DeleteChapter(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	courses := new(MockCourseRepo)
	chapters := new(MockChapterRepo)
	videos := new(MockVideoRepo)
	events := &RecordingEvents{}

	chapters.On("GetByID", ctx, "ch-1").Return(&domain.Chapter{ID: "ch-1", CourseID: "course-1", Duration: "10:00"}, nil).Once()
	courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()
	videos.On("DeleteByChapter", ctx, "ch-1").Return(nil).Once()
	chapters.On("Delete", ctx, "ch-1").Return(nil).Once()
	courses.On("DetachChapter", ctx, "course-1", "ch-1").Return(nil).Once()
	// course total refresh after the chapter is gone
	chapters.On("FindByCourse", ctx, "course-1").Return([]domain.Chapter{{ID: "ch-2", Duration: "5:30"}}, nil).Once()
	courses.On("SetTotalDuration", ctx, "course-1", "5:30").Return(nil).Once()

	uc := NewChapterUseCase(courses, chapters, videos, newTestAggregator(courses, chapters, videos), events)
	err := uc.DeleteChapter(ctx, instructor, "ch-1")

	assert.NoError(t, err)
	assert.Len(t, events.Events, 1)
	assert.Equal(t, domain.EventDeleted, events.Events[0].Action)
	courses.AssertExpectations(t)
	chapters.AssertExpectations(t)
	videos.AssertExpectations(t)
}

func TestChapterUseCase_GetChapter(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	t.Run("owner sees inactive videos too", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)
		videos := new(MockVideoRepo)

		chapters.On("GetByID", ctx, "ch-1").Return(&domain.Chapter{ID: "ch-1", CourseID: "course-1"}, nil).Once()
		courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()
		// inactive videos stay visible to management reads
		videos.On("FindByChapter", ctx, "ch-1", false).Return([]domain.Video{
			{ID: "v-1", IsActive: true}, {ID: "v-2", IsActive: false},
		}, nil).Once()

		uc := NewChapterUseCase(courses, chapters, videos, newTestAggregator(courses, chapters, videos), &RecordingEvents{})
		detail, err := uc.GetChapter(ctx, instructor, "ch-1")

		assert.NoError(t, err)
		assert.Len(t, detail.Videos, 2)
	})

	t.Run("stranger is walked up to the course owner and refused", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)
		videos := new(MockVideoRepo)

		chapters.On("GetByID", ctx, "ch-1").Return(&domain.Chapter{ID: "ch-1", CourseID: "course-1"}, nil).Once()
		courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()

		uc := NewChapterUseCase(courses, chapters, videos, newTestAggregator(courses, chapters, videos), &RecordingEvents{})
		_, err := uc.GetChapter(ctx, stranger, "ch-1")

		assert.Equal(t, errprocess.KindForbidden, errprocess.KindOf(err))
		courses.AssertExpectations(t)
		videos.AssertNotCalled(t, "FindByChapter", ctx, "ch-1", false)
	})

	t.Run("missing chapter stays not found even for strangers", func(t *testing.T) {
		chapters := new(MockChapterRepo)
		chapters.On("GetByID", ctx, "missing").Return(nil, errprocess.NotFound("chapter not found")).Once()

		uc := NewChapterUseCase(new(MockCourseRepo), chapters, new(MockVideoRepo), newTestAggregator(new(MockCourseRepo), chapters, new(MockVideoRepo)), &RecordingEvents{})
		_, err := uc.GetChapter(ctx, stranger, "missing")

		assert.Equal(t, errprocess.KindNotFound, errprocess.KindOf(err))
	})
}

func TestChapterUseCase_ListChapters(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	t.Run("chapters come back in order", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)

		courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()
		chapters.On("FindByCourse", ctx, "course-1").Return([]domain.Chapter{
			{ID: "ch-1", Order: 1}, {ID: "ch-2", Order: 3},
		}, nil).Once()

		uc := NewChapterUseCase(courses, chapters, new(MockVideoRepo), newTestAggregator(courses, chapters, new(MockVideoRepo)), &RecordingEvents{})
		got, err := uc.ListChapters(ctx, instructor, "course-1")

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, 1, got[0].Order)
	})

	t.Run("stranger cannot list another owner's chapters", func(t *testing.T) {
		courses := new(MockCourseRepo)
		chapters := new(MockChapterRepo)
		courses.On("GetByID", ctx, "course-1").Return(newCourseFixture(), nil).Once()

		uc := NewChapterUseCase(courses, chapters, new(MockVideoRepo), newTestAggregator(courses, chapters, new(MockVideoRepo)), &RecordingEvents{})
		_, err := uc.ListChapters(ctx, stranger, "course-1")

		assert.Equal(t, errprocess.KindForbidden, errprocess.KindOf(err))
		chapters.AssertNotCalled(t, "FindByCourse", ctx, "course-1")
	})

	t.Run("unknown course is not found", func(t *testing.T) {
		courses := new(MockCourseRepo)
		courses.On("GetByID", ctx, "missing").Return(nil, errprocess.NotFound("course not found")).Once()

		uc := NewChapterUseCase(courses, new(MockChapterRepo), new(MockVideoRepo), newTestAggregator(courses, new(MockChapterRepo), new(MockVideoRepo)), &RecordingEvents{})
		_, err := uc.ListChapters(ctx, stranger, "missing")

		assert.Equal(t, errprocess.KindNotFound, errprocess.KindOf(err))
	})
}

func newTestAggregator(courses *MockCourseRepo, chapters *MockChapterRepo, videos *MockVideoRepo) *Aggregator {
	return NewAggregator(courses, chapters, videos)
}
