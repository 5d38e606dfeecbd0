package app

import (
	"context"

	"github.com/stretchr/testify/mock"

	"course_content_service/internal/content/domain"
)

// MockCourseRepo mock CourseRepository
type MockCourseRepo struct {
	mock.Mock
}

func (m *MockCourseRepo) Create(ctx context.Context, course *domain.Course) error {
	args := m.Called(ctx, course)
	if course.ID == "" {
		course.ID = "course-1"
	}
	return args.Error(0)
}

func (m *MockCourseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Course), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseRepo) Find(ctx context.Context, q *domain.CourseQuery) ([]domain.Course, int64, error) {
	args := m.Called(ctx, q)
	var courses []domain.Course
	if args.Get(0) != nil {
		courses = args.Get(0).([]domain.Course)
	}
	return courses, args.Get(1).(int64), args.Error(2)
}

func (m *MockCourseRepo) Update(ctx context.Context, course *domain.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepo) AppendChapter(ctx context.Context, courseID, chapterID string) error {
	args := m.Called(ctx, courseID, chapterID)
	return args.Error(0)
}

func (m *MockCourseRepo) DetachChapter(ctx context.Context, courseID, chapterID string) error {
	args := m.Called(ctx, courseID, chapterID)
	return args.Error(0)
}

func (m *MockCourseRepo) SetTotalDuration(ctx context.Context, courseID, duration string) error {
	args := m.Called(ctx, courseID, duration)
	return args.Error(0)
}

func (m *MockCourseRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockChapterRepo mock ChapterRepository
type MockChapterRepo struct {
	mock.Mock
}

func (m *MockChapterRepo) Create(ctx context.Context, chapter *domain.Chapter) error {
	args := m.Called(ctx, chapter)
	if chapter.ID == "" {
		chapter.ID = "chapter-1"
	}
	return args.Error(0)
}

func (m *MockChapterRepo) GetByID(ctx context.Context, id string) (*domain.Chapter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Chapter), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChapterRepo) FindByCourse(ctx context.Context, courseID string) ([]domain.Chapter, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Chapter), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChapterRepo) FindByIDs(ctx context.Context, ids []string) ([]domain.Chapter, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Chapter), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChapterRepo) NextOrder(ctx context.Context, courseID string) (int, error) {
	args := m.Called(ctx, courseID)
	return args.Int(0), args.Error(1)
}

func (m *MockChapterRepo) Update(ctx context.Context, chapter *domain.Chapter) error {
	args := m.Called(ctx, chapter)
	return args.Error(0)
}

func (m *MockChapterRepo) SetDuration(ctx context.Context, chapterID, duration string) error {
	args := m.Called(ctx, chapterID, duration)
	return args.Error(0)
}

func (m *MockChapterRepo) AppendVideo(ctx context.Context, chapterID, videoID string) error {
	args := m.Called(ctx, chapterID, videoID)
	return args.Error(0)
}

func (m *MockChapterRepo) DetachVideo(ctx context.Context, chapterID, videoID string) error {
	args := m.Called(ctx, chapterID, videoID)
	return args.Error(0)
}

func (m *MockChapterRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChapterRepo) DeleteByCourse(ctx context.Context, courseID string) error {
	args := m.Called(ctx, courseID)
	return args.Error(0)
}

// MockVideoRepo mock VideoRepository
type MockVideoRepo struct {
	mock.Mock
}

func (m *MockVideoRepo) Create(ctx context.Context, video *domain.Video) error {
	args := m.Called(ctx, video)
	if video.ID == "" {
		video.ID = "video-1"
	}
	return args.Error(0)
}

func (m *MockVideoRepo) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepo) FindByChapter(ctx context.Context, chapterID string, activeOnly bool) ([]domain.Video, error) {
	args := m.Called(ctx, chapterID, activeOnly)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepo) FindByIDs(ctx context.Context, ids []string) ([]domain.Video, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepo) NextOrder(ctx context.Context, chapterID string) (int, error) {
	args := m.Called(ctx, chapterID)
	return args.Int(0), args.Error(1)
}

func (m *MockVideoRepo) Update(ctx context.Context, video *domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepo) DeleteByChapter(ctx context.Context, chapterID string) error {
	args := m.Called(ctx, chapterID)
	return args.Error(0)
}

// RecordingEvents collects published events so tests can assert on them
type RecordingEvents struct {
	Events []domain.ContentEvent
}

func (r *RecordingEvents) Publish(_ context.Context, event domain.ContentEvent) {
	r.Events = append(r.Events, event)
}
