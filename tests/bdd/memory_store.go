package bdd

import (
	"context"
	"fmt"
	"sort"

	"course_content_service/internal/content/domain"
	"course_content_service/pkg"
	errprocess "course_content_service/pkg/err"
)

// memoryStore backs the scenarios with plain maps so the lifecycle
// rules can be exercised without a database.
type memoryStore struct {
	seq      int
	courses  map[string]*domain.Course
	chapters map[string]*domain.Chapter
	videos   map[string]*domain.Video
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		courses:  map[string]*domain.Course{},
		chapters: map[string]*domain.Chapter{},
		videos:   map[string]*domain.Video{},
	}
}

func (s *memoryStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

type memCourseRepo struct{ store *memoryStore }
type memChapterRepo struct{ store *memoryStore }
type memVideoRepo struct{ store *memoryStore }

func (r *memCourseRepo) Create(_ context.Context, course *domain.Course) error {
	course.ID = r.store.nextID("course")
	if course.Status == "" {
		course.Status = domain.CourseDraft
	}
	if course.TotalDuration == "" {
		course.TotalDuration = domain.ZeroClock
	}
	c := *course
	r.store.courses[course.ID] = &c
	return nil
}

func (r *memCourseRepo) GetByID(_ context.Context, id string) (*domain.Course, error) {
	course, ok := r.store.courses[id]
	if !ok {
		return nil, errprocess.NotFound("course not found")
	}
	c := *course
	return &c, nil
}

func (r *memCourseRepo) Find(_ context.Context, q *domain.CourseQuery) ([]domain.Course, int64, error) {
	var out []domain.Course
	for _, c := range r.store.courses {
		if q.CreatedBy != nil && c.CreatedBy != *q.CreatedBy {
			continue
		}
		if q.Status != nil && c.Status != *q.Status {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *memCourseRepo) Update(_ context.Context, course *domain.Course) error {
	if _, ok := r.store.courses[course.ID]; !ok {
		return errprocess.NotFound("course not found")
	}
	c := *course
	r.store.courses[course.ID] = &c
	return nil
}

func (r *memCourseRepo) AppendChapter(_ context.Context, courseID, chapterID string) error {
	course, ok := r.store.courses[courseID]
	if !ok {
		return errprocess.NotFound("course not found")
	}
	if !pkg.Contains(course.Chapters, chapterID) {
		course.Chapters = append(course.Chapters, chapterID)
	}
	return nil
}

func (r *memCourseRepo) DetachChapter(_ context.Context, courseID, chapterID string) error {
	course, ok := r.store.courses[courseID]
	if !ok {
		return nil
	}
	course.Chapters = pkg.Remove(course.Chapters, chapterID)
	return nil
}

func (r *memCourseRepo) SetTotalDuration(_ context.Context, courseID, duration string) error {
	course, ok := r.store.courses[courseID]
	if !ok {
		return nil
	}
	course.TotalDuration = duration
	return nil
}

func (r *memCourseRepo) Delete(_ context.Context, id string) error {
	delete(r.store.courses, id)
	return nil
}

func (r *memChapterRepo) Create(_ context.Context, chapter *domain.Chapter) error {
	chapter.ID = r.store.nextID("chapter")
	if chapter.Duration == "" {
		chapter.Duration = domain.ZeroClock
	}
	c := *chapter
	r.store.chapters[chapter.ID] = &c
	return nil
}

func (r *memChapterRepo) GetByID(_ context.Context, id string) (*domain.Chapter, error) {
	chapter, ok := r.store.chapters[id]
	if !ok {
		return nil, errprocess.NotFound("chapter not found")
	}
	c := *chapter
	return &c, nil
}

func (r *memChapterRepo) FindByCourse(_ context.Context, courseID string) ([]domain.Chapter, error) {
	var out []domain.Chapter
	for _, ch := range r.store.chapters {
		if ch.CourseID == courseID {
			out = append(out, *ch)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *memChapterRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Chapter, error) {
	var out []domain.Chapter
	for _, id := range ids {
		if ch, ok := r.store.chapters[id]; ok {
			out = append(out, *ch)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *memChapterRepo) NextOrder(_ context.Context, courseID string) (int, error) {
	max := 0
	for _, ch := range r.store.chapters {
		if ch.CourseID == courseID && ch.Order > max {
			max = ch.Order
		}
	}
	return max + 1, nil
}

func (r *memChapterRepo) Update(_ context.Context, chapter *domain.Chapter) error {
	if _, ok := r.store.chapters[chapter.ID]; !ok {
		return errprocess.NotFound("chapter not found")
	}
	c := *chapter
	r.store.chapters[chapter.ID] = &c
	return nil
}

func (r *memChapterRepo) SetDuration(_ context.Context, chapterID, duration string) error {
	chapter, ok := r.store.chapters[chapterID]
	if !ok {
		return nil
	}
	chapter.Duration = duration
	return nil
}

func (r *memChapterRepo) AppendVideo(_ context.Context, chapterID, videoID string) error {
	chapter, ok := r.store.chapters[chapterID]
	if !ok {
		return errprocess.NotFound("chapter not found")
	}
	if !pkg.Contains(chapter.Videos, videoID) {
		chapter.Videos = append(chapter.Videos, videoID)
	}
	return nil
}

func (r *memChapterRepo) DetachVideo(_ context.Context, chapterID, videoID string) error {
	chapter, ok := r.store.chapters[chapterID]
	if !ok {
		return nil
	}
	chapter.Videos = pkg.Remove(chapter.Videos, videoID)
	return nil
}

func (r *memChapterRepo) Delete(_ context.Context, id string) error {
	delete(r.store.chapters, id)
	return nil
}

func (r *memChapterRepo) DeleteByCourse(_ context.Context, courseID string) error {
	for id, ch := range r.store.chapters {
		if ch.CourseID == courseID {
			delete(r.store.chapters, id)
		}
	}
	return nil
}

func (r *memVideoRepo) Create(_ context.Context, video *domain.Video) error {
	video.ID = r.store.nextID("video")
	if video.Duration == "" {
		video.Duration = domain.ZeroClock
	}
	v := *video
	r.store.videos[video.ID] = &v
	return nil
}

func (r *memVideoRepo) GetByID(_ context.Context, id string) (*domain.Video, error) {
	video, ok := r.store.videos[id]
	if !ok {
		return nil, errprocess.NotFound("video not found")
	}
	v := *video
	return &v, nil
}

func (r *memVideoRepo) FindByChapter(_ context.Context, chapterID string, activeOnly bool) ([]domain.Video, error) {
	var out []domain.Video
	for _, v := range r.store.videos {
		if v.ChapterID != chapterID {
			continue
		}
		if activeOnly && !v.IsActive {
			continue
		}
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *memVideoRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Video, error) {
	var out []domain.Video
	for _, id := range ids {
		if v, ok := r.store.videos[id]; ok {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *memVideoRepo) NextOrder(_ context.Context, chapterID string) (int, error) {
	max := 0
	for _, v := range r.store.videos {
		if v.ChapterID == chapterID && v.Order > max {
			max = v.Order
		}
	}
	return max + 1, nil
}

func (r *memVideoRepo) Update(_ context.Context, video *domain.Video) error {
	if _, ok := r.store.videos[video.ID]; !ok {
		return errprocess.NotFound("video not found")
	}
	v := *video
	r.store.videos[video.ID] = &v
	return nil
}

func (r *memVideoRepo) Delete(_ context.Context, id string) error {
	delete(r.store.videos, id)
	return nil
}

func (r *memVideoRepo) DeleteByChapter(_ context.Context, chapterID string) error {
	for id, v := range r.store.videos {
		if v.ChapterID == chapterID {
			delete(r.store.videos, id)
		}
	}
	return nil
}
