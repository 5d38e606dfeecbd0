package app

import (
	"context"

	"go.uber.org/zap"

	"course_content_service/internal/content/domain"
	"course_content_service/internal/content/repository"
	"course_content_service/pkg/logger"
)

// Aggregator recomputes the derived chapter and course durations after
// a mutation. Every failure here is logged and swallowed: a duration
// that could not be refreshed goes stale, it never fails the mutation
// that triggered the refresh.
type Aggregator struct {
	courses  repository.CourseRepository
	chapters repository.ChapterRepository
	videos   repository.VideoRepository
}

// NewAggregator create an Aggregator
func NewAggregator(courses repository.CourseRepository, chapters repository.ChapterRepository, videos repository.VideoRepository) *Aggregator {
	return &Aggregator{
		courses:  courses,
		chapters: chapters,
		videos:   videos,
	}
}

// RecomputeChapterDuration sums the durations of every video in the
// chapter, active or not, and stores the result as "M:SS". A video
// duration that does not parse counts as zero seconds.
func (a *Aggregator) RecomputeChapterDuration(ctx context.Context, chapterID string) {
	videos, err := a.videos.FindByChapter(ctx, chapterID, false)
	if err != nil {
		logger.Log.Warn("chapter duration refresh skipped",
			zap.String("chapter_id", chapterID),
			zap.Error(err))
		return
	}

	total := 0
	for _, v := range videos {
		sec, err := domain.ParseClock(v.Duration)
		if err != nil {
			logger.Log.Warn("video duration unreadable, counted as zero",
				zap.String("video_id", v.ID),
				zap.String("duration", v.Duration))
			continue
		}
		total += sec
	}

	if err := a.chapters.SetDuration(ctx, chapterID, domain.FormatClock(total)); err != nil {
		logger.Log.Warn("chapter duration not stored",
			zap.String("chapter_id", chapterID),
			zap.Error(err))
	}
}

// RecomputeCourseDuration sums the durations of every chapter in the
// course and stores the result, switching to "H:MM:SS" once the total
// reaches an hour.
func (a *Aggregator) RecomputeCourseDuration(ctx context.Context, courseID string) {
	chapters, err := a.chapters.FindByCourse(ctx, courseID)
	if err != nil {
		logger.Log.Warn("course duration refresh skipped",
			zap.String("course_id", courseID),
			zap.Error(err))
		return
	}

	total := 0
	for _, ch := range chapters {
		sec, err := domain.ParseClock(ch.Duration)
		if err != nil {
			logger.Log.Warn("chapter duration unreadable, counted as zero",
				zap.String("chapter_id", ch.ID),
				zap.String("duration", ch.Duration))
			continue
		}
		total += sec
	}

	if err := a.courses.SetTotalDuration(ctx, courseID, domain.FormatClockHours(total)); err != nil {
		logger.Log.Warn("course duration not stored",
			zap.String("course_id", courseID),
			zap.Error(err))
	}
}

// RecomputeFromChapter refreshes the chapter's duration and then the
// owning course's total, in that order, so the course sum sees the
// fresh chapter value.
func (a *Aggregator) RecomputeFromChapter(ctx context.Context, chapterID, courseID string) {
	a.RecomputeChapterDuration(ctx, chapterID)
	a.RecomputeCourseDuration(ctx, courseID)
}
