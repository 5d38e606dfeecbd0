package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"course_content_service/internal/content/domain"
	"course_content_service/pkg/database"
	errprocess "course_content_service/pkg/err"
	"course_content_service/pkg/logger"
	testtool "course_content_service/pkg/test_tool"
)

// spins up a throwaway mongo and drives the three repositories against
// it; skipped when no container runtime is available
func TestRepositories_Mongo(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	logger.SetNewNop()
	ctx := context.Background()

	mongoContainer, host, port, err := testtool.SetupContainer(ctx, testcontainers.ContainerRequest{
		Image:        "mongo:6",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	})
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	defer mongoContainer.Terminate(ctx)

	mongoDB, err := database.NewMongoDB(ctx, database.Connection{
		ConnectStr:    fmt.Sprintf("mongodb://%s:%s", host, port),
		RetryCount:    3,
		RetryInterval: 2 * time.Second,
	}, "content_test")
	assert.NoError(t, err)
	defer mongoDB.Close(ctx)

	courses := NewCourseRepository(mongoDB.Database)
	chapters := NewChapterRepository(mongoDB.Database)
	videos := NewVideoRepository(mongoDB.Database)

	course := &domain.Course{Name: "Go", Description: "basics", CreatedBy: "user-1"}
	assert.NoError(t, courses.Create(ctx, course))
	assert.NotEmpty(t, course.ID)
	assert.Equal(t, domain.CourseDraft, course.Status)
	assert.Equal(t, domain.ZeroClock, course.TotalDuration)

	t.Run("round trip and not-found mapping", func(t *testing.T) {
		got, err := courses.GetByID(ctx, course.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Go", got.Name)

		_, err = courses.GetByID(ctx, "does-not-exist")
		assert.Equal(t, errprocess.KindNotFound, errprocess.KindOf(err))
	})

	t.Run("chapter order allocation", func(t *testing.T) {
		next, err := chapters.NextOrder(ctx, course.ID)
		assert.NoError(t, err)
		assert.Equal(t, 1, next)

		ch1 := &domain.Chapter{Name: "intro", Description: "d", CourseID: course.ID, Order: next}
		assert.NoError(t, chapters.Create(ctx, ch1))
		assert.NoError(t, courses.AppendChapter(ctx, course.ID, ch1.ID))

		next, err = chapters.NextOrder(ctx, course.ID)
		assert.NoError(t, err)
		assert.Equal(t, 2, next)

		ch2 := &domain.Chapter{Name: "next", Description: "d", CourseID: course.ID, Order: next}
		assert.NoError(t, chapters.Create(ctx, ch2))

		// deleting the highest chapter leaves a gap that is not reused
		assert.NoError(t, chapters.Delete(ctx, ch2.ID))
		next, err = chapters.NextOrder(ctx, course.ID)
		assert.NoError(t, err)
		assert.Equal(t, 2, next)
	})

	t.Run("video listing respects order and active filter", func(t *testing.T) {
		chs, err := chapters.FindByCourse(ctx, course.ID)
		assert.NoError(t, err)
		assert.Len(t, chs, 1)
		chID := chs[0].ID

		v1 := &domain.Video{Title: "ep2", Description: "d", VideoURL: "u", ChapterID: chID, Order: 2, Duration: "4:30", IsActive: true}
		v2 := &domain.Video{Title: "ep1", Description: "d", VideoURL: "u", ChapterID: chID, Order: 1, Duration: "10:30", IsActive: true}
		v3 := &domain.Video{Title: "hidden", Description: "d", VideoURL: "u", ChapterID: chID, Order: 3, IsActive: false}
		for _, v := range []*domain.Video{v1, v2, v3} {
			assert.NoError(t, videos.Create(ctx, v))
			assert.NoError(t, chapters.AppendVideo(ctx, chID, v.ID))
		}

		all, err := videos.FindByChapter(ctx, chID, false)
		assert.NoError(t, err)
		assert.Len(t, all, 3)
		assert.Equal(t, "ep1", all[0].Title)
		assert.Equal(t, "ep2", all[1].Title)

		active, err := videos.FindByChapter(ctx, chID, true)
		assert.NoError(t, err)
		assert.Len(t, active, 2)
	})

	t.Run("detach and cascade deletes", func(t *testing.T) {
		chs, _ := chapters.FindByCourse(ctx, course.ID)
		chID := chs[0].ID

		assert.NoError(t, videos.DeleteByChapter(ctx, chID))
		left, err := videos.FindByChapter(ctx, chID, false)
		assert.NoError(t, err)
		assert.Empty(t, left)

		assert.NoError(t, chapters.DeleteByCourse(ctx, course.ID))
		assert.NoError(t, courses.Delete(ctx, course.ID))
		_, err = courses.GetByID(ctx, course.ID)
		assert.Equal(t, errprocess.KindNotFound, errprocess.KindOf(err))
	})
}
