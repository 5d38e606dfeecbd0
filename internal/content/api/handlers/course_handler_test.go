package handlers

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"course_content_service/internal/content/domain"
	errprocess "course_content_service/pkg/err"
	"course_content_service/pkg/logger"
	"course_content_service/pkg/middlewares"
	token "course_content_service/pkg/token"
)

// stubCourseUsecase routes every call through replaceable funcs.
type stubCourseUsecase struct {
	getCourse func(ctx context.Context, id string) (*domain.CourseDetail, error)
}

func (s *stubCourseUsecase) CreateCourse(ctx context.Context, principal domain.Principal, req *domain.CreateCourseReq) (*domain.Course, error) {
	return &domain.Course{ID: "course-1", Name: req.Name, CreatedBy: principal.ID}, nil
}

func (s *stubCourseUsecase) GetCourse(ctx context.Context, principal domain.Principal, id string) (*domain.CourseDetail, error) {
	return s.getCourse(ctx, id)
}

func (s *stubCourseUsecase) ListCourses(ctx context.Context, principal domain.Principal, q *domain.CourseQuery) (*domain.CourseListRes, error) {
	return &domain.CourseListRes{Courses: []domain.Course{}, Page: q.Page, Limit: q.Limit}, nil
}

func (s *stubCourseUsecase) UpdateCourse(ctx context.Context, principal domain.Principal, id string, req *domain.UpdateCourseReq) (*domain.Course, error) {
	return nil, errprocess.Forbidden("access denied")
}

func (s *stubCourseUsecase) PublishCourse(ctx context.Context, principal domain.Principal, id string, publish bool) (*domain.Course, error) {
	return &domain.Course{ID: id, Status: domain.CoursePublished}, nil
}

func (s *stubCourseUsecase) DeleteCourse(ctx context.Context, principal domain.Principal, id string) error {
	return nil
}

func TestCourseHandler_GetCourse(t *testing.T) {
	logger.SetNewNop()

	stub := &stubCourseUsecase{}
	handler := NewCourseHandler(stub)

	app := fiber.New()
	// stand-in for the JWT middleware's locals
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middlewares.TokenUserID, "user-1")
		c.Locals(middlewares.TokenRole, token.RoleInstructor)
		return c.Next()
	})
	app.Get("/api/courses/:id", handler.GetCourse)

	t.Run("found", func(t *testing.T) {
		stub.getCourse = func(_ context.Context, id string) (*domain.CourseDetail, error) {
			return &domain.CourseDetail{Course: domain.Course{ID: id, Name: "go basics"}}, nil
		}

		resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/course-1", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing course maps to 404", func(t *testing.T) {
		stub.getCourse = func(_ context.Context, id string) (*domain.CourseDetail, error) {
			return nil, errprocess.NotFound("course not found")
		}

		resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/missing", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestCourseHandler_CreateCourseWithoutPrincipal(t *testing.T) {
	logger.SetNewNop()

	handler := NewCourseHandler(&stubCourseUsecase{})

	app := fiber.New()
	app.Post("/api/courses", handler.CreateCourse)

	// no JWT middleware ran, so the locals carry no principal
	resp, err := app.Test(httptest.NewRequest("POST", "/api/courses", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
