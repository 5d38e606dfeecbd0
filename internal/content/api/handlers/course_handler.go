package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"course_content_service/internal/content/app"
	"course_content_service/internal/content/domain"
	"course_content_service/pkg/logger"
)

// CourseHandler handles course HTTP requests
type CourseHandler struct {
	Usecase app.CourseUseCase
}

// NewCourseHandler create a CourseHandler
func NewCourseHandler(usecase app.CourseUseCase) *CourseHandler {
	return &CourseHandler{Usecase: usecase}
}

// CreateCourse create a course owned by the caller
// @Summary Create course
// @Description Creates a draft course owned by the authenticated user
// @Tags Courses
// @Accept json
// @Produce json
// @Param request body domain.CreateCourseReq true "course fields"
// @Success 201 {object} domain.Course
// @Failure 400 {object} string "invalid request"
// @Router /api/courses [post]
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req domain.CreateCourseReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	logger.Log.Debug("CreateCourse", zap.String("name", req.Name), zap.String("user", principal.ID))

	course, err := h.Usecase.CreateCourse(c.Context(), principal, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(course)
}

// GetCourse course detail with chapters and videos
// @Summary Get course
// @Description Returns the course with chapters and active videos in order; owner or admin only
// @Tags Courses
// @Produce json
// @Param id path string true "course id"
// @Success 200 {object} domain.CourseDetail
// @Failure 403 {object} string "access denied"
// @Failure 404 {object} string "course not found"
// @Router /api/courses/{id} [get]
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	detail, err := h.Usecase.GetCourse(c.Context(), principal, c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(detail)
}

// ListCourses paginated course list
// @Summary List courses
// @Description Lists the caller's courses (all courses for admins), optionally filtered by creator or status
// @Tags Courses
// @Produce json
// @Param created_by query string false "filter by creator id"
// @Param status query string false "filter by status (draft|published)"
// @Param page query int false "page number, 1-based"
// @Param limit query int false "page size, max 100"
// @Success 200 {object} domain.CourseListRes
// @Router /api/courses [get]
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	q := domain.CourseQuery{}
	if v := c.Query("created_by"); v != "" {
		q.CreatedBy = &v
	}
	if v := c.Query("status"); v != "" {
		status := domain.CourseStatus(v)
		q.Status = &status
	}
	q.Page, _ = strconv.ParseInt(c.Query("page", "1"), 10, 64)
	q.Limit, _ = strconv.ParseInt(c.Query("limit", "20"), 10, 64)

	res, err := h.Usecase.ListCourses(c.Context(), principal, &q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(res)
}

// UpdateCourse update course fields
// @Summary Update course
// @Description Updates name, description or thumbnail; owner or admin only
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path string true "course id"
// @Param request body domain.UpdateCourseReq true "fields to change"
// @Success 200 {object} domain.Course
// @Failure 403 {object} string "access denied"
// @Failure 404 {object} string "course not found"
// @Router /api/courses/{id} [put]
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req domain.UpdateCourseReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	course, err := h.Usecase.UpdateCourse(c.Context(), principal, c.Params("id"), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(course)
}

// PublishCourse toggle the course publish status
// @Summary Publish or unpublish course
// @Description Switches the course between draft and published
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path string true "course id"
// @Param publish query bool false "true to publish, false to revert to draft"
// @Success 200 {object} domain.Course
// @Failure 403 {object} string "access denied"
// @Router /api/courses/{id}/publish [patch]
func (h *CourseHandler) PublishCourse(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	publish := c.QueryBool("publish", true)
	course, err := h.Usecase.PublishCourse(c.Context(), principal, c.Params("id"), publish)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(course)
}

// DeleteCourse delete the course and everything under it
// @Summary Delete course
// @Description Deletes the course with its chapters and videos
// @Tags Courses
// @Produce json
// @Param id path string true "course id"
// @Success 200 {object} string "course deleted"
// @Failure 403 {object} string "access denied"
// @Failure 404 {object} string "course not found"
// @Router /api/courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.Usecase.DeleteCourse(c.Context(), principal, c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "course deleted"})
}
