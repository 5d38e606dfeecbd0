package handlers

import (
	"github.com/gofiber/fiber/v2"

	"course_content_service/internal/content/app"
	"course_content_service/internal/content/domain"
)

// ChapterHandler handles chapter HTTP requests
type ChapterHandler struct {
	Usecase app.ChapterUseCase
}

// NewChapterHandler create a ChapterHandler
func NewChapterHandler(usecase app.ChapterUseCase) *ChapterHandler {
	return &ChapterHandler{Usecase: usecase}
}

// CreateChapter append a chapter to a course
// @Summary Create chapter
// @Description Creates a chapter at the next order position of the course
// @Tags Chapters
// @Accept json
// @Produce json
// @Param courseId path string true "course id"
// @Param request body domain.CreateChapterReq true "chapter fields"
// @Success 201 {object} domain.Chapter
// @Failure 403 {object} string "access denied"
// @Failure 404 {object} string "course not found"
// @Router /api/courses/{courseId}/chapters [post]
func (h *ChapterHandler) CreateChapter(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req domain.CreateChapterReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	chapter, err := h.Usecase.CreateChapter(c.Context(), principal, c.Params("courseId"), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(chapter)
}

// ListChapters chapters of a course in order
// @Summary List chapters
// @Description Returns the course's chapters sorted by order; owner or admin only
// @Tags Chapters
// @Produce json
// @Param courseId path string true "course id"
// @Success 200 {array} domain.Chapter
// @Failure 403 {object} string "access denied"
// @Failure 404 {object} string "course not found"
// @Router /api/courses/{courseId}/chapters [get]
func (h *ChapterHandler) ListChapters(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	chapters, err := h.Usecase.ListChapters(c.Context(), principal, c.Params("courseId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(chapters)
}

// GetChapter chapter detail with its videos
// @Summary Get chapter
// @Description Returns the chapter with all of its videos in order; owner or admin only
// @Tags Chapters
// @Produce json
// @Param id path string true "chapter id"
// @Success 200 {object} domain.ChapterDetail
// @Failure 403 {object} string "access denied"
// @Failure 404 {object} string "chapter not found"
// @Router /api/chapters/{id} [get]
func (h *ChapterHandler) GetChapter(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	detail, err := h.Usecase.GetChapter(c.Context(), principal, c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(detail)
}

// UpdateChapter update chapter fields
// @Summary Update chapter
// @Description Updates name or description; course owner or admin only
// @Tags Chapters
// @Accept json
// @Produce json
// @Param id path string true "chapter id"
// @Param request body domain.UpdateChapterReq true "fields to change"
// @Success 200 {object} domain.Chapter
// @Failure 403 {object} string "access denied"
// @Failure 404 {object} string "chapter not found"
// @Router /api/chapters/{id} [put]
func (h *ChapterHandler) UpdateChapter(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req domain.UpdateChapterReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	chapter, err := h.Usecase.UpdateChapter(c.Context(), principal, c.Params("id"), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(chapter)
}

// DeleteChapter delete the chapter and its videos
// @Summary Delete chapter
// @Description Deletes the chapter with its videos and refreshes the course total
// @Tags Chapters
// @Produce json
// @Param id path string true "chapter id"
// @Success 200 {object} string "chapter deleted"
// @Failure 403 {object} string "access denied"
// @Failure 404 {object} string "chapter not found"
// @Router /api/chapters/{id} [delete]
func (h *ChapterHandler) DeleteChapter(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.Usecase.DeleteChapter(c.Context(), principal, c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "chapter deleted"})
}
