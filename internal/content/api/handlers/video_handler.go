package handlers

import (
	"github.com/gofiber/fiber/v2"

	"course_content_service/internal/content/app"
	"course_content_service/internal/content/domain"
)

// VideoHandler handles video HTTP requests
type VideoHandler struct {
	Usecase app.VideoUseCase
}

// NewVideoHandler create a VideoHandler
func NewVideoHandler(usecase app.VideoUseCase) *VideoHandler {
	return &VideoHandler{Usecase: usecase}
}

// CreateVideo append a video to a chapter
// @Summary Create video
// @Description Creates a video at the next order position of the chapter
// @Tags Videos
// @Accept json
// @Produce json
// @Param chapterId path string true "chapter id"
// @Param request body domain.CreateVideoReq true "video fields"
// @Success 201 {object} domain.Video
// @Failure 403 {object} string "access denied"
// @Failure 404 {object} string "chapter not found"
// @Router /api/chapters/{chapterId}/videos [post]
func (h *VideoHandler) CreateVideo(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req domain.CreateVideoReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	video, err := h.Usecase.CreateVideo(c.Context(), principal, c.Params("chapterId"), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(video)
}

// ListVideos active videos of a chapter
// @Summary List videos
// @Description Returns the chapter's active videos sorted by order
// @Tags Videos
// @Produce json
// @Param chapterId path string true "chapter id"
// @Success 200 {array} domain.Video
// @Failure 403 {object} string "access denied"
// @Failure 404 {object} string "chapter not found"
// @Router /api/chapters/{chapterId}/videos [get]
func (h *VideoHandler) ListVideos(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	videos, err := h.Usecase.ListVideos(c.Context(), principal, c.Params("chapterId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(videos)
}

// GetVideo single video
// @Summary Get video
// @Tags Videos
// @Produce json
// @Param id path string true "video id"
// @Success 200 {object} domain.Video
// @Failure 403 {object} string "access denied"
// @Failure 404 {object} string "video not found"
// @Router /api/videos/{id} [get]
func (h *VideoHandler) GetVideo(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	video, err := h.Usecase.GetVideo(c.Context(), principal, c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(video)
}

// UpdateVideo update video fields
// @Summary Update video
// @Description Updates metadata, duration or active flag; course owner or admin only
// @Tags Videos
// @Accept json
// @Produce json
// @Param id path string true "video id"
// @Param request body domain.UpdateVideoReq true "fields to change"
// @Success 200 {object} domain.Video
// @Failure 403 {object} string "access denied"
// @Failure 404 {object} string "video not found"
// @Router /api/videos/{id} [put]
func (h *VideoHandler) UpdateVideo(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var req domain.UpdateVideoReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	video, err := h.Usecase.UpdateVideo(c.Context(), principal, c.Params("id"), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(video)
}

// DeleteVideo delete a video
// @Summary Delete video
// @Description Deletes the video and refreshes the derived durations
// @Tags Videos
// @Produce json
// @Param id path string true "video id"
// @Success 200 {object} string "video deleted"
// @Failure 403 {object} string "access denied"
// @Failure 404 {object} string "video not found"
// @Router /api/videos/{id} [delete]
func (h *VideoHandler) DeleteVideo(c *fiber.Ctx) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.Usecase.DeleteVideo(c.Context(), principal, c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "video deleted"})
}
