package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"course_content_service/internal/media/app"
	"course_content_service/internal/media/domain"
	errprocess "course_content_service/pkg/err"
	"course_content_service/pkg/logger"
)

// UploadHandler handles asset upload HTTP requests
type UploadHandler struct {
	Usecase app.MediaUseCase
}

// NewUploadHandler create an UploadHandler
func NewUploadHandler(usecase app.MediaUseCase) *UploadHandler {
	return &UploadHandler{Usecase: usecase}
}

// UploadAsset accept a thumbnail or video file
// @Summary Upload asset
// @Description Stores the file in staging and queues its promotion
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "asset file"
// @Param kind formData string true "asset kind (thumbnail|video)"
// @Success 202 {object} domain.UploadAssetRes
// @Failure 400 {object} string "invalid request"
// @Router /api/upload [post]
func (h *UploadHandler) UploadAsset(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot read file"})
	}
	defer file.Close()

	logger.Log.Debug("UploadAsset",
		zap.String("file", fileHeader.Filename),
		zap.Int64("size", fileHeader.Size))

	res, err := h.Usecase.UploadAsset(c.Context(), domain.UploadAssetReq{
		FileName:    fileHeader.Filename,
		Kind:        domain.AssetKind(c.FormValue("kind")),
		ContentType: fileHeader.Header.Get("Content-Type"),
		File:        file,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(res)
}

// AssetURL presigned link for a stored object
// @Summary Get asset URL
// @Description Returns a short-lived presigned link for the object
// @Tags Media
// @Produce json
// @Param object query string true "object name"
// @Success 200 {object} string "presigned url"
// @Failure 400 {object} string "invalid request"
// @Router /api/assets [get]
func (h *UploadHandler) AssetURL(c *fiber.Ctx) error {
	url, err := h.Usecase.AssetURL(c.Context(), c.Query("object"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}

func fail(c *fiber.Ctx, err error) error {
	var status int
	switch errprocess.KindOf(err) {
	case errprocess.KindValidation:
		status = fiber.StatusBadRequest
	case errprocess.KindNotFound:
		status = fiber.StatusNotFound
	case errprocess.KindForbidden:
		status = fiber.StatusForbidden
	default:
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
