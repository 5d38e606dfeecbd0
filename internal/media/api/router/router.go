package router

import (
	"github.com/gofiber/fiber/v2"

	"course_content_service/internal/media/api/handlers"
	"course_content_service/pkg/middlewares"
)

// RegisterRoutes register media routes; uploads require auth
func RegisterRoutes(app *fiber.App, uploadHandler *handlers.UploadHandler) {
	media := app.Group("/api", middlewares.JWTMiddleware())
	media.Post("/upload", uploadHandler.UploadAsset)
	media.Get("/assets", uploadHandler.AssetURL)
}
