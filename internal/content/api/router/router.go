package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"course_content_service/internal/content/api/handlers"
	"course_content_service/pkg/middlewares"
)

// RegisterRoutes register content routes
// @title Course Content Service API
// @version 1.0
// @description API documentation for Course Content Service
// @host localhost:8085
// @BasePath /
func RegisterRoutes(app *fiber.App,
	courseHandler *handlers.CourseHandler,
	chapterHandler *handlers.ChapterHandler,
	videoHandler *handlers.VideoHandler,
) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/", handlers.ConnectCheck)
	app.Post("/debug", handlers.DebugLogFlag)

	api := app.Group("/api", middlewares.JWTMiddleware())

	api.Get("/courses", courseHandler.ListCourses)
	api.Get("/courses/:id", courseHandler.GetCourse)
	api.Get("/courses/:courseId/chapters", chapterHandler.ListChapters)
	api.Get("/chapters/:id", chapterHandler.GetChapter)
	api.Get("/chapters/:chapterId/videos", videoHandler.ListVideos)
	api.Get("/videos/:id", videoHandler.GetVideo)

	api.Post("/courses", courseHandler.CreateCourse)
	api.Put("/courses/:id", courseHandler.UpdateCourse)
	api.Patch("/courses/:id/publish", courseHandler.PublishCourse)
	api.Delete("/courses/:id", courseHandler.DeleteCourse)

	api.Post("/courses/:courseId/chapters", chapterHandler.CreateChapter)
	api.Put("/chapters/:id", chapterHandler.UpdateChapter)
	api.Delete("/chapters/:id", chapterHandler.DeleteChapter)

	api.Post("/chapters/:chapterId/videos", videoHandler.CreateVideo)
	api.Put("/videos/:id", videoHandler.UpdateVideo)
	api.Delete("/videos/:id", videoHandler.DeleteVideo)
}
