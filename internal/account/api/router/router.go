package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"course_content_service/internal/account/api/handlers"
	"course_content_service/pkg/middlewares"
)

// RegisterRoutes register account routes
// @title Course Content Account API
// @version 1.0
// @description API documentation for the account service
// @host localhost:8086
// @BasePath /
func RegisterRoutes(app *fiber.App, userHandler *handlers.UserHandler) {
	app.Get("/swagger/*", swagger.HandlerDefault)

	accountRoutes := app.Group("/account")
	accountRoutes.Post("/register", userHandler.Register)
	accountRoutes.Post("/login", userHandler.Login)
	accountRoutes.Get("/find", userHandler.FindByEmail)

	accountRoutes.Use(middlewares.JWTMiddleware())
	accountRoutes.Post("/logout", userHandler.Logout)
	accountRoutes.Get("/session", userHandler.CheckSession)
}
