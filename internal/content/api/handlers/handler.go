package handlers

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"course_content_service/internal/content/domain"
	errprocess "course_content_service/pkg/err"
	"course_content_service/pkg/logger"
	"course_content_service/pkg/middlewares"
	token "course_content_service/pkg/token"
)

// ConnectCheck check api connect start
// @Summary Check content service status
// @Description Returns a simple confirmation message
// @Tags Shared
// @Success 200 {string} string "content service start!"
// @Router / [get]
func ConnectCheck(c *fiber.Ctx) error {
	return c.SendString("content service start!")
}

// DebugLogFlag toggle debug log flag
// @Summary Toggle Debug Log Flag
// @Description Enable or disable debug logging for a service
// @Tags Shared
// @Param service query string true "Service name"
// @Param status query bool true "Debug status"
// @Success 200 {string} string "Service debug mode updated"
// @Failure 400 {string} string "Invalid status value"
// @Router /debug [post]
func DebugLogFlag(c *fiber.Ctx) error {
	query, err := url.ParseQuery(string(c.Context().QueryArgs().QueryString()))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	service := query.Get("service")
	statusStr := query.Get("status")
	logger.Log.Info("debug", zap.String("status", statusStr))
	status, err := strconv.ParseBool(statusStr)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	logger.Log.SetDebugMode(status)
	return c.SendString(fmt.Sprintf("service[%s]: debug mode is : %t", service, status))
}

// fail maps an application error onto the matching HTTP status.
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

// principalFrom rebuilds the authenticated principal stored in the
// request locals by the JWT middleware.
func principalFrom(c *fiber.Ctx) (domain.Principal, bool) {
	id, ok := c.Locals(middlewares.TokenUserID).(string)
	if !ok || id == "" {
		return domain.Principal{}, false
	}
	role, ok := c.Locals(middlewares.TokenRole).(token.RoleType)
	if !ok {
		return domain.Principal{}, false
	}
	return domain.Principal{ID: id, Role: role}, true
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing principal"})
}
