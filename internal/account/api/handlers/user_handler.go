package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"course_content_service/internal/account/app"
	"course_content_service/internal/account/domain"
	errprocess "course_content_service/pkg/err"
	"course_content_service/pkg/logger"
	"course_content_service/pkg/middlewares"
	token "course_content_service/pkg/token"
)

// UserHandler handles account HTTP requests
type UserHandler struct {
	Usecase app.UserUseCase
}

// NewUserHandler create a UserHandler
func NewUserHandler(usecase app.UserUseCase) *UserHandler {
	return &UserHandler{Usecase: usecase}
}

// Register create an account
// @Summary Register
// @Description Creates an instructor account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body object true "email and password"
// @Success 200 {object} string "register success"
// @Failure 400 {object} string "invalid request"
// @Router /account/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	logger.Log.Debug("Register request", zap.String("email", req.Email))

	if err := h.Usecase.Register(c.Context(), req.Email, req.Password, token.RoleInstructor); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "register success"})
}

// Login open a session
// @Summary Login
// @Description Verifies credentials and returns the session JWT
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body object true "email and password"
// @Success 200 {object} string "token"
// @Failure 401 {object} string "login failed"
// @Router /account/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	logger.Log.Debug("Login", zap.String("email", req.Email))

	t, err := h.Usecase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middlewares.CookieToken,
		Value:    t,
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"token": t, "message": "login success"})
}

// Logout close the caller's session
// @Summary Logout
// @Description Drops the session of the authenticated user
// @Tags Accounts
// @Produce json
// @Success 200 {object} string "logout success"
// @Failure 500 {object} string "server error"
// @Router /account/logout [post]
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	userID, ok := c.Locals(middlewares.TokenUserID).(string)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("c.Locals(%s) is nil", middlewares.TokenUserID)})
	}

	if err := h.Usecase.Logout(c.Context(), userID); err != nil {
		return fail(c, err)
	}

	c.ClearCookie(middlewares.CookieToken)
	return c.JSON(fiber.Map{"message": "logout success"})
}

// CheckSession report whether the caller's session is still alive
// @Summary Check session
// @Description Returns the session state and refreshes its activity window
// @Tags Accounts
// @Produce json
// @Success 200 {object} string "session state"
// @Router /account/session [get]
func (h *UserHandler) CheckSession(c *fiber.Ctx) error {
	userID, ok := c.Locals(middlewares.TokenUserID).(string)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("c.Locals(%s) is nil", middlewares.TokenUserID)})
	}

	expired, err := h.Usecase.CheckSessionTimeout(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"expired": expired})
}

// FindByEmail look up account info
// @Summary Find user
// @Description Finds a user by email
// @Tags Accounts
// @Produce json
// @Param email query string true "user email"
// @Success 200 {object} string "user info"
// @Failure 404 {object} string "user not found"
// @Router /account/find [get]
func (h *UserHandler) FindByEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email is required"})
	}

	user, err := h.Usecase.FindUser(c.Context(), &domain.UserQuery{Email: &email})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"user_id": user.UserID,
		"email":   user.Email,
		"role":    user.Role,
	})
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
