package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-mock-interview/internal/common"
	"alfredoptarigan/ai-mock-interview/internal/models"
	"alfredoptarigan/ai-mock-interview/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// HandleSignup handles POST /api/auth/signup
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req models.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return authFailure(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	resp, err := h.authService.Signup(c.UserContext(), req)
	if err != nil {
		return h.handleAuthError(c, err)
	}

	return c.JSON(resp)
}

// HandleLogin handles POST /api/auth/login
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return authFailure(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	resp, err := h.authService.Login(c.UserContext(), req)
	if err != nil {
		return h.handleAuthError(c, err)
	}

	return c.JSON(resp)
}

// HandleMe handles GET /api/auth/me
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	token, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return authFailure(c, fiber.StatusUnauthorized, "Missing bearer token")
	}

	user, err := h.authService.CurrentUser(c.UserContext(), strings.TrimSpace(token))
	if err != nil {
		return h.handleAuthError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

func (h *AuthHandler) handleAuthError(c *fiber.Ctx, err error) error {
	code := StatusFor(err)

	switch {
	case errors.Is(err, common.ErrEmailAlreadyRegistered):
		return authFailure(c, code, "Email already registered")
	case errors.Is(err, common.ErrInvalidCredentials):
		return authFailure(c, code, "Invalid email or password")
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrUserNotFound):
		return authFailure(c, code, "Invalid or expired token")
	case code == fiber.StatusInternalServerError:
		log.Printf("❌ %s %s failed: %v\n", c.Method(), c.Path(), err)
		return authFailure(c, code, "Internal server error")
	default:
		return authFailure(c, code, err.Error())
	}
}

func authFailure(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(models.AuthResponse{
		Success: false,
		Message: message,
	})
}
