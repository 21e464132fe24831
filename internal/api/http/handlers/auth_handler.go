package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pharma-inventory/internal/api/dto"
	"github.com/spec-kit/pharma-inventory/internal/auth"
	"github.com/spec-kit/pharma-inventory/internal/service"
	apperrors "github.com/spec-kit/pharma-inventory/pkg/util"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	users  *service.UserService
	tokens *auth.TokenManager
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(users *service.UserService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// Login handles POST /login. Bad credentials always yield the same 401,
// whatever the underlying reason.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	user, err := h.users.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		return apperrors.MapError(err)
	}
	if user == nil {
		return apperrors.NewUnauthorized(auth.MsgIncorrectCredentials)
	}

	token, _, err := h.tokens.Issue(user.Username)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	return c.JSON(dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
