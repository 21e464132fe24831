package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pharma-inventory/internal/api/dto"
	"github.com/spec-kit/pharma-inventory/internal/auth"
	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/service"
	apperrors "github.com/spec-kit/pharma-inventory/pkg/util"
)

// UsersHandler exposes account management endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs the handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Create handles POST /users. Route-guarded to admins.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("username, email, password required", nil)
	}
	role := domain.UserRole(req.Role)
	if !role.Valid() {
		return apperrors.NewValidationError("unknown role", fiber.Map{"role": req.Role})
	}

	user, err := h.users.CreateUser(c.Context(), service.UserDraft{
		FacilityID: req.FacilityID,
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		Role:       role,
	})
	if err != nil {
		return err
	}
	return created(c, dto.NewUserResponse(user))
}

// Get handles GET /users/:username. Any authenticated user may look up
// accounts.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	user, err := h.users.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// List handles GET /users?skip=&limit=.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	skip, limit := pagination(c)
	users, err := h.users.List(c.Context(), skip, limit)
	if err != nil {
		return err
	}
	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}
	return c.JSON(fiber.Map{"data": responses})
}

// Update handles PUT /users/:id. Admins may update anyone; users may update
// their own account, but only admins may change roles.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	principal, _ := auth.PrincipalFromContext(c)
	if !auth.IsSelfOrAdmin(principal, id) {
		return apperrors.NewForbidden("not allowed to update this user")
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Role != nil {
		if !auth.IsAdmin(principal) {
			return apperrors.NewForbidden("only admins may change roles")
		}
		if !domain.UserRole(*req.Role).Valid() {
			return apperrors.NewValidationError("unknown role", fiber.Map{"role": *req.Role})
		}
	}

	user, err := h.users.Update(c.Context(), id, req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// UpdatePassword handles PUT /users/:id/password for self or admin.
func (h *UsersHandler) UpdatePassword(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	principal, _ := auth.PrincipalFromContext(c)
	if !auth.IsSelfOrAdmin(principal, id) {
		return apperrors.NewForbidden("not allowed to change this user's password")
	}

	var req dto.PasswordUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Password == "" {
		return apperrors.NewValidationError("password required", nil)
	}

	user, err := h.users.UpdatePassword(c.Context(), id, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Activate handles PUT /users/:id/activate. Route-guarded to admins.
func (h *UsersHandler) Activate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	user, err := h.users.Activate(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// Deactivate handles PUT /users/:id/deactivate and DELETE /users/:id.
// Accounts are deactivated, never removed. Route-guarded to admins.
func (h *UsersHandler) Deactivate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	user, err := h.users.Deactivate(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}
