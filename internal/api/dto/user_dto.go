package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/repository"
)

// UserCreateRequest is the draft payload for a new account.
type UserCreateRequest struct {
	FacilityID uuid.UUID `json:"facility_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Password   string    `json:"password"`
	Role       string    `json:"role"`
}

// UserUpdateRequest is a partial update; absent fields stay untouched.
type UserUpdateRequest struct {
	FacilityID *uuid.UUID `json:"facility_id"`
	Username   *string    `json:"username"`
	Email      *string    `json:"email"`
	Role       *string    `json:"role"`
}

// Patch converts the present fields into a column patch.
func (r UserUpdateRequest) Patch() repository.Patch {
	patch := repository.Patch{}
	if r.FacilityID != nil {
		patch["facility_id"] = *r.FacilityID
	}
	if r.Username != nil {
		patch["username"] = *r.Username
	}
	if r.Email != nil {
		patch["email"] = *r.Email
	}
	if r.Role != nil {
		patch["role"] = domain.UserRole(*r.Role)
	}
	return patch
}

// PasswordUpdateRequest carries a replacement password.
type PasswordUpdateRequest struct {
	Password string `json:"password"`
}

// UserResponse is the client-visible view of an account. It never carries
// the password hash.
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	FacilityID uuid.UUID `json:"facility_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewUserResponse maps a domain user to its response view.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		FacilityID: u.FacilityID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       string(u.Role),
		Active:     u.Active,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
