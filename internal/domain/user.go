package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole identifies the access level of an account.
type UserRole string

const (
	RoleAdmin         UserRole = "admin"
	RoleFacilityStaff UserRole = "facility_staff"
	RoleStateOfficial UserRole = "state_official"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleFacilityStaff, RoleStateOfficial:
		return true
	}
	return false
}

// User is the domain model for operator accounts. Accounts are never
// physically deleted; deletion is modeled as Active=false.
type User struct {
	ID           uuid.UUID
	FacilityID   uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         UserRole
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
