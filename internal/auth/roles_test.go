package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/pharma-inventory/internal/domain"
)

func TestIsAdmin(t *testing.T) {
	t.Parallel()

	admin := &Principal{User: &domain.User{ID: uuid.New(), Role: domain.RoleAdmin}}
	staff := &Principal{User: &domain.User{ID: uuid.New(), Role: domain.RoleFacilityStaff}}

	assert.True(t, IsAdmin(admin))
	assert.False(t, IsAdmin(staff))
	assert.False(t, IsAdmin(nil))
}

func TestIsSelfOrAdmin(t *testing.T) {
	t.Parallel()

	selfID := uuid.New()
	otherID := uuid.New()
	admin := &Principal{User: &domain.User{ID: uuid.New(), Role: domain.RoleAdmin}}
	staff := &Principal{User: &domain.User{ID: selfID, Role: domain.RoleFacilityStaff}}

	assert.True(t, IsSelfOrAdmin(admin, otherID), "admin may act on anyone")
	assert.True(t, IsSelfOrAdmin(staff, selfID), "a user may act on themselves")
	assert.False(t, IsSelfOrAdmin(staff, otherID), "non-admin may not act on others")
	assert.False(t, IsSelfOrAdmin(nil, otherID))
}
