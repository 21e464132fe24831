package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/pharma-inventory/internal/domain"
	apperrors "github.com/spec-kit/pharma-inventory/pkg/util"
)

// IsAdmin reports whether the caller carries the admin role.
func IsAdmin(p *Principal) bool {
	return p != nil && p.User.IsAdmin()
}

// IsSelfOrAdmin reports whether the caller is an admin or is operating on
// their own account.
func IsSelfOrAdmin(p *Principal, targetID uuid.UUID) bool {
	if p == nil || p.User == nil {
		return false
	}
	return p.User.IsAdmin() || p.User.ID == targetID
}

// RequireAdmin rejects non-admin callers before the handler runs.
func RequireAdmin() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}

// RequireRole rejects callers whose role is not in the allowed set.
func RequireRole(allowed ...domain.UserRole) fiber.Handler {
	allowedSet := make(map[domain.UserRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewUnauthorized(MsgIncorrectCredentials)
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.User.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
