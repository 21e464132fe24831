package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/repository"
	apperrors "github.com/spec-kit/pharma-inventory/pkg/util"
)

const principalKey = "auth_principal"

// MsgIncorrectCredentials is the single message every 401 carries, so the
// response never reveals whether a username exists or why a token failed.
const MsgIncorrectCredentials = "incorrect username or password"

// Principal is the resolved caller for one request. It is built once per
// request from the bearer token and discarded afterwards.
type Principal struct {
	User *domain.User
}

// RevocationChecker reports whether a subject's tokens have been revoked.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, subject string) (bool, error)
}

// Middleware validates bearer tokens and loads the calling user.
type Middleware struct {
	tokens  *TokenManager
	users   repository.UserRepository
	revoked RevocationChecker
}

// NewMiddleware constructs the authorization guard. revoked may be nil when
// no revocation backend is configured.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository, revoked RevocationChecker) *Middleware {
	return &Middleware{tokens: tokens, users: users, revoked: revoked}
}

// Handle enforces authentication for protected routes. A rejected request
// short-circuits before any business logic runs.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized(MsgIncorrectCredentials)
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized(MsgIncorrectCredentials)
	}

	subject, err := m.tokens.Verify(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized(MsgIncorrectCredentials)
	}

	if m.revoked != nil {
		revoked, err := m.revoked.IsRevoked(c.Context(), subject)
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		if revoked {
			return apperrors.NewUnauthorized(MsgIncorrectCredentials)
		}
	}

	user, err := m.users.FindByUsername(c.Context(), subject)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewUnauthorized(MsgIncorrectCredentials)
		}
		return apperrors.MapError(err)
	}
	if !user.Active {
		return apperrors.NewUnauthorized(MsgIncorrectCredentials)
	}

	c.Locals(principalKey, &Principal{User: user})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
