package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/repository"
	apperrors "github.com/spec-kit/pharma-inventory/pkg/util"
)

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (f *fakeUserRepo) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeUserRepo) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	return []*domain.User{f.user}, f.err
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return user, f.err
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User, patch repository.Patch) (*domain.User, error) {
	return user, f.err
}

func (f *fakeUserRepo) Remove(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserRepo) SetPassword(ctx context.Context, user *domain.User, plaintext string) (*domain.User, error) {
	return user, f.err
}

func (f *fakeUserRepo) SetActive(ctx context.Context, user *domain.User, active bool) (*domain.User, error) {
	return user, f.err
}

type fakeRevocation struct {
	revoked bool
}

func (f *fakeRevocation) IsRevoked(ctx context.Context, subject string) (bool, error) {
	return f.revoked, nil
}

func newTestApp(mw *Middleware) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": domainErr.Code})
		},
	})
	app.Get("/protected", mw.Handle, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewInternalError(nil)
		}
		return c.JSON(fiber.Map{"username": principal.User.Username})
	})
	return app
}

func protectedRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	repo := &fakeUserRepo{user: &domain.User{ID: uuid.New(), Username: "alice", Role: domain.RoleAdmin, Active: true}}
	app := newTestApp(NewMiddleware(tm, repo, nil))

	token, _, err := tm.Issue("alice")
	require.NoError(t, err)

	resp, err := app.Test(protectedRequest(token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddleware_MissingAndMalformedHeader(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	repo := &fakeUserRepo{user: &domain.User{Username: "alice", Active: true}}
	app := newTestApp(NewMiddleware(tm, repo, nil))

	resp, err := app.Test(protectedRequest(""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	repo := &fakeUserRepo{user: &domain.User{Username: "alice", Active: true}}
	app := newTestApp(NewMiddleware(tm, repo, nil))

	token, _, err := tm.IssueWithTTL("alice", -1*time.Second)
	require.NoError(t, err)

	resp, err := app.Test(protectedRequest(token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_UnknownSubject(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	repo := &fakeUserRepo{err: apperrors.NewNotFound("user", nil)}
	app := newTestApp(NewMiddleware(tm, repo, nil))

	token, _, err := tm.Issue("ghost")
	require.NoError(t, err)

	resp, err := app.Test(protectedRequest(token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_InactiveUser(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	repo := &fakeUserRepo{user: &domain.User{Username: "alice", Active: false}}
	app := newTestApp(NewMiddleware(tm, repo, nil))

	token, _, err := tm.Issue("alice")
	require.NoError(t, err)

	resp, err := app.Test(protectedRequest(token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_RevokedSubject(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	repo := &fakeUserRepo{user: &domain.User{Username: "alice", Active: true}}
	app := newTestApp(NewMiddleware(tm, repo, &fakeRevocation{revoked: true}))

	token, _, err := tm.Issue("alice")
	require.NoError(t, err)

	resp, err := app.Test(protectedRequest(token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
