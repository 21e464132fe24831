package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/pharma-inventory/internal/auth"
	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/repository"
	apperrors "github.com/spec-kit/pharma-inventory/pkg/util"
)

// memUserRepo is an in-memory UserRepository for service tests.
type memUserRepo struct {
	users  map[uuid.UUID]*domain.User
	hasher *auth.PasswordHasher
}

func newMemUserRepo(hasher *auth.PasswordHasher) *memUserRepo {
	return &memUserRepo{users: map[uuid.UUID]*domain.User{}, hasher: hasher}
}

func (m *memUserRepo) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.NewNotFound("user", nil)
	}
	copied := *user
	return &copied, nil
}

func (m *memUserRepo) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(m.users))
	for _, user := range m.users {
		copied := *user
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	for _, existing := range m.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, apperrors.NewConflict("user already exists", nil)
		}
	}
	copied := *user
	m.users[user.ID] = &copied
	return user, nil
}

func (m *memUserRepo) Update(ctx context.Context, user *domain.User, patch repository.Patch) (*domain.User, error) {
	stored, ok := m.users[user.ID]
	if !ok {
		return nil, apperrors.NewNotFound("user", nil)
	}
	for column, value := range patch {
		switch column {
		case "username":
			stored.Username = value.(string)
		case "email":
			stored.Email = value.(string)
		case "role":
			stored.Role = domain.UserRole(value.(string))
		case "password_hash":
			stored.PasswordHash = value.(string)
		case "active":
			stored.Active = value.(bool)
		}
	}
	copied := *stored
	return &copied, nil
}

func (m *memUserRepo) Remove(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.NewNotFound("user", nil)
	}
	delete(m.users, id)
	return user, nil
}

func (m *memUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.NewNotFound("user", nil)
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.NewNotFound("user", nil)
}

func (m *memUserRepo) SetPassword(ctx context.Context, user *domain.User, plaintext string) (*domain.User, error) {
	hash, err := m.hasher.Hash(plaintext)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return m.Update(ctx, user, repository.Patch{"password_hash": hash})
}

func (m *memUserRepo) SetActive(ctx context.Context, user *domain.User, active bool) (*domain.User, error) {
	return m.Update(ctx, user, repository.Patch{"active": active})
}

type recordingRevoker struct {
	subjects []string
}

func (r *recordingRevoker) Revoke(ctx context.Context, subject string) error {
	r.subjects = append(r.subjects, subject)
	return nil
}

func newTestUserService(t *testing.T) (*UserService, *memUserRepo, *recordingRevoker) {
	t.Helper()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	repo := newMemUserRepo(hasher)
	revoker := &recordingRevoker{}
	return NewUserService(repo, hasher, revoker), repo, revoker
}

func aliceDraft() UserDraft {
	return UserDraft{
		FacilityID: uuid.New(),
		Username:   "alice",
		Email:      "alice@example.com",
		Password:   "s3cret-pass",
		Role:       domain.RoleFacilityStaff,
	}
}

func TestCreateUser(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestUserService(t)

	user, err := svc.CreateUser(context.Background(), aliceDraft())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.True(t, user.Active)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestUserService(t)

	_, err := svc.CreateUser(context.Background(), aliceDraft())
	require.NoError(t, err)

	dup := aliceDraft()
	dup.Email = "other@example.com"
	_, err = svc.CreateUser(context.Background(), dup)
	assert.True(t, apperrors.IsConflict(err))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestUserService(t)

	_, err := svc.CreateUser(context.Background(), aliceDraft())
	require.NoError(t, err)

	dup := aliceDraft()
	dup.Username = "alice2"
	_, err = svc.CreateUser(context.Background(), dup)
	assert.True(t, apperrors.IsConflict(err))
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestUserService(t)

	created, err := svc.CreateUser(context.Background(), aliceDraft())
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), "alice", "s3cret-pass")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, created.ID, user.ID)
}

func TestAuthenticate_Failures(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestUserService(t)

	created, err := svc.CreateUser(context.Background(), aliceDraft())
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), "nobody", "s3cret-pass")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = svc.Authenticate(context.Background(), "alice", "wrong-pass")
	require.NoError(t, err)
	assert.Nil(t, user)

	_, err = svc.Deactivate(context.Background(), created.ID)
	require.NoError(t, err)

	user, err = svc.Authenticate(context.Background(), "alice", "s3cret-pass")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestUserService(t)

	created, err := svc.CreateUser(context.Background(), aliceDraft())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, repository.Patch{"email": "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)

	_, err = svc.Update(context.Background(), uuid.New(), repository.Patch{"email": "x@example.com"})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdatePassword(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestUserService(t)

	created, err := svc.CreateUser(context.Background(), aliceDraft())
	require.NoError(t, err)

	_, err = svc.UpdatePassword(context.Background(), created.ID, "fresh-pass")
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), "alice", "fresh-pass")
	require.NoError(t, err)
	assert.NotNil(t, user)

	user, err = svc.Authenticate(context.Background(), "alice", "s3cret-pass")
	require.NoError(t, err)
	assert.Nil(t, user)

	_, err = svc.UpdatePassword(context.Background(), uuid.New(), "whatever")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeactivateRevokesTokens(t *testing.T) {
	t.Parallel()

	svc, _, revoker := newTestUserService(t)

	created, err := svc.CreateUser(context.Background(), aliceDraft())
	require.NoError(t, err)

	deactivated, err := svc.Deactivate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.Active)
	assert.Equal(t, []string{"alice"}, revoker.subjects)

	reactivated, err := svc.Activate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, reactivated.Active)
}
