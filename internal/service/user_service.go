package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/pharma-inventory/internal/auth"
	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/repository"
	apperrors "github.com/spec-kit/pharma-inventory/pkg/util"
)

// TokenRevoker invalidates outstanding tokens for a subject. Deactivation
// uses it so a suspended account cannot keep riding an already-issued token.
type TokenRevoker interface {
	Revoke(ctx context.Context, subject string) error
}

// UserDraft is the caller-supplied payload for creating an account.
type UserDraft struct {
	FacilityID uuid.UUID
	Username   string
	Email      string
	Password   string
	Role       domain.UserRole
}

// UserService applies account business rules over the user repository.
type UserService struct {
	users   repository.UserRepository
	hasher  *auth.PasswordHasher
	revoker TokenRevoker
}

// NewUserService builds the service. revoker may be nil when no revocation
// backend is configured.
func NewUserService(users repository.UserRepository, hasher *auth.PasswordHasher, revoker TokenRevoker) *UserService {
	return &UserService{users: users, hasher: hasher, revoker: revoker}
}

// CreateUser creates an account after checking username and email
// uniqueness. The pre-checks give better error messages; the storage
// constraint remains the authoritative guard under concurrent creates, so
// the insert itself may still surface Conflict.
func (s *UserService) CreateUser(ctx context.Context, draft UserDraft) (*domain.User, error) {
	if _, err := s.users.FindByUsername(ctx, draft.Username); err == nil {
		return nil, apperrors.NewConflict("a user with this username already exists", nil)
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, draft.Email); err == nil {
		return nil, apperrors.NewConflict("a user with this email already exists", nil)
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	hash, err := s.hasher.Hash(draft.Password)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		FacilityID:   draft.FacilityID,
		Username:     draft.Username,
		Email:        draft.Email,
		PasswordHash: hash,
		Role:         draft.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.users.Create(ctx, user)
}

// Authenticate returns the user when the credentials match and the account
// is active, and (nil, nil) otherwise. An unknown username, a wrong password
// and a deactivated account are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, nil
	}
	if !user.Active {
		return nil, nil
	}
	return user, nil
}

// Get fetches a user by id.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.Get(ctx, id)
}

// GetByUsername fetches a user by username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.FindByUsername(ctx, username)
}

// List returns users in primary-key order within the pagination window.
func (s *UserService) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	return s.users.List(ctx, skip, limit)
}

// Update applies a partial update to the user's profile fields.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, patch repository.Patch) (*domain.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(patch) == 0 {
		return user, nil
	}
	patch["updated_at"] = time.Now().UTC()
	return s.users.Update(ctx, user, patch)
}

// UpdatePassword replaces the user's password with a fresh hash.
func (s *UserService) UpdatePassword(ctx context.Context, id uuid.UUID, newPassword string) (*domain.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.users.SetPassword(ctx, user, newPassword)
}

// Activate re-enables a deactivated account.
func (s *UserService) Activate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.setActive(ctx, id, true)
}

// Deactivate suspends the account and revokes its outstanding tokens.
// Accounts are never physically deleted; this is the deletion operation.
func (s *UserService) Deactivate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.setActive(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if s.revoker != nil {
		if err := s.revoker.Revoke(ctx, user.Username); err != nil {
			return nil, apperrors.NewInternalError(err)
		}
	}
	return user, nil
}

func (s *UserService) setActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.users.SetActive(ctx, user, active)
}
