package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pharma-inventory/internal/domain"
)

// UserRepository specializes the generic repository with username/email
// lookups and password/activation mutations.
type UserRepository interface {
	Repository[domain.User]
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	SetPassword(ctx context.Context, user *domain.User, plaintext string) (*domain.User, error)
	SetActive(ctx context.Context, user *domain.User, active bool) (*domain.User, error)
}

// UserMapping maps domain.User onto the users table.
func UserMapping() Mapping[domain.User] {
	return Mapping[domain.User]{
		Table:    "users",
		Resource: "user",
		Columns:  []string{"facility_id", "username", "email", "password_hash", "role", "active", "created_at", "updated_at"},
		ID:       func(u *domain.User) uuid.UUID { return u.ID },
		SetID:    func(u *domain.User, id uuid.UUID) { u.ID = id },
		Values: func(u *domain.User) []any {
			return []any{u.FacilityID, u.Username, u.Email, u.PasswordHash, u.Role, u.Active, u.CreatedAt, u.UpdatedAt}
		},
		Dest: func(u *domain.User) []any {
			return []any{&u.ID, &u.FacilityID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Active, &u.CreatedAt, &u.UpdatedAt}
		},
	}
}

type userRepository struct {
	*PgRepository[domain.User]
	hash func(string) (string, error)
}

// NewUserRepository returns a Postgres-backed implementation. hash is the
// credential codec's one-way transform, applied before any password write.
func NewUserRepository(pool *pgxpool.Pool, hash func(string) (string, error)) UserRepository {
	return &userRepository{
		PgRepository: NewPgRepository(pool, UserMapping()),
		hash:         hash,
	}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findBy(ctx, "username", username)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findBy(ctx, "email", email)
}

func (r *userRepository) findBy(ctx context.Context, column, value string) (*domain.User, error) {
	user := new(domain.User)
	query := selectSQL(r.m.Table, r.m.Columns) + " WHERE " + column + "=$1"
	if err := r.pool.QueryRow(ctx, query, value).Scan(r.m.Dest(user)...); err != nil {
		return nil, translate(err, r.m.Resource)
	}
	return user, nil
}

func (r *userRepository) SetPassword(ctx context.Context, user *domain.User, plaintext string) (*domain.User, error) {
	hashed, err := r.hash(plaintext)
	if err != nil {
		return nil, err
	}
	return r.Update(ctx, user, Patch{
		"password_hash": hashed,
		"updated_at":    time.Now().UTC(),
	})
}

func (r *userRepository) SetActive(ctx context.Context, user *domain.User, active bool) (*domain.User, error) {
	return r.Update(ctx, user, Patch{
		"active":     active,
		"updated_at": time.Now().UTC(),
	})
}
