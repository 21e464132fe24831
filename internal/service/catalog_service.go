package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/spec-kit/pharma-inventory/internal/repository"
)

// Catalog is the permission-free CRUD orchestration shared by the catalog
// entities. Permission checks happen in the route layer; business rules for
// these records are plain persistence.
type Catalog[T any] struct {
	repo repository.Repository[T]
}

// NewCatalog builds a catalog service over the given repository.
func NewCatalog[T any](repo repository.Repository[T]) *Catalog[T] {
	return &Catalog[T]{repo: repo}
}

func (s *Catalog[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	return s.repo.Get(ctx, id)
}

func (s *Catalog[T]) List(ctx context.Context, skip, limit int) ([]*T, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *Catalog[T]) Create(ctx context.Context, entity *T) (*T, error) {
	return s.repo.Create(ctx, entity)
}

func (s *Catalog[T]) Update(ctx context.Context, id uuid.UUID, patch repository.Patch) (*T, error) {
	entity, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, entity, patch)
}

func (s *Catalog[T]) Remove(ctx context.Context, id uuid.UUID) (*T, error) {
	return s.repo.Remove(ctx, id)
}
