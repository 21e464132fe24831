package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/pharma-inventory/internal/service"
	apperrors "github.com/spec-kit/pharma-inventory/pkg/util"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError("invalid id", nil)
	}
	return id, nil
}

func pagination(c *fiber.Ctx) (skip, limit int) {
	skip = c.QueryInt("skip", 0)
	limit = c.QueryInt("limit", defaultListLimit)
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	return skip, limit
}

// The catalog entities share identical list/get/remove behavior; the
// handlers below are instantiated per entity with its response mapper.

func listEntities[T any, R any](svc *service.Catalog[T], present func(*T) R) fiber.Handler {
	return func(c *fiber.Ctx) error {
		skip, limit := pagination(c)
		entities, err := svc.List(c.Context(), skip, limit)
		if err != nil {
			return err
		}
		responses := make([]R, 0, len(entities))
		for _, entity := range entities {
			responses = append(responses, present(entity))
		}
		return c.JSON(fiber.Map{"data": responses})
	}
}

func getEntity[T any, R any](svc *service.Catalog[T], present func(*T) R) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		entity, err := svc.Get(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": present(entity)})
	}
}

func removeEntity[T any, R any](svc *service.Catalog[T], present func(*T) R) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		entity, err := svc.Remove(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": present(entity)})
	}
}

func created[R any](c *fiber.Ctx, response R) error {
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": response})
}
