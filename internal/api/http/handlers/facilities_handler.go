package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pharma-inventory/internal/api/dto"
	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/service"
	apperrors "github.com/spec-kit/pharma-inventory/pkg/util"
)

// FacilitiesHandler exposes CRUD endpoints for facilities.
type FacilitiesHandler struct {
	svc    *service.Catalog[domain.Facility]
	list   fiber.Handler
	get    fiber.Handler
	remove fiber.Handler
}

// NewFacilitiesHandler constructs the handler.
func NewFacilitiesHandler(svc *service.Catalog[domain.Facility]) *FacilitiesHandler {
	return &FacilitiesHandler{
		svc:    svc,
		list:   listEntities(svc, dto.NewFacilityResponse),
		get:    getEntity(svc, dto.NewFacilityResponse),
		remove: removeEntity(svc, dto.NewFacilityResponse),
	}
}

func (h *FacilitiesHandler) List(c *fiber.Ctx) error { return h.list(c) }

func (h *FacilitiesHandler) Get(c *fiber.Ctx) error { return h.get(c) }

func (h *FacilitiesHandler) Delete(c *fiber.Ctx) error { return h.remove(c) }

func (h *FacilitiesHandler) Create(c *fiber.Ctx) error {
	var req dto.FacilityCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Type == "" {
		return apperrors.NewValidationError("name and type required", nil)
	}

	facility, err := h.svc.Create(c.Context(), req.Entity())
	if err != nil {
		return err
	}
	return created(c, dto.NewFacilityResponse(facility))
}

func (h *FacilitiesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.FacilityUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	facility, err := h.svc.Update(c.Context(), id, req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewFacilityResponse(facility)})
}
