package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/pharma-inventory/internal/api/dto"
	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/service"
	apperrors "github.com/spec-kit/pharma-inventory/pkg/util"
)

// InventoryHandler exposes CRUD endpoints for inventory records.
type InventoryHandler struct {
	svc    *service.Catalog[domain.InventoryRecord]
	list   fiber.Handler
	get    fiber.Handler
	remove fiber.Handler
}

// NewInventoryHandler constructs the handler.
func NewInventoryHandler(svc *service.Catalog[domain.InventoryRecord]) *InventoryHandler {
	return &InventoryHandler{
		svc:    svc,
		list:   listEntities(svc, dto.NewInventoryResponse),
		get:    getEntity(svc, dto.NewInventoryResponse),
		remove: removeEntity(svc, dto.NewInventoryResponse),
	}
}

func (h *InventoryHandler) List(c *fiber.Ctx) error { return h.list(c) }

func (h *InventoryHandler) Get(c *fiber.Ctx) error { return h.get(c) }

func (h *InventoryHandler) Delete(c *fiber.Ctx) error { return h.remove(c) }

func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var req dto.InventoryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.FacilityID == uuid.Nil || req.MedicationID == uuid.Nil {
		return apperrors.NewValidationError("facility_id and medication_id required", nil)
	}
	if req.Quantity < 0 {
		return apperrors.NewValidationError("quantity must not be negative", nil)
	}

	record, err := h.svc.Create(c.Context(), req.Entity())
	if err != nil {
		return err
	}
	return created(c, dto.NewInventoryResponse(record))
}

func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.InventoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		return apperrors.NewValidationError("quantity must not be negative", nil)
	}

	record, err := h.svc.Update(c.Context(), id, req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewInventoryResponse(record)})
}
