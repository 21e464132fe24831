package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/pharma-inventory/internal/api/dto"
	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/service"
	apperrors "github.com/spec-kit/pharma-inventory/pkg/util"
)

// PurchaseOrdersHandler exposes CRUD endpoints for purchase orders.
type PurchaseOrdersHandler struct {
	svc    *service.Catalog[domain.PurchaseOrder]
	list   fiber.Handler
	get    fiber.Handler
	remove fiber.Handler
}

// NewPurchaseOrdersHandler constructs the handler.
func NewPurchaseOrdersHandler(svc *service.Catalog[domain.PurchaseOrder]) *PurchaseOrdersHandler {
	return &PurchaseOrdersHandler{
		svc:    svc,
		list:   listEntities(svc, dto.NewPurchaseOrderResponse),
		get:    getEntity(svc, dto.NewPurchaseOrderResponse),
		remove: removeEntity(svc, dto.NewPurchaseOrderResponse),
	}
}

func (h *PurchaseOrdersHandler) List(c *fiber.Ctx) error { return h.list(c) }

func (h *PurchaseOrdersHandler) Get(c *fiber.Ctx) error { return h.get(c) }

func (h *PurchaseOrdersHandler) Delete(c *fiber.Ctx) error { return h.remove(c) }

func (h *PurchaseOrdersHandler) Create(c *fiber.Ctx) error {
	var req dto.PurchaseOrderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.VendorID == uuid.Nil || req.RequisitionID == uuid.Nil {
		return apperrors.NewValidationError("vendor_id and requisition_id required", nil)
	}
	if req.QuantityOrdered <= 0 {
		return apperrors.NewValidationError("quantity_ordered must be positive", nil)
	}

	order, err := h.svc.Create(c.Context(), req.Entity())
	if err != nil {
		return err
	}
	return created(c, dto.NewPurchaseOrderResponse(order))
}

func (h *PurchaseOrdersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.PurchaseOrderUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.QuantityOrdered != nil && *req.QuantityOrdered <= 0 {
		return apperrors.NewValidationError("quantity_ordered must be positive", nil)
	}

	order, err := h.svc.Update(c.Context(), id, req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPurchaseOrderResponse(order)})
}
