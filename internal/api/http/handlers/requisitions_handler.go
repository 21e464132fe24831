package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/pharma-inventory/internal/api/dto"
	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/service"
	apperrors "github.com/spec-kit/pharma-inventory/pkg/util"
)

// RequisitionsHandler exposes CRUD endpoints for requisitions.
type RequisitionsHandler struct {
	svc    *service.Catalog[domain.Requisition]
	list   fiber.Handler
	get    fiber.Handler
	remove fiber.Handler
}

// NewRequisitionsHandler constructs the handler.
func NewRequisitionsHandler(svc *service.Catalog[domain.Requisition]) *RequisitionsHandler {
	return &RequisitionsHandler{
		svc:    svc,
		list:   listEntities(svc, dto.NewRequisitionResponse),
		get:    getEntity(svc, dto.NewRequisitionResponse),
		remove: removeEntity(svc, dto.NewRequisitionResponse),
	}
}

func (h *RequisitionsHandler) List(c *fiber.Ctx) error { return h.list(c) }

func (h *RequisitionsHandler) Get(c *fiber.Ctx) error { return h.get(c) }

func (h *RequisitionsHandler) Delete(c *fiber.Ctx) error { return h.remove(c) }

func (h *RequisitionsHandler) Create(c *fiber.Ctx) error {
	var req dto.RequisitionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.FacilityID == uuid.Nil || req.MedicationID == uuid.Nil {
		return apperrors.NewValidationError("facility_id and medication_id required", nil)
	}
	if req.QuantityRequested <= 0 {
		return apperrors.NewValidationError("quantity_requested must be positive", nil)
	}

	requisition, err := h.svc.Create(c.Context(), req.Entity())
	if err != nil {
		return err
	}
	return created(c, dto.NewRequisitionResponse(requisition))
}

func (h *RequisitionsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.RequisitionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status != nil {
		switch domain.RequisitionStatus(*req.Status) {
		case domain.RequisitionPending, domain.RequisitionApproved, domain.RequisitionRejected:
		default:
			return apperrors.NewValidationError("unknown status", fiber.Map{"status": *req.Status})
		}
	}

	requisition, err := h.svc.Update(c.Context(), id, req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewRequisitionResponse(requisition)})
}
