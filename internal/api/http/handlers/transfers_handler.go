package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/pharma-inventory/internal/api/dto"
	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/service"
	apperrors "github.com/spec-kit/pharma-inventory/pkg/util"
)

// TransfersHandler exposes CRUD endpoints for inter-facility transfers.
type TransfersHandler struct {
	svc    *service.Catalog[domain.Transfer]
	list   fiber.Handler
	get    fiber.Handler
	remove fiber.Handler
}

// NewTransfersHandler constructs the handler.
func NewTransfersHandler(svc *service.Catalog[domain.Transfer]) *TransfersHandler {
	return &TransfersHandler{
		svc:    svc,
		list:   listEntities(svc, dto.NewTransferResponse),
		get:    getEntity(svc, dto.NewTransferResponse),
		remove: removeEntity(svc, dto.NewTransferResponse),
	}
}

func (h *TransfersHandler) List(c *fiber.Ctx) error { return h.list(c) }

func (h *TransfersHandler) Get(c *fiber.Ctx) error { return h.get(c) }

func (h *TransfersHandler) Delete(c *fiber.Ctx) error { return h.remove(c) }

func (h *TransfersHandler) Create(c *fiber.Ctx) error {
	var req dto.TransferCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.FromFacilityID == uuid.Nil || req.ToFacilityID == uuid.Nil || req.MedicationID == uuid.Nil {
		return apperrors.NewValidationError("from_facility_id, to_facility_id, medication_id required", nil)
	}
	if req.FromFacilityID == req.ToFacilityID {
		return apperrors.NewValidationError("cannot transfer to the same facility", nil)
	}
	if req.QuantityTransferred <= 0 {
		return apperrors.NewValidationError("quantity_transferred must be positive", nil)
	}

	transfer, err := h.svc.Create(c.Context(), req.Entity())
	if err != nil {
		return err
	}
	return created(c, dto.NewTransferResponse(transfer))
}

func (h *TransfersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.TransferUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.QuantityTransferred != nil && *req.QuantityTransferred <= 0 {
		return apperrors.NewValidationError("quantity_transferred must be positive", nil)
	}

	transfer, err := h.svc.Update(c.Context(), id, req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTransferResponse(transfer)})
}
