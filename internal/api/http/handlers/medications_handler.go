package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pharma-inventory/internal/api/dto"
	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/service"
	apperrors "github.com/spec-kit/pharma-inventory/pkg/util"
)

// MedicationsHandler exposes CRUD endpoints for medications.
type MedicationsHandler struct {
	svc    *service.Catalog[domain.Medication]
	list   fiber.Handler
	get    fiber.Handler
	remove fiber.Handler
}

// NewMedicationsHandler constructs the handler.
func NewMedicationsHandler(svc *service.Catalog[domain.Medication]) *MedicationsHandler {
	return &MedicationsHandler{
		svc:    svc,
		list:   listEntities(svc, dto.NewMedicationResponse),
		get:    getEntity(svc, dto.NewMedicationResponse),
		remove: removeEntity(svc, dto.NewMedicationResponse),
	}
}

func (h *MedicationsHandler) List(c *fiber.Ctx) error { return h.list(c) }

func (h *MedicationsHandler) Get(c *fiber.Ctx) error { return h.get(c) }

func (h *MedicationsHandler) Delete(c *fiber.Ctx) error { return h.remove(c) }

func (h *MedicationsHandler) Create(c *fiber.Ctx) error {
	var req dto.MedicationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	medication, err := h.svc.Create(c.Context(), req.Entity())
	if err != nil {
		return err
	}
	return created(c, dto.NewMedicationResponse(medication))
}

func (h *MedicationsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.MedicationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	medication, err := h.svc.Update(c.Context(), id, req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMedicationResponse(medication)})
}
