package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pharma-inventory/internal/api/dto"
	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/service"
	apperrors "github.com/spec-kit/pharma-inventory/pkg/util"
)

// VendorsHandler exposes CRUD endpoints for vendors.
type VendorsHandler struct {
	svc    *service.Catalog[domain.Vendor]
	list   fiber.Handler
	get    fiber.Handler
	remove fiber.Handler
}

// NewVendorsHandler constructs the handler.
func NewVendorsHandler(svc *service.Catalog[domain.Vendor]) *VendorsHandler {
	return &VendorsHandler{
		svc:    svc,
		list:   listEntities(svc, dto.NewVendorResponse),
		get:    getEntity(svc, dto.NewVendorResponse),
		remove: removeEntity(svc, dto.NewVendorResponse),
	}
}

func (h *VendorsHandler) List(c *fiber.Ctx) error { return h.list(c) }

func (h *VendorsHandler) Get(c *fiber.Ctx) error { return h.get(c) }

func (h *VendorsHandler) Delete(c *fiber.Ctx) error { return h.remove(c) }

func (h *VendorsHandler) Create(c *fiber.Ctx) error {
	var req dto.VendorCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	vendor, err := h.svc.Create(c.Context(), req.Entity())
	if err != nil {
		return err
	}
	return created(c, dto.NewVendorResponse(vendor))
}

func (h *VendorsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.VendorUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	vendor, err := h.svc.Update(c.Context(), id, req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewVendorResponse(vendor)})
}
