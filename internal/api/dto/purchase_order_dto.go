package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/repository"
)

// PurchaseOrderCreateRequest is the draft payload for a new purchase order.
type PurchaseOrderCreateRequest struct {
	VendorID             uuid.UUID `json:"vendor_id"`
	RequisitionID        uuid.UUID `json:"requisition_id"`
	QuantityOrdered      int       `json:"quantity_ordered"`
	ExpectedDeliveryDate time.Time `json:"expected_delivery_date"`
}

// Entity builds the domain record from the draft.
func (r PurchaseOrderCreateRequest) Entity() *domain.PurchaseOrder {
	return &domain.PurchaseOrder{
		VendorID:             r.VendorID,
		RequisitionID:        r.RequisitionID,
		QuantityOrdered:      r.QuantityOrdered,
		OrderDate:            time.Now().UTC(),
		ExpectedDeliveryDate: r.ExpectedDeliveryDate,
	}
}

// PurchaseOrderUpdateRequest is a partial update; absent fields stay untouched.
type PurchaseOrderUpdateRequest struct {
	QuantityOrdered      *int       `json:"quantity_ordered"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date"`
}

// Patch converts the present fields into a column patch.
func (r PurchaseOrderUpdateRequest) Patch() repository.Patch {
	patch := repository.Patch{}
	if r.QuantityOrdered != nil {
		patch["quantity_ordered"] = *r.QuantityOrdered
	}
	if r.ExpectedDeliveryDate != nil {
		patch["expected_delivery_date"] = *r.ExpectedDeliveryDate
	}
	return patch
}

// PurchaseOrderResponse is the client-visible view of a purchase order.
type PurchaseOrderResponse struct {
	ID                   uuid.UUID `json:"id"`
	VendorID             uuid.UUID `json:"vendor_id"`
	RequisitionID        uuid.UUID `json:"requisition_id"`
	QuantityOrdered      int       `json:"quantity_ordered"`
	OrderDate            time.Time `json:"order_date"`
	ExpectedDeliveryDate time.Time `json:"expected_delivery_date"`
}

// NewPurchaseOrderResponse maps a domain purchase order to its response view.
func NewPurchaseOrderResponse(o *domain.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		ID:                   o.ID,
		VendorID:             o.VendorID,
		RequisitionID:        o.RequisitionID,
		QuantityOrdered:      o.QuantityOrdered,
		OrderDate:            o.OrderDate,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
	}
}
