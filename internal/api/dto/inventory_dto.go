package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/repository"
)

// InventoryCreateRequest is the draft payload for a new inventory record.
type InventoryCreateRequest struct {
	FacilityID   uuid.UUID `json:"facility_id"`
	MedicationID uuid.UUID `json:"medication_id"`
	Quantity     int       `json:"quantity"`
	ReorderLevel int       `json:"reorder_level"`
	ExpiryDate   time.Time `json:"expiry_date"`
}

// Entity builds the domain record from the draft.
func (r InventoryCreateRequest) Entity() *domain.InventoryRecord {
	return &domain.InventoryRecord{
		FacilityID:   r.FacilityID,
		MedicationID: r.MedicationID,
		Quantity:     r.Quantity,
		ReorderLevel: r.ReorderLevel,
		ExpiryDate:   r.ExpiryDate,
	}
}

// InventoryUpdateRequest is a partial update; absent fields stay untouched.
type InventoryUpdateRequest struct {
	Quantity     *int       `json:"quantity"`
	ReorderLevel *int       `json:"reorder_level"`
	ExpiryDate   *time.Time `json:"expiry_date"`
}

// Patch converts the present fields into a column patch.
func (r InventoryUpdateRequest) Patch() repository.Patch {
	patch := repository.Patch{}
	if r.Quantity != nil {
		patch["quantity"] = *r.Quantity
	}
	if r.ReorderLevel != nil {
		patch["reorder_level"] = *r.ReorderLevel
	}
	if r.ExpiryDate != nil {
		patch["expiry_date"] = *r.ExpiryDate
	}
	return patch
}

// InventoryResponse is the client-visible view of an inventory record.
type InventoryResponse struct {
	ID           uuid.UUID `json:"id"`
	FacilityID   uuid.UUID `json:"facility_id"`
	MedicationID uuid.UUID `json:"medication_id"`
	Quantity     int       `json:"quantity"`
	ReorderLevel int       `json:"reorder_level"`
	ExpiryDate   time.Time `json:"expiry_date"`
}

// NewInventoryResponse maps a domain inventory record to its response view.
func NewInventoryResponse(rec *domain.InventoryRecord) InventoryResponse {
	return InventoryResponse{
		ID:           rec.ID,
		FacilityID:   rec.FacilityID,
		MedicationID: rec.MedicationID,
		Quantity:     rec.Quantity,
		ReorderLevel: rec.ReorderLevel,
		ExpiryDate:   rec.ExpiryDate,
	}
}
