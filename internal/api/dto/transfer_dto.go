package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/repository"
)

// TransferCreateRequest is the draft payload for a new transfer.
type TransferCreateRequest struct {
	FromFacilityID      uuid.UUID `json:"from_facility_id"`
	ToFacilityID        uuid.UUID `json:"to_facility_id"`
	MedicationID        uuid.UUID `json:"medication_id"`
	QuantityTransferred int       `json:"quantity_transferred"`
}

// Entity builds the domain record from the draft.
func (r TransferCreateRequest) Entity() *domain.Transfer {
	return &domain.Transfer{
		FromFacilityID:      r.FromFacilityID,
		ToFacilityID:        r.ToFacilityID,
		MedicationID:        r.MedicationID,
		QuantityTransferred: r.QuantityTransferred,
		TransferDate:        time.Now().UTC(),
	}
}

// TransferUpdateRequest is a partial update; absent fields stay untouched.
type TransferUpdateRequest struct {
	QuantityTransferred *int `json:"quantity_transferred"`
}

// Patch converts the present fields into a column patch.
func (r TransferUpdateRequest) Patch() repository.Patch {
	patch := repository.Patch{}
	if r.QuantityTransferred != nil {
		patch["quantity_transferred"] = *r.QuantityTransferred
	}
	return patch
}

// TransferResponse is the client-visible view of a transfer.
type TransferResponse struct {
	ID                  uuid.UUID `json:"id"`
	FromFacilityID      uuid.UUID `json:"from_facility_id"`
	ToFacilityID        uuid.UUID `json:"to_facility_id"`
	MedicationID        uuid.UUID `json:"medication_id"`
	QuantityTransferred int       `json:"quantity_transferred"`
	TransferDate        time.Time `json:"transfer_date"`
}

// NewTransferResponse maps a domain transfer to its response view.
func NewTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		ID:                  t.ID,
		FromFacilityID:      t.FromFacilityID,
		ToFacilityID:        t.ToFacilityID,
		MedicationID:        t.MedicationID,
		QuantityTransferred: t.QuantityTransferred,
		TransferDate:        t.TransferDate,
	}
}
