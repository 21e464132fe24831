package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/repository"
)

// RequisitionCreateRequest is the draft payload for a new requisition.
// New requisitions always start pending.
type RequisitionCreateRequest struct {
	FacilityID        uuid.UUID `json:"facility_id"`
	MedicationID      uuid.UUID `json:"medication_id"`
	QuantityRequested int       `json:"quantity_requested"`
}

// Entity builds the domain record from the draft.
func (r RequisitionCreateRequest) Entity() *domain.Requisition {
	return &domain.Requisition{
		FacilityID:        r.FacilityID,
		MedicationID:      r.MedicationID,
		QuantityRequested: r.QuantityRequested,
		Status:            domain.RequisitionPending,
		RequestedAt:       time.Now().UTC(),
	}
}

// RequisitionUpdateRequest is a partial update; absent fields stay untouched.
type RequisitionUpdateRequest struct {
	QuantityRequested *int    `json:"quantity_requested"`
	Status            *string `json:"status"`
}

// Patch converts the present fields into a column patch. Moving to approved
// stamps the approval time.
func (r RequisitionUpdateRequest) Patch() repository.Patch {
	patch := repository.Patch{}
	if r.QuantityRequested != nil {
		patch["quantity_requested"] = *r.QuantityRequested
	}
	if r.Status != nil {
		patch["status"] = domain.RequisitionStatus(*r.Status)
		if domain.RequisitionStatus(*r.Status) == domain.RequisitionApproved {
			patch["approved_at"] = time.Now().UTC()
		}
	}
	return patch
}

// RequisitionResponse is the client-visible view of a requisition.
type RequisitionResponse struct {
	ID                uuid.UUID  `json:"id"`
	FacilityID        uuid.UUID  `json:"facility_id"`
	MedicationID      uuid.UUID  `json:"medication_id"`
	QuantityRequested int        `json:"quantity_requested"`
	Status            string     `json:"status"`
	RequestedAt       time.Time  `json:"requested_at"`
	ApprovedAt        *time.Time `json:"approved_at,omitempty"`
}

// NewRequisitionResponse maps a domain requisition to its response view.
func NewRequisitionResponse(r *domain.Requisition) RequisitionResponse {
	return RequisitionResponse{
		ID:                r.ID,
		FacilityID:        r.FacilityID,
		MedicationID:      r.MedicationID,
		QuantityRequested: r.QuantityRequested,
		Status:            string(r.Status),
		RequestedAt:       r.RequestedAt,
		ApprovedAt:        r.ApprovedAt,
	}
}
