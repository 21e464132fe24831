package domain

import (
	"time"

	"github.com/google/uuid"
)

// RequisitionStatus tracks the approval lifecycle of a requisition.
type RequisitionStatus string

const (
	RequisitionPending  RequisitionStatus = "pending"
	RequisitionApproved RequisitionStatus = "approved"
	RequisitionRejected RequisitionStatus = "rejected"
)

// Requisition is a facility's request for a quantity of a medication.
type Requisition struct {
	ID                uuid.UUID
	FacilityID        uuid.UUID
	MedicationID      uuid.UUID
	QuantityRequested int
	Status            RequisitionStatus
	RequestedAt       time.Time
	ApprovedAt        *time.Time
}
