package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transfer moves a quantity of a medication between two facilities.
type Transfer struct {
	ID                  uuid.UUID
	FromFacilityID      uuid.UUID
	ToFacilityID        uuid.UUID
	MedicationID        uuid.UUID
	QuantityTransferred int
	TransferDate        time.Time
}
