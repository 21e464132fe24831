package domain

import (
	"time"

	"github.com/google/uuid"
)

// InventoryRecord tracks the stock of one medication at one facility.
type InventoryRecord struct {
	ID           uuid.UUID
	FacilityID   uuid.UUID
	MedicationID uuid.UUID
	Quantity     int
	ReorderLevel int
	ExpiryDate   time.Time
}
