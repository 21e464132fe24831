package domain

import "github.com/google/uuid"

// Medication is a catalog entry for a drug product.
type Medication struct {
	ID           uuid.UUID
	Name         string
	DosageForm   string
	Strength     string
	Manufacturer string
}
