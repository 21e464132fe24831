package domain

import "github.com/google/uuid"

// FacilityType categorizes dispensing facilities.
type FacilityType string

const (
	FacilityHospital  FacilityType = "hospital"
	FacilityClinic    FacilityType = "clinic"
	FacilityMegastore FacilityType = "megastore"
)

// Facility is a physical location that stocks and dispenses medications.
type Facility struct {
	ID      uuid.UUID
	Name    string
	Type    FacilityType
	Address string
	State   string
	City    string
}
