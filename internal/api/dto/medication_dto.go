package dto

import (
	"github.com/google/uuid"

	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/repository"
)

// MedicationCreateRequest is the draft payload for a new medication.
type MedicationCreateRequest struct {
	Name         string `json:"name"`
	DosageForm   string `json:"dosage_form"`
	Strength     string `json:"strength"`
	Manufacturer string `json:"manufacturer"`
}

// Entity builds the domain record from the draft.
func (r MedicationCreateRequest) Entity() *domain.Medication {
	return &domain.Medication{
		Name:         r.Name,
		DosageForm:   r.DosageForm,
		Strength:     r.Strength,
		Manufacturer: r.Manufacturer,
	}
}

// MedicationUpdateRequest is a partial update; absent fields stay untouched.
type MedicationUpdateRequest struct {
	Name         *string `json:"name"`
	DosageForm   *string `json:"dosage_form"`
	Strength     *string `json:"strength"`
	Manufacturer *string `json:"manufacturer"`
}

// Patch converts the present fields into a column patch.
func (r MedicationUpdateRequest) Patch() repository.Patch {
	patch := repository.Patch{}
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	if r.DosageForm != nil {
		patch["dosage_form"] = *r.DosageForm
	}
	if r.Strength != nil {
		patch["strength"] = *r.Strength
	}
	if r.Manufacturer != nil {
		patch["manufacturer"] = *r.Manufacturer
	}
	return patch
}

// MedicationResponse is the client-visible view of a medication.
type MedicationResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DosageForm   string    `json:"dosage_form"`
	Strength     string    `json:"strength"`
	Manufacturer string    `json:"manufacturer"`
}

// NewMedicationResponse maps a domain medication to its response view.
func NewMedicationResponse(m *domain.Medication) MedicationResponse {
	return MedicationResponse{
		ID:           m.ID,
		Name:         m.Name,
		DosageForm:   m.DosageForm,
		Strength:     m.Strength,
		Manufacturer: m.Manufacturer,
	}
}
