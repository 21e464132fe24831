package dto

import (
	"github.com/google/uuid"

	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/repository"
)

// FacilityCreateRequest is the draft payload for a new facility.
type FacilityCreateRequest struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Address string `json:"address"`
	State   string `json:"state"`
	City    string `json:"city"`
}

// Entity builds the domain record from the draft.
func (r FacilityCreateRequest) Entity() *domain.Facility {
	return &domain.Facility{
		Name:    r.Name,
		Type:    domain.FacilityType(r.Type),
		Address: r.Address,
		State:   r.State,
		City:    r.City,
	}
}

// FacilityUpdateRequest is a partial update; absent fields stay untouched.
type FacilityUpdateRequest struct {
	Name    *string `json:"name"`
	Type    *string `json:"type"`
	Address *string `json:"address"`
	State   *string `json:"state"`
	City    *string `json:"city"`
}

// Patch converts the present fields into a column patch.
func (r FacilityUpdateRequest) Patch() repository.Patch {
	patch := repository.Patch{}
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	if r.Type != nil {
		patch["type"] = domain.FacilityType(*r.Type)
	}
	if r.Address != nil {
		patch["address"] = *r.Address
	}
	if r.State != nil {
		patch["state"] = *r.State
	}
	if r.City != nil {
		patch["city"] = *r.City
	}
	return patch
}

// FacilityResponse is the client-visible view of a facility.
type FacilityResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Type    string    `json:"type"`
	Address string    `json:"address"`
	State   string    `json:"state"`
	City    string    `json:"city"`
}

// NewFacilityResponse maps a domain facility to its response view.
func NewFacilityResponse(f *domain.Facility) FacilityResponse {
	return FacilityResponse{
		ID:      f.ID,
		Name:    f.Name,
		Type:    string(f.Type),
		Address: f.Address,
		State:   f.State,
		City:    f.City,
	}
}
