package dto

import (
	"github.com/google/uuid"

	"github.com/spec-kit/pharma-inventory/internal/domain"
	"github.com/spec-kit/pharma-inventory/internal/repository"
)

// VendorCreateRequest is the draft payload for a new vendor.
type VendorCreateRequest struct {
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

// Entity builds the domain record from the draft.
func (r VendorCreateRequest) Entity() *domain.Vendor {
	return &domain.Vendor{
		Name:        r.Name,
		ContactName: r.ContactName,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
		Address:     r.Address,
	}
}

// VendorUpdateRequest is a partial update; absent fields stay untouched.
type VendorUpdateRequest struct {
	Name        *string `json:"name"`
	ContactName *string `json:"contact_name"`
	PhoneNumber *string `json:"phone_number"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
}

// Patch converts the present fields into a column patch.
func (r VendorUpdateRequest) Patch() repository.Patch {
	patch := repository.Patch{}
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	if r.ContactName != nil {
		patch["contact_name"] = *r.ContactName
	}
	if r.PhoneNumber != nil {
		patch["phone_number"] = *r.PhoneNumber
	}
	if r.Email != nil {
		patch["email"] = *r.Email
	}
	if r.Address != nil {
		patch["address"] = *r.Address
	}
	return patch
}

// VendorResponse is the client-visible view of a vendor.
type VendorResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contact_name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
}

// NewVendorResponse maps a domain vendor to its response view.
func NewVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		ID:          v.ID,
		Name:        v.Name,
		ContactName: v.ContactName,
		PhoneNumber: v.PhoneNumber,
		Email:       v.Email,
		Address:     v.Address,
	}
}
