package domain

import "github.com/google/uuid"

// Vendor is a supplier that fulfills purchase orders.
type Vendor struct {
	ID          uuid.UUID
	Name        string
	ContactName string
	PhoneNumber string
	Email       string
	Address     string
}
