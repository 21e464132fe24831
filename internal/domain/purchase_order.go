package domain

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseOrder is a vendor order placed against an approved requisition.
type PurchaseOrder struct {
	ID                   uuid.UUID
	VendorID             uuid.UUID
	RequisitionID        uuid.UUID
	QuantityOrdered      int
	OrderDate            time.Time
	ExpectedDeliveryDate time.Time
}
