package repository

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pharma-inventory/internal/domain"
)

// Mappings and constructors for the catalog entities. Each one is served by
// the generic repository without specialization.

func FacilityMapping() Mapping[domain.Facility] {
	return Mapping[domain.Facility]{
		Table:    "facilities",
		Resource: "facility",
		Columns:  []string{"name", "type", "address", "state", "city"},
		ID:       func(f *domain.Facility) uuid.UUID { return f.ID },
		SetID:    func(f *domain.Facility, id uuid.UUID) { f.ID = id },
		Values: func(f *domain.Facility) []any {
			return []any{f.Name, f.Type, f.Address, f.State, f.City}
		},
		Dest: func(f *domain.Facility) []any {
			return []any{&f.ID, &f.Name, &f.Type, &f.Address, &f.State, &f.City}
		},
	}
}

func MedicationMapping() Mapping[domain.Medication] {
	return Mapping[domain.Medication]{
		Table:    "medications",
		Resource: "medication",
		Columns:  []string{"name", "dosage_form", "strength", "manufacturer"},
		ID:       func(m *domain.Medication) uuid.UUID { return m.ID },
		SetID:    func(m *domain.Medication, id uuid.UUID) { m.ID = id },
		Values: func(m *domain.Medication) []any {
			return []any{m.Name, m.DosageForm, m.Strength, m.Manufacturer}
		},
		Dest: func(m *domain.Medication) []any {
			return []any{&m.ID, &m.Name, &m.DosageForm, &m.Strength, &m.Manufacturer}
		},
	}
}

func InventoryMapping() Mapping[domain.InventoryRecord] {
	return Mapping[domain.InventoryRecord]{
		Table:    "inventory",
		Resource: "inventory record",
		Columns:  []string{"facility_id", "medication_id", "quantity", "reorder_level", "expiry_date"},
		ID:       func(r *domain.InventoryRecord) uuid.UUID { return r.ID },
		SetID:    func(r *domain.InventoryRecord, id uuid.UUID) { r.ID = id },
		Values: func(r *domain.InventoryRecord) []any {
			return []any{r.FacilityID, r.MedicationID, r.Quantity, r.ReorderLevel, r.ExpiryDate}
		},
		Dest: func(r *domain.InventoryRecord) []any {
			return []any{&r.ID, &r.FacilityID, &r.MedicationID, &r.Quantity, &r.ReorderLevel, &r.ExpiryDate}
		},
	}
}

func RequisitionMapping() Mapping[domain.Requisition] {
	return Mapping[domain.Requisition]{
		Table:    "requisitions",
		Resource: "requisition",
		Columns:  []string{"facility_id", "medication_id", "quantity_requested", "status", "requested_at", "approved_at"},
		ID:       func(r *domain.Requisition) uuid.UUID { return r.ID },
		SetID:    func(r *domain.Requisition, id uuid.UUID) { r.ID = id },
		Values: func(r *domain.Requisition) []any {
			return []any{r.FacilityID, r.MedicationID, r.QuantityRequested, r.Status, r.RequestedAt, r.ApprovedAt}
		},
		Dest: func(r *domain.Requisition) []any {
			return []any{&r.ID, &r.FacilityID, &r.MedicationID, &r.QuantityRequested, &r.Status, &r.RequestedAt, &r.ApprovedAt}
		},
	}
}

func PurchaseOrderMapping() Mapping[domain.PurchaseOrder] {
	return Mapping[domain.PurchaseOrder]{
		Table:    "purchase_orders",
		Resource: "purchase order",
		Columns:  []string{"vendor_id", "requisition_id", "quantity_ordered", "order_date", "expected_delivery_date"},
		ID:       func(o *domain.PurchaseOrder) uuid.UUID { return o.ID },
		SetID:    func(o *domain.PurchaseOrder, id uuid.UUID) { o.ID = id },
		Values: func(o *domain.PurchaseOrder) []any {
			return []any{o.VendorID, o.RequisitionID, o.QuantityOrdered, o.OrderDate, o.ExpectedDeliveryDate}
		},
		Dest: func(o *domain.PurchaseOrder) []any {
			return []any{&o.ID, &o.VendorID, &o.RequisitionID, &o.QuantityOrdered, &o.OrderDate, &o.ExpectedDeliveryDate}
		},
	}
}

func TransferMapping() Mapping[domain.Transfer] {
	return Mapping[domain.Transfer]{
		Table:    "transfers",
		Resource: "transfer",
		Columns:  []string{"from_facility_id", "to_facility_id", "medication_id", "quantity_transferred", "transfer_date"},
		ID:       func(t *domain.Transfer) uuid.UUID { return t.ID },
		SetID:    func(t *domain.Transfer, id uuid.UUID) { t.ID = id },
		Values: func(t *domain.Transfer) []any {
			return []any{t.FromFacilityID, t.ToFacilityID, t.MedicationID, t.QuantityTransferred, t.TransferDate}
		},
		Dest: func(t *domain.Transfer) []any {
			return []any{&t.ID, &t.FromFacilityID, &t.ToFacilityID, &t.MedicationID, &t.QuantityTransferred, &t.TransferDate}
		},
	}
}

func VendorMapping() Mapping[domain.Vendor] {
	return Mapping[domain.Vendor]{
		Table:    "vendors",
		Resource: "vendor",
		Columns:  []string{"name", "contact_name", "phone_number", "email", "address"},
		ID:       func(v *domain.Vendor) uuid.UUID { return v.ID },
		SetID:    func(v *domain.Vendor, id uuid.UUID) { v.ID = id },
		Values: func(v *domain.Vendor) []any {
			return []any{v.Name, v.ContactName, v.PhoneNumber, v.Email, v.Address}
		},
		Dest: func(v *domain.Vendor) []any {
			return []any{&v.ID, &v.Name, &v.ContactName, &v.PhoneNumber, &v.Email, &v.Address}
		},
	}
}

func NewFacilityRepository(pool *pgxpool.Pool) Repository[domain.Facility] {
	return NewPgRepository(pool, FacilityMapping())
}

func NewMedicationRepository(pool *pgxpool.Pool) Repository[domain.Medication] {
	return NewPgRepository(pool, MedicationMapping())
}

func NewInventoryRepository(pool *pgxpool.Pool) Repository[domain.InventoryRecord] {
	return NewPgRepository(pool, InventoryMapping())
}

func NewRequisitionRepository(pool *pgxpool.Pool) Repository[domain.Requisition] {
	return NewPgRepository(pool, RequisitionMapping())
}

func NewPurchaseOrderRepository(pool *pgxpool.Pool) Repository[domain.PurchaseOrder] {
	return NewPgRepository(pool, PurchaseOrderMapping())
}

func NewTransferRepository(pool *pgxpool.Pool) Repository[domain.Transfer] {
	return NewPgRepository(pool, TransferMapping())
}

func NewVendorRepository(pool *pgxpool.Pool) Repository[domain.Vendor] {
	return NewPgRepository(pool, VendorMapping())
}
