package batches

import "time"

// Status tracks a production batch from planning through QC to release.
type Status string

const (
	StatusPlanned      Status = "PLANNED"
	StatusInProduction Status = "IN_PRODUCTION"
	StatusQCPending    Status = "QC_PENDING"
	StatusReleased     Status = "RELEASED"
	StatusRejected     Status = "REJECTED"
)

// Valid reports whether s is a declared status.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusInProduction, StatusQCPending, StatusReleased, StatusRejected:
		return true
	}
	return false
}

// Unit is the packaging unit a batch is quantified in.
type Unit string

const (
	UnitKG     Unit = "KG"
	UnitBox    Unit = "BOX"
	UnitDrum   Unit = "DRUM"
	UnitPacket Unit = "PACKET"
)

// Valid reports whether u is a declared unit.
func (u Unit) Valid() bool {
	switch u {
	case UnitKG, UnitBox, UnitDrum, UnitPacket:
		return true
	}
	return false
}

// Batch is one manufacturing production run of a product. ProductName is a
// creation-time snapshot; ExpiryDate is fixed at manufacture + 730 days.
type Batch struct {
	ID                string    `json:"id"`
	BatchNumber       string    `json:"batchNumber"`
	ProductID         string    `json:"productId"`
	ProductName       string    `json:"productName"`
	Quantity          int       `json:"quantity"`
	Unit              Unit      `json:"unit"`
	Status            Status    `json:"status"`
	ManufacturingDate time.Time `json:"manufacturingDate"`
	ExpiryDate        time.Time `json:"expiryDate"`
}
