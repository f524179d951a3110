package batches

// CreateBatchRequest plans a new production batch. Unit defaults to BOX
// when omitted.
type CreateBatchRequest struct {
	BatchNumber string `json:"batchNumber" validate:"required"`
	ProductID   string `json:"productId" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gt=0"`
	Unit        string `json:"unit" validate:"omitempty,oneof=KG BOX DRUM PACKET"`
}

// UpdateStatusRequest moves a batch to an explicit production status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
