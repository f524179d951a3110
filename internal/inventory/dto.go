package inventory

// CreateItemRequest stocks a new resource. MinThreshold 0 applies the
// default reorder threshold.
type CreateItemRequest struct {
	Name         string `json:"name" validate:"required"`
	Type         string `json:"type" validate:"required,oneof='Raw Material' Packaging 'Finished Good'"`
	Quantity     int    `json:"quantity" validate:"gt=0"`
	Unit         string `json:"unit" validate:"required,oneof=KG BOX DRUM PACKET"`
	MinThreshold int    `json:"minThreshold" validate:"gte=0"`
}

// AdjustItemRequest applies a signed stock movement to an item.
type AdjustItemRequest struct {
	Delta int `json:"delta" validate:"required"`
}
