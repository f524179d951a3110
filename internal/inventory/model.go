package inventory

// ItemType distinguishes production inputs, packaging stock and sellable
// finished goods.
type ItemType string

const (
	TypeRawMaterial  ItemType = "Raw Material"
	TypePackaging    ItemType = "Packaging"
	TypeFinishedGood ItemType = "Finished Good"
)

// Valid reports whether t is a declared item type.
func (t ItemType) Valid() bool {
	return t == TypeRawMaterial || t == TypePackaging || t == TypeFinishedGood
}

// Item is one stocked resource. An item is low on stock when its quantity
// falls strictly below MinThreshold.
type Item struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         ItemType `json:"type"`
	Quantity     int      `json:"quantity"`
	Unit         string   `json:"unit"`
	MinThreshold int      `json:"minThreshold"`
}

// LowStock reports whether the item is below its reorder threshold.
func (i Item) LowStock() bool {
	return i.Quantity < i.MinThreshold
}
