package models

// Serving is the reference quantity a FoodItem's nutrition is scaled to.
type Serving struct {
	Size float64 `json:"size"`
	Unit string  `json:"unit"`
}

// FoodItem is immutable catalog data. Log entries hold a copy of the item
// so historical records survive later catalog changes.
type FoodItem struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Brand     string        `json:"brand,omitempty"`
	Barcode   string        `json:"barcode,omitempty"`
	Serving   Serving       `json:"serving"`
	Nutrition NutritionInfo `json:"nutrition"`
}

// FoodConsumptionEntry pairs a food with the consumed quantity, expressed in
// the same unit as the item's serving. The unit is denormalized for display.
type FoodConsumptionEntry struct {
	FoodItem FoodItem `json:"food_item"`
	Quantity float64  `json:"quantity"`
	Unit     string   `json:"unit"`
}
