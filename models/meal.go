package models

import "time"

type MealSlot string

const (
	MealBreakfast MealSlot = "breakfast"
	MealLunch     MealSlot = "lunch"
	MealDinner    MealSlot = "dinner"
	MealSnack     MealSlot = "snack"
)

func (m MealSlot) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// MealRecord is immutable after creation. TotalNutrition is always the
// aggregation of Foods, recomputed at build time, never patched afterwards.
type MealRecord struct {
	ID             string                 `json:"id"`
	Date           Date                   `json:"date"`
	Slot           MealSlot               `json:"meal_type"`
	Foods          []FoodConsumptionEntry `json:"foods"`
	TotalNutrition NutritionInfo          `json:"total_nutrition"`
	CreatedAt      time.Time              `json:"created_at"`
}
