package services

import (
	"fmt"

	"github.com/yuichi-nagakura/diet-app-prototype/models"
)

// Aggregate combines consumption entries into one nutrition total. Each
// entry contributes its food's per-serving nutrition scaled by
// quantity / serving size; every field of the result is rounded to one
// decimal place. Pure function: empty input yields the all-zero record.
func Aggregate(entries []models.FoodConsumptionEntry) (models.NutritionInfo, error) {
	var total models.NutritionInfo
	for i, e := range entries {
		if e.Quantity < 0 {
			return models.NutritionInfo{}, &models.ValidationError{
				Field:  fmt.Sprintf("foods[%d].quantity", i),
				Reason: "must not be negative",
			}
		}
		// Serving sizes come from static reference data and must never be
		// zero; a malformed entry is rejected rather than divided through.
		if e.FoodItem.Serving.Size <= 0 {
			return models.NutritionInfo{}, &models.ValidationError{
				Field:  fmt.Sprintf("foods[%d].food_item.serving.size", i),
				Reason: "must be positive",
			}
		}
		total = total.Add(e.FoodItem.Nutrition.Scale(e.Quantity / e.FoodItem.Serving.Size))
	}
	return total.Round1(), nil
}
