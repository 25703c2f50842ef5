// Package catalog holds the app's read-only reference data: the food
// database, the achievement definitions, the lesson series and the advice
// templates. The core treats all of it as injected input and never mutates it.
package catalog

import (
	"strings"

	"github.com/yuichi-nagakura/diet-app-prototype/models"
)

var foods = []models.FoodItem{
	// 和食
	{
		ID:      "food_001",
		Name:    "ご飯（白米）",
		Serving: models.Serving{Size: 150, Unit: "g"},
		Nutrition: models.NutritionInfo{
			Calories: 252, Protein: 3.8, Carbs: 55.7, Fat: 0.5,
			Fiber: 0.5, Sugar: 0.2, Sodium: 2, Cholesterol: 0,
		},
	},
	{
		ID:      "food_002",
		Name:    "味噌汁（わかめ・豆腐）",
		Serving: models.Serving{Size: 200, Unit: "ml"},
		Nutrition: models.NutritionInfo{
			Calories: 41, Protein: 3.2, Carbs: 4.8, Fat: 1.2,
			Fiber: 1.1, Sugar: 0.8, Sodium: 820, Cholesterol: 0,
		},
	},
	{
		ID:      "food_003",
		Name:    "鮭の塩焼き",
		Serving: models.Serving{Size: 100, Unit: "g"},
		Nutrition: models.NutritionInfo{
			Calories: 133, Protein: 22.3, Carbs: 0.1, Fat: 4.1,
			Fiber: 0, Sugar: 0, Sodium: 66, Cholesterol: 59,
		},
	},
	{
		ID:      "food_004",
		Name:    "納豆",
		Serving: models.Serving{Size: 45, Unit: "g"},
		Nutrition: models.NutritionInfo{
			Calories: 90, Protein: 7.4, Carbs: 5.4, Fat: 4.9,
			Fiber: 3.0, Sugar: 2.2, Sodium: 2, Cholesterol: 0,
		},
	},
	// 洋食
	{
		ID:      "food_005",
		Name:    "グリーンサラダ",
		Serving: models.Serving{Size: 150, Unit: "g"},
		Nutrition: models.NutritionInfo{
			Calories: 25, Protein: 1.5, Carbs: 4.8, Fat: 0.2,
			Fiber: 2.1, Sugar: 2.3, Sodium: 15, Cholesterol: 0,
		},
	},
	{
		ID:      "food_006",
		Name:    "チキンサラダ",
		Serving: models.Serving{Size: 200, Unit: "g"},
		Nutrition: models.NutritionInfo{
			Calories: 165, Protein: 25.3, Carbs: 6.2, Fat: 5.8,
			Fiber: 2.5, Sugar: 3.1, Sodium: 320, Cholesterol: 72,
		},
	},
	// コンビニ商品
	{
		ID:      "food_007",
		Name:    "おにぎり（鮭）",
		Brand:   "セブンイレブン",
		Barcode: "4901234567890",
		Serving: models.Serving{Size: 110, Unit: "g"},
		Nutrition: models.NutritionInfo{
			Calories: 188, Protein: 4.1, Carbs: 39.8, Fat: 1.5,
			Fiber: 0.5, Sugar: 0.3, Sodium: 380, Cholesterol: 8,
		},
	},
	{
		ID:      "food_008",
		Name:    "サラダチキン（プレーン）",
		Brand:   "セブンイレブン",
		Barcode: "4901234567891",
		Serving: models.Serving{Size: 115, Unit: "g"},
		Nutrition: models.NutritionInfo{
			Calories: 113, Protein: 24.1, Carbs: 0.3, Fat: 1.2,
			Fiber: 0, Sugar: 0.1, Sodium: 346, Cholesterol: 83,
		},
	},
}

// Foods returns a copy of the catalog so callers cannot mutate it.
func Foods() []models.FoodItem {
	out := make([]models.FoodItem, len(foods))
	copy(out, foods)
	return out
}

func FindFood(id string) (models.FoodItem, bool) {
	for _, f := range foods {
		if f.ID == id {
			return f, true
		}
	}
	return models.FoodItem{}, false
}

func FindFoodByBarcode(code string) (models.FoodItem, bool) {
	for _, f := range foods {
		if f.Barcode != "" && f.Barcode == code {
			return f, true
		}
	}
	return models.FoodItem{}, false
}

// SearchFoods matches the query as a substring of the name or brand.
// An empty query returns the whole catalog.
func SearchFoods(query string) []models.FoodItem {
	query = strings.TrimSpace(query)
	if query == "" {
		return Foods()
	}
	var out []models.FoodItem
	for _, f := range foods {
		if strings.Contains(f.Name, query) || strings.Contains(f.Brand, query) {
			out = append(out, f)
		}
	}
	return out
}
