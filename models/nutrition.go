package models

import "math"

// NutritionInfo mirrors a food label: energy plus seven nutrients.
// Units: calories kcal; protein, carbs, fat, fiber, sugar g; sodium, cholesterol mg.
type NutritionInfo struct {
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Sugar       float64 `json:"sugar"`
	Sodium      float64 `json:"sodium"`
	Cholesterol float64 `json:"cholesterol"`
}

func (n NutritionInfo) Add(o NutritionInfo) NutritionInfo {
	return NutritionInfo{
		Calories:    n.Calories + o.Calories,
		Protein:     n.Protein + o.Protein,
		Carbs:       n.Carbs + o.Carbs,
		Fat:         n.Fat + o.Fat,
		Fiber:       n.Fiber + o.Fiber,
		Sugar:       n.Sugar + o.Sugar,
		Sodium:      n.Sodium + o.Sodium,
		Cholesterol: n.Cholesterol + o.Cholesterol,
	}
}

func (n NutritionInfo) Scale(ratio float64) NutritionInfo {
	return NutritionInfo{
		Calories:    n.Calories * ratio,
		Protein:     n.Protein * ratio,
		Carbs:       n.Carbs * ratio,
		Fat:         n.Fat * ratio,
		Fiber:       n.Fiber * ratio,
		Sugar:       n.Sugar * ratio,
		Sodium:      n.Sodium * ratio,
		Cholesterol: n.Cholesterol * ratio,
	}
}

// Round1 rounds every field to one decimal place, half away from zero.
func (n NutritionInfo) Round1() NutritionInfo {
	return NutritionInfo{
		Calories:    round1(n.Calories),
		Protein:     round1(n.Protein),
		Carbs:       round1(n.Carbs),
		Fat:         round1(n.Fat),
		Fiber:       round1(n.Fiber),
		Sugar:       round1(n.Sugar),
		Sodium:      round1(n.Sodium),
		Cholesterol: round1(n.Cholesterol),
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
