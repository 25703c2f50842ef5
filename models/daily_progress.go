package models

type SleepSample struct {
	DurationMinutes int    `json:"duration"`
	Quality         string `json:"quality,omitempty"` // poor | fair | good | excellent
}

// DailyProgressRecord aggregates one calendar day. The date is the unique
// key: a day's record is created on the first meal or weight entry and
// updated in place afterwards, never duplicated.
type DailyProgressRecord struct {
	Date            Date          `json:"date"`
	Weight          *float64      `json:"weight,omitempty"` // kg
	Meals           []MealRecord  `json:"meals"`
	TotalNutrition  NutritionInfo `json:"total_nutrition"`
	TargetNutrition NutritionInfo `json:"target_nutrition"`
	Mood            string        `json:"mood,omitempty"`
	Sleep           *SleepSample  `json:"sleep,omitempty"`
}
