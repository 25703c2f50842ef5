package services

import (
	"math"

	"github.com/yuichi-nagakura/diet-app-prototype/models"
)

// activityFactors maps activity levels to their TDEE multiplier. This is the
// single source of truth for valid levels.
var activityFactors = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// Fixed daily targets independent of the profile.
const (
	targetFiberG    = 25
	targetSugarG    = 50
	targetSodiumMG  = 2300
	targetCholestMG = 300

	caloriesDeficit = 500 // lose: ~0.5 kg/week
	caloriesSurplus = 300 // gain

	kcalPerGramProt = 4
	kcalPerGramCarb = 4
	kcalPerGramFat  = 9
)

// ComputeTargets derives the daily calorie and macro targets from a profile:
// Mifflin-St Jeor BMR, scaled by the activity factor to TDEE, adjusted for
// the diet goal, then split 25/45/30 into protein/carbs/fat. Deterministic
// and side-effect free; outputs are rounded to whole units.
func ComputeTargets(p models.UserProfile) (models.NutritionInfo, error) {
	if err := p.Validate(); err != nil {
		return models.NutritionInfo{}, err
	}
	factor, ok := activityFactors[p.ActivityLevel]
	if !ok {
		return models.NutritionInfo{}, &models.ValidationError{
			Field:  "activity_level",
			Reason: "must be sedentary, light, moderate, active or very_active",
		}
	}

	var bmr float64
	if p.Gender == models.GenderMale {
		bmr = 88.362 + 13.397*p.CurrentWeight + 4.799*p.Height - 5.677*float64(p.Age)
	} else {
		bmr = 447.593 + 9.247*p.CurrentWeight + 3.098*p.Height - 4.330*float64(p.Age)
	}

	tdee := bmr * factor

	target := tdee
	switch p.DietGoal {
	case models.GoalLose:
		target = tdee - caloriesDeficit
	case models.GoalGain:
		target = tdee + caloriesSurplus
	}

	return models.NutritionInfo{
		Calories:    math.Round(target),
		Protein:     math.Round(target * 0.25 / kcalPerGramProt),
		Carbs:       math.Round(target * 0.45 / kcalPerGramCarb),
		Fat:         math.Round(target * 0.30 / kcalPerGramFat),
		Fiber:       targetFiberG,
		Sugar:       targetSugarG,
		Sodium:      targetSodiumMG,
		Cholesterol: targetCholestMG,
	}, nil
}
