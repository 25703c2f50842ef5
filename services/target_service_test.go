package services

import (
	"testing"

	"github.com/yuichi-nagakura/diet-app-prototype/models"
)

func TestComputeTargetsFemaleModerateLose(t *testing.T) {
	// BMR = 447.593 + 9.247*60 + 3.098*160 - 4.330*30 = 1368.193
	// TDEE = 1368.193 * 1.55 = 2120.699...; lose → -500 → 1620.699 → 1621
	targets, err := ComputeTargets(testProfile)
	if err != nil {
		t.Fatalf("ComputeTargets error: %v", err)
	}
	if targets.Calories != 1621 {
		t.Errorf("calories = %v, want 1621", targets.Calories)
	}
	if targets.Protein != 101 { // 1620.699 * 0.25 / 4
		t.Errorf("protein = %v, want 101", targets.Protein)
	}
	if targets.Carbs != 182 { // 1620.699 * 0.45 / 4
		t.Errorf("carbs = %v, want 182", targets.Carbs)
	}
	if targets.Fat != 54 { // 1620.699 * 0.30 / 9
		t.Errorf("fat = %v, want 54", targets.Fat)
	}
}

func TestComputeTargetsFixedNutrients(t *testing.T) {
	targets, err := ComputeTargets(testProfile)
	if err != nil {
		t.Fatal(err)
	}
	if targets.Fiber != 25 || targets.Sugar != 50 || targets.Sodium != 2300 || targets.Cholesterol != 300 {
		t.Errorf("fixed nutrient targets wrong: %+v", targets)
	}
}

func TestComputeTargetsGoalAdjustment(t *testing.T) {
	maintain := testProfile
	maintain.DietGoal = models.GoalMaintain
	gain := testProfile
	gain.DietGoal = models.GoalGain

	tMaintain, err := ComputeTargets(maintain)
	if err != nil {
		t.Fatal(err)
	}
	tGain, err := ComputeTargets(gain)
	if err != nil {
		t.Fatal(err)
	}
	tLose, err := ComputeTargets(testProfile)
	if err != nil {
		t.Fatal(err)
	}

	if tMaintain.Calories-tLose.Calories != 500 {
		t.Errorf("lose should be maintain-500, got %v vs %v", tLose.Calories, tMaintain.Calories)
	}
	if tGain.Calories-tMaintain.Calories != 300 {
		t.Errorf("gain should be maintain+300, got %v vs %v", tGain.Calories, tMaintain.Calories)
	}
}

func TestComputeTargetsOtherUsesFemaleConstants(t *testing.T) {
	female := testProfile
	other := testProfile
	other.Gender = models.GenderOther

	tFemale, err := ComputeTargets(female)
	if err != nil {
		t.Fatal(err)
	}
	tOther, err := ComputeTargets(other)
	if err != nil {
		t.Fatal(err)
	}
	if tFemale != tOther {
		t.Errorf("gender=other should use the female formula: %+v vs %+v", tFemale, tOther)
	}
}

func TestComputeTargetsDeterministic(t *testing.T) {
	a, err := ComputeTargets(testProfile)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ComputeTargets(testProfile)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same profile yielded different targets: %+v vs %+v", a, b)
	}
}

func TestComputeTargetsRejectsBadProfile(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.UserProfile)
		field  string
	}{
		{"zero age", func(p *models.UserProfile) { p.Age = 0 }, "age"},
		{"negative height", func(p *models.UserProfile) { p.Height = -1 }, "height"},
		{"zero weight", func(p *models.UserProfile) { p.CurrentWeight = 0 }, "current_weight"},
		{"bad activity", func(p *models.UserProfile) { p.ActivityLevel = "couch" }, "activity_level"},
		{"bad goal", func(p *models.UserProfile) { p.DietGoal = "bulk" }, "diet_goal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := testProfile
			tc.mutate(&p)
			_, err := ComputeTargets(p)
			var ve *models.ValidationError
			if !asValidation(err, &ve) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Errorf("field = %q, want %q", ve.Field, tc.field)
			}
		})
	}
}
