package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// ActivityLevel and DietGoal are closed enumerations used as lookup keys
// for numeric coefficients, not for branching logic.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

type DietGoal string

const (
	GoalLose     DietGoal = "lose"
	GoalMaintain DietGoal = "maintain"
	GoalGain     DietGoal = "gain"
)

func (g DietGoal) Valid() bool {
	switch g {
	case GoalLose, GoalMaintain, GoalGain:
		return true
	}
	return false
}

type UserProfile struct {
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	Height        float64       `json:"height"`         // cm
	CurrentWeight float64       `json:"current_weight"` // kg
	TargetWeight  float64       `json:"target_weight"`  // kg
	ActivityLevel ActivityLevel `json:"activity_level"`
	DietGoal      DietGoal      `json:"diet_goal"`
}

func (p UserProfile) Validate() error {
	if p.Age <= 0 {
		return invalid("age", "must be positive")
	}
	if !p.Gender.Valid() {
		return invalid("gender", "must be male, female or other")
	}
	if p.Height <= 0 {
		return invalid("height", "must be positive")
	}
	if p.CurrentWeight <= 0 {
		return invalid("current_weight", "must be positive")
	}
	if p.TargetWeight <= 0 {
		return invalid("target_weight", "must be positive")
	}
	if !p.ActivityLevel.Valid() {
		return invalid("activity_level", "must be sedentary, light, moderate, active or very_active")
	}
	if !p.DietGoal.Valid() {
		return invalid("diet_goal", "must be lose, maintain or gain")
	}
	return nil
}
