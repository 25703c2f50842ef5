package models

import "time"

type AchievementKind string

const (
	AchievementStreak    AchievementKind = "streak"
	AchievementMilestone AchievementKind = "milestone"
	AchievementBadge     AchievementKind = "badge"
)

// AchievementRule names the live statistic a definition's threshold is
// compared against.
type AchievementRule string

const (
	RuleCurrentStreak  AchievementRule = "current_streak"
	RuleTotalMeals     AchievementRule = "total_meals"
	RuleWeightLoss     AchievementRule = "weight_loss_kg"
	RuleBreakfastDays  AchievementRule = "breakfast_days"
	RuleFiberGoalDays  AchievementRule = "fiber_goal_days"
	RuleProteinGoalRun AchievementRule = "protein_goal_run"
)

// AchievementDefinition is a static catalog entry. The catalog is versioned
// by ID; definitions are never mutated at runtime.
type AchievementDefinition struct {
	ID          string          `json:"id"`
	Kind        AchievementKind `json:"type"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Rule        AchievementRule `json:"rule"`
	Target      int             `json:"target"`
}

// AchievementUnlockRecord is written exactly once, the first time a
// definition's progress reaches its target. Never mutated or deleted.
type AchievementUnlockRecord struct {
	AchievementID string    `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

// AchievementStatus is the evaluator's per-definition output.
type AchievementStatus struct {
	Definition AchievementDefinition `json:"definition"`
	Current    int                   `json:"current"`
	Target     int                   `json:"target"`
	Unlocked   bool                  `json:"unlocked"`
	UnlockedAt *time.Time            `json:"unlocked_at,omitempty"`
}
