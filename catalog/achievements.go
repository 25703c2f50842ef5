package catalog

import "github.com/yuichi-nagakura/diet-app-prototype/models"

var achievements = []models.AchievementDefinition{
	{
		ID:          "ach_001",
		Kind:        models.AchievementStreak,
		Name:        "3日連続記録",
		Description: "3日連続で食事を記録しました",
		Icon:        "🔥",
		Rule:        models.RuleCurrentStreak,
		Target:      3,
	},
	{
		ID:          "ach_002",
		Kind:        models.AchievementStreak,
		Name:        "7日連続記録",
		Description: "1週間連続で食事を記録しました",
		Icon:        "⭐",
		Rule:        models.RuleCurrentStreak,
		Target:      7,
	},
	{
		ID:          "ach_003",
		Kind:        models.AchievementStreak,
		Name:        "30日連続記録",
		Description: "1ヶ月連続で食事を記録しました",
		Icon:        "🏆",
		Rule:        models.RuleCurrentStreak,
		Target:      30,
	},
	{
		ID:          "ach_004",
		Kind:        models.AchievementMilestone,
		Name:        "初めての記録",
		Description: "最初の食事記録を完了",
		Icon:        "🎯",
		Rule:        models.RuleTotalMeals,
		Target:      1,
	},
	{
		ID:          "ach_005",
		Kind:        models.AchievementMilestone,
		Name:        "50食記録達成",
		Description: "累計50食の記録を達成",
		Icon:        "🍽️",
		Rule:        models.RuleTotalMeals,
		Target:      50,
	},
	{
		ID:          "ach_006",
		Kind:        models.AchievementMilestone,
		Name:        "100食記録達成",
		Description: "累計100食の記録を達成",
		Icon:        "🎉",
		Rule:        models.RuleTotalMeals,
		Target:      100,
	},
	{
		ID:          "ach_007",
		Kind:        models.AchievementBadge,
		Name:        "早起き記録者",
		Description: "朝食を7日間記録",
		Icon:        "🌅",
		Rule:        models.RuleBreakfastDays,
		Target:      7,
	},
	{
		ID:          "ach_008",
		Kind:        models.AchievementBadge,
		Name:        "野菜マスター",
		Description: "1日の食物繊維目標を達成",
		Icon:        "🥗",
		Rule:        models.RuleFiberGoalDays,
		Target:      1,
	},
	{
		ID:          "ach_009",
		Kind:        models.AchievementBadge,
		Name:        "タンパク質チャンピオン",
		Description: "タンパク質摂取目標を3日連続達成",
		Icon:        "💪",
		Rule:        models.RuleProteinGoalRun,
		Target:      3,
	},
	{
		ID:          "ach_010",
		Kind:        models.AchievementMilestone,
		Name:        "1kg減量達成",
		Description: "目標に向けて1kg減量",
		Icon:        "⚖️",
		Rule:        models.RuleWeightLoss,
		Target:      1,
	},
}

// Achievements returns the fixed, versioned definition catalog.
func Achievements() []models.AchievementDefinition {
	out := make([]models.AchievementDefinition, len(achievements))
	copy(out, achievements)
	return out
}
