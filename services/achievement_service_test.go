package services

import (
	"sync"
	"testing"
	"time"

	"github.com/yuichi-nagakura/diet-app-prototype/models"
	"github.com/yuichi-nagakura/diet-app-prototype/storage"
)

// nutrientEntry builds a one-serving entry with exact protein and fiber
// content, for driving the intake-target rules.
func nutrientEntry(protein, fiber float64) models.FoodConsumptionEntry {
	f := models.FoodItem{
		ID:      "test_dense",
		Name:    "test",
		Serving: models.Serving{Size: 100, Unit: "g"},
		Nutrition: models.NutritionInfo{
			Calories: 400, Protein: protein, Fiber: fiber,
		},
	}
	return models.FoodConsumptionEntry{FoodItem: f, Quantity: 100, Unit: "g"}
}

func newAchievements(t *testing.T) (*AchievementService, *ProgressService) {
	t.Helper()
	store := storage.NewMemory()
	progress := NewProgressService(store)
	svc := NewAchievementService(store, progress, nil)
	return svc, progress
}

func statusByID(t *testing.T, statuses []models.AchievementStatus, id string) models.AchievementStatus {
	t.Helper()
	for _, s := range statuses {
		if s.Definition.ID == id {
			return s
		}
	}
	t.Fatalf("achievement %s not in evaluator output", id)
	return models.AchievementStatus{}
}

func TestEvaluateFirstMealUnlocks(t *testing.T) {
	svc, progress := newAchievements(t)
	anchor := date(10)
	logMealDay(t, progress, anchor)

	statuses, err := svc.Evaluate(anchor)
	if err != nil {
		t.Fatal(err)
	}
	first := statusByID(t, statuses, "ach_004")
	if !first.Unlocked || first.UnlockedAt == nil {
		t.Error("first meal milestone should unlock immediately")
	}
	streak3 := statusByID(t, statuses, "ach_001")
	if streak3.Unlocked {
		t.Error("3-day streak must stay locked after one day")
	}
	if streak3.Current != 1 {
		t.Errorf("streak progress = %d, want 1", streak3.Current)
	}
}

func TestEvaluateStreakAchievement(t *testing.T) {
	svc, progress := newAchievements(t)
	anchor := date(10)
	for i := 0; i < 3; i++ {
		logMealDay(t, progress, anchor.AddDays(-i))
	}

	statuses, err := svc.Evaluate(anchor)
	if err != nil {
		t.Fatal(err)
	}
	if !statusByID(t, statuses, "ach_001").Unlocked {
		t.Error("3-day streak should be unlocked")
	}
	seven := statusByID(t, statuses, "ach_002")
	if seven.Unlocked {
		t.Error("7-day streak should stay locked at 3")
	}
	if seven.Current != 3 {
		t.Errorf("7-day streak progress = %d, want 3", seven.Current)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	svc, progress := newAchievements(t)
	t0 := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return t0 }

	anchor := date(10)
	logMealDay(t, progress, anchor)

	first, err := svc.Evaluate(anchor)
	if err != nil {
		t.Fatal(err)
	}
	// later re-evaluation with unchanged statistics
	svc.now = func() time.Time { return t0.Add(48 * time.Hour) }
	second, err := svc.Evaluate(anchor)
	if err != nil {
		t.Fatal(err)
	}

	a := statusByID(t, first, "ach_004")
	b := statusByID(t, second, "ach_004")
	if !b.Unlocked {
		t.Fatal("achievement lost its unlock on re-evaluation")
	}
	if !a.UnlockedAt.Equal(*b.UnlockedAt) {
		t.Errorf("unlock timestamp changed: %v → %v", a.UnlockedAt, b.UnlockedAt)
	}

	var unlocks []models.AchievementUnlockRecord
	if _, err := svc.store.Get(storage.KeyAchievements, &unlocks); err != nil {
		t.Fatal(err)
	}
	seen := map[string]int{}
	for _, u := range unlocks {
		seen[u.AchievementID]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("duplicate unlock record for %s (%d)", id, n)
		}
	}
}

func TestWeightLossAchievement(t *testing.T) {
	svc, progress := newAchievements(t)
	anchor := date(10)

	// one sample is not a measurable change
	if err := progress.RecordWeight(date(1), 65); err != nil {
		t.Fatal(err)
	}
	statuses, err := svc.Evaluate(anchor)
	if err != nil {
		t.Fatal(err)
	}
	if statusByID(t, statuses, "ach_010").Unlocked {
		t.Fatal("weight-loss achievement must stay locked with fewer than two samples")
	}

	// 65 kg on day 1, 63 kg on day 10 → 2 kg lost
	if err := progress.RecordWeight(date(10), 63); err != nil {
		t.Fatal(err)
	}
	statuses, err = svc.Evaluate(anchor)
	if err != nil {
		t.Fatal(err)
	}
	loss := statusByID(t, statuses, "ach_010")
	if !loss.Unlocked {
		t.Error("2 kg loss should unlock the 1 kg target")
	}

	// re-evaluating must not mint a second record
	if _, err := svc.Evaluate(anchor); err != nil {
		t.Fatal(err)
	}
	var unlocks []models.AchievementUnlockRecord
	if _, err := svc.store.Get(storage.KeyAchievements, &unlocks); err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, u := range unlocks {
		if u.AchievementID == "ach_010" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("want exactly one unlock record, got %d", count)
	}
}

func TestWeightGainKeepsLossLocked(t *testing.T) {
	svc, progress := newAchievements(t)
	if err := progress.RecordWeight(date(1), 60); err != nil {
		t.Fatal(err)
	}
	if err := progress.RecordWeight(date(5), 62); err != nil {
		t.Fatal(err)
	}
	statuses, err := svc.Evaluate(date(10))
	if err != nil {
		t.Fatal(err)
	}
	if statusByID(t, statuses, "ach_010").Unlocked {
		t.Error("weight gain must not unlock the loss achievement")
	}
}

func TestBreakfastBadgeCountsDistinctDays(t *testing.T) {
	svc, progress := newAchievements(t)
	anchor := date(20)
	breakfast := []models.FoodConsumptionEntry{entry("food_002", 200)}
	for i := 0; i < 7; i++ {
		if _, err := progress.RecordMeal(anchor.AddDays(-i), models.MealBreakfast, breakfast); err != nil {
			t.Fatal(err)
		}
	}
	// a second breakfast the same day must not double-count
	if _, err := progress.RecordMeal(anchor, models.MealBreakfast, breakfast); err != nil {
		t.Fatal(err)
	}

	statuses, err := svc.Evaluate(anchor)
	if err != nil {
		t.Fatal(err)
	}
	badge := statusByID(t, statuses, "ach_007")
	if badge.Current != 7 {
		t.Errorf("breakfast days = %d, want 7", badge.Current)
	}
	if !badge.Unlocked {
		t.Error("7 breakfast days should unlock the badge")
	}
}

func TestFiberGoalAchievement(t *testing.T) {
	svc, progress := newAchievements(t)
	if err := progress.SaveProfile(testProfile); err != nil {
		t.Fatal(err)
	}
	anchor := date(10)

	// a logged day below the 25 g fiber target does not count
	if _, err := progress.RecordMeal(anchor.AddDays(-1), models.MealLunch,
		[]models.FoodConsumptionEntry{nutrientEntry(10, 5)}); err != nil {
		t.Fatal(err)
	}
	statuses, err := svc.Evaluate(anchor)
	if err != nil {
		t.Fatal(err)
	}
	veggie := statusByID(t, statuses, "ach_008")
	if veggie.Unlocked || veggie.Current != 0 {
		t.Errorf("5 g of fiber must not count: unlocked=%v current=%d", veggie.Unlocked, veggie.Current)
	}

	// 30 g on the anchor day meets it
	if _, err := progress.RecordMeal(anchor, models.MealLunch,
		[]models.FoodConsumptionEntry{nutrientEntry(10, 30)}); err != nil {
		t.Fatal(err)
	}
	statuses, err = svc.Evaluate(anchor)
	if err != nil {
		t.Fatal(err)
	}
	veggie = statusByID(t, statuses, "ach_008")
	if !veggie.Unlocked || veggie.Current != 1 {
		t.Errorf("one fiber-target day should unlock: unlocked=%v current=%d", veggie.Unlocked, veggie.Current)
	}
}

func TestFiberGoalRequiresStoredTargets(t *testing.T) {
	svc, progress := newAchievements(t)
	anchor := date(10)

	// no profile saved: the day's targets are zero and can never be met
	if _, err := progress.RecordMeal(anchor, models.MealLunch,
		[]models.FoodConsumptionEntry{nutrientEntry(10, 30)}); err != nil {
		t.Fatal(err)
	}
	statuses, err := svc.Evaluate(anchor)
	if err != nil {
		t.Fatal(err)
	}
	if statusByID(t, statuses, "ach_008").Unlocked {
		t.Error("fiber badge must stay locked while no targets are stored")
	}
}

func TestProteinGoalRunAchievement(t *testing.T) {
	svc, progress := newAchievements(t)
	if err := progress.SaveProfile(testProfile); err != nil {
		t.Fatal(err)
	}
	anchor := date(10)

	// the stored profile's protein target is 101 g; 120 g meets it
	for i := 0; i < 3; i++ {
		if _, err := progress.RecordMeal(anchor.AddDays(-i), models.MealDinner,
			[]models.FoodConsumptionEntry{nutrientEntry(120, 0)}); err != nil {
			t.Fatal(err)
		}
	}
	statuses, err := svc.Evaluate(anchor)
	if err != nil {
		t.Fatal(err)
	}
	champ := statusByID(t, statuses, "ach_009")
	if !champ.Unlocked || champ.Current != 3 {
		t.Errorf("3 consecutive protein-target days should unlock: unlocked=%v current=%d",
			champ.Unlocked, champ.Current)
	}
}

func TestProteinRunBrokenByMissedDay(t *testing.T) {
	svc, progress := newAchievements(t)
	if err := progress.SaveProfile(testProfile); err != nil {
		t.Fatal(err)
	}
	anchor := date(10)

	// met two days ago and today, but under target in between
	if _, err := progress.RecordMeal(anchor.AddDays(-2), models.MealDinner,
		[]models.FoodConsumptionEntry{nutrientEntry(120, 0)}); err != nil {
		t.Fatal(err)
	}
	if _, err := progress.RecordMeal(anchor.AddDays(-1), models.MealDinner,
		[]models.FoodConsumptionEntry{nutrientEntry(10, 0)}); err != nil {
		t.Fatal(err)
	}
	if _, err := progress.RecordMeal(anchor, models.MealDinner,
		[]models.FoodConsumptionEntry{nutrientEntry(120, 0)}); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.ComputeStats(anchor)
	if err != nil {
		t.Fatal(err)
	}
	if stats.ProteinGoalRun != 1 {
		t.Errorf("protein run = %d, want 1 (broken by the missed day)", stats.ProteinGoalRun)
	}
	statuses, err := svc.Evaluate(anchor)
	if err != nil {
		t.Fatal(err)
	}
	if statusByID(t, statuses, "ach_009").Unlocked {
		t.Error("a broken run must not unlock the 3-day target")
	}
}

func TestEvaluateConcurrentFirstUnlock(t *testing.T) {
	svc, progress := newAchievements(t)
	anchor := date(10)
	logMealDay(t, progress, anchor)

	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := svc.Evaluate(anchor); err != nil {
				t.Error(err)
			}
		}()
	}
	close(start)
	wg.Wait()

	var unlocks []models.AchievementUnlockRecord
	if _, err := svc.store.Get(storage.KeyAchievements, &unlocks); err != nil {
		t.Fatal(err)
	}
	count := 0
	var minted time.Time
	for _, u := range unlocks {
		if u.AchievementID == "ach_004" {
			count++
			minted = u.UnlockedAt
		}
	}
	if count != 1 {
		t.Fatalf("want exactly one unlock record after concurrent evaluation, got %d", count)
	}

	statuses, err := svc.Evaluate(anchor)
	if err != nil {
		t.Fatal(err)
	}
	if got := statusByID(t, statuses, "ach_004").UnlockedAt; got == nil || !got.Equal(minted) {
		t.Errorf("unlock timestamp moved: %v → %v", minted, got)
	}
}

func TestComputeStatsTotals(t *testing.T) {
	svc, progress := newAchievements(t)
	anchor := date(10)
	logMealDay(t, progress, anchor)
	logMealDay(t, progress, anchor) // second meal, same day
	logMealDay(t, progress, anchor.AddDays(-1))

	stats, err := svc.ComputeStats(anchor)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalMeals != 3 {
		t.Errorf("total meals = %d, want 3", stats.TotalMeals)
	}
	if stats.TotalDays != 2 {
		t.Errorf("total days = %d, want 2", stats.TotalDays)
	}
	if stats.CurrentStreak != 2 {
		t.Errorf("current streak = %d, want 2", stats.CurrentStreak)
	}
}
