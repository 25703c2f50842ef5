package services

import (
	"sort"
	"sync"
	"time"

	"github.com/yuichi-nagakura/diet-app-prototype/catalog"
	"github.com/yuichi-nagakura/diet-app-prototype/models"
	"github.com/yuichi-nagakura/diet-app-prototype/storage"
)

// Stats are the live statistics achievement rules are evaluated against.
type Stats struct {
	TotalDays      int     `json:"total_days"`
	TotalMeals     int     `json:"total_meals"`
	CurrentStreak  int     `json:"current_streak"`
	LongestStreak  int     `json:"longest_streak"`
	WeightChangeKG float64 `json:"weight_change_kg"` // first sample − latest sample
	BreakfastDays  int     `json:"breakfast_days"`
	FiberGoalDays  int     `json:"fiber_goal_days"`
	ProteinGoalRun int     `json:"protein_goal_run"`
}

type AchievementService struct {
	store storage.Store
	log   *ProgressService
	hub   *RealtimeHub // optional; nil means no broadcast
	defs  []models.AchievementDefinition
	now   func() time.Time
	mu    sync.Mutex // guards the read-modify-write of the unlock log
}

func NewAchievementService(store storage.Store, log *ProgressService, hub *RealtimeHub) *AchievementService {
	return &AchievementService{
		store: store,
		log:   log,
		hub:   hub,
		defs:  catalog.Achievements(),
		now:   time.Now,
	}
}

// ComputeStats derives every rule input from the progress log in one pass
// over the records.
func (s *AchievementService) ComputeStats(anchor models.Date) (Stats, error) {
	records, err := s.log.GetAll()
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	breakfastDays := map[models.Date]bool{}
	var weighed []models.DailyProgressRecord
	for _, r := range records {
		if len(r.Meals) > 0 {
			st.TotalDays++
		}
		st.TotalMeals += len(r.Meals)
		for _, m := range r.Meals {
			if m.Slot == models.MealBreakfast {
				breakfastDays[r.Date] = true
			}
		}
		if len(r.Meals) > 0 && r.TargetNutrition.Fiber > 0 &&
			r.TotalNutrition.Fiber >= r.TargetNutrition.Fiber {
			st.FiberGoalDays++
		}
		if r.Weight != nil {
			weighed = append(weighed, r)
		}
	}
	st.BreakfastDays = len(breakfastDays)

	// Fewer than two weight samples yields no measurable change.
	if len(weighed) >= 2 {
		sort.Slice(weighed, func(i, j int) bool { return weighed[i].Date.Before(weighed[j].Date) })
		st.WeightChangeKG = *weighed[0].Weight - *weighed[len(weighed)-1].Weight
	}

	if st.CurrentStreak, err = s.log.CurrentStreak(anchor); err != nil {
		return Stats{}, err
	}
	if st.LongestStreak, err = s.log.LongestStreak(); err != nil {
		return Stats{}, err
	}
	st.ProteinGoalRun = proteinGoalRun(records, anchor)

	return st, nil
}

// proteinGoalRun counts consecutive days ending at the anchor whose protein
// intake met the day's target. Same anchor-gap rule as the meal streak.
func proteinGoalRun(records []models.DailyProgressRecord, anchor models.Date) int {
	met := make(map[models.Date]bool, len(records))
	for _, r := range records {
		if len(r.Meals) > 0 && r.TargetNutrition.Protein > 0 &&
			r.TotalNutrition.Protein >= r.TargetNutrition.Protein {
			met[r.Date] = true
		}
	}
	run := 0
	for i := 0; i < streakLookbackDays; i++ {
		if met[anchor.AddDays(-i)] {
			run++
		} else if i > 0 {
			break
		}
	}
	return run
}

func currentFor(rule models.AchievementRule, st Stats) int {
	switch rule {
	case models.RuleCurrentStreak:
		return st.CurrentStreak
	case models.RuleTotalMeals:
		return st.TotalMeals
	case models.RuleWeightLoss:
		if st.WeightChangeKG > 0 {
			return int(st.WeightChangeKG)
		}
		return 0
	case models.RuleBreakfastDays:
		return st.BreakfastDays
	case models.RuleFiberGoalDays:
		return st.FiberGoalDays
	case models.RuleProteinGoalRun:
		return st.ProteinGoalRun
	}
	return 0
}

// Evaluate compares every catalog definition against the live statistics.
// The first time a definition's progress reaches its target a single
// AchievementUnlockRecord is persisted; re-evaluating later never duplicates
// it or touches its original timestamp. New unlocks are broadcast on the hub.
func (s *AchievementService) Evaluate(anchor models.Date) ([]models.AchievementStatus, error) {
	// Evaluate runs from read endpoints too, so it cannot rely on the HTTP
	// write lock; serialize here so a first unlock is minted exactly once.
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.ComputeStats(anchor)
	if err != nil {
		return nil, err
	}

	var unlocks []models.AchievementUnlockRecord
	if _, err := s.store.Get(storage.KeyAchievements, &unlocks); err != nil {
		return nil, err
	}
	unlockedAt := make(map[string]time.Time, len(unlocks))
	for _, u := range unlocks {
		unlockedAt[u.AchievementID] = u.UnlockedAt
	}

	statuses := make([]models.AchievementStatus, 0, len(s.defs))
	changed := false
	for _, def := range s.defs {
		current := currentFor(def.Rule, st)
		display := current
		if display > def.Target {
			display = def.Target
		}

		ts, unlocked := unlockedAt[def.ID]
		if !unlocked && current >= def.Target {
			ts = s.now()
			unlocks = append(unlocks, models.AchievementUnlockRecord{
				AchievementID: def.ID,
				UnlockedAt:    ts,
			})
			unlocked = true
			changed = true
			if s.hub != nil {
				s.hub.Broadcast(map[string]any{
					"kind":        "achievement.unlocked",
					"achievement": def,
					"unlocked_at": ts,
				})
			}
		}

		status := models.AchievementStatus{
			Definition: def,
			Current:    display,
			Target:     def.Target,
			Unlocked:   unlocked,
		}
		if unlocked {
			t := ts
			status.UnlockedAt = &t
		}
		statuses = append(statuses, status)
	}

	if changed {
		if err := s.store.Set(storage.KeyAchievements, unlocks); err != nil {
			return nil, err
		}
	}
	return statuses, nil
}
