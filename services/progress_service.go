package services

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/yuichi-nagakura/diet-app-prototype/models"
	"github.com/yuichi-nagakura/diet-app-prototype/storage"
)

// ProgressService is the date-indexed progress log. One record per calendar
// date; Upsert replaces in place, insertion order is preserved but callers
// that need a date order must sort for themselves.
type ProgressService struct {
	store storage.Store
	now   func() time.Time
}

func NewProgressService(store storage.Store) *ProgressService {
	return &ProgressService{store: store, now: time.Now}
}

func (s *ProgressService) load() ([]models.DailyProgressRecord, error) {
	var records []models.DailyProgressRecord
	if _, err := s.store.Get(storage.KeyProgress, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Upsert replaces the record for rec.Date if one exists, else appends.
func (s *ProgressService) Upsert(rec models.DailyProgressRecord) error {
	records, err := s.load()
	if err != nil {
		return err
	}
	replaced := false
	for i := range records {
		if records[i].Date == rec.Date {
			records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, rec)
	}
	return s.store.Set(storage.KeyProgress, records)
}

func (s *ProgressService) GetByDate(date models.Date) (models.DailyProgressRecord, bool, error) {
	records, err := s.load()
	if err != nil {
		return models.DailyProgressRecord{}, false, err
	}
	for _, r := range records {
		if r.Date == date {
			return r, true, nil
		}
	}
	return models.DailyProgressRecord{}, false, nil
}

func (s *ProgressService) GetAll() ([]models.DailyProgressRecord, error) {
	return s.load()
}

// WeeklyProgress returns the records of the 7-day window ending at end,
// sorted by date ascending.
func (s *ProgressService) WeeklyProgress(end models.Date) ([]models.DailyProgressRecord, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}
	start := end.AddDays(-6)
	var out []models.DailyProgressRecord
	for _, r := range records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// Profile reads the stored user profile; absence is a normal case.
func (s *ProgressService) Profile() (models.UserProfile, bool, error) {
	var p models.UserProfile
	found, err := s.store.Get(storage.KeyUser, &p)
	if err != nil {
		return models.UserProfile{}, false, err
	}
	return p, found, nil
}

// SaveProfile validates and stores the profile (last write wins).
func (s *ProgressService) SaveProfile(p models.UserProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.store.Set(storage.KeyUser, p)
}

// RecordMeal aggregates the entries into an immutable MealRecord, appends it
// to the day's record (creating the record on the first entry of the day)
// and recomputes the day total from every meal's entries. The day's target
// is refreshed from the stored profile; without a profile it stays zero.
func (s *ProgressService) RecordMeal(date models.Date, slot models.MealSlot, entries []models.FoodConsumptionEntry) (models.MealRecord, error) {
	if !slot.Valid() {
		return models.MealRecord{}, &models.ValidationError{
			Field:  "meal_type",
			Reason: "must be breakfast, lunch, dinner or snack",
		}
	}
	if len(entries) == 0 {
		return models.MealRecord{}, &models.ValidationError{
			Field:  "foods",
			Reason: "must not be empty",
		}
	}
	total, err := Aggregate(entries)
	if err != nil {
		return models.MealRecord{}, err
	}

	meal := models.MealRecord{
		ID:             uuid.NewString(),
		Date:           date,
		Slot:           slot,
		Foods:          entries,
		TotalNutrition: total,
		CreatedAt:      s.now(),
	}

	day, found, err := s.GetByDate(date)
	if err != nil {
		return models.MealRecord{}, err
	}
	if !found {
		day = models.DailyProgressRecord{Date: date}
	}
	day.Meals = append(day.Meals, meal)

	// Day total is the aggregation over all foods eaten that day, not a
	// running sum, so replaced or re-saved meals cannot drift it.
	var all []models.FoodConsumptionEntry
	for _, m := range day.Meals {
		all = append(all, m.Foods...)
	}
	day.TotalNutrition, err = Aggregate(all)
	if err != nil {
		return models.MealRecord{}, err
	}

	if profile, ok, err := s.Profile(); err != nil {
		return models.MealRecord{}, err
	} else if ok {
		day.TargetNutrition, err = ComputeTargets(profile)
		if err != nil {
			return models.MealRecord{}, err
		}
	}

	if err := s.Upsert(day); err != nil {
		return models.MealRecord{}, err
	}
	return meal, nil
}

// RecordWeight upserts the day's weight sample, creating the day record if
// this is the first entry of the day.
func (s *ProgressService) RecordWeight(date models.Date, kg float64) error {
	if kg <= 0 {
		return &models.ValidationError{Field: "weight", Reason: "must be positive"}
	}
	day, found, err := s.GetByDate(date)
	if err != nil {
		return err
	}
	if !found {
		day = models.DailyProgressRecord{Date: date}
	}
	day.Weight = &kg
	return s.Upsert(day)
}
