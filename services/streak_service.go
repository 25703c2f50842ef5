package services

import (
	"sort"

	"github.com/yuichi-nagakura/diet-app-prototype/models"
)

// streakLookbackDays bounds the backward scan so it always terminates.
const streakLookbackDays = 365

// CurrentStreak counts consecutive days with at least one recorded meal,
// walking backward from the anchor. The anchor day itself never breaks the
// scan: a gap on the anchor is skipped, a gap on any earlier day ends it.
// Always recomputed from the log, never cached.
func (s *ProgressService) CurrentStreak(anchor models.Date) (int, error) {
	logged, err := s.mealDays()
	if err != nil {
		return 0, err
	}
	streak := 0
	for i := 0; i < streakLookbackDays; i++ {
		if logged[anchor.AddDays(-i)] {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak, nil
}

// LongestStreak computes the true historical maximum run of consecutive
// meal-logged days over the full log.
func (s *ProgressService) LongestStreak() (int, error) {
	logged, err := s.mealDays()
	if err != nil {
		return 0, err
	}
	dates := make([]models.Date, 0, len(logged))
	for d := range logged {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	longest, run := 0, 0
	for i, d := range dates {
		if i > 0 && dates[i-1].AddDays(1) == d {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest, nil
}

// mealDays indexes the log by date, keeping only days with a non-empty
// meal list. A weight-only record does not extend a streak.
func (s *ProgressService) mealDays() (map[models.Date]bool, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}
	logged := make(map[models.Date]bool, len(records))
	for _, r := range records {
		if len(r.Meals) > 0 {
			logged[r.Date] = true
		}
	}
	return logged, nil
}
