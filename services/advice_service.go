package services

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/yuichi-nagakura/diet-app-prototype/catalog"
	"github.com/yuichi-nagakura/diet-app-prototype/models"
	"github.com/yuichi-nagakura/diet-app-prototype/storage"
)

// AdviceService picks a coaching template and keeps the advice log.
// Selection takes an explicit random source so tests can seed it.
type AdviceService struct {
	store storage.Store
	rng   *rand.Rand
	now   func() time.Time
}

func NewAdviceService(store storage.Store, rng *rand.Rand) *AdviceService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &AdviceService{store: store, rng: rng, now: time.Now}
}

// GenerateForToday selects one template, stamps it for today and appends it
// to the advice log.
func (s *AdviceService) GenerateForToday() (models.Advice, error) {
	templates := catalog.AdviceTemplates()
	t := templates[s.rng.Intn(len(templates))]

	advice := models.Advice{
		ID:          uuid.NewString(),
		Date:        models.DateOf(s.now()),
		Type:        t.Type,
		Title:       t.Title,
		Content:     t.Content,
		Priority:    t.Priority,
		ActionItems: t.ActionItems,
	}

	var log []models.Advice
	if _, err := s.store.Get(storage.KeyAdvice, &log); err != nil {
		return models.Advice{}, err
	}
	log = append(log, advice)
	if err := s.store.Set(storage.KeyAdvice, log); err != nil {
		return models.Advice{}, err
	}
	return advice, nil
}

// Latest returns up to limit advice entries, newest date first.
func (s *AdviceService) Latest(limit int) ([]models.Advice, error) {
	if limit <= 0 {
		limit = 5
	}
	var log []models.Advice
	if _, err := s.store.Get(storage.KeyAdvice, &log); err != nil {
		return nil, err
	}
	sort.SliceStable(log, func(i, j int) bool { return log[j].Date.Before(log[i].Date) })
	if len(log) > limit {
		log = log[:limit]
	}
	return log, nil
}

// ByDate returns the advice generated on a given day.
func (s *AdviceService) ByDate(date models.Date) ([]models.Advice, error) {
	var log []models.Advice
	if _, err := s.store.Get(storage.KeyAdvice, &log); err != nil {
		return nil, err
	}
	var out []models.Advice
	for _, a := range log {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}
