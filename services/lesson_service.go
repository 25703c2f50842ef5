package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/yuichi-nagakura/diet-app-prototype/catalog"
	"github.com/yuichi-nagakura/diet-app-prototype/models"
	"github.com/yuichi-nagakura/diet-app-prototype/storage"
)

// ErrLessonNotFound reports a lesson ID outside the series.
var ErrLessonNotFound = errors.New("lesson not found")

type LessonService struct {
	store storage.Store
	now   func() time.Time
}

func NewLessonService(store storage.Store) *LessonService {
	return &LessonService{store: store, now: time.Now}
}

// List returns the lesson series in order. Completion state comes from the
// store; before anything is completed the static catalog is returned as is.
func (s *LessonService) List() ([]models.Lesson, error) {
	var lessons []models.Lesson
	found, err := s.store.Get(storage.KeyLessons, &lessons)
	if err != nil {
		return nil, err
	}
	if !found {
		return catalog.Lessons(), nil
	}
	return lessons, nil
}

// Next returns the first uncompleted lesson; found=false once all are done.
func (s *LessonService) Next() (models.Lesson, bool, error) {
	lessons, err := s.List()
	if err != nil {
		return models.Lesson{}, false, err
	}
	for _, l := range lessons {
		if !l.Completed {
			return l, true, nil
		}
	}
	return models.Lesson{}, false, nil
}

// Complete marks a lesson done, stamping completed_at once. Completing an
// already-completed lesson is a no-op that keeps the original timestamp.
func (s *LessonService) Complete(id string) (models.Lesson, error) {
	lessons, err := s.List()
	if err != nil {
		return models.Lesson{}, err
	}
	for i := range lessons {
		if lessons[i].ID != id {
			continue
		}
		if !lessons[i].Completed {
			lessons[i].Completed = true
			t := s.now()
			lessons[i].CompletedAt = &t
			if err := s.store.Set(storage.KeyLessons, lessons); err != nil {
				return models.Lesson{}, err
			}
		}
		return lessons[i], nil
	}
	return models.Lesson{}, fmt.Errorf("lesson %s: %w", id, ErrLessonNotFound)
}
