package services

import (
	"errors"
	"testing"
	"time"

	"github.com/yuichi-nagakura/diet-app-prototype/storage"
)

func TestLessonsStartUncompleted(t *testing.T) {
	s := NewLessonService(storage.NewMemory())
	lessons, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(lessons) != 5 {
		t.Fatalf("want the 5-lesson series, got %d", len(lessons))
	}
	for _, l := range lessons {
		if l.Completed {
			t.Errorf("lesson %s should start uncompleted", l.ID)
		}
	}
}

func TestNextAdvancesThroughSeries(t *testing.T) {
	s := NewLessonService(storage.NewMemory())

	next, found, err := s.Next()
	if err != nil || !found {
		t.Fatalf("Next: found=%v err=%v", found, err)
	}
	if next.ID != "lesson_001" {
		t.Errorf("first lesson = %s, want lesson_001", next.ID)
	}

	if _, err := s.Complete("lesson_001"); err != nil {
		t.Fatal(err)
	}
	next, found, err = s.Next()
	if err != nil || !found {
		t.Fatalf("Next after complete: found=%v err=%v", found, err)
	}
	if next.ID != "lesson_002" {
		t.Errorf("next lesson = %s, want lesson_002", next.ID)
	}
}

func TestNextAbsentWhenAllDone(t *testing.T) {
	s := NewLessonService(storage.NewMemory())
	lessons, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range lessons {
		if _, err := s.Complete(l.ID); err != nil {
			t.Fatal(err)
		}
	}
	_, found, err := s.Next()
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("Next should report absence once every lesson is done")
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	s := NewLessonService(storage.NewMemory())
	t0 := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return t0 }

	first, err := s.Complete("lesson_001")
	if err != nil {
		t.Fatal(err)
	}
	s.now = func() time.Time { return t0.Add(time.Hour) }
	second, err := s.Complete("lesson_001")
	if err != nil {
		t.Fatal(err)
	}
	if !second.CompletedAt.Equal(*first.CompletedAt) {
		t.Errorf("re-completing moved the timestamp: %v → %v", first.CompletedAt, second.CompletedAt)
	}
}

func TestCompleteUnknownLesson(t *testing.T) {
	s := NewLessonService(storage.NewMemory())
	_, err := s.Complete("lesson_999")
	if err == nil {
		t.Fatal("completing an unknown lesson should fail")
	}
	if !errors.Is(err, ErrLessonNotFound) {
		t.Errorf("error should match ErrLessonNotFound, got %v", err)
	}
}
