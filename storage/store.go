package storage

import "errors"

// Store is the injected persistence collaborator: a flat key-value space
// that round-trips JSON documents. Each call is an independent, immediately
// durable write; the core never assumes multi-key transactions.
type Store interface {
	// Get unmarshals the value at key into out. The second return is false
	// when the key is absent (absence is a normal case, not an error).
	Get(key string, out any) (bool, error)
	Set(key string, value any) error
	Remove(key string) error
	Clear() error
}

// ErrUnavailable wraps read/write failures of the underlying store.
var ErrUnavailable = errors.New("store unavailable")

// Keys for the documents the app persists.
const (
	KeyUser         = "diet_app_user"
	KeyProgress     = "diet_app_progress"
	KeyAchievements = "diet_app_achievements"
	KeyAdvice       = "diet_app_ai_advice"
	KeyLessons      = "diet_app_lessons"
)
