package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// kvRecord is one persisted document. The app's whole state fits a handful
// of keys, so a single table with last-write-wins semantics is enough.
type kvRecord struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     []byte `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

func (kvRecord) TableName() string { return "kv_records" }

// Gorm is the Postgres-backed Store.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// Migrate creates the backing table. Called from config.InitDB.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&kvRecord{})
}

func (g *Gorm) Get(key string, out any) (bool, error) {
	var rec kvRecord
	err := g.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: get %s: %v", ErrUnavailable, key, err)
	}
	if err := json.Unmarshal(rec.Value, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (g *Gorm) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	rec := kvRecord{Key: key, Value: raw}
	if err := g.db.Save(&rec).Error; err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrUnavailable, key, err)
	}
	return nil
}

func (g *Gorm) Remove(key string) error {
	if err := g.db.Delete(&kvRecord{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("%w: remove %s: %v", ErrUnavailable, key, err)
	}
	return nil
}

func (g *Gorm) Clear() error {
	err := g.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&kvRecord{}).Error
	if err != nil {
		return fmt.Errorf("%w: clear: %v", ErrUnavailable, err)
	}
	return nil
}
