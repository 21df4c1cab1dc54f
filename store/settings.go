// Package store persists configuration as key/value rows in a local sqlite
// database, one JSON document per key. It is the Go counterpart of the
// scanner station's per-device settings storage.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type Setting struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (Setting) TableName() string {
	return "settings"
}

// Settings is the generic key/value persistence collaborator. Values are
// marshalled to JSON on write and unmarshalled on read.
type Settings struct {
	db *gorm.DB
}

// Open opens (or creates) the settings database at path. Use ":memory:" for
// an ephemeral store.
func Open(path string) (*Settings, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings db: %w", err)
	}
	if err := db.AutoMigrate(&Setting{}); err != nil {
		return nil, fmt.Errorf("failed to migrate settings db: %w", err)
	}
	return &Settings{db: db}, nil
}

// Get unmarshals the value stored under key into out. The second return is
// false when the key does not exist.
func (s *Settings) Get(key string, out any) (bool, error) {
	var row Setting
	err := s.db.First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(row.Value), out); err != nil {
		return false, fmt.Errorf("corrupt setting %s: %w", key, err)
	}
	return true, nil
}

// Put writes value under key, replacing any previous value. The write is
// synchronous: when Put returns nil the row is durable.
func (s *Settings) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal setting %s: %w", key, err)
	}
	row := Setting{Key: key, Value: string(raw), UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Settings) Delete(key string) error {
	if err := s.db.Delete(&Setting{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete setting %s: %w", key, err)
	}
	return nil
}
