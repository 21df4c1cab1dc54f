// Package shift owns the long-lived shift configuration: named presets with a
// single default, and per-employee overrides. It survives log imports and
// process restarts through the settings store.
package shift

import (
	"errors"
	"fmt"
	"sync"

	"timescan.app/timescan/store"
)

const (
	presetsKey   = "shiftPresets"
	overridesKey = "individualShiftConfigs"
	legacyKey    = "shiftConfig"
)

var (
	// ErrLastPreset is returned when a delete would leave the store empty.
	ErrLastPreset = errors.New("cannot delete the last shift preset")
	// ErrPresetNotFound is returned for mutations addressing an unknown id.
	ErrPresetNotFound = errors.New("shift preset not found")
)

// Preset is a reusable work-schedule template. Exactly one preset in the store
// has IsDefault set at any time.
type Preset struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Icon       string  `json:"icon"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	WorkHours  float64 `json:"workHours"`
	BreakHours float64 `json:"breakHours"`
	IsNextDay  bool    `json:"isNextDay"`
	IsDefault  bool    `json:"isDefault"`
}

// Override pins an employee to a preset. The hour fields are a snapshot taken
// at assignment time — editing the preset later does not touch existing
// overrides.
type Override struct {
	PresetID   int     `json:"presetId"`
	WorkHours  float64 `json:"workHours"`
	BreakHours float64 `json:"breakHours"`
	IsNextDay  bool    `json:"isNextDay"`
}

// Store holds the preset list and the override map and keeps both persisted.
// Invariants: at least one preset exists, and exactly one is the default.
type Store struct {
	mu        sync.Mutex
	settings  *store.Settings
	presets   []Preset
	overrides map[string]Override
}

// NewStore loads the persisted configuration, migrating the legacy single
// shift schema or seeding the built-in presets when nothing is stored yet.
func NewStore(settings *store.Settings) (*Store, error) {
	s := &Store{settings: settings, overrides: make(map[string]Override)}

	presets, err := loadPresets(settings)
	if err != nil {
		return nil, err
	}
	s.presets = presets

	if _, err := settings.Get(overridesKey, &s.overrides); err != nil {
		return nil, err
	}
	if s.overrides == nil {
		s.overrides = make(map[string]Override)
	}
	return s, nil
}

// Presets returns a copy of the preset list in stored order.
func (s *Store) Presets() []Preset {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Preset, len(s.presets))
	copy(out, s.presets)
	return out
}

// Default returns the default preset.
func (s *Store) Default() Preset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.defaultLocked()
}

func (s *Store) defaultLocked() Preset {
	for _, p := range s.presets {
		if p.IsDefault {
			return p
		}
	}
	// The store guarantees non-empty with one default; reaching this is a bug.
	panic("shift: no default preset configured")
}

// Create inserts a new preset with the next free id. New presets are never
// the default; promote explicitly with SetDefault.
func (s *Store) Create(p Preset) (Preset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, existing := range s.presets {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	p.IsDefault = false
	s.presets = append(s.presets, p)

	if err := s.persistPresets(); err != nil {
		return Preset{}, err
	}
	return p, nil
}

// Update replaces the fields of the preset with p.ID in place. Setting
// IsDefault forces every other preset off the default in the same transition;
// clearing IsDefault on the current default is ignored, as that would leave
// the store without one.
func (s *Store) Update(p Preset) (Preset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(p.ID)
	if i < 0 {
		return Preset{}, fmt.Errorf("preset %d: %w", p.ID, ErrPresetNotFound)
	}

	if p.IsDefault {
		for j := range s.presets {
			s.presets[j].IsDefault = false
		}
	} else if s.presets[i].IsDefault {
		p.IsDefault = true
	}
	s.presets[i] = p

	if err := s.persistPresets(); err != nil {
		return Preset{}, err
	}
	return p, nil
}

// SetDefault makes the preset with id the single default.
func (s *Store) SetDefault(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("preset %d: %w", id, ErrPresetNotFound)
	}
	for j := range s.presets {
		s.presets[j].IsDefault = j == i
	}
	return s.persistPresets()
}

// Delete removes the preset with id. The last remaining preset cannot be
// deleted; deleting the default promotes the first remaining preset in the
// same operation.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("preset %d: %w", id, ErrPresetNotFound)
	}
	if len(s.presets) == 1 {
		return ErrLastPreset
	}

	wasDefault := s.presets[i].IsDefault
	s.presets = append(s.presets[:i], s.presets[i+1:]...)
	if wasDefault {
		s.presets[0].IsDefault = true
	}
	return s.persistPresets()
}

func (s *Store) indexOf(id int) int {
	for i, p := range s.presets {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persistPresets() error {
	return s.settings.Put(presetsKey, s.presets)
}
