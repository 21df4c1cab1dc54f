package shift

import "fmt"

// Assign pins employeeID to the preset with presetID, snapshotting the
// preset's hour fields into the override.
func (s *Store) Assign(employeeID string, presetID int) (Override, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(presetID)
	if i < 0 {
		return Override{}, fmt.Errorf("preset %d: %w", presetID, ErrPresetNotFound)
	}
	p := s.presets[i]

	ov := Override{
		PresetID:   p.ID,
		WorkHours:  p.WorkHours,
		BreakHours: p.BreakHours,
		IsNextDay:  p.IsNextDay,
	}
	s.overrides[employeeID] = ov

	if err := s.persistOverrides(); err != nil {
		return Override{}, err
	}
	return ov, nil
}

// ClearOverride puts employeeID back on the default preset. Clearing an
// employee without an override is a no-op.
func (s *Store) ClearOverride(employeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.overrides[employeeID]; !ok {
		return nil
	}
	delete(s.overrides, employeeID)
	return s.persistOverrides()
}

// Overrides returns a copy of the override map.
func (s *Store) Overrides() map[string]Override {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Override, len(s.overrides))
	for id, ov := range s.overrides {
		out[id] = ov
	}
	return out
}

// HasOverride reports whether employeeID is pinned to a preset.
func (s *Store) HasOverride(employeeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.overrides[employeeID]
	return ok
}

func (s *Store) persistOverrides() error {
	return s.settings.Put(overridesKey, s.overrides)
}
