package shift

import "timescan.app/timescan/store"

// legacyConfig is the pre-preset schema: a single flat shift object stored
// under "shiftConfig". Old installations are migrated from it on first load.
type legacyConfig struct {
	Name       string  `json:"name"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	WorkHours  float64 `json:"workHours"`
	BreakHours float64 `json:"breakHours"`
	IsNextDay  bool    `json:"isNextDay"`
}

// builtinPresets seeds a fresh installation with the three stock shifts.
func builtinPresets() []Preset {
	return []Preset{
		{ID: 1, Name: "morning", Icon: "🌅", StartTime: "09:00", EndTime: "19:00", WorkHours: 9, BreakHours: 1, IsNextDay: false, IsDefault: true},
		{ID: 2, Name: "night", Icon: "🌙", StartTime: "16:00", EndTime: "02:00", WorkHours: 9, BreakHours: 1, IsNextDay: true, IsDefault: false},
		{ID: 3, Name: "day", Icon: "☀️", StartTime: "08:00", EndTime: "17:00", WorkHours: 9, BreakHours: 1, IsNextDay: false, IsDefault: false},
	}
}

// loadPresets reads the preset list, picking the first available source:
//
//  1. the "shiftPresets" array — authoritative whenever present, even if the
//     legacy key still exists alongside it;
//  2. the legacy flat "shiftConfig" — synthesized into a single default preset
//     and written back under the new key (the legacy key is left in place);
//  3. nothing stored — seed the built-in presets.
//
// The loaded list is normalized to exactly one default before use, so a
// hand-edited settings file cannot smuggle in zero or multiple defaults.
func loadPresets(settings *store.Settings) ([]Preset, error) {
	var presets []Preset
	ok, err := settings.Get(presetsKey, &presets)
	if err != nil {
		return nil, err
	}
	if ok && len(presets) > 0 {
		return normalizeDefault(presets), nil
	}

	var legacy legacyConfig
	ok, err = settings.Get(legacyKey, &legacy)
	if err != nil {
		return nil, err
	}
	if ok {
		presets = []Preset{{
			ID:         1,
			Name:       legacy.Name,
			StartTime:  legacy.StartTime,
			EndTime:    legacy.EndTime,
			WorkHours:  legacy.WorkHours,
			BreakHours: legacy.BreakHours,
			IsNextDay:  legacy.IsNextDay,
			IsDefault:  true,
		}}
	} else {
		presets = builtinPresets()
	}

	if err := settings.Put(presetsKey, presets); err != nil {
		return nil, err
	}
	return presets, nil
}

// normalizeDefault forces the single-default invariant: the first flagged
// preset wins, and when none is flagged the first preset becomes default.
func normalizeDefault(presets []Preset) []Preset {
	found := false
	for i := range presets {
		if presets[i].IsDefault && !found {
			found = true
			continue
		}
		presets[i].IsDefault = false
	}
	if !found {
		presets[0].IsDefault = true
	}
	return presets
}
