package shift

import "timescan.app/timescan/core"

// Resolve returns the effective shift configuration for an employee: the
// pinned override snapshot when one exists, otherwise the current default
// preset's hours. Employees without an override always track the live default,
// never a copy of it.
//
// Resolve panics if the store holds no default — the mutation contract makes
// that state unreachable, so it is an internal-consistency bug, not a
// recoverable condition.
func (s *Store) Resolve(employeeID string) core.ShiftConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ov, ok := s.overrides[employeeID]; ok {
		return core.ShiftConfig{
			WorkHours:  ov.WorkHours,
			BreakHours: ov.BreakHours,
			IsNextDay:  ov.IsNextDay,
		}
	}

	def := s.defaultLocked()
	return core.ShiftConfig{
		WorkHours:  def.WorkHours,
		BreakHours: def.BreakHours,
		IsNextDay:  def.IsNextDay,
	}
}
