package core

import (
	"io"
	"sync"

	"github.com/google/uuid"
)

// Filter narrows the record listing the way the original import screen does:
// by exact date, by employee, and by an inclusive HH:MM time-of-day range.
// Zero values mean "no constraint".
type Filter struct {
	Date       string
	EmployeeID string
	TimeFrom   string
	TimeTo     string
}

func (f Filter) matches(r PunchEvent) bool {
	if f.Date != "" && r.Date != f.Date {
		return false
	}
	if f.EmployeeID != "" && r.EmployeeID != f.EmployeeID {
		return false
	}
	if f.TimeFrom != "" && r.Time < f.TimeFrom {
		return false
	}
	if f.TimeTo != "" && r.Time > f.TimeTo {
		return false
	}
	return true
}

// Stats summarizes the current import for the dashboard counters.
type Stats struct {
	Employees int `json:"totalEmployees"`
	Records   int `json:"totalRecords"`
	Days      int `json:"totalDays"`
	Filtered  int `json:"filteredRecords"`
}

// Session owns the state of one reconciliation run: the punch list from the
// last import plus the active filter. A new import replaces everything — there
// is no merging with the previous log. The mutex only guards the swap and the
// filter; all derived computation is pure.
type Session struct {
	mu       sync.RWMutex
	importID string
	result   *ParseResult
	filter   Filter
}

func NewSession() *Session {
	return &Session{result: &ParseResult{}}
}

// Import parses the log and replaces all session state. Returns the id
// assigned to this import.
func (s *Session) Import(r io.Reader) (string, error) {
	res, err := ParseLog(r)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()

	s.mu.Lock()
	s.importID = id
	s.result = res
	s.filter = Filter{}
	s.mu.Unlock()

	return id, nil
}

func (s *Session) ImportID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.importID
}

// SetFilter replaces the active filter. Reset by passing a zero Filter.
func (s *Session) SetFilter(f Filter) {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
}

// Records returns all punches of the current import in file order.
func (s *Session) Records() []PunchEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result.Records
}

// FilteredRecords returns the punches matching the active filter, in file order.
func (s *Session) FilteredRecords() []PunchEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered()
}

func (s *Session) filtered() []PunchEvent {
	out := make([]PunchEvent, 0, len(s.result.Records))
	for _, r := range s.result.Records {
		if s.filter.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Employees returns the first-seen employee directory of the current import.
func (s *Session) Employees() []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result.Employees
}

// Dates returns the distinct dates of the current import, in first-seen order.
func (s *Session) Dates() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result.Dates
}

func (s *Session) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Employees: len(s.result.Employees),
		Records:   len(s.result.Records),
		Days:      len(s.result.Dates),
		Filtered:  len(s.filtered()),
	}
}
