// Package report contains the non-generic records printers consume.
package report

import "time"

// Stage tells whether an entry was taken before or after clearing.
type Stage string

const (
	StageInitial Stage = "initial"
	StageCleared Stage = "cleared"
)

// Entry is a snapshot of a single container.
type Entry struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Stage   Stage  `json:"stage"`
	Present bool   `json:"present"`
	Value   string `json:"value,omitempty"`
}

// Summary aggregates the entries seen during a walkthrough.
type Summary struct {
	Title         string
	Containers    int
	PresentBefore int
	PresentAfter  int
	ItemsBefore   int
	ItemsAfter    int
	Views         int
	StartTime     time.Time
	EndTime       time.Time
}

// Record adds e to the summary. Containers are counted from initial entries only.
func (s *Summary) Record(e Entry) {
	switch e.Stage {
	case StageInitial:
		s.Containers++
		if e.Present {
			s.PresentBefore++
		}
	case StageCleared:
		if e.Present {
			s.PresentAfter++
		}
	}
}

// Duration returns how long the walkthrough took.
// It is zero until EndTime is set.
func (s *Summary) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return 0
	}

	return s.EndTime.Sub(s.StartTime)
}
