package engine

import (
	"fmt"
	"time"

	"github.com/tartampluch/birthday-board/internal/config"
)

// Window is the run of seven consecutive calendar dates being reported
// on. It is derived entirely from a single reference date.
type Window struct {
	Start time.Time
}

// NewWindow builds the window from an optional (day, month) pair; both
// zero means "start from now". The year is always taken from the clock,
// never inferred: a (day, month) near year-end combined with a "now"
// near year-start therefore cannot produce a window spanning New Year's
// Day. That is a known limitation of the reference-date scheme.
func NewWindow(now time.Time, day, month int) (Window, error) {
	if day == 0 && month == 0 {
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return Window{Start: start}, nil
	}

	if day < 1 || month < 1 || month > 12 {
		return Window{}, fmt.Errorf("%w: day=%d month=%d", ErrInvalidDate, day, month)
	}

	start := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes Feb 31 to Mar 2; treat any shift as a bad request.
	if start.Day() != day || start.Month() != time.Month(month) {
		return Window{}, fmt.Errorf("%w: day=%d month=%d", ErrInvalidDate, day, month)
	}
	return Window{Start: start}, nil
}

// End returns the last covered date (start + 6 days).
func (w Window) End() time.Time {
	return w.Start.AddDate(0, 0, config.WindowDays-1)
}

// Dates returns the seven covered dates in order, start inclusive.
func (w Window) Dates() []time.Time {
	dates := make([]time.Time, config.WindowDays)
	for i := range dates {
		dates[i] = w.Start.AddDate(0, 0, i)
	}
	return dates
}

// Contains reports whether a (day, month) pair falls on any covered
// date. Out-of-range pairs simply never match.
func (w Window) Contains(day, month int) bool {
	for _, d := range w.Dates() {
		if d.Day() == day && int(d.Month()) == month {
			return true
		}
	}
	return false
}
