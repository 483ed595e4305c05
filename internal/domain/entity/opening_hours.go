package entity

import (
	"strconv"
	"strings"
	"time"

	domainerrors "sportera/internal/domain/errors"
)

// DailyHours is one day's opening window as "HH:MM" 24h clock times.
type DailyHours struct {
	Open  string // Opening time, e.g. "08:00".
	Close string // Closing time, e.g. "22:00". Earlier than Open means the window runs past midnight.
}

// OpeningHours maps lowercase English weekday names to the day's window.
// A nil or empty map means the place never closes.
type OpeningHours map[string]DailyHours

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Validate checks weekday keys and clock formats.
func (h OpeningHours) Validate() error {
	for day, hours := range h {
		if _, ok := weekdayNames[day]; !ok {
			return domainerrors.NewValidationErrorf("openingHours", "unknown weekday %q", day)
		}
		if _, err := parseClock(hours.Open); err != nil {
			return domainerrors.NewValidationErrorf("openingHours", "%s open time %q is not HH:MM", day, hours.Open)
		}
		if _, err := parseClock(hours.Close); err != nil {
			return domainerrors.NewValidationErrorf("openingHours", "%s close time %q is not HH:MM", day, hours.Close)
		}
	}

	return nil
}

// Clone returns an independent copy.
func (h OpeningHours) Clone() OpeningHours {
	if h == nil {
		return nil
	}

	cloned := make(OpeningHours, len(h))
	for day, hours := range h {
		cloned[day] = hours
	}

	return cloned
}

// IsOpenAt reports whether t falls inside the window for t's weekday, both ends inclusive.
// No schedule at all means always open; a weekday missing from the schedule means closed.
func (h OpeningHours) IsOpenAt(t time.Time) bool {
	if len(h) == 0 {
		return true
	}

	hours, ok := h[strings.ToLower(t.Weekday().String())]
	if !ok {
		return false
	}

	open, err := parseClock(hours.Open)
	if err != nil {
		return false
	}
	closing, err := parseClock(hours.Close)
	if err != nil {
		return false
	}

	current := t.Hour()*60 + t.Minute()
	if open <= closing {
		return current >= open && current <= closing
	}

	return current >= open || current <= closing
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	hh, mm, found := strings.Cut(s, ":")
	if !found || len(hh) != 2 || len(mm) != 2 {
		return 0, strconv.ErrSyntax
	}

	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 23 {
		return 0, strconv.ErrRange
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, strconv.ErrRange
	}

	return hours*60 + minutes, nil
}
