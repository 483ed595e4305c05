package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOpeningHours_IsOpenAt(t *testing.T) {
	// 2026-03-09 is a Monday.
	monday := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 9, hour, minute, 0, 0, time.UTC)
	}
	hours := OpeningHours{
		"monday":   {Open: "08:00", Close: "22:00"},
		"saturday": {Open: "22:00", Close: "02:00"},
	}

	tests := []struct {
		name  string
		hours OpeningHours
		at    time.Time
		want  bool
	}{
		{"no schedule is always open", nil, monday(3, 0), true},
		{"inside window", hours, monday(12, 30), true},
		{"opening minute is inclusive", hours, monday(8, 0), true},
		{"closing minute is inclusive", hours, monday(22, 0), true},
		{"before opening", hours, monday(7, 59), false},
		{"after closing", hours, monday(22, 1), false},
		{"day missing from schedule", hours, monday(12, 0).AddDate(0, 0, 1), false},
		{"overnight window late", hours, time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC), true},
		{"overnight window early", hours, time.Date(2026, 3, 14, 1, 30, 0, 0, time.UTC), true},
		{"overnight window midday", hours, time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hours.IsOpenAt(tt.at))
		})
	}
}

func TestOpeningHours_Validate(t *testing.T) {
	assert.NoError(t, OpeningHours(nil).Validate())
	assert.NoError(t, OpeningHours{"sunday": {Open: "00:00", Close: "23:59"}}.Validate())

	assert.Error(t, OpeningHours{"Monday": {Open: "08:00", Close: "22:00"}}.Validate())
	assert.Error(t, OpeningHours{"monday": {Open: "24:00", Close: "22:00"}}.Validate())
	assert.Error(t, OpeningHours{"monday": {Open: "08:00", Close: "22:60"}}.Validate())
	assert.Error(t, OpeningHours{"monday": {Open: "8:00", Close: "22:00"}}.Validate())
	assert.Error(t, OpeningHours{"monday": {Open: "08:00", Close: ""}}.Validate())
}
