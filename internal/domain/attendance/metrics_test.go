package attendance

import (
	"testing"
	"time"
)

func clockOn(day time.Time, hour, min, sec int) *time.Time {
	t := time.Date(day.Year(), day.Month(), day.Day(), hour, min, sec, 0, time.UTC)
	return &t
}

func TestIsLate(t *testing.T) {
	day := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		checkIn *time.Time
		want    bool
	}{
		{"nil check-in", nil, false},
		{"well before threshold", clockOn(day, 8, 30, 0), false},
		{"exactly 09:00:00", clockOn(day, 9, 0, 0), false},
		{"one second past", clockOn(day, 9, 0, 1), true},
		{"mid morning", clockOn(day, 10, 15, 0), true},
	}
	for _, c := range cases {
		if got := IsLate(c.checkIn); got != c.want {
			t.Errorf("%s: IsLate = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestWorkingHours(t *testing.T) {
	day := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	if got := WorkingHours(nil, clockOn(day, 17, 0, 0)); got != nil {
		t.Errorf("WorkingHours with nil check-in = %v, want nil", *got)
	}
	if got := WorkingHours(clockOn(day, 9, 0, 0), nil); got != nil {
		t.Errorf("WorkingHours with nil check-out = %v, want nil", *got)
	}

	got := WorkingHours(clockOn(day, 9, 0, 0), clockOn(day, 17, 30, 0))
	if got == nil || *got != 8.5 {
		t.Errorf("WorkingHours(09:00, 17:30) = %v, want 8.5", got)
	}

	// Check-out before check-in is not corrected.
	got = WorkingHours(clockOn(day, 22, 0, 0), clockOn(day, 6, 0, 0))
	if got == nil || *got != -16 {
		t.Errorf("WorkingHours(22:00, 06:00) = %v, want -16", got)
	}
}
