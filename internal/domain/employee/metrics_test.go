package employee

import (
	"testing"
	"time"
)

func TestYearsOfService(t *testing.T) {
	today := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		joining time.Time
		want    int
	}{
		{"joined today", today, 0},
		{"364 days ago", today.AddDate(0, 0, -364), 0},
		{"365 days ago", today.AddDate(0, 0, -365), 1},
		{"730 days ago", today.AddDate(0, 0, -730), 2},
		{"ten years of days", today.AddDate(0, 0, -3650), 10},
	}
	for _, c := range cases {
		if got := YearsOfService(c.joining, today); got != c.want {
			t.Errorf("%s: YearsOfService = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestAttendanceRate(t *testing.T) {
	cases := []struct {
		present, total int
		want           float64
	}{
		{0, 0, 0},
		{0, 10, 0},
		{7, 10, 70},
		{10, 10, 100},
	}
	for _, c := range cases {
		if got := AttendanceRate(c.present, c.total); got != c.want {
			t.Errorf("AttendanceRate(%d, %d) = %v, want %v", c.present, c.total, got, c.want)
		}
	}
}
