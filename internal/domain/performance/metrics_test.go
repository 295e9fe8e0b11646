package performance

import (
	"errors"
	"testing"
	"time"
)

func TestRatingText(t *testing.T) {
	cases := []struct {
		rating int
		want   string
	}{
		{1, "Poor"},
		{2, "Below Average"},
		{3, "Average"},
		{4, "Good"},
		{5, "Excellent"},
	}
	for _, c := range cases {
		got, err := RatingText(c.rating)
		if err != nil {
			t.Errorf("RatingText(%d) returned error: %v", c.rating, err)
			continue
		}
		if got != c.want {
			t.Errorf("RatingText(%d) = %q, want %q", c.rating, got, c.want)
		}
	}

	for _, rating := range []int{0, 6, -1} {
		if _, err := RatingText(rating); !errors.Is(err, ErrInvalidRating) {
			t.Errorf("RatingText(%d) error = %v, want ErrInvalidRating", rating, err)
		}
	}
}

func TestIsOverdue(t *testing.T) {
	today := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	cases := []struct {
		name string
		next *time.Time
		want bool
	}{
		{"nil next review date", nil, false},
		{"yesterday", &yesterday, true},
		{"today", &today, false},
		{"tomorrow", &tomorrow, false},
	}
	for _, c := range cases {
		if got := IsOverdue(c.next, today); got != c.want {
			t.Errorf("%s: IsOverdue = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestIsOverdueIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2025, 6, 16, 23, 59, 0, 0, time.UTC)
	sameDay := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	if IsOverdue(&sameDay, today) {
		t.Error("a review due today should not be overdue")
	}
}
