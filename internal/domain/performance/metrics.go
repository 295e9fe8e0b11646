package performance

import (
	"time"
)

var ratingLabels = map[int]string{
	1: "Poor",
	2: "Below Average",
	3: "Average",
	4: "Good",
	5: "Excellent",
}

// RatingText returns the label for a rating. Ratings are validated at the
// input boundary, so an out-of-range value here is a programming error.
func RatingText(rating int) (string, error) {
	label, ok := ratingLabels[rating]
	if !ok {
		return "", ErrInvalidRating
	}
	return label, nil
}

// IsOverdue reports whether the next review date has passed, i.e. it is
// strictly before today. A missing next review date is never overdue.
func IsOverdue(nextReviewDate *time.Time, today time.Time) bool {
	if nextReviewDate == nil {
		return false
	}
	next := time.Date(nextReviewDate.Year(), nextReviewDate.Month(), nextReviewDate.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return next.Before(day)
}
