package performance

import "errors"

// Performance domain errors
var (
	ErrPerformanceNotFound = errors.New("performance review not found")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
)
