package attendance

import (
	"time"
)

// Late threshold: strictly after 09:00:00.
const lateThresholdSeconds = 9 * 3600

// IsLate reports whether the check-in clock time is strictly after 09:00.
// A missing check-in is never late.
func IsLate(checkIn *time.Time) bool {
	if checkIn == nil {
		return false
	}
	h, m, s := checkIn.Clock()
	return h*3600+m*60+s > lateThresholdSeconds
}

// WorkingHours returns the elapsed time between check-in and check-out in
// fractional hours, or nil when either time is missing. Both instants sit
// on the attendance date, so overnight shifts are not handled: a check-out
// before check-in yields a negative value.
func WorkingHours(checkIn, checkOut *time.Time) *float64 {
	if checkIn == nil || checkOut == nil {
		return nil
	}
	hours := checkOut.Sub(*checkIn).Hours()
	return &hours
}
