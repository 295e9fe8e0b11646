package employee

import (
	"time"
)

// YearsOfService returns whole years between date of joining and today,
// as elapsed days divided by 365. No leap-year or calendar-month
// correction is applied.
func YearsOfService(dateOfJoining, today time.Time) int {
	days := int(today.Sub(dateOfJoining).Hours() / 24)
	return days / 365
}

// AttendanceRate returns present/total as a percentage. A total of zero
// yields 0 rather than a division error.
func AttendanceRate(presentCount, totalCount int) float64 {
	if totalCount == 0 {
		return 0
	}
	return float64(presentCount) / float64(totalCount) * 100
}
