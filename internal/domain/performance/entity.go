package performance

import (
	"time"
)

// Rating bounds
const (
	RatingMin = 1
	RatingMax = 5
)

type Performance struct {
	ID                  string
	EmployeeID          string
	Rating              int
	ReviewDate          time.Time
	Reviewer            string
	Comments            *string
	Goals               *string
	Achievements        *string
	AreasForImprovement *string
	NextReviewDate      *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// DTO
	EmployeeName   *string
	DepartmentName *string
}
