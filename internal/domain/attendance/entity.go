package attendance

import (
	"time"
)

// Attendance statuses
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusHalfDay = "half_day"
)

func Statuses() []string {
	return []string{StatusPresent, StatusAbsent, StatusLate, StatusHalfDay}
}

type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	Status       string
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	EmployeeName   *string
	DepartmentName *string
}
