package employee

import (
	"time"
)

// Gender categories
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

func Genders() []string {
	return []string{GenderMale, GenderFemale, GenderOther}
}

type Employee struct {
	ID            string
	Name          string
	Email         string
	PhoneNumber   string
	Address       string
	DateOfJoining time.Time
	DepartmentID  string
	Gender        *string
	Salary        *float64
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	DepartmentName *string
}
