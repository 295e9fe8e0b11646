package employee

import (
	"time"

	"github.com/workforcehq/hr-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	PhoneNumber   string   `json:"phone_number"`
	Address       string   `json:"address"`
	DateOfJoining string   `json:"date_of_joining"`
	DepartmentID  string   `json:"department_id"`
	Gender        *string  `json:"gender"`
	Salary        *float64 `json:"salary"`
	IsActive      *bool    `json:"is_active"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid email address",
		})
	}

	if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}

	if r.Gender != nil && !validator.IsInSlice(*r.Gender, Genders()) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be one of M, F, O",
		})
	}

	if r.Salary != nil && *r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string   `json:"-"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	PhoneNumber   string   `json:"phone_number"`
	Address       string   `json:"address"`
	DateOfJoining string   `json:"date_of_joining"`
	DepartmentID  string   `json:"department_id"`
	Gender        *string  `json:"gender"`
	Salary        *float64 `json:"salary"`
	IsActive      *bool    `json:"is_active"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{
		Name:          r.Name,
		Email:         r.Email,
		PhoneNumber:   r.PhoneNumber,
		Address:       r.Address,
		DateOfJoining: r.DateOfJoining,
		DepartmentID:  r.DepartmentID,
		Gender:        r.Gender,
		Salary:        r.Salary,
		IsActive:      r.IsActive,
	}
	return create.Validate()
}

type EmployeeFilter struct {
	DepartmentID *string
	IsActive     *bool
	Name         *string
	Page         int
	Limit        int
}

type EmployeeResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	PhoneNumber    string   `json:"phone_number"`
	Address        string   `json:"address"`
	DateOfJoining  string   `json:"date_of_joining"`
	DepartmentID   string   `json:"department_id"`
	Department     *string  `json:"department"`
	Gender         *string  `json:"gender"`
	Salary         *float64 `json:"salary"`
	IsActive       bool     `json:"is_active"`
	YearsOfService int      `json:"years_of_service"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

// EmployeeDetailResponse adds the current-month attendance rate to the
// list shape.
type EmployeeDetailResponse struct {
	EmployeeResponse
	AttendanceRate float64 `json:"attendance_rate"`
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	TotalItems int64              `json:"total_items"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

func ToResponse(e Employee, today time.Time) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		Name:           e.Name,
		Email:          e.Email,
		PhoneNumber:    e.PhoneNumber,
		Address:        e.Address,
		DateOfJoining:  e.DateOfJoining.Format("2006-01-02"),
		DepartmentID:   e.DepartmentID,
		Department:     e.DepartmentName,
		Gender:         e.Gender,
		Salary:         e.Salary,
		IsActive:       e.IsActive,
		YearsOfService: YearsOfService(e.DateOfJoining, today),
		CreatedAt:      e.CreatedAt.Format("2006-01-02"),
		UpdatedAt:      e.UpdatedAt.Format("2006-01-02"),
	}
}
