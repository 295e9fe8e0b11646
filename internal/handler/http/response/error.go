package response

import (
	"errors"
	"net/http"

	"github.com/workforcehq/hr-backend-go/internal/domain/attendance"
	"github.com/workforcehq/hr-backend-go/internal/domain/department"
	"github.com/workforcehq/hr-backend-go/internal/domain/employee"
	"github.com/workforcehq/hr-backend-go/internal/domain/performance"
	"github.com/workforcehq/hr-backend-go/internal/pkg/period"
	"github.com/workforcehq/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Malformed date/period input
	case errors.Is(err, period.ErrInvalidDate):
		BadRequest(w, err.Error(), nil)

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateAttendance):
		Conflict(w, "Attendance already recorded for this employee on this date")

	// Performance domain errors
	case errors.Is(err, performance.ErrPerformanceNotFound):
		NotFound(w, "Performance review not found")
	case errors.Is(err, performance.ErrInvalidRating):
		BadRequest(w, "Rating must be between 1 and 5", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
