package attendance

import (
	"time"

	"github.com/workforcehq/hr-backend-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	Notes        *string `json:"notes"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, absent, late, half_day",
		})
	}

	if r.CheckInTime != nil {
		if _, ok := validator.IsValidClockTime(*r.CheckInTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in_time",
				Message: "check_in_time must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if r.CheckOutTime != nil {
		if _, ok := validator.IsValidClockTime(*r.CheckOutTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out_time",
				Message: "check_out_time must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID           string  `json:"-"`
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	Notes        *string `json:"notes"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	create := CreateAttendanceRequest{
		EmployeeID:   r.EmployeeID,
		Date:         r.Date,
		Status:       r.Status,
		CheckInTime:  r.CheckInTime,
		CheckOutTime: r.CheckOutTime,
		Notes:        r.Notes,
	}
	return create.Validate()
}

type AttendanceFilter struct {
	EmployeeID *string
	Status     *string
	Date       *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name"`
	Department   *string  `json:"department"`
	Date         string   `json:"date"`
	Status       string   `json:"status"`
	CheckInTime  *string  `json:"check_in_time"`
	CheckOutTime *string  `json:"check_out_time"`
	Notes        *string  `json:"notes"`
	IsLate       bool     `json:"is_late"`
	WorkingHours *float64 `json:"working_hours"`
}

type ListAttendanceResponse struct {
	Attendances []AttendanceResponse `json:"attendances"`
	TotalItems  int64                `json:"total_items"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Department:   a.DepartmentName,
		Date:         a.Date.Format("2006-01-02"),
		Status:       a.Status,
		Notes:        a.Notes,
		IsLate:       IsLate(a.CheckInTime),
		WorkingHours: WorkingHours(a.CheckInTime, a.CheckOutTime),
	}
	if a.CheckInTime != nil {
		s := a.CheckInTime.Format("15:04:05")
		resp.CheckInTime = &s
	}
	if a.CheckOutTime != nil {
		s := a.CheckOutTime.Format("15:04:05")
		resp.CheckOutTime = &s
	}
	return resp
}

// CombineDateTime anchors a clock time string (HH:MM or HH:MM:SS) on the
// attendance date. Check-in and check-out share the same calendar day.
func CombineDateTime(date time.Time, clockTime string) (time.Time, bool) {
	t, ok := validator.IsValidClockTime(clockTime)
	if !ok {
		return time.Time{}, false
	}
	h, m, s := t.Clock()
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, s, 0, time.UTC), true
}
