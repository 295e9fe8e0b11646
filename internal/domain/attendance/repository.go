package attendance

import (
	"context"
	"time"

	"github.com/workforcehq/hr-backend-go/internal/pkg/period"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record. A duplicate (employee, date)
	// pair fails with ErrDuplicateAttendance via the store's unique
	// constraint.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID retrieves an attendance record with employee and department names
	GetByID(ctx context.Context, id string) (Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, att Attendance) (Attendance, error)

	// Delete removes an attendance record
	Delete(ctx context.Context, id string) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListByDateRange fetches every record in the inclusive range in one
	// query, with employee and department names joined, for in-memory
	// aggregation.
	ListByDateRange(ctx context.Context, r period.DateRange) ([]Attendance, error)

	// ListByDate retrieves all records for a single day
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// CountByEmployeeMonth returns present and total record counts for an
	// employee in a calendar month
	CountByEmployeeMonth(ctx context.Context, employeeID string, year, month int) (present int, total int, err error)
}
