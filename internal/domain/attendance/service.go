package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	DeleteAttendance(ctx context.Context, id string) error

	ListAttendances(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// Today returns all attendance records for the current date
	Today(ctx context.Context) ([]AttendanceResponse, error)

	// Stats aggregates attendance over an explicit or defaulted range.
	// Empty start/end default to the current month-to-date.
	Stats(ctx context.Context, startDate, endDate string) (StatsResponse, error)

	// MonthlyOverview returns one bucket per calendar day of a month.
	// Empty year/month default to the current month.
	MonthlyOverview(ctx context.Context, year, month string) (MonthlyOverviewResponse, error)
}
