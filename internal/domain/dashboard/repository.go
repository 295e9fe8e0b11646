package dashboard

import (
	"context"
	"time"
)

// EntityCounts holds the global entity counters in a single row.
type EntityCounts struct {
	TotalEmployees   int
	ActiveEmployees  int
	TotalDepartments int
}

// DashboardRepository defines the read-only queries behind the dashboard.
type DashboardRepository interface {
	// GetEntityCounts returns employee/department counters in one query
	GetEntityCounts(ctx context.Context) (EntityCounts, error)

	// GetAverageRating returns the mean rating across all reviews, 0 when
	// there are none
	GetAverageRating(ctx context.Context) (float64, error)

	// GetTodayAttendance returns per-status counts for a single day
	GetTodayAttendance(ctx context.Context, date time.Time) (TodayAttendance, error)

	// GetRatingDistribution returns per-rating review counts ascending
	GetRatingDistribution(ctx context.Context) ([]RatingSlice, error)

	// GetDepartmentEmployeeCounts returns employee counts per department
	GetDepartmentEmployeeCounts(ctx context.Context) ([]DepartmentCount, error)

	// ListRecentEmployees returns the latest employees by creation time
	ListRecentEmployees(ctx context.Context, limit int) ([]RecentEmployee, error)

	// ListRecentAttendances returns the latest attendance records by date
	ListRecentAttendances(ctx context.Context, limit int) ([]RecentAttendance, error)

	// ListRecentPerformances returns the latest reviews by review date
	ListRecentPerformances(ctx context.Context, limit int) ([]RecentPerformance, error)
}
