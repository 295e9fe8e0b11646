package dashboard

import (
	"context"
)

// DashboardService composes multiple aggregates into dashboard payloads
type DashboardService interface {
	// GetStats returns the combined dashboard snapshot
	GetStats(ctx context.Context) (*DashboardStatsResponse, error)

	// GetDepartmentChart returns per-department employee counts
	GetDepartmentChart(ctx context.Context) (*DepartmentChartResponse, error)

	// GetAttendanceChart returns the current month's daily buckets,
	// weekends excluded
	GetAttendanceChart(ctx context.Context) (*AttendanceChartResponse, error)

	// GetPerformanceChart returns the labeled rating distribution
	GetPerformanceChart(ctx context.Context) (*PerformanceChartResponse, error)
}
