package performance

import (
	"context"
)

// PerformanceService defines business logic for performance review operations
type PerformanceService interface {
	CreatePerformance(ctx context.Context, req CreatePerformanceRequest) (PerformanceResponse, error)

	GetPerformance(ctx context.Context, id string) (PerformanceResponse, error)

	UpdatePerformance(ctx context.Context, req UpdatePerformanceRequest) (PerformanceResponse, error)

	DeletePerformance(ctx context.Context, id string) error

	ListPerformances(ctx context.Context, filter PerformanceFilter) (ListPerformanceResponse, error)

	// OverdueReviews returns reviews whose next review date has passed
	OverdueReviews(ctx context.Context) ([]PerformanceResponse, error)

	// UpcomingReviews returns reviews due within the next 30 days
	UpcomingReviews(ctx context.Context) ([]PerformanceResponse, error)

	// Stats aggregates reviews over an explicit or defaulted range.
	// Empty start/end default to the current year-to-date.
	Stats(ctx context.Context, startDate, endDate string) (StatsResponse, error)

	// RatingAnalysis returns monthly rating averages and department
	// averages for a year. An empty year defaults to the current year.
	RatingAnalysis(ctx context.Context, year string) (RatingAnalysisResponse, error)
}
