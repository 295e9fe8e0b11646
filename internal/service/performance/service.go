package performance

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/workforcehq/hr-backend-go/internal/domain/employee"
	"github.com/workforcehq/hr-backend-go/internal/domain/performance"
	"github.com/workforcehq/hr-backend-go/internal/pkg/clock"
	"github.com/workforcehq/hr-backend-go/internal/pkg/period"
)

// Upcoming review horizon.
const upcomingWindowDays = 30

type performanceServiceImpl struct {
	performanceRepo performance.PerformanceRepository
	employeeRepo    employee.EmployeeRepository
	clk             clock.Clock
}

func NewPerformanceService(
	performanceRepo performance.PerformanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) performance.PerformanceService {
	return &performanceServiceImpl{
		performanceRepo: performanceRepo,
		employeeRepo:    employeeRepo,
		clk:             clk,
	}
}

func buildReview(req performance.CreatePerformanceRequest) performance.Performance {
	// Validate has already run; parse failures cannot happen here.
	reviewDate, _ := time.Parse("2006-01-02", req.ReviewDate)

	perf := performance.Performance{
		EmployeeID:          req.EmployeeID,
		Rating:              req.Rating,
		ReviewDate:          reviewDate,
		Reviewer:            req.Reviewer,
		Comments:            req.Comments,
		Goals:               req.Goals,
		Achievements:        req.Achievements,
		AreasForImprovement: req.AreasForImprovement,
	}
	if req.NextReviewDate != nil {
		if next, err := time.Parse("2006-01-02", *req.NextReviewDate); err == nil {
			perf.NextReviewDate = &next
		}
	}
	return perf
}

// CreatePerformance implements performance.PerformanceService.
func (s *performanceServiceImpl) CreatePerformance(ctx context.Context, req performance.CreatePerformanceRequest) (performance.PerformanceResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.PerformanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return performance.PerformanceResponse{}, err
	}

	created, err := s.performanceRepo.Create(ctx, buildReview(req))
	if err != nil {
		return performance.PerformanceResponse{}, err
	}

	return performance.ToResponse(created, clock.Today(s.clk)), nil
}

// GetPerformance implements performance.PerformanceService.
func (s *performanceServiceImpl) GetPerformance(ctx context.Context, id string) (performance.PerformanceResponse, error) {
	perf, err := s.performanceRepo.GetByID(ctx, id)
	if err != nil {
		return performance.PerformanceResponse{}, err
	}
	return performance.ToResponse(perf, clock.Today(s.clk)), nil
}

// UpdatePerformance implements performance.PerformanceService.
func (s *performanceServiceImpl) UpdatePerformance(ctx context.Context, req performance.UpdatePerformanceRequest) (performance.PerformanceResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.PerformanceResponse{}, err
	}

	if _, err := s.performanceRepo.GetByID(ctx, req.ID); err != nil {
		return performance.PerformanceResponse{}, err
	}

	review := buildReview(performance.CreatePerformanceRequest{
		EmployeeID:          req.EmployeeID,
		Rating:              req.Rating,
		ReviewDate:          req.ReviewDate,
		Reviewer:            req.Reviewer,
		Comments:            req.Comments,
		Goals:               req.Goals,
		Achievements:        req.Achievements,
		AreasForImprovement: req.AreasForImprovement,
		NextReviewDate:      req.NextReviewDate,
	})
	review.ID = req.ID

	updated, err := s.performanceRepo.Update(ctx, review)
	if err != nil {
		return performance.PerformanceResponse{}, err
	}

	return performance.ToResponse(updated, clock.Today(s.clk)), nil
}

// DeletePerformance implements performance.PerformanceService.
func (s *performanceServiceImpl) DeletePerformance(ctx context.Context, id string) error {
	return s.performanceRepo.Delete(ctx, id)
}

// ListPerformances implements performance.PerformanceService.
func (s *performanceServiceImpl) ListPerformances(ctx context.Context, filter performance.PerformanceFilter) (performance.ListPerformanceResponse, error) {
	performances, total, err := s.performanceRepo.List(ctx, filter)
	if err != nil {
		return performance.ListPerformanceResponse{}, err
	}

	today := clock.Today(s.clk)
	responses := make([]performance.PerformanceResponse, 0, len(performances))
	for _, perf := range performances {
		responses = append(responses, performance.ToResponse(perf, today))
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	return performance.ListPerformanceResponse{
		Performances: responses,
		TotalItems:   total,
		Page:         page,
		Limit:        limit,
	}, nil
}

// OverdueReviews implements performance.PerformanceService.
func (s *performanceServiceImpl) OverdueReviews(ctx context.Context) ([]performance.PerformanceResponse, error) {
	today := clock.Today(s.clk)
	performances, err := s.performanceRepo.ListOverdue(ctx, today)
	if err != nil {
		return nil, err
	}
	return s.toResponses(performances, today), nil
}

// UpcomingReviews implements performance.PerformanceService.
func (s *performanceServiceImpl) UpcomingReviews(ctx context.Context) ([]performance.PerformanceResponse, error) {
	today := clock.Today(s.clk)
	until := today.AddDate(0, 0, upcomingWindowDays)
	performances, err := s.performanceRepo.ListUpcoming(ctx, today, until)
	if err != nil {
		return nil, err
	}
	return s.toResponses(performances, today), nil
}

// Stats implements performance.PerformanceService.
// An explicit range comes from start/end query values; otherwise the
// current year-to-date is used.
func (s *performanceServiceImpl) Stats(ctx context.Context, startDate, endDate string) (performance.StatsResponse, error) {
	today := clock.Today(s.clk)

	var dr period.DateRange
	if startDate != "" && endDate != "" {
		parsed, err := period.ParseRange(startDate, endDate)
		if err != nil {
			return performance.StatsResponse{}, err
		}
		dr = parsed
	} else {
		dr = period.YearToDate(today)
	}

	records, err := s.performanceRepo.ListByReviewDateRange(ctx, dr)
	if err != nil {
		return performance.StatsResponse{}, err
	}

	return performance.BuildStats(records, dr, today), nil
}

// RatingAnalysis implements performance.PerformanceService.
func (s *performanceServiceImpl) RatingAnalysis(ctx context.Context, yearStr string) (performance.RatingAnalysisResponse, error) {
	year := clock.Today(s.clk).Year()
	if yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			return performance.RatingAnalysisResponse{}, fmt.Errorf("%w: year %q", period.ErrInvalidDate, yearStr)
		}
		year = parsed
	}

	records, err := s.performanceRepo.ListByReviewDateRange(ctx, period.YearBounds(year))
	if err != nil {
		return performance.RatingAnalysisResponse{}, err
	}

	return performance.RatingAnalysisResponse{
		Year:              year,
		MonthlyStats:      performance.BuildMonthlyAverages(records, year),
		DepartmentRatings: performance.BuildDepartmentStats(records),
	}, nil
}

func (s *performanceServiceImpl) toResponses(performances []performance.Performance, today time.Time) []performance.PerformanceResponse {
	responses := make([]performance.PerformanceResponse, 0, len(performances))
	for _, perf := range performances {
		responses = append(responses, performance.ToResponse(perf, today))
	}
	return responses
}
