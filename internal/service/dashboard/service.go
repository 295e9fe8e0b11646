package dashboard

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/workforcehq/hr-backend-go/internal/domain/attendance"
	"github.com/workforcehq/hr-backend-go/internal/domain/dashboard"
	"github.com/workforcehq/hr-backend-go/internal/pkg/clock"
	"github.com/workforcehq/hr-backend-go/internal/pkg/period"
)

// Recent-activity list length.
const recentLimit = 5

type dashboardServiceImpl struct {
	dashboardRepo  dashboard.DashboardRepository
	attendanceRepo attendance.AttendanceRepository
	clk            clock.Clock
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	attendanceRepo attendance.AttendanceRepository,
	clk clock.Clock,
) dashboard.DashboardService {
	return &dashboardServiceImpl{
		dashboardRepo:  dashboardRepo,
		attendanceRepo: attendanceRepo,
		clk:            clk,
	}
}

// GetStats returns the combined dashboard snapshot using parallel
// goroutines, one query each.
func (s *dashboardServiceImpl) GetStats(ctx context.Context) (*dashboard.DashboardStatsResponse, error) {
	today := clock.Today(s.clk)

	var (
		counts       dashboard.EntityCounts
		avgRating    float64
		todayStats   dashboard.TodayAttendance
		employees    []dashboard.RecentEmployee
		attendances  []dashboard.RecentAttendance
		performances []dashboard.RecentPerformance
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		counts, err = s.dashboardRepo.GetEntityCounts(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		avgRating, err = s.dashboardRepo.GetAverageRating(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		todayStats, err = s.dashboardRepo.GetTodayAttendance(gCtx, today)
		return err
	})

	g.Go(func() error {
		var err error
		employees, err = s.dashboardRepo.ListRecentEmployees(gCtx, recentLimit)
		return err
	})

	g.Go(func() error {
		var err error
		attendances, err = s.dashboardRepo.ListRecentAttendances(gCtx, recentLimit)
		return err
	})

	g.Go(func() error {
		var err error
		performances, err = s.dashboardRepo.ListRecentPerformances(gCtx, recentLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if employees == nil {
		employees = []dashboard.RecentEmployee{}
	}
	if attendances == nil {
		attendances = []dashboard.RecentAttendance{}
	}
	if performances == nil {
		performances = []dashboard.RecentPerformance{}
	}

	return &dashboard.DashboardStatsResponse{
		Overall: dashboard.OverallStats{
			TotalEmployees:   counts.TotalEmployees,
			ActiveEmployees:  counts.ActiveEmployees,
			TotalDepartments: counts.TotalDepartments,
			AvgPerformance:   math.Round(avgRating*100) / 100,
		},
		TodayAttendance: todayStats,
		RecentActivities: dashboard.RecentActivities{
			Employees:    employees,
			Attendances:  attendances,
			Performances: performances,
		},
	}, nil
}

// GetDepartmentChart returns per-department employee counts
func (s *dashboardServiceImpl) GetDepartmentChart(ctx context.Context) (*dashboard.DepartmentChartResponse, error) {
	counts, err := s.dashboardRepo.GetDepartmentEmployeeCounts(ctx)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []dashboard.DepartmentCount{}
	}
	return &dashboard.DepartmentChartResponse{Departments: counts}, nil
}

// GetAttendanceChart returns the current month's daily attendance buckets.
// Weekends are skipped: the chart covers business days only.
func (s *dashboardServiceImpl) GetAttendanceChart(ctx context.Context) (*dashboard.AttendanceChartResponse, error) {
	today := clock.Today(s.clk)
	year, month := today.Year(), int(today.Month())

	dr := period.MonthBounds(year, month)
	records, err := s.attendanceRepo.ListByDateRange(ctx, dr)
	if err != nil {
		return nil, err
	}

	return &dashboard.AttendanceChartResponse{
		Year:       year,
		Month:      month,
		DailyStats: attendance.BuildDailyStats(records, dr, true),
	}, nil
}

// GetPerformanceChart returns the labeled rating distribution
func (s *dashboardServiceImpl) GetPerformanceChart(ctx context.Context) (*dashboard.PerformanceChartResponse, error) {
	slices, err := s.dashboardRepo.GetRatingDistribution(ctx)
	if err != nil {
		return nil, err
	}
	if slices == nil {
		slices = []dashboard.RatingSlice{}
	}
	return &dashboard.PerformanceChartResponse{RatingDistribution: slices}, nil
}
