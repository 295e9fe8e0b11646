package attendance

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/workforcehq/hr-backend-go/internal/domain/attendance"
	"github.com/workforcehq/hr-backend-go/internal/domain/employee"
	"github.com/workforcehq/hr-backend-go/internal/pkg/clock"
	"github.com/workforcehq/hr-backend-go/internal/pkg/period"
)

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	clk            clock.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) attendance.AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clk:            clk,
	}
}

func buildRecord(req attendance.CreateAttendanceRequest) attendance.Attendance {
	// Validate has already run; parse failures cannot happen here.
	date, _ := time.Parse("2006-01-02", req.Date)

	att := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     req.Status,
		Notes:      req.Notes,
	}
	if req.CheckInTime != nil {
		if t, ok := attendance.CombineDateTime(date, *req.CheckInTime); ok {
			att.CheckInTime = &t
		}
	}
	if req.CheckOutTime != nil {
		if t, ok := attendance.CombineDateTime(date, *req.CheckOutTime); ok {
			att.CheckOutTime = &t
		}
	}
	return att
}

// CreateAttendance implements attendance.AttendanceService.
func (s *attendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, buildRecord(req))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *attendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(att), nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (s *attendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.attendanceRepo.GetByID(ctx, req.ID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record := buildRecord(attendance.CreateAttendanceRequest{
		EmployeeID:   req.EmployeeID,
		Date:         req.Date,
		Status:       req.Status,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		Notes:        req.Notes,
	})
	record.ID = req.ID

	updated, err := s.attendanceRepo.Update(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(updated), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *attendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// ListAttendances implements attendance.AttendanceService.
func (s *attendanceServiceImpl) ListAttendances(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	attendances, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, attendance.ToResponse(att))
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	return attendance.ListAttendanceResponse{
		Attendances: responses,
		TotalItems:  total,
		Page:        page,
		Limit:       limit,
	}, nil
}

// Today implements attendance.AttendanceService.
func (s *attendanceServiceImpl) Today(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	attendances, err := s.attendanceRepo.ListByDate(ctx, clock.Today(s.clk))
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, attendance.ToResponse(att))
	}
	return responses, nil
}

// Stats implements attendance.AttendanceService.
// An explicit range comes from start/end query values; otherwise the
// current month-to-date is used.
func (s *attendanceServiceImpl) Stats(ctx context.Context, startDate, endDate string) (attendance.StatsResponse, error) {
	var dr period.DateRange
	if startDate != "" && endDate != "" {
		parsed, err := period.ParseRange(startDate, endDate)
		if err != nil {
			return attendance.StatsResponse{}, err
		}
		dr = parsed
	} else {
		dr = period.MonthToDate(clock.Today(s.clk))
	}

	records, err := s.attendanceRepo.ListByDateRange(ctx, dr)
	if err != nil {
		return attendance.StatsResponse{}, err
	}

	return attendance.BuildStats(records, dr), nil
}

// MonthlyOverview implements attendance.AttendanceService.
func (s *attendanceServiceImpl) MonthlyOverview(ctx context.Context, yearStr, monthStr string) (attendance.MonthlyOverviewResponse, error) {
	today := clock.Today(s.clk)

	year := today.Year()
	if yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			return attendance.MonthlyOverviewResponse{}, fmt.Errorf("%w: year %q", period.ErrInvalidDate, yearStr)
		}
		year = parsed
	}

	month := int(today.Month())
	if monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			return attendance.MonthlyOverviewResponse{}, fmt.Errorf("%w: month %q", period.ErrInvalidDate, monthStr)
		}
		month = parsed
	}

	dr := period.MonthBounds(year, month)
	records, err := s.attendanceRepo.ListByDateRange(ctx, dr)
	if err != nil {
		return attendance.MonthlyOverviewResponse{}, err
	}

	return attendance.MonthlyOverviewResponse{
		Year:       year,
		Month:      month,
		DailyStats: attendance.BuildDailyStats(records, dr, false),
	}, nil
}
