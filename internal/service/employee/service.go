package employee

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/hr-backend-go/internal/domain/attendance"
	"github.com/workforcehq/hr-backend-go/internal/domain/department"
	"github.com/workforcehq/hr-backend-go/internal/domain/employee"
	"github.com/workforcehq/hr-backend-go/internal/pkg/clock"
	"github.com/workforcehq/hr-backend-go/internal/pkg/database"
	"github.com/workforcehq/hr-backend-go/internal/repository/postgresql"
)

type employeeServiceImpl struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	attendanceRepo attendance.AttendanceRepository
	clk            clock.Clock
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	attendanceRepo attendance.AttendanceRepository,
	clk clock.Clock,
) employee.EmployeeService {
	return &employeeServiceImpl{
		db:             db,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		attendanceRepo: attendanceRepo,
		clk:            clk,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	dateOfJoining, _ := time.Parse("2006-01-02", req.DateOfJoining)
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	// The uniqueness check and the insert run in one transaction so a
	// concurrent create with the same email cannot slip between them.
	var created employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.departmentRepo.GetByID(txCtx, req.DepartmentID); err != nil {
			return err
		}

		exists, err := s.employeeRepo.ExistsByEmail(txCtx, req.Email, nil)
		if err != nil {
			return err
		}
		if exists {
			return employee.ErrEmailExists
		}

		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			Name:          req.Name,
			Email:         req.Email,
			PhoneNumber:   req.PhoneNumber,
			Address:       req.Address,
			DateOfJoining: dateOfJoining,
			DepartmentID:  req.DepartmentID,
			Gender:        req.Gender,
			Salary:        req.Salary,
			IsActive:      isActive,
		})
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created, clock.Today(s.clk)), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *employeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeDetailResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	today := clock.Today(s.clk)
	present, total, err := s.attendanceRepo.CountByEmployeeMonth(ctx, emp.ID, today.Year(), int(today.Month()))
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	return employee.EmployeeDetailResponse{
		EmployeeResponse: employee.ToResponse(emp, today),
		AttendanceRate:   employee.AttendanceRate(present, total),
	}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Email != current.Email {
		exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email, &req.ID)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
	}

	dateOfJoining, _ := time.Parse("2006-01-02", req.DateOfJoining)
	isActive := current.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	updated, err := s.employeeRepo.Update(ctx, employee.Employee{
		ID:            req.ID,
		Name:          req.Name,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		DateOfJoining: dateOfJoining,
		DepartmentID:  req.DepartmentID,
		Gender:        req.Gender,
		Salary:        req.Salary,
		IsActive:      isActive,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated, clock.Today(s.clk)), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *employeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

// ListEmployees implements employee.EmployeeService.
func (s *employeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	today := clock.Today(s.clk)
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp, today))
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	return employee.ListEmployeeResponse{
		Employees:  responses,
		TotalItems: total,
		Page:       page,
		Limit:      limit,
	}, nil
}
