package department

import (
	"context"

	"github.com/workforcehq/hr-backend-go/internal/domain/department"
)

type departmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &departmentServiceImpl{departmentRepo: departmentRepo}
}

// CreateDepartment implements department.DepartmentService.
func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.ToResponse(created), nil
}

// GetDepartment implements department.DepartmentService.
func (s *departmentServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToResponse(dept), nil
}

// UpdateDepartment implements department.DepartmentService.
func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	updated, err := s.departmentRepo.Update(ctx, department.Department{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.ToResponse(updated), nil
}

// DeleteDepartment implements department.DepartmentService.
func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepo.Delete(ctx, id)
}

// ListDepartments implements department.DepartmentService.
func (s *departmentServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, department.ToResponse(dept))
	}
	return responses, nil
}

// DepartmentStats implements department.DepartmentService.
func (s *departmentServiceImpl) DepartmentStats(ctx context.Context) ([]department.DepartmentStatsResponse, error) {
	stats, err := s.departmentRepo.ListStats(ctx)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []department.DepartmentStatsResponse{}
	}
	return stats, nil
}
