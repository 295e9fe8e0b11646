package department

import (
	"context"
)

// DepartmentService defines business logic for department operations
type DepartmentService interface {
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)

	GetDepartment(ctx context.Context, id string) (DepartmentResponse, error)

	UpdateDepartment(ctx context.Context, req UpdateDepartmentRequest) (DepartmentResponse, error)

	// DeleteDepartment deletes a department and, transitively, its employees
	DeleteDepartment(ctx context.Context, id string) error

	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)

	// DepartmentStats returns the per-department headcount/salary report
	DepartmentStats(ctx context.Context) ([]DepartmentStatsResponse, error)
}
