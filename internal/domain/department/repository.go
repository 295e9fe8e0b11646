package department

import (
	"context"
)

// DepartmentRepository defines data access methods for departments.
type DepartmentRepository interface {
	// Create creates a new department
	Create(ctx context.Context, dept Department) (Department, error)

	// GetByID retrieves a department by ID, including its employee count
	GetByID(ctx context.Context, id string) (Department, error)

	// Update updates an existing department
	Update(ctx context.Context, dept Department) (Department, error)

	// Delete removes a department; employees cascade at the store level
	Delete(ctx context.Context, id string) error

	// List retrieves all departments ordered by name, with employee counts
	List(ctx context.Context) ([]Department, error)

	// ListStats returns headcount and average salary per department.
	// Departments without employees report zero for both.
	ListStats(ctx context.Context) ([]DepartmentStatsResponse, error)
}
