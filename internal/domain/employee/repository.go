package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// Create creates a new employee
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID with its department name
	GetByID(ctx context.Context, id string) (Employee, error)

	// Update updates an existing employee
	Update(ctx context.Context, emp Employee) (Employee, error)

	// Delete removes an employee; attendance and performance records
	// cascade at the store level
	Delete(ctx context.Context, id string) error

	// List retrieves employees with filters and pagination
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// ExistsByEmail reports whether another employee already uses the email
	ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error)
}
