package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/hr-backend-go/internal/domain/employee"
	"github.com/workforcehq/hr-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, name, email, phone_number, address, date_of_joining,
			department_id, gender, salary, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, name, email, phone_number, address, date_of_joining,
			department_id, gender, salary, is_active, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		uuid.NewString(), emp.Name, emp.Email, emp.PhoneNumber, emp.Address,
		emp.DateOfJoining, emp.DepartmentID, emp.Gender, emp.Salary, emp.IsActive,
	).Scan(
		&created.ID, &created.Name, &created.Email, &created.PhoneNumber, &created.Address,
		&created.DateOfJoining, &created.DepartmentID, &created.Gender, &created.Salary,
		&created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err, "employees_email_key") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.name, e.email, e.phone_number, e.address, e.date_of_joining,
			e.department_id, e.gender, e.salary, e.is_active, e.created_at, e.updated_at,
			d.name AS department_name
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.PhoneNumber, &emp.Address,
		&emp.DateOfJoining, &emp.DepartmentID, &emp.Gender, &emp.Salary,
		&emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.DepartmentName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, email = $2, phone_number = $3, address = $4,
			date_of_joining = $5, department_id = $6, gender = $7,
			salary = $8, is_active = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING id, name, email, phone_number, address, date_of_joining,
			department_id, gender, salary, is_active, created_at, updated_at
	`

	var updated employee.Employee
	err := q.QueryRow(ctx, query,
		emp.Name, emp.Email, emp.PhoneNumber, emp.Address, emp.DateOfJoining,
		emp.DepartmentID, emp.Gender, emp.Salary, emp.IsActive, emp.ID,
	).Scan(
		&updated.ID, &updated.Name, &updated.Email, &updated.PhoneNumber, &updated.Address,
		&updated.DateOfJoining, &updated.DepartmentID, &updated.Gender, &updated.Salary,
		&updated.IsActive, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if IsUniqueViolation(err, "employees_email_key") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
// Attendance and performance records cascade via foreign keys.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.DepartmentID != nil {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argPos))
		args = append(args, *filter.DepartmentID)
		argPos++
	}
	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("e.is_active = $%d", argPos))
		args = append(args, *filter.IsActive)
		argPos++
	}
	if filter.Name != nil {
		conditions = append(conditions, fmt.Sprintf("e.name ILIKE $%d", argPos))
		args = append(args, "%"+*filter.Name+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM employees e WHERE %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT e.id, e.name, e.email, e.phone_number, e.address, e.date_of_joining,
			e.department_id, e.gender, e.salary, e.is_active, e.created_at, e.updated_at,
			d.name AS department_name
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		WHERE %s
		ORDER BY e.name
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Name, &emp.Email, &emp.PhoneNumber, &emp.Address,
			&emp.DateOfJoining, &emp.DepartmentID, &emp.Gender, &emp.Salary,
			&emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
			&emp.DepartmentName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	var err error
	if excludeID != nil {
		err = q.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1 AND id <> $2)`,
			email, *excludeID,
		).Scan(&exists)
	} else {
		err = q.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`,
			email,
		).Scan(&exists)
	}
	if err != nil {
		return false, fmt.Errorf("failed to check employee email: %w", err)
	}
	return exists, nil
}
