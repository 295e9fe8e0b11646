package postgresql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workforcehq/hr-backend-go/internal/domain/department"
	"github.com/workforcehq/hr-backend-go/internal/repository/postgresql"
)

func TestDepartmentRepository_Create_DuplicateName(t *testing.T) {
	testDBOrSkip(t)
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewDepartmentRepository(testDB)

	_, err := repo.Create(ctx, department.Department{Name: "Engineering"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, department.Department{Name: "Engineering"})
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)
}

func TestDepartmentRepository_GetByID_EmployeeCount(t *testing.T) {
	testDBOrSkip(t)
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	departmentID := createTestDepartment(t, ctx, "Sales")
	createTestEmployee(t, ctx, departmentID, "dept-count-1@example.com")
	createTestEmployee(t, ctx, departmentID, "dept-count-2@example.com")

	repo := postgresql.NewDepartmentRepository(testDB)
	dept, err := repo.GetByID(ctx, departmentID)
	require.NoError(t, err)
	assert.Equal(t, "Sales", dept.Name)
	assert.Equal(t, 2, dept.EmployeeCount)
}

func TestDepartmentRepository_ListStats(t *testing.T) {
	testDBOrSkip(t)
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	engineeringID := createTestDepartment(t, ctx, "Engineering")
	createTestDepartment(t, ctx, "Sales")
	createTestEmployeeWithSalary(t, ctx, engineeringID, "stats-1@example.com", 5000)
	createTestEmployeeWithSalary(t, ctx, engineeringID, "stats-2@example.com", 7000)

	repo := postgresql.NewDepartmentRepository(testDB)
	stats, err := repo.ListStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	eng := stats[0]
	assert.Equal(t, "Engineering", eng.Name)
	assert.Equal(t, 2, eng.EmployeeCount)
	assert.Equal(t, 6000.0, eng.AvgSalary)

	// A department without employees reports zeroes, not NULL or an error.
	sales := stats[1]
	assert.Equal(t, "Sales", sales.Name)
	assert.Equal(t, 0, sales.EmployeeCount)
	assert.Equal(t, 0.0, sales.AvgSalary)
}

func TestDepartmentRepository_GetByID_NotFound(t *testing.T) {
	testDBOrSkip(t)
	ctx := context.Background()
	repo := postgresql.NewDepartmentRepository(testDB)

	_, err := repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestEmployeeRepository_ExistsByEmail(t *testing.T) {
	testDBOrSkip(t)
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	departmentID := createTestDepartment(t, ctx, "Engineering")
	employeeID := createTestEmployee(t, ctx, departmentID, "exists@example.com")

	repo := postgresql.NewEmployeeRepository(testDB)

	exists, err := repo.ExistsByEmail(ctx, "exists@example.com", nil)
	require.NoError(t, err)
	assert.True(t, exists)

	// Excluding the owner makes the email available again.
	exists, err = repo.ExistsByEmail(ctx, "exists@example.com", &employeeID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "missing@example.com", nil)
	require.NoError(t, err)
	assert.False(t, exists)
}
