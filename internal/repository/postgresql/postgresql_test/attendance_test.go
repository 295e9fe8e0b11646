package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workforcehq/hr-backend-go/internal/domain/attendance"
	"github.com/workforcehq/hr-backend-go/internal/pkg/period"
	"github.com/workforcehq/hr-backend-go/internal/repository/postgresql"
)

func TestAttendanceRepository_Create_Success(t *testing.T) {
	testDBOrSkip(t)
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	departmentID := createTestDepartment(t, ctx, "Engineering")
	employeeID := createTestEmployee(t, ctx, departmentID, "att-create@example.com")

	repo := postgresql.NewAttendanceRepository(testDB)

	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	checkIn := date.Add(8*time.Hour + 45*time.Minute)
	created, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID:  employeeID,
		Date:        date,
		Status:      attendance.StatusPresent,
		CheckInTime: &checkIn,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, employeeID, created.EmployeeID)
	assert.Equal(t, attendance.StatusPresent, created.Status)
	require.NotNil(t, created.CheckInTime)
}

func TestAttendanceRepository_Create_DuplicateDate(t *testing.T) {
	testDBOrSkip(t)
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	departmentID := createTestDepartment(t, ctx, "Engineering")
	employeeID := createTestEmployee(t, ctx, departmentID, "att-dup@example.com")

	repo := postgresql.NewAttendanceRepository(testDB)

	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     attendance.StatusLate,
	})
	assert.ErrorIs(t, err, attendance.ErrDuplicateAttendance)
}

func TestAttendanceRepository_GetByID_NotFound(t *testing.T) {
	testDBOrSkip(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(testDB)

	_, err := repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceRepository_ListByDateRange(t *testing.T) {
	testDBOrSkip(t)
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	departmentID := createTestDepartment(t, ctx, "Engineering")
	employeeID := createTestEmployee(t, ctx, departmentID, "att-range@example.com")

	repo := postgresql.NewAttendanceRepository(testDB)

	for day := 10; day <= 12; day++ {
		_, err := repo.Create(ctx, attendance.Attendance{
			EmployeeID: employeeID,
			Date:       time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
			Status:     attendance.StatusPresent,
		})
		require.NoError(t, err)
	}

	dr, err := period.ParseRange("2025-06-10", "2025-06-11")
	require.NoError(t, err)

	records, err := repo.ListByDateRange(ctx, dr)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	for _, rec := range records {
		require.NotNil(t, rec.DepartmentName)
		assert.Equal(t, "Engineering", *rec.DepartmentName)
	}
}

func TestAttendanceRepository_Delete_NotFound(t *testing.T) {
	testDBOrSkip(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(testDB)

	err := repo.Delete(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}
