package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/hr-backend-go/internal/domain/attendance"
	"github.com/workforcehq/hr-backend-go/internal/pkg/database"
	"github.com/workforcehq/hr-backend-go/internal/pkg/period"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `a.id, a.employee_id, a.date, a.status, a.check_in_time, a.check_out_time,
	a.notes, a.created_at, a.updated_at, e.name AS employee_name, d.name AS department_name`

const attendanceJoins = `
	FROM attendances a
	JOIN employees e ON e.id = a.employee_id
	JOIN departments d ON d.id = e.department_id`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CheckInTime, &att.CheckOutTime,
		&att.Notes, &att.CreatedAt, &att.UpdatedAt, &att.EmployeeName, &att.DepartmentName,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_id, date, status, check_in_time, check_out_time, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, date, status, check_in_time, check_out_time,
			notes, created_at, updated_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		uuid.NewString(), att.EmployeeID, att.Date, att.Status,
		att.CheckInTime, att.CheckOutTime, att.Notes,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.Status,
		&created.CheckInTime, &created.CheckOutTime, &created.Notes,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err, "attendances_employee_id_date_key") {
			return attendance.Attendance{}, attendance.ErrDuplicateAttendance
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s %s WHERE a.id = $1`, attendanceColumns, attendanceJoins)

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET employee_id = $1, date = $2, status = $3, check_in_time = $4,
			check_out_time = $5, notes = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id, employee_id, date, status, check_in_time, check_out_time,
			notes, created_at, updated_at
	`

	var updated attendance.Attendance
	err := q.QueryRow(ctx, query,
		att.EmployeeID, att.Date, att.Status, att.CheckInTime,
		att.CheckOutTime, att.Notes, att.ID,
	).Scan(
		&updated.ID, &updated.EmployeeID, &updated.Date, &updated.Status,
		&updated.CheckInTime, &updated.CheckOutTime, &updated.Notes,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		if IsUniqueViolation(err, "attendances_employee_id_date_key") {
			return attendance.Attendance{}, attendance.ErrDuplicateAttendance
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}
	return updated, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("a.date = $%d", argPos))
		args = append(args, *filter.Date)
		argPos++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM attendances a WHERE %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
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
		SELECT %s %s
		WHERE %s
		ORDER BY a.date DESC, e.name
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, attendanceJoins, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return attendances, total, nil
}

// ListByDateRange implements attendance.AttendanceRepository.
// One query for the whole range; bucketing happens in memory.
func (r *attendanceRepositoryImpl) ListByDateRange(ctx context.Context, dr period.DateRange) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE a.date >= $1 AND a.date <= $2
		ORDER BY a.date, e.name
	`, attendanceColumns, attendanceJoins)

	rows, err := q.Query(ctx, query, dr.Start, dr.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by range: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return attendances, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	day := period.Truncate(date)
	return r.ListByDateRange(ctx, period.DateRange{Start: day, End: day})
}

// CountByEmployeeMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountByEmployeeMonth(ctx context.Context, employeeID string, year, month int) (int, int, error) {
	q := GetQuerier(ctx, r.db)

	bounds := period.MonthBounds(year, month)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'present' THEN 1 ELSE 0 END), 0) AS present,
			COUNT(*) AS total
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
	`

	var present, total int
	err := q.QueryRow(ctx, query, employeeID, bounds.Start, bounds.End).Scan(&present, &total)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count attendance for employee: %w", err)
	}
	return present, total, nil
}
