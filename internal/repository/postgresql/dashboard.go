package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workforcehq/hr-backend-go/internal/domain/dashboard"
	"github.com/workforcehq/hr-backend-go/internal/domain/performance"
	"github.com/workforcehq/hr-backend-go/internal/pkg/database"
	"github.com/workforcehq/hr-backend-go/internal/pkg/period"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetEntityCounts returns total/active employees and department count in a single query
func (r *dashboardRepositoryImpl) GetEntityCounts(ctx context.Context) (dashboard.EntityCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees) AS total_employees,
			(SELECT COUNT(*) FROM employees WHERE is_active) AS active_employees,
			(SELECT COUNT(*) FROM departments) AS total_departments
	`

	var counts dashboard.EntityCounts
	err := q.QueryRow(ctx, query).Scan(
		&counts.TotalEmployees, &counts.ActiveEmployees, &counts.TotalDepartments,
	)
	if err != nil {
		return dashboard.EntityCounts{}, fmt.Errorf("failed to get entity counts: %w", err)
	}
	return counts, nil
}

// GetAverageRating returns the mean rating across all reviews, 0 when empty
func (r *dashboardRepositoryImpl) GetAverageRating(ctx context.Context) (float64, error) {
	q := GetQuerier(ctx, r.db)

	var avg float64
	err := q.QueryRow(ctx, `SELECT COALESCE(AVG(rating), 0) FROM performances`).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("failed to get average rating: %w", err)
	}
	return avg, nil
}

// GetTodayAttendance returns per-status counts for a single day
func (r *dashboardRepositoryImpl) GetTodayAttendance(ctx context.Context, date time.Time) (dashboard.TodayAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'present' THEN 1 ELSE 0 END), 0) AS present,
			COALESCE(SUM(CASE WHEN status = 'absent' THEN 1 ELSE 0 END), 0) AS absent,
			COALESCE(SUM(CASE WHEN status = 'late' THEN 1 ELSE 0 END), 0) AS late,
			COUNT(*) AS total
		FROM attendances
		WHERE date = $1
	`

	var stats dashboard.TodayAttendance
	err := q.QueryRow(ctx, query, period.Truncate(date)).Scan(
		&stats.Present, &stats.Absent, &stats.Late, &stats.Total,
	)
	if err != nil {
		return dashboard.TodayAttendance{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	return stats, nil
}

// GetRatingDistribution returns per-rating review counts ascending
func (r *dashboardRepositoryImpl) GetRatingDistribution(ctx context.Context) ([]dashboard.RatingSlice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT rating, COUNT(*) AS count
		FROM performances
		GROUP BY rating
		ORDER BY rating
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get rating distribution: %w", err)
	}
	defer rows.Close()

	var slices []dashboard.RatingSlice
	for rows.Next() {
		var slice dashboard.RatingSlice
		if err := rows.Scan(&slice.Rating, &slice.Count); err != nil {
			return nil, fmt.Errorf("failed to scan rating slice: %w", err)
		}
		// Stored ratings passed validation, so the lookup cannot miss.
		slice.Label, _ = performance.RatingText(slice.Rating)
		slices = append(slices, slice)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return slices, nil
}

// GetDepartmentEmployeeCounts returns employee counts per department
func (r *dashboardRepositoryImpl) GetDepartmentEmployeeCounts(ctx context.Context) ([]dashboard.DepartmentCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.name, COUNT(e.id) AS employee_count
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		GROUP BY d.id
		ORDER BY d.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get department employee counts: %w", err)
	}
	defer rows.Close()

	var counts []dashboard.DepartmentCount
	for rows.Next() {
		var count dashboard.DepartmentCount
		if err := rows.Scan(&count.Department, &count.EmployeeCount); err != nil {
			return nil, fmt.Errorf("failed to scan department count: %w", err)
		}
		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// ListRecentEmployees returns the latest employees by creation time
func (r *dashboardRepositoryImpl) ListRecentEmployees(ctx context.Context, limit int) ([]dashboard.RecentEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.name, d.name, e.created_at
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		ORDER BY e.created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent employees: %w", err)
	}
	defer rows.Close()

	var recents []dashboard.RecentEmployee
	for rows.Next() {
		var item dashboard.RecentEmployee
		var createdAt time.Time
		if err := rows.Scan(&item.Name, &item.Department, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent employee: %w", err)
		}
		item.CreatedAt = createdAt.Format("2006-01-02")
		recents = append(recents, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return recents, nil
}

// ListRecentAttendances returns the latest attendance records by date
func (r *dashboardRepositoryImpl) ListRecentAttendances(ctx context.Context, limit int) ([]dashboard.RecentAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.name, a.status, a.date
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		ORDER BY a.date DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent attendances: %w", err)
	}
	defer rows.Close()

	var recents []dashboard.RecentAttendance
	for rows.Next() {
		var item dashboard.RecentAttendance
		var date time.Time
		if err := rows.Scan(&item.Employee, &item.Status, &date); err != nil {
			return nil, fmt.Errorf("failed to scan recent attendance: %w", err)
		}
		item.Date = date.Format("2006-01-02")
		recents = append(recents, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return recents, nil
}

// ListRecentPerformances returns the latest reviews by review date
func (r *dashboardRepositoryImpl) ListRecentPerformances(ctx context.Context, limit int) ([]dashboard.RecentPerformance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.name, p.rating, p.review_date
		FROM performances p
		JOIN employees e ON e.id = p.employee_id
		ORDER BY p.review_date DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent performances: %w", err)
	}
	defer rows.Close()

	var recents []dashboard.RecentPerformance
	for rows.Next() {
		var item dashboard.RecentPerformance
		var reviewDate time.Time
		if err := rows.Scan(&item.Employee, &item.Rating, &reviewDate); err != nil {
			return nil, fmt.Errorf("failed to scan recent performance: %w", err)
		}
		item.ReviewDate = reviewDate.Format("2006-01-02")
		recents = append(recents, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return recents, nil
}
