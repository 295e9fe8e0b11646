package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workforcehq/hr-backend-go/internal/domain/performance"
	"github.com/workforcehq/hr-backend-go/internal/pkg/database"
	"github.com/workforcehq/hr-backend-go/internal/pkg/period"
)

type performanceRepositoryImpl struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) performance.PerformanceRepository {
	return &performanceRepositoryImpl{db: db}
}

const performanceColumns = `p.id, p.employee_id, p.rating, p.review_date, p.reviewer, p.comments,
	p.goals, p.achievements, p.areas_for_improvement, p.next_review_date,
	p.created_at, p.updated_at, e.name AS employee_name, d.name AS department_name`

const performanceJoins = `
	FROM performances p
	JOIN employees e ON e.id = p.employee_id
	JOIN departments d ON d.id = e.department_id`

func scanPerformance(row pgx.Row) (performance.Performance, error) {
	var perf performance.Performance
	err := row.Scan(
		&perf.ID, &perf.EmployeeID, &perf.Rating, &perf.ReviewDate, &perf.Reviewer, &perf.Comments,
		&perf.Goals, &perf.Achievements, &perf.AreasForImprovement, &perf.NextReviewDate,
		&perf.CreatedAt, &perf.UpdatedAt, &perf.EmployeeName, &perf.DepartmentName,
	)
	return perf, err
}

// Create implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) Create(ctx context.Context, perf performance.Performance) (performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performances (
			id, employee_id, rating, review_date, reviewer, comments,
			goals, achievements, areas_for_improvement, next_review_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, employee_id, rating, review_date, reviewer, comments,
			goals, achievements, areas_for_improvement, next_review_date,
			created_at, updated_at
	`

	var created performance.Performance
	err := q.QueryRow(ctx, query,
		uuid.NewString(), perf.EmployeeID, perf.Rating, perf.ReviewDate, perf.Reviewer,
		perf.Comments, perf.Goals, perf.Achievements, perf.AreasForImprovement, perf.NextReviewDate,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Rating, &created.ReviewDate, &created.Reviewer,
		&created.Comments, &created.Goals, &created.Achievements, &created.AreasForImprovement,
		&created.NextReviewDate, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return performance.Performance{}, fmt.Errorf("failed to create performance review: %w", err)
	}
	return created, nil
}

// GetByID implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) GetByID(ctx context.Context, id string) (performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s %s WHERE p.id = $1`, performanceColumns, performanceJoins)

	perf, err := scanPerformance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.Performance{}, performance.ErrPerformanceNotFound
		}
		return performance.Performance{}, fmt.Errorf("failed to get performance review: %w", err)
	}
	return perf, nil
}

// Update implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) Update(ctx context.Context, perf performance.Performance) (performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE performances
		SET employee_id = $1, rating = $2, review_date = $3, reviewer = $4,
			comments = $5, goals = $6, achievements = $7,
			areas_for_improvement = $8, next_review_date = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING id, employee_id, rating, review_date, reviewer, comments,
			goals, achievements, areas_for_improvement, next_review_date,
			created_at, updated_at
	`

	var updated performance.Performance
	err := q.QueryRow(ctx, query,
		perf.EmployeeID, perf.Rating, perf.ReviewDate, perf.Reviewer, perf.Comments,
		perf.Goals, perf.Achievements, perf.AreasForImprovement, perf.NextReviewDate, perf.ID,
	).Scan(
		&updated.ID, &updated.EmployeeID, &updated.Rating, &updated.ReviewDate, &updated.Reviewer,
		&updated.Comments, &updated.Goals, &updated.Achievements, &updated.AreasForImprovement,
		&updated.NextReviewDate, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.Performance{}, performance.ErrPerformanceNotFound
		}
		return performance.Performance{}, fmt.Errorf("failed to update performance review: %w", err)
	}
	return updated, nil
}

// Delete implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM performances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete performance review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrPerformanceNotFound
	}
	return nil
}

// List implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) List(ctx context.Context, filter performance.PerformanceFilter) ([]performance.Performance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Rating != nil {
		conditions = append(conditions, fmt.Sprintf("p.rating = $%d", argPos))
		args = append(args, *filter.Rating)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM performances p WHERE %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count performance reviews: %w", err)
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
		ORDER BY p.review_date DESC, e.name
		LIMIT $%d OFFSET $%d
	`, performanceColumns, performanceJoins, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	var performances []performance.Performance
	for rows.Next() {
		perf, err := scanPerformance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan performance review: %w", err)
		}
		performances = append(performances, perf)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return performances, total, nil
}

// ListByReviewDateRange implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) ListByReviewDateRange(ctx context.Context, dr period.DateRange) ([]performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE p.review_date >= $1 AND p.review_date <= $2
		ORDER BY p.review_date, e.name
	`, performanceColumns, performanceJoins)

	return r.queryMany(ctx, q, query, dr.Start, dr.End)
}

// ListOverdue implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) ListOverdue(ctx context.Context, today time.Time) ([]performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE p.next_review_date < $1
		ORDER BY p.next_review_date, e.name
	`, performanceColumns, performanceJoins)

	return r.queryMany(ctx, q, query, period.Truncate(today))
}

// ListUpcoming implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) ListUpcoming(ctx context.Context, today, until time.Time) ([]performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s %s
		WHERE p.next_review_date >= $1 AND p.next_review_date <= $2
		ORDER BY p.next_review_date, e.name
	`, performanceColumns, performanceJoins)

	return r.queryMany(ctx, q, query, period.Truncate(today), period.Truncate(until))
}

func (r *performanceRepositoryImpl) queryMany(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]performance.Performance, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query performance reviews: %w", err)
	}
	defer rows.Close()

	var performances []performance.Performance
	for rows.Next() {
		perf, err := scanPerformance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance review: %w", err)
		}
		performances = append(performances, perf)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return performances, nil
}
