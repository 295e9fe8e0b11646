package performance

import (
	"context"
	"time"

	"github.com/workforcehq/hr-backend-go/internal/pkg/period"
)

// PerformanceRepository defines data access methods for performance reviews.
type PerformanceRepository interface {
	// Create creates a new performance review
	Create(ctx context.Context, perf Performance) (Performance, error)

	// GetByID retrieves a review with employee and department names
	GetByID(ctx context.Context, id string) (Performance, error)

	// Update updates an existing review
	Update(ctx context.Context, perf Performance) (Performance, error)

	// Delete removes a review
	Delete(ctx context.Context, id string) error

	// List retrieves reviews with filters and pagination
	List(ctx context.Context, filter PerformanceFilter) ([]Performance, int64, error)

	// ListByReviewDateRange fetches every review in the inclusive range in
	// one query, with employee and department names joined, for in-memory
	// aggregation.
	ListByReviewDateRange(ctx context.Context, r period.DateRange) ([]Performance, error)

	// ListOverdue retrieves reviews whose next review date is strictly
	// before today
	ListOverdue(ctx context.Context, today time.Time) ([]Performance, error)

	// ListUpcoming retrieves reviews whose next review date falls within
	// [today, until]
	ListUpcoming(ctx context.Context, today, until time.Time) ([]Performance, error)
}
