package performance

import (
	"testing"
	"time"

	"github.com/workforcehq/hr-backend-go/internal/pkg/period"
)

func strPtr(s string) *string { return &s }

func review(rating int, reviewDate time.Time, dept string) Performance {
	return Performance{
		Rating:         rating,
		ReviewDate:     reviewDate,
		DepartmentName: strPtr(dept),
	}
}

func TestBuildStats(t *testing.T) {
	today := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	dr := period.YearToDate(today)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	records := []Performance{
		review(5, day, "Engineering"),
		review(4, day, "Sales"),
		review(3, day, "Engineering"),
	}

	stats := BuildStats(records, dr, today)

	overall := stats.OverallStats
	if overall.TotalReviews != 3 {
		t.Errorf("total_reviews = %d, want 3", overall.TotalReviews)
	}
	if overall.AverageRating != 4 {
		t.Errorf("average_rating = %v, want 4", overall.AverageRating)
	}
	if overall.TopPerformersCount != 2 {
		t.Errorf("top_performers_count = %d, want 2", overall.TopPerformersCount)
	}
	if len(stats.TopPerformers) != 2 {
		t.Errorf("top_performers has %d entries, want 2", len(stats.TopPerformers))
	}

	if len(stats.RatingDistribution) != 3 {
		t.Fatalf("rating_distribution has %d entries, want 3", len(stats.RatingDistribution))
	}
	// Sorted ascending by rating.
	for i, want := range []RatingCount{{3, 1}, {4, 1}, {5, 1}} {
		if stats.RatingDistribution[i] != want {
			t.Errorf("rating_distribution[%d] = %+v, want %+v", i, stats.RatingDistribution[i], want)
		}
	}

	if len(stats.DepartmentStats) != 2 {
		t.Fatalf("department_stats has %d entries, want 2", len(stats.DepartmentStats))
	}
	eng := stats.DepartmentStats[0]
	if eng.Department != "Engineering" || eng.TotalReviews != 2 || eng.AvgRating != 4 {
		t.Errorf("engineering stats = %+v", eng)
	}
}

func TestBuildStatsEmpty(t *testing.T) {
	today := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	stats := BuildStats(nil, period.YearToDate(today), today)
	if stats.OverallStats.TotalReviews != 0 || stats.OverallStats.AverageRating != 0 {
		t.Errorf("empty overall stats = %+v, want zeroes", stats.OverallStats)
	}
	if stats.TopPerformers == nil {
		t.Error("top_performers should be an empty slice, not nil")
	}
}

func TestBuildStatsAverageRounding(t *testing.T) {
	today := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	day := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	records := []Performance{
		review(5, day, "Engineering"),
		review(4, day, "Engineering"),
		review(4, day, "Engineering"),
	}
	stats := BuildStats(records, period.YearToDate(today), today)
	// 13/3 = 4.333... rounds to 4.33
	if stats.OverallStats.AverageRating != 4.33 {
		t.Errorf("average_rating = %v, want 4.33", stats.OverallStats.AverageRating)
	}
}

func TestBuildMonthlyAverages(t *testing.T) {
	records := []Performance{
		review(5, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "Engineering"),
		review(4, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), "Sales"),
		review(2, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), "Sales"),
		// Wrong year, must be ignored.
		review(1, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), "Sales"),
	}

	monthly := BuildMonthlyAverages(records, 2025)
	if len(monthly) != 12 {
		t.Fatalf("monthly stats has %d entries, want 12", len(monthly))
	}

	march := monthly[2]
	if march.Month != 3 || march.AverageRating != 4.5 || march.TotalReviews != 2 {
		t.Errorf("march = %+v, want month=3 avg=4.5 total=2", march)
	}
	july := monthly[6]
	if july.AverageRating != 2 || july.TotalReviews != 1 {
		t.Errorf("july = %+v, want avg=2 total=1", july)
	}
	january := monthly[0]
	if january.AverageRating != 0 || january.TotalReviews != 0 {
		t.Errorf("january = %+v, want empty bucket", january)
	}
}

func TestBuildDepartmentStats(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	records := []Performance{
		review(3, day, "Sales"),
		review(4, day, "Sales"),
		review(5, day, "Engineering"),
	}

	deptStats := BuildDepartmentStats(records)
	if len(deptStats) != 2 {
		t.Fatalf("department stats has %d entries, want 2", len(deptStats))
	}
	if deptStats[0].Department != "Engineering" || deptStats[0].AvgRating != 5 {
		t.Errorf("engineering = %+v", deptStats[0])
	}
	if deptStats[1].Department != "Sales" || deptStats[1].AvgRating != 3.5 || deptStats[1].TotalReviews != 2 {
		t.Errorf("sales = %+v", deptStats[1])
	}
}
