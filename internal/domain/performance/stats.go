package performance

import (
	"math"
	"sort"
	"time"

	"github.com/workforcehq/hr-backend-go/internal/pkg/period"
)

// Top performer threshold: rating of 4 or higher.
const topPerformerRating = 4

type DateRangeResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type OverallStats struct {
	TotalReviews       int     `json:"total_reviews"`
	AverageRating      float64 `json:"average_rating"`
	TopPerformersCount int     `json:"top_performers_count"`
}

type RatingCount struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

type DepartmentStats struct {
	Department   string  `json:"department"`
	TotalReviews int     `json:"total_reviews"`
	AvgRating    float64 `json:"avg_rating"`
}

type StatsResponse struct {
	DateRange          DateRangeResponse     `json:"date_range"`
	OverallStats       OverallStats          `json:"overall_stats"`
	RatingDistribution []RatingCount         `json:"rating_distribution"`
	DepartmentStats    []DepartmentStats     `json:"department_stats"`
	TopPerformers      []PerformanceResponse `json:"top_performers"`
}

type MonthlyRatingStat struct {
	Month         int     `json:"month"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}

type RatingAnalysisResponse struct {
	Year              int                 `json:"year"`
	MonthlyStats      []MonthlyRatingStat `json:"monthly_stats"`
	DepartmentRatings []DepartmentStats   `json:"department_ratings"`
}

// BuildStats aggregates a fetched review set into overall stats, the
// rating distribution, per-department averages, and the top performers
// (rating >= 4) serialized in full.
//
// Department grouping is by NAME, matching the attendance stats. Two
// departments sharing a name merge into one row.
func BuildStats(records []Performance, r period.DateRange, today time.Time) StatsResponse {
	overall := OverallStats{TotalReviews: len(records)}

	var ratingSum int
	distribution := make(map[int]int)
	var topPerformers []PerformanceResponse

	for _, rec := range records {
		ratingSum += rec.Rating
		distribution[rec.Rating]++
		if rec.Rating >= topPerformerRating {
			topPerformers = append(topPerformers, ToResponse(rec, today))
		}
	}

	if overall.TotalReviews > 0 {
		overall.AverageRating = round2(float64(ratingSum) / float64(overall.TotalReviews))
	}
	overall.TopPerformersCount = len(topPerformers)

	ratingCounts := make([]RatingCount, 0, len(distribution))
	for rating, count := range distribution {
		ratingCounts = append(ratingCounts, RatingCount{Rating: rating, Count: count})
	}
	sort.Slice(ratingCounts, func(i, j int) bool {
		return ratingCounts[i].Rating < ratingCounts[j].Rating
	})

	if topPerformers == nil {
		topPerformers = []PerformanceResponse{}
	}

	return StatsResponse{
		DateRange: DateRangeResponse{
			StartDate: r.StartString(),
			EndDate:   r.EndString(),
		},
		OverallStats:       overall,
		RatingDistribution: ratingCounts,
		DepartmentStats:    BuildDepartmentStats(records),
		TopPerformers:      topPerformers,
	}
}

// BuildMonthlyAverages buckets a year's reviews into twelve monthly
// average-rating entries, empty months included.
func BuildMonthlyAverages(records []Performance, year int) []MonthlyRatingStat {
	type bucket struct {
		sum, count int
	}
	byMonth := make(map[int]*bucket)
	for _, rec := range records {
		if rec.ReviewDate.Year() != year {
			continue
		}
		m := int(rec.ReviewDate.Month())
		b, ok := byMonth[m]
		if !ok {
			b = &bucket{}
			byMonth[m] = b
		}
		b.sum += rec.Rating
		b.count++
	}

	monthly := make([]MonthlyRatingStat, 0, 12)
	for m := 1; m <= 12; m++ {
		stat := MonthlyRatingStat{Month: m}
		if b, ok := byMonth[m]; ok && b.count > 0 {
			stat.AverageRating = round2(float64(b.sum) / float64(b.count))
			stat.TotalReviews = b.count
		}
		monthly = append(monthly, stat)
	}
	return monthly
}

// BuildDepartmentStats groups reviews by department name and averages
// ratings within each group.
func BuildDepartmentStats(records []Performance) []DepartmentStats {
	type bucket struct {
		sum, count int
	}
	byDept := make(map[string]*bucket)
	for _, rec := range records {
		name := ""
		if rec.DepartmentName != nil {
			name = *rec.DepartmentName
		}
		b, ok := byDept[name]
		if !ok {
			b = &bucket{}
			byDept[name] = b
		}
		b.sum += rec.Rating
		b.count++
	}

	deptStats := make([]DepartmentStats, 0, len(byDept))
	for name, b := range byDept {
		deptStats = append(deptStats, DepartmentStats{
			Department:   name,
			TotalReviews: b.count,
			AvgRating:    round2(float64(b.sum) / float64(b.count)),
		})
	}
	sort.Slice(deptStats, func(i, j int) bool {
		return deptStats[i].Department < deptStats[j].Department
	})
	return deptStats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
