package attendance

import (
	"math"
	"sort"
	"time"

	"github.com/workforcehq/hr-backend-go/internal/pkg/period"
)

type DateRangeResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type OverallStats struct {
	TotalRecords   int     `json:"total_records"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	Late           int     `json:"late"`
	AttendanceRate float64 `json:"attendance_rate"`
}

type DepartmentStats struct {
	Department string `json:"department"`
	Total      int    `json:"total"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
	Late       int    `json:"late"`
}

type StatsResponse struct {
	DateRange       DateRangeResponse `json:"date_range"`
	OverallStats    OverallStats      `json:"overall_stats"`
	DepartmentStats []DepartmentStats `json:"department_stats"`
}

type DailyStat struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
	Total   int    `json:"total"`
}

type MonthlyOverviewResponse struct {
	Year       int         `json:"year"`
	Month      int         `json:"month"`
	DailyStats []DailyStat `json:"daily_stats"`
}

// BuildStats aggregates a fetched record set into overall counts, the
// attendance rate, and per-department breakdowns for the given range.
//
// Grouping is by department NAME: two departments sharing a name merge
// into one row. Kept for report compatibility with existing consumers.
func BuildStats(records []Attendance, r period.DateRange) StatsResponse {
	overall := OverallStats{TotalRecords: len(records)}

	byDept := make(map[string]*DepartmentStats)
	for _, rec := range records {
		switch rec.Status {
		case StatusPresent:
			overall.Present++
		case StatusAbsent:
			overall.Absent++
		case StatusLate:
			overall.Late++
		}

		name := ""
		if rec.DepartmentName != nil {
			name = *rec.DepartmentName
		}
		dept, ok := byDept[name]
		if !ok {
			dept = &DepartmentStats{Department: name}
			byDept[name] = dept
		}
		dept.Total++
		switch rec.Status {
		case StatusPresent:
			dept.Present++
		case StatusAbsent:
			dept.Absent++
		case StatusLate:
			dept.Late++
		}
	}

	if overall.TotalRecords > 0 {
		overall.AttendanceRate = round2(float64(overall.Present) / float64(overall.TotalRecords) * 100)
	}

	deptStats := make([]DepartmentStats, 0, len(byDept))
	for _, dept := range byDept {
		deptStats = append(deptStats, *dept)
	}
	sort.Slice(deptStats, func(i, j int) bool {
		return deptStats[i].Department < deptStats[j].Department
	})

	return StatsResponse{
		DateRange: DateRangeResponse{
			StartDate: r.StartString(),
			EndDate:   r.EndString(),
		},
		OverallStats:    overall,
		DepartmentStats: deptStats,
	}
}

// BuildDailyStats buckets a fetched record set into one entry per calendar
// day across the range (inclusive, ascending). With businessDaysOnly set,
// Saturdays and Sundays are skipped entirely.
//
// The whole range is fetched once and bucketed in memory instead of
// issuing one query per day.
func BuildDailyStats(records []Attendance, r period.DateRange, businessDaysOnly bool) []DailyStat {
	type counts struct {
		present, absent, late, total int
	}
	byDay := make(map[string]*counts)
	for _, rec := range records {
		key := rec.Date.Format("2006-01-02")
		c, ok := byDay[key]
		if !ok {
			c = &counts{}
			byDay[key] = c
		}
		c.total++
		switch rec.Status {
		case StatusPresent:
			c.present++
		case StatusAbsent:
			c.absent++
		case StatusLate:
			c.late++
		}
	}

	daily := []DailyStat{}
	period.EachDay(r, func(day time.Time) {
		if businessDaysOnly && !period.IsBusinessDay(day) {
			return
		}
		key := day.Format("2006-01-02")
		stat := DailyStat{Date: key}
		if c, ok := byDay[key]; ok {
			stat.Present = c.present
			stat.Absent = c.absent
			stat.Late = c.late
			stat.Total = c.total
		}
		daily = append(daily, stat)
	})
	return daily
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
