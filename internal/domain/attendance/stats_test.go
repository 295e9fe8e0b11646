package attendance

import (
	"testing"
	"time"

	"github.com/workforcehq/hr-backend-go/internal/pkg/period"
)

func strPtr(s string) *string { return &s }

func record(date time.Time, status, dept string) Attendance {
	return Attendance{
		Date:           date,
		Status:         status,
		DepartmentName: strPtr(dept),
	}
}

func TestBuildStats(t *testing.T) {
	dr := period.MonthBounds(2025, 6)
	day := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	records := []Attendance{
		record(day, StatusPresent, "Engineering"),
		record(day, StatusPresent, "Sales"),
		record(day, StatusAbsent, "Engineering"),
	}

	stats := BuildStats(records, dr)

	if stats.DateRange.StartDate != "2025-06-01" || stats.DateRange.EndDate != "2025-06-30" {
		t.Errorf("date_range = [%s, %s], want [2025-06-01, 2025-06-30]",
			stats.DateRange.StartDate, stats.DateRange.EndDate)
	}

	overall := stats.OverallStats
	if overall.TotalRecords != 3 || overall.Present != 2 || overall.Absent != 1 || overall.Late != 0 {
		t.Errorf("overall = %+v, want total=3 present=2 absent=1 late=0", overall)
	}
	if overall.AttendanceRate != 66.67 {
		t.Errorf("attendance_rate = %v, want 66.67", overall.AttendanceRate)
	}

	if len(stats.DepartmentStats) != 2 {
		t.Fatalf("department_stats has %d entries, want 2", len(stats.DepartmentStats))
	}
	// Sorted by department name.
	eng := stats.DepartmentStats[0]
	if eng.Department != "Engineering" || eng.Total != 2 || eng.Present != 1 || eng.Absent != 1 {
		t.Errorf("engineering stats = %+v", eng)
	}
	sales := stats.DepartmentStats[1]
	if sales.Department != "Sales" || sales.Total != 1 || sales.Present != 1 {
		t.Errorf("sales stats = %+v", sales)
	}
}

func TestBuildStatsEmpty(t *testing.T) {
	stats := BuildStats(nil, period.MonthBounds(2025, 6))
	if stats.OverallStats.TotalRecords != 0 || stats.OverallStats.AttendanceRate != 0 {
		t.Errorf("empty stats = %+v, want zeroes", stats.OverallStats)
	}
	if len(stats.DepartmentStats) != 0 {
		t.Errorf("department_stats has %d entries, want 0", len(stats.DepartmentStats))
	}
}

func TestBuildStatsMergesByDepartmentName(t *testing.T) {
	day := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	records := []Attendance{
		record(day, StatusPresent, "Engineering"),
		record(day, StatusLate, "Engineering"),
	}
	stats := BuildStats(records, period.MonthBounds(2025, 6))
	if len(stats.DepartmentStats) != 1 {
		t.Fatalf("department_stats has %d entries, want 1", len(stats.DepartmentStats))
	}
	if stats.DepartmentStats[0].Total != 2 || stats.DepartmentStats[0].Late != 1 {
		t.Errorf("merged stats = %+v", stats.DepartmentStats[0])
	}
}

func TestBuildDailyStats(t *testing.T) {
	dr := period.MonthBounds(2025, 6)
	records := []Attendance{
		record(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), StatusPresent, "Engineering"),
		record(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), StatusLate, "Sales"),
		record(time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), StatusAbsent, "Engineering"),
	}

	daily := BuildDailyStats(records, dr, false)
	if len(daily) != 30 {
		t.Fatalf("daily stats has %d entries, want 30", len(daily))
	}

	june2 := daily[1]
	if june2.Date != "2025-06-02" || june2.Present != 1 || june2.Late != 1 || june2.Total != 2 {
		t.Errorf("june 2 = %+v, want present=1 late=1 total=2", june2)
	}
	june3 := daily[2]
	if june3.Absent != 1 || june3.Total != 1 {
		t.Errorf("june 3 = %+v, want absent=1 total=1", june3)
	}
	// Days with no records still appear with zero counts.
	if daily[29].Date != "2025-06-30" || daily[29].Total != 0 {
		t.Errorf("june 30 = %+v, want empty bucket", daily[29])
	}
}

func TestBuildDailyStatsBusinessDaysOnly(t *testing.T) {
	// June 2025 starts on a Sunday: 9 weekend days, 21 business days.
	dr := period.MonthBounds(2025, 6)
	daily := BuildDailyStats(nil, dr, true)
	if len(daily) != 21 {
		t.Fatalf("business-day stats has %d entries, want 21", len(daily))
	}
	for _, stat := range daily {
		day, err := time.Parse("2006-01-02", stat.Date)
		if err != nil {
			t.Fatalf("bad date %q: %v", stat.Date, err)
		}
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Errorf("weekend day %s present in business-day stats", stat.Date)
		}
	}
}
