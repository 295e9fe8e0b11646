package dashboard

import (
	"github.com/workforcehq/hr-backend-go/internal/domain/attendance"
)

type OverallStats struct {
	TotalEmployees   int     `json:"total_employees"`
	ActiveEmployees  int     `json:"active_employees"`
	TotalDepartments int     `json:"total_departments"`
	AvgPerformance   float64 `json:"avg_performance"`
}

type TodayAttendance struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Total   int `json:"total"`
}

type RecentEmployee struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
}

type RecentAttendance struct {
	Employee string `json:"employee"`
	Status   string `json:"status"`
	Date     string `json:"date"`
}

type RecentPerformance struct {
	Employee   string `json:"employee"`
	Rating     int    `json:"rating"`
	ReviewDate string `json:"review_date"`
}

type RecentActivities struct {
	Employees    []RecentEmployee    `json:"employees"`
	Attendances  []RecentAttendance  `json:"attendances"`
	Performances []RecentPerformance `json:"performances"`
}

// DashboardStatsResponse is the combined snapshot behind the dashboard
// landing page.
type DashboardStatsResponse struct {
	Overall          OverallStats     `json:"overall"`
	TodayAttendance  TodayAttendance  `json:"today_attendance"`
	RecentActivities RecentActivities `json:"recent_activities"`
}

type DepartmentCount struct {
	Department    string `json:"department"`
	EmployeeCount int    `json:"employee_count"`
}

type DepartmentChartResponse struct {
	Departments []DepartmentCount `json:"departments"`
}

// AttendanceChartResponse holds the current month's daily attendance
// buckets, business days only.
type AttendanceChartResponse struct {
	Year       int                    `json:"year"`
	Month      int                    `json:"month"`
	DailyStats []attendance.DailyStat `json:"daily_stats"`
}

type RatingSlice struct {
	Rating int    `json:"rating"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

type PerformanceChartResponse struct {
	RatingDistribution []RatingSlice `json:"rating_distribution"`
}
