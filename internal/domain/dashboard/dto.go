package dashboard

import (
	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/domain/report"
)

// NotMarked is the employee dashboard status before any check-in today.
const NotMarked = "not-marked"

// RecentHistoryLimit caps the employee dashboard history.
const RecentHistoryLimit = 7

// ========== EMPLOYEE DASHBOARD ==========

type EmployeeDashboardResponse struct {
	TodayStatus   string                          `json:"today_status"`
	CheckInTime   *string                         `json:"check_in_time"`
	CheckOutTime  *string                         `json:"check_out_time"`
	MonthlyStats  report.PeriodSummary            `json:"monthly_stats"`
	RecentHistory []attendance.AttendanceResponse `json:"recent_history"`
}

// ========== MANAGER DASHBOARD ==========

type ManagerDashboardResponse struct {
	TotalEmployees  int                      `json:"total_employees"`
	TodayStats      report.DailyCounts       `json:"today_stats"`
	DepartmentStats []report.DepartmentCount `json:"department_stats"`
	WeeklyStats     []report.TrendPoint      `json:"weekly_stats"`
}
