package report

import (
	"log/slog"
	"sort"

	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

// SummarizePeriod counts records by status and sums their hours.
// Absent is never stored, so it stays zero here.
func SummarizePeriod(from, to string, records []attendance.Attendance) report.PeriodSummary {
	summary := report.PeriodSummary{From: from, To: to}
	total := decimal.Zero

	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusLate:
			summary.Late++
		case attendance.StatusHalfDay:
			summary.HalfDay++
		default:
			summary.Unclassified++
			slog.Warn("attendance record with unexpected status", "attendance_id", r.ID, "status", r.Status)
		}
		total = total.Add(r.TotalHours)
	}

	summary.TotalHours = total.Round(2).StringFixed(2)
	return summary
}

// recordOnRoster reports whether r belongs to an employee on the attendance roster.
// Manager-owned and orphaned records are not.
func recordOnRoster(r attendance.Attendance) bool {
	return r.EmployeeRole != nil && employee.Role(*r.EmployeeRole) == employee.RoleEmployee
}

// CountDaily counts the stored statuses of roster employees for date, so the
// numbers agree with the reconciled team status. Absent is the roster
// remainder, never negative.
func CountDaily(date string, rosterSize int, records []attendance.Attendance) report.DailyCounts {
	counts := report.DailyCounts{Date: date, TotalEmployees: rosterSize}

	for _, r := range records {
		if r.Date != date || !recordOnRoster(r) {
			continue
		}
		switch r.Status {
		case attendance.StatusPresent:
			counts.Present++
		case attendance.StatusLate:
			counts.Late++
		case attendance.StatusHalfDay:
			counts.HalfDay++
		}
	}

	counts.Absent = rosterSize - (counts.Present + counts.Late + counts.HalfDay)
	if counts.Absent < 0 {
		counts.Absent = 0
	}
	return counts
}

// WeeklyTrend groups roster employees' records dated on or after since by
// date, oldest first.
func WeeklyTrend(since string, records []attendance.Attendance) []report.TrendPoint {
	byDate := make(map[string]*report.TrendPoint)

	for _, r := range records {
		if r.Date < since || !recordOnRoster(r) {
			continue
		}
		point, ok := byDate[r.Date]
		if !ok {
			point = &report.TrendPoint{Date: r.Date}
			byDate[r.Date] = point
		}
		switch r.Status {
		case attendance.StatusPresent:
			point.Present++
		case attendance.StatusLate:
			point.Late++
		case attendance.StatusHalfDay:
			point.HalfDay++
		}
	}

	trend := make([]report.TrendPoint, 0, len(byDate))
	for _, point := range byDate {
		trend = append(trend, *point)
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })
	return trend
}

// DepartmentDistribution counts roster members per department, sorted by department.
func DepartmentDistribution(employees []employee.Employee) []report.DepartmentCount {
	counts := make(map[string]int)
	for _, emp := range employees {
		if !emp.OnRoster() {
			continue
		}
		counts[emp.Department]++
	}

	result := make([]report.DepartmentCount, 0, len(counts))
	for dept, n := range counts {
		result = append(result, report.DepartmentCount{Department: dept, Count: n})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Department < result[j].Department })
	return result
}

// FilterReport applies an inclusive date range and the optional employee filter.
// Without an employee filter only records owned by roster employees are kept.
// The result is sorted newest date first.
func FilterReport(records []attendance.Attendance, filter report.ReportFilter) []attendance.Attendance {
	result := make([]attendance.Attendance, 0, len(records))

	for _, r := range records {
		if filter.From != nil && r.Date < *filter.From {
			continue
		}
		if filter.To != nil && r.Date > *filter.To {
			continue
		}
		if filter.EmployeeID != nil {
			if r.EmployeeID != *filter.EmployeeID {
				continue
			}
		} else if !recordOnRoster(r) {
			continue
		}
		result = append(result, r)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date > result[j].Date
		}
		return result[i].CheckInTime.After(result[j].CheckInTime)
	})
	return result
}
