package report

import (
	"context"

	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
)

// ReportService derives team and self summaries from stored attendance records.
type ReportService interface {
	// MySummary counts the employee's records for the current month.
	MySummary(ctx context.Context, employeeID string) (PeriodSummary, error)

	// TeamReport lists records matching the filter, newest date first.
	TeamReport(ctx context.Context, filter ReportFilter) ([]attendance.AttendanceResponse, error)

	// TodayStatus splits the roster into present and absent for today.
	TodayStatus(ctx context.Context) (TeamStatusResponse, error)

	// TeamStatusOn splits the roster into present and absent for date.
	TeamStatusOn(ctx context.Context, date string) (TeamStatusResponse, error)

	DailyCounts(ctx context.Context) (DailyCounts, error)
	WeeklyTrend(ctx context.Context) ([]TrendPoint, error)
	DepartmentDistribution(ctx context.Context) ([]DepartmentCount, error)

	// Export returns ErrEmptyReport when no row survives filtering.
	Export(ctx context.Context, filter ReportFilter) ([]ExportRow, error)
}
