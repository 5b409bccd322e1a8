package report

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/validator"
)

// trendWindowDays is how far back the weekly trend reaches.
const trendWindowDays = 7

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	policy         attendance.Policy
	now            func() time.Time
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	policy attendance.Policy,
	now func() time.Time,
) report.ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		policy:         policy,
		now:            now,
	}
}

func (s *ReportServiceImpl) roster(ctx context.Context) ([]employee.Employee, error) {
	role := employee.RoleEmployee
	roster, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{Role: &role})
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	return roster, nil
}

func (s *ReportServiceImpl) recordsBetween(ctx context.Context, from, to *string, employeeID *string) ([]attendance.Attendance, error) {
	records, err := s.attendanceRepo.List(ctx, attendance.AttendanceFilter{EmployeeID: employeeID, From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return records, nil
}

// MySummary implements report.ReportService.
func (s *ReportServiceImpl) MySummary(ctx context.Context, employeeID string) (report.PeriodSummary, error) {
	from, to := s.policy.MonthRange(s.now())

	records, err := s.recordsBetween(ctx, &from, &to, &employeeID)
	if err != nil {
		return report.PeriodSummary{}, err
	}
	return SummarizePeriod(from, to, records), nil
}

// TeamReport implements report.ReportService.
func (s *ReportServiceImpl) TeamReport(ctx context.Context, filter report.ReportFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.recordsBetween(ctx, filter.From, filter.To, filter.EmployeeID)
	if err != nil {
		return nil, err
	}

	filtered := FilterReport(records, filter)
	responses := make([]attendance.AttendanceResponse, 0, len(filtered))
	for _, r := range filtered {
		responses = append(responses, attendance.NewAttendanceResponse(r, s.policy.Loc()))
	}
	return responses, nil
}

// TodayStatus implements report.ReportService.
func (s *ReportServiceImpl) TodayStatus(ctx context.Context) (report.TeamStatusResponse, error) {
	return s.TeamStatusOn(ctx, s.policy.CalendarDate(s.now()))
}

// TeamStatusOn implements report.ReportService.
func (s *ReportServiceImpl) TeamStatusOn(ctx context.Context, date string) (report.TeamStatusResponse, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return report.TeamStatusResponse{}, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}

	roster, err := s.roster(ctx)
	if err != nil {
		return report.TeamStatusResponse{}, err
	}
	records, err := s.recordsBetween(ctx, &date, &date, nil)
	if err != nil {
		return report.TeamStatusResponse{}, err
	}

	return Reconcile(date, roster, records, s.policy.Loc()), nil
}

// DailyCounts implements report.ReportService.
func (s *ReportServiceImpl) DailyCounts(ctx context.Context) (report.DailyCounts, error) {
	today := s.policy.CalendarDate(s.now())

	roster, err := s.roster(ctx)
	if err != nil {
		return report.DailyCounts{}, err
	}
	records, err := s.recordsBetween(ctx, &today, &today, nil)
	if err != nil {
		return report.DailyCounts{}, err
	}

	return CountDaily(today, len(roster), records), nil
}

// WeeklyTrend implements report.ReportService.
func (s *ReportServiceImpl) WeeklyTrend(ctx context.Context) ([]report.TrendPoint, error) {
	since := s.policy.DaysBefore(s.now(), trendWindowDays)

	records, err := s.recordsBetween(ctx, &since, nil, nil)
	if err != nil {
		return nil, err
	}
	return WeeklyTrend(since, records), nil
}

// DepartmentDistribution implements report.ReportService.
func (s *ReportServiceImpl) DepartmentDistribution(ctx context.Context) ([]report.DepartmentCount, error) {
	roster, err := s.roster(ctx)
	if err != nil {
		return nil, err
	}
	return DepartmentDistribution(roster), nil
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, filter report.ReportFilter) ([]report.ExportRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.recordsBetween(ctx, filter.From, filter.To, filter.EmployeeID)
	if err != nil {
		return nil, err
	}

	return ProjectExport(FilterReport(records, filter), s.policy)
}
