package dashboard

import (
	"context"

	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-go/internal/domain/report"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	attendanceService attendance.AttendanceService
	reportService     report.ReportService
}

func NewDashboardService(attendanceService attendance.AttendanceService, reportService report.ReportService) dashboard.DashboardService {
	return &DashboardServiceImpl{
		attendanceService: attendanceService,
		reportService:     reportService,
	}
}

// GetEmployeeDashboard returns today's status, the month summary and recent history
func (s *DashboardServiceImpl) GetEmployeeDashboard(ctx context.Context, employeeID string) (*dashboard.EmployeeDashboardResponse, error) {
	var (
		today   attendance.TodayResponse
		monthly report.PeriodSummary
		history []attendance.AttendanceResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		today, err = s.attendanceService.GetToday(gCtx, employeeID)
		return err
	})

	g.Go(func() error {
		var err error
		monthly, err = s.reportService.MySummary(gCtx, employeeID)
		return err
	})

	g.Go(func() error {
		var err error
		history, err = s.attendanceService.GetMyHistory(gCtx, employeeID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &dashboard.EmployeeDashboardResponse{
		TodayStatus:   dashboard.NotMarked,
		MonthlyStats:  monthly,
		RecentHistory: history,
	}
	if len(resp.RecentHistory) > dashboard.RecentHistoryLimit {
		resp.RecentHistory = resp.RecentHistory[:dashboard.RecentHistoryLimit]
	}
	if today.Attendance != nil {
		resp.TodayStatus = today.Status
		resp.CheckInTime = &today.Attendance.CheckInTime
		resp.CheckOutTime = today.Attendance.CheckOutTime
	}

	return resp, nil
}

// GetManagerDashboard returns today's counts, the department split and the 7-day trend, fetched in parallel
func (s *DashboardServiceImpl) GetManagerDashboard(ctx context.Context) (*dashboard.ManagerDashboardResponse, error) {
	var (
		counts      report.DailyCounts
		departments []report.DepartmentCount
		trend       []report.TrendPoint
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Today's counts against the roster
	g.Go(func() error {
		var err error
		counts, err = s.reportService.DailyCounts(gCtx)
		return err
	})

	// 2. Roster by department
	g.Go(func() error {
		var err error
		departments, err = s.reportService.DepartmentDistribution(gCtx)
		return err
	})

	// 3. Last seven days
	g.Go(func() error {
		var err error
		trend, err = s.reportService.WeeklyTrend(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.ManagerDashboardResponse{
		TotalEmployees:  counts.TotalEmployees,
		TodayStats:      counts,
		DepartmentStats: departments,
		WeeklyStats:     trend,
	}, nil
}
