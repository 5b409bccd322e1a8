package report

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-go/internal/repository/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

type reportEnv struct {
	svc       report.ReportService
	attRepo   attendance.AttendanceRepository
	employees map[string]employee.Employee
}

func setupReportService(t *testing.T) reportEnv {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.MigrateSQLite(db))
	t.Cleanup(func() { db.Close() })

	empRepo := sqlite.NewEmployeeRepository(db)
	attRepo := sqlite.NewAttendanceRepository(db)

	employees := make(map[string]employee.Employee)
	for _, e := range []struct {
		code, dept string
		role       employee.Role
	}{
		{"E1", "Engineering", employee.RoleEmployee},
		{"E2", "Engineering", employee.RoleEmployee},
		{"E3", "Operations", employee.RoleEmployee},
		{"E4", "Sales", employee.RoleEmployee},
		{"M1", "Management", employee.RoleManager},
	} {
		created, err := empRepo.Create(context.Background(), employee.Employee{
			Name: "Name " + e.code, Email: e.code + "@example.com", Role: e.role,
			EmployeeCode: e.code, Department: e.dept,
		})
		require.NoError(t, err)
		employees[e.code] = created
	}

	return reportEnv{
		svc:       NewReportService(attRepo, empRepo, attendance.DefaultPolicy(), func() time.Time { return fixedNow }),
		attRepo:   attRepo,
		employees: employees,
	}
}

func (env reportEnv) record(t *testing.T, code, date string, status attendance.Status, hours string) {
	t.Helper()
	ctx := context.Background()

	day, err := time.Parse(attendance.DateLayout, date)
	require.NoError(t, err)
	in := day.Add(9 * time.Hour)

	created, err := env.attRepo.Create(ctx, attendance.Attendance{
		EmployeeID: env.employees[code].ID, Date: date, CheckInTime: in, Status: status,
	})
	require.NoError(t, err)

	if hours != "" {
		h := decimal.RequireFromString(hours)
		out := in.Add(time.Duration(h.Mul(decimal.NewFromInt(int64(time.Hour))).IntPart()))
		_, err = env.attRepo.CloseSession(ctx, created.ID, out, status, h)
		require.NoError(t, err)
	}
}

func TestReportService_TodayStatus(t *testing.T) {
	env := setupReportService(t)
	env.record(t, "E1", "2024-03-04", attendance.StatusPresent, "")
	env.record(t, "E3", "2024-03-04", attendance.StatusLate, "")
	env.record(t, "M1", "2024-03-04", attendance.StatusPresent, "")
	env.record(t, "E2", "2024-03-03", attendance.StatusPresent, "8")

	got, err := env.svc.TodayStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2024-03-04", got.Date)
	require.Len(t, got.Present, 2)
	require.Len(t, got.Absent, 2)

	present := []string{got.Present[0].EmployeeCode, got.Present[1].EmployeeCode}
	absent := []string{got.Absent[0].EmployeeCode, got.Absent[1].EmployeeCode}
	assert.ElementsMatch(t, []string{"E1", "E3"}, present)
	assert.ElementsMatch(t, []string{"E2", "E4"}, absent)
}

func TestReportService_TeamStatusOn_InvalidDate(t *testing.T) {
	env := setupReportService(t)

	_, err := env.svc.TeamStatusOn(context.Background(), "03/04/2024")
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestReportService_DailyCounts(t *testing.T) {
	env := setupReportService(t)
	env.record(t, "E1", "2024-03-04", attendance.StatusPresent, "")
	env.record(t, "E2", "2024-03-04", attendance.StatusHalfDay, "2")
	env.record(t, "M1", "2024-03-04", attendance.StatusPresent, "")

	got, err := env.svc.DailyCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, report.DailyCounts{Date: "2024-03-04", TotalEmployees: 4, Present: 1, HalfDay: 1, Absent: 2}, got)
}

func TestReportService_MySummary(t *testing.T) {
	env := setupReportService(t)
	env.record(t, "E1", "2024-03-01", attendance.StatusPresent, "8")
	env.record(t, "E1", "2024-03-02", attendance.StatusLate, "5.5")
	env.record(t, "E1", "2024-03-04", attendance.StatusHalfDay, "3.25")
	env.record(t, "E1", "2024-02-28", attendance.StatusPresent, "8")
	env.record(t, "E2", "2024-03-01", attendance.StatusPresent, "8")

	got, err := env.svc.MySummary(context.Background(), env.employees["E1"].ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", got.From)
	assert.Equal(t, "2024-03-31", got.To)
	assert.Equal(t, 1, got.Present)
	assert.Equal(t, 1, got.Late)
	assert.Equal(t, 1, got.HalfDay)
	assert.Equal(t, 0, got.Absent)
	assert.Equal(t, "16.75", got.TotalHours)
}

func TestReportService_WeeklyTrend(t *testing.T) {
	env := setupReportService(t)
	env.record(t, "E1", "2024-02-20", attendance.StatusPresent, "")
	env.record(t, "E1", "2024-02-26", attendance.StatusPresent, "")
	env.record(t, "E2", "2024-02-26", attendance.StatusLate, "")
	env.record(t, "E1", "2024-03-04", attendance.StatusPresent, "")
	env.record(t, "M1", "2024-03-04", attendance.StatusLate, "")

	got, err := env.svc.WeeklyTrend(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, report.TrendPoint{Date: "2024-02-26", Present: 1, Late: 1}, got[0])
	assert.Equal(t, report.TrendPoint{Date: "2024-03-04", Present: 1}, got[1])
}

func TestReportService_DepartmentDistribution(t *testing.T) {
	env := setupReportService(t)

	got, err := env.svc.DepartmentDistribution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []report.DepartmentCount{
		{Department: "Engineering", Count: 2},
		{Department: "Operations", Count: 1},
		{Department: "Sales", Count: 1},
	}, got)
}

func TestReportService_TeamReport(t *testing.T) {
	env := setupReportService(t)
	env.record(t, "E1", "2024-03-01", attendance.StatusPresent, "8")
	env.record(t, "E2", "2024-03-02", attendance.StatusLate, "")
	env.record(t, "M1", "2024-03-02", attendance.StatusPresent, "")

	all, err := env.svc.TeamReport(context.Background(), report.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2024-03-02", all[0].Date)
	require.NotNil(t, all[0].EmployeeName)
	assert.Equal(t, "Name E2", *all[0].EmployeeName)

	id := env.employees["E1"].ID
	one, err := env.svc.TeamReport(context.Background(), report.ReportFilter{EmployeeID: &id})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "8.00", one[0].TotalHours)

	from := "2024-03-01"
	_, err = env.svc.TeamReport(context.Background(), report.ReportFilter{From: &from})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestReportService_Export_EmptyForEmployees(t *testing.T) {
	env := setupReportService(t)
	env.record(t, "M1", "2024-03-04", attendance.StatusPresent, "")

	_, err := env.svc.Export(context.Background(), report.ReportFilter{})
	assert.ErrorIs(t, err, report.ErrEmptyReport)
}

func TestReportService_Export(t *testing.T) {
	env := setupReportService(t)
	env.record(t, "E1", "2024-03-01", attendance.StatusPresent, "8.5")
	env.record(t, "E2", "2024-03-04", attendance.StatusLate, "")

	from, to := "2024-03-01", "2024-03-31"
	rows, err := env.svc.Export(context.Background(), report.ReportFilter{From: &from, To: &to, Format: report.FormatXLSX})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "E2", rows[0].EmployeeCode)
	assert.Equal(t, "-", rows[0].CheckOut)
	assert.Equal(t, "0", rows[0].WorkHours)

	assert.Equal(t, "E1", rows[1].EmployeeCode)
	assert.Equal(t, "09:00:00 AM", rows[1].CheckIn)
	assert.Equal(t, "05:30:00 PM", rows[1].CheckOut)
	assert.Equal(t, "8.50", rows[1].WorkHours)
}
