package report

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectExport(t *testing.T) {
	a := emp("a", employee.RoleEmployee, "Eng")

	closed := rec(a, "a", "2024-03-04", attendance.StatusHalfDay, "2.5")
	out := time.Date(2024, 3, 4, 11, 30, 0, 0, time.UTC)
	closed.CheckOutTime = &out
	open := rec(a, "a", "2024-03-05", attendance.StatusPresent, "0")
	orphan := rec(employee.Employee{}, "ghost", "2024-03-05", attendance.StatusPresent, "0")

	rows, err := ProjectExport([]attendance.Attendance{closed, orphan, open}, attendance.DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"CODE-a", "Name a", "a@example.com", "Eng", "2024-03-04", "half-day", "09:00:00 AM", "11:30:00 AM", "2.50"}, rows[0].Values())
	assert.Equal(t, "-", rows[1].CheckOut)
	assert.Equal(t, "0", rows[1].WorkHours)
	assert.Len(t, rows[0].Values(), len(report.ExportHeader))
}

func TestProjectExport_Empty(t *testing.T) {
	_, err := ProjectExport(nil, attendance.DefaultPolicy())
	assert.ErrorIs(t, err, report.ErrEmptyReport)

	orphan := rec(employee.Employee{}, "ghost", "2024-03-05", attendance.StatusPresent, "0")
	_, err = ProjectExport([]attendance.Attendance{orphan}, attendance.DefaultPolicy())
	assert.ErrorIs(t, err, report.ErrEmptyReport)
}
