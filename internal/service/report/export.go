package report

import (
	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/domain/report"
)

const missingCheckOut = "-"

// ProjectExport flattens records into export rows. Records whose employee did not
// resolve are dropped first; nothing left to export is ErrEmptyReport.
func ProjectExport(records []attendance.Attendance, policy attendance.Policy) ([]report.ExportRow, error) {
	rows := make([]report.ExportRow, 0, len(records))

	for _, r := range records {
		if !r.HasIdentity() {
			continue
		}

		row := report.ExportRow{
			EmployeeCode: deref(r.EmployeeCode),
			Name:         deref(r.EmployeeName),
			Email:        deref(r.EmployeeEmail),
			Department:   deref(r.EmployeeDepartment),
			Date:         r.Date,
			Status:       string(r.Status),
			CheckIn:      policy.FormatClock(r.CheckInTime),
			CheckOut:     missingCheckOut,
			WorkHours:    "0",
		}
		if r.CheckOutTime != nil {
			row.CheckOut = policy.FormatClock(*r.CheckOutTime)
		}
		if !r.TotalHours.IsZero() {
			row.WorkHours = r.TotalHours.StringFixed(2)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, report.ErrEmptyReport
	}
	return rows, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
