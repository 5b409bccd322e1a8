package report

import (
	"time"

	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-go/internal/domain/report"
)

// Reconcile partitions roster into present and absent for date.
//
// Records pointing outside the roster are ignored, as are records that carry no
// recorded status. Every roster member lands in exactly one of the two lists, in
// roster order.
func Reconcile(date string, roster []employee.Employee, records []attendance.Attendance, loc *time.Location) report.TeamStatusResponse {
	onRoster := make(map[string]struct{}, len(roster))
	for _, emp := range roster {
		onRoster[emp.ID] = struct{}{}
	}

	byEmployee := make(map[string]attendance.Attendance, len(records))
	for _, r := range records {
		if r.Date != date || !r.Status.IsRecorded() {
			continue
		}
		if _, ok := onRoster[r.EmployeeID]; !ok {
			continue
		}
		if _, seen := byEmployee[r.EmployeeID]; !seen {
			byEmployee[r.EmployeeID] = r
		}
	}

	resp := report.TeamStatusResponse{
		Date:    date,
		Present: make([]report.PresentEntry, 0, len(byEmployee)),
		Absent:  make([]report.AbsentEntry, 0, len(roster)-len(byEmployee)),
	}

	for _, emp := range roster {
		if r, ok := byEmployee[emp.ID]; ok {
			resp.Present = append(resp.Present, report.PresentEntry{
				Identity:   emp.Identity(),
				Attendance: attendance.NewAttendanceResponse(r, loc),
			})
			continue
		}
		resp.Absent = append(resp.Absent, report.AbsentEntry{
			Identity: emp.Identity(),
			Status:   attendance.StatusAbsent,
		})
	}

	return resp
}
