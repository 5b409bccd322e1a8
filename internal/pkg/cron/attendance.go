package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/domain/report"
)

type AttendanceJobs struct {
	reportService report.ReportService
	policy        attendance.Policy
	now           func() time.Time
}

func NewAttendanceJobs(reportService report.ReportService, policy attendance.Policy, now func() time.Time) *AttendanceJobs {
	if now == nil {
		now = time.Now
	}
	return &AttendanceJobs{
		reportService: reportService,
		policy:        policy,
		now:           now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("daily_absence_digest", 1*time.Hour, j.DailyAbsenceDigest)
}

// DailyAbsenceDigest logs yesterday's roster reconciliation. Absence stays derived,
// so nothing is written back.
func (j *AttendanceJobs) DailyAbsenceDigest(ctx context.Context) error {
	now := j.now()
	// Only run in the first hour of the organization's day
	if now.In(j.policy.Loc()).Hour() != 0 {
		return nil
	}

	yesterday := j.policy.DaysBefore(now, 1)
	status, err := j.reportService.TeamStatusOn(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to reconcile %s: %w", yesterday, err)
	}

	absentCodes := make([]string, 0, len(status.Absent))
	for _, a := range status.Absent {
		absentCodes = append(absentCodes, a.EmployeeCode)
	}

	slog.Info("Cron: Daily absence digest",
		"date", yesterday,
		"present", len(status.Present),
		"absent", len(status.Absent),
		"absent_employees", absentCodes,
	)
	return nil
}
