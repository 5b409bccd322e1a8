package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/sse"
)

// EventAttendanceUpdated is published after every check-in and check-out.
const EventAttendanceUpdated = "attendance.updated"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	policy     attendance.Policy
	classifier Classifier
	hub        *sse.Hub
	now        func() time.Time
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	if _, err := a.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.now()
	record := attendance.Attendance{
		EmployeeID:  employeeID,
		Date:        a.policy.CalendarDate(now),
		CheckInTime: now,
		Status:      a.classifier.ClassifyCheckIn(now),
	}

	// Exclusivity is enforced by the insert itself, not by a prior lookup.
	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateCheckIn) {
			return attendance.AttendanceResponse{}, attendance.ErrDuplicateCheckIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	slog.Info("employee checked in", "employee_id", employeeID, "date", created.Date, "status", created.Status)

	resp := attendance.NewAttendanceResponse(created, a.policy.Loc())
	a.publish(employeeID, resp)
	return resp, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	now := a.now()
	today := a.policy.CalendarDate(now)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNoActiveCheckIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if !record.IsOpen() {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	result, err := a.classifier.ClassifyCheckOut(record.CheckInTime, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	status := a.classifier.FinalStatus(record.Status, result)

	// CloseSession only matches an open record, so a concurrent double submit loses here.
	closed, err := a.AttendanceRepository.CloseSession(ctx, record.ID, now, status, result.WorkedHours)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedOut) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to close attendance: %w", err)
	}

	slog.Info("employee checked out", "employee_id", employeeID, "date", closed.Date, "status", closed.Status, "total_hours", closed.TotalHours.StringFixed(2))

	resp := attendance.NewAttendanceResponse(closed, a.policy.Loc())
	a.publish(employeeID, resp)
	return resp, nil
}

// GetMyHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyHistory(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	return a.history(ctx, employeeID)
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context, employeeID string) (attendance.TodayResponse, error) {
	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, a.policy.CalendarDate(a.now()))
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.TodayResponse{Status: attendance.NotCheckedIn}, nil
		}
		return attendance.TodayResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	resp := attendance.NewAttendanceResponse(record, a.policy.Loc())
	return attendance.TodayResponse{Status: string(record.Status), Attendance: &resp}, nil
}

// GetEmployeeHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetEmployeeHistory(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	if _, err := a.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return a.history(ctx, employeeID)
}

func (a *AttendanceServiceImpl) history(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.List(ctx, attendance.AttendanceFilter{EmployeeID: &employeeID})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.NewAttendanceResponse(r, a.policy.Loc()))
	}
	return responses, nil
}

func (a *AttendanceServiceImpl) publish(employeeID string, resp attendance.AttendanceResponse) {
	if a.hub == nil {
		return
	}
	a.hub.PublishToMany(
		[]string{sse.TopicTeam, sse.EmployeeTopic(employeeID)},
		sse.Event{Event: EventAttendanceUpdated, Data: resp},
	)
}

// NewAttendanceService wires the recorder. A nil now uses time.Now and a nil hub disables events.
func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	policy attendance.Policy,
	hub *sse.Hub,
	now func() time.Time,
) attendance.AttendanceService {
	if now == nil {
		now = time.Now
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		policy:               policy,
		classifier:           NewClassifier(policy),
		hub:                  hub,
		now:                  now,
	}
}
