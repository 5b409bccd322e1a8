package attendance

import (
	"context"
)

// AttendanceService records clock events and serves self-service reads.
type AttendanceService interface {
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)
	GetMyHistory(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
	GetToday(ctx context.Context, employeeID string) (TodayResponse, error)

	// GetEmployeeHistory is the manager view of a single employee.
	GetEmployeeHistory(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
}
