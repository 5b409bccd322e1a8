package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceFilter narrows List. Nil fields are unbounded; From and To are inclusive.
type AttendanceFilter struct {
	EmployeeID *string
	From       *string
	To         *string
}

type AttendanceRepository interface {
	// Create inserts the record only if none exists for the same employee and date.
	// A lost race returns ErrDuplicateCheckIn.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns ErrAttendanceNotFound when there is no record.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (Attendance, error)

	// CloseSession sets the check-out fields only while check_out_time is still empty.
	// A record that is already closed returns ErrAlreadyCheckedOut.
	CloseSession(ctx context.Context, id string, checkOut time.Time, status Status, totalHours decimal.Decimal) (Attendance, error)

	// List returns records joined with their employee identity, newest date first.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
}
