package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"

	// StatusAbsent is derived by roster reconciliation and never stored.
	StatusAbsent Status = "absent"
)

// IsRecorded reports whether s is one of the statuses a stored record may carry.
func (s Status) IsRecorded() bool {
	switch s {
	case StatusPresent, StatusLate, StatusHalfDay:
		return true
	}
	return false
}

type Attendance struct {
	ID           string
	EmployeeID   string
	Date         string // YYYY-MM-DD in the organization timezone
	CheckInTime  time.Time
	CheckOutTime *time.Time
	Status       Status
	TotalHours   decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join, nil when the employee reference does not resolve
	EmployeeName       *string
	EmployeeEmail      *string
	EmployeeCode       *string
	EmployeeDepartment *string
	EmployeeRole       *string
}

// IsOpen reports whether the record is still waiting for a check-out.
func (a *Attendance) IsOpen() bool {
	return a.CheckOutTime == nil
}

// HasIdentity reports whether the employee join resolved.
func (a *Attendance) HasIdentity() bool {
	return a.EmployeeName != nil
}
