package attendance

import "errors"

// Attendance domain errors
var (
	ErrDuplicateCheckIn    = errors.New("already checked in today")
	ErrNoActiveCheckIn     = errors.New("not checked in today")
	ErrAlreadyCheckedOut   = errors.New("already checked out")
	ErrInvalidCheckOutTime = errors.New("check-out time must be after check-in time")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
