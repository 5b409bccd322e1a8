package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound),
		errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrGoogleAccountNotRegistered):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrGoogleLoginDisabled):
		NotFound(w, "Google sign-in is not configured")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrManagerSignupDisabled):
		Forbidden(w, "Manager accounts cannot be self-registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDuplicateCheckIn):
		ErrorWithCode(w, http.StatusConflict, "DUPLICATE_CHECK_IN", "Already checked in today")
	case errors.Is(err, attendance.ErrNoActiveCheckIn):
		ErrorWithCode(w, http.StatusConflict, "NO_ACTIVE_CHECK_IN", "Not checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		ErrorWithCode(w, http.StatusConflict, "ALREADY_CHECKED_OUT", "Already checked out today")
	case errors.Is(err, attendance.ErrInvalidCheckOutTime):
		ErrorWithCode(w, http.StatusConflict, "INVALID_CHECK_OUT_TIME", "Check-out time must be after check-in time")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Report domain errors
	case errors.Is(err, report.ErrEmptyReport):
		ErrorWithCode(w, http.StatusNotFound, "EMPTY_REPORT", "No attendance records found to export")
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
