package attendance

import (
	"time"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type AttendanceResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	EmployeeName       *string `json:"employee_name,omitempty"`
	EmployeeEmail      *string `json:"employee_email,omitempty"`
	EmployeeCode       *string `json:"employee_code,omitempty"`
	EmployeeDepartment *string `json:"department,omitempty"`
	Date               string  `json:"date"`
	CheckInTime        string  `json:"check_in_time"`
	CheckOutTime       *string `json:"check_out_time"`
	Status             Status  `json:"status"`
	TotalHours         string  `json:"total_hours"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

// NewAttendanceResponse renders timestamps in loc.
func NewAttendanceResponse(a Attendance, loc *time.Location) AttendanceResponse {
	if loc == nil {
		loc = time.UTC
	}
	resp := AttendanceResponse{
		ID:                 a.ID,
		EmployeeID:         a.EmployeeID,
		EmployeeName:       a.EmployeeName,
		EmployeeEmail:      a.EmployeeEmail,
		EmployeeCode:       a.EmployeeCode,
		EmployeeDepartment: a.EmployeeDepartment,
		Date:               a.Date,
		CheckInTime:        a.CheckInTime.In(loc).Format(time.RFC3339),
		Status:             a.Status,
		TotalHours:         a.TotalHours.StringFixed(2),
		CreatedAt:          a.CreatedAt.In(loc).Format(time.RFC3339),
		UpdatedAt:          a.UpdatedAt.In(loc).Format(time.RFC3339),
	}
	if a.CheckOutTime != nil {
		out := a.CheckOutTime.In(loc).Format(time.RFC3339)
		resp.CheckOutTime = &out
	}
	return resp
}

// NotCheckedIn is the today status of an employee without a record.
const NotCheckedIn = "not-checked-in"

type TodayResponse struct {
	Status     string              `json:"status"`
	Attendance *AttendanceResponse `json:"attendance,omitempty"`
}
