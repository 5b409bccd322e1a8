package report

import (
	"time"

	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func emp(id string, role employee.Role, dept string) employee.Employee {
	return employee.Employee{
		ID:           id,
		Name:         "Name " + id,
		Email:        id + "@example.com",
		Role:         role,
		EmployeeCode: "CODE-" + id,
		Department:   dept,
	}
}

// rec builds a record joined to e; pass a zero employee for an orphan.
func rec(e employee.Employee, employeeID, date string, status attendance.Status, hours string) attendance.Attendance {
	in := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	r := attendance.Attendance{
		ID:          employeeID + "-" + date,
		EmployeeID:  employeeID,
		Date:        date,
		CheckInTime: in,
		Status:      status,
		TotalHours:  decimal.RequireFromString(hours),
	}
	if e.ID != "" {
		role := string(e.Role)
		r.EmployeeName = strPtr(e.Name)
		r.EmployeeEmail = strPtr(e.Email)
		r.EmployeeCode = strPtr(e.EmployeeCode)
		r.EmployeeDepartment = strPtr(e.Department)
		r.EmployeeRole = &role
	}
	return r
}
