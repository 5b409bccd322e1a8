package employee

import "time"

// Role is a closed set; anything else fails IsValid.
type Role string

const (
	RoleEmployee Role = "employee" // Regular employee, part of the attendance roster
	RoleManager  Role = "manager"  // Views team attendance and exports reports
)

func (r Role) IsValid() bool {
	return r == RoleEmployee || r == RoleManager
}

// Can reports whether the role grants the given capability.
func (r Role) Can(permission Permission) bool {
	return HasPermission(r, permission)
}

type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash *string
	Role         Role
	EmployeeCode string
	Department   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OnRoster reports whether the employee is expected to record attendance.
func (e *Employee) OnRoster() bool {
	return e.Role == RoleEmployee
}

// Identity is the public projection of an employee joined onto reports.
type Identity struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	EmployeeCode string `json:"employee_code"`
	Department   string `json:"department"`
	Role         Role   `json:"role"`
}

func (e Employee) Identity() Identity {
	return Identity{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		EmployeeCode: e.EmployeeCode,
		Department:   e.Department,
		Role:         e.Role,
	}
}
