package employee

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Attendance Management
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Reports
	PermissionReportsExport Permission = "reports.export"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionAttendanceViewAll,
		PermissionReportsExport,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
