package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetEmployeeDashboard returns today's status, the month summary and recent history
	GetEmployeeDashboard(ctx context.Context, employeeID string) (*EmployeeDashboardResponse, error)

	// GetManagerDashboard returns combined team data using goroutines
	GetManagerDashboard(ctx context.Context) (*ManagerDashboardResponse, error)
}
