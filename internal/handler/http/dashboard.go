package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetEmployeeDashboard returns the caller's today status, month stats and recent history
	GetEmployeeDashboard(w http.ResponseWriter, r *http.Request)
	// GetManagerDashboard returns today's counts, departments and the weekly trend
	GetManagerDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetEmployeeDashboard handles GET /dashboard/employee
func (h *dashboardHandlerImpl) GetEmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.GetEmployeeDashboard(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetManagerDashboard handles GET /dashboard/manager
func (h *dashboardHandlerImpl) GetManagerDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetManagerDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
