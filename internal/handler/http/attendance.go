package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetMyHistory(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	GetEmployeeHistory(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), employeeID)
	if err != nil {
		slog.Warn("Check-in rejected", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), employeeID)
	if err != nil {
		slog.Warn("Check-out rejected", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", result)
}

// GetMyHistory implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyHistory(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.attendanceService.GetMyHistory(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetToday(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeHistory implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetEmployeeHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "employee id is required", nil)
		return
	}
	if !validator.IsValidUUID(id) {
		response.HandleError(w, validator.ValidationErrors{{Field: "id", Message: "id must be a valid UUID"}})
		return
	}

	results, err := h.attendanceService.GetEmployeeHistory(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
