package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/attendance-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/export"
)

type ReportHandler interface {
	GetMySummary(w http.ResponseWriter, r *http.Request)
	GetTeamReport(w http.ResponseWriter, r *http.Request)
	GetTodayStatus(w http.ResponseWriter, r *http.Request)
	GetDailySummary(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func parseReportFilter(r *http.Request) report.ReportFilter {
	var filter report.ReportFilter
	query := r.URL.Query()

	if from := query.Get("from"); from != "" {
		filter.From = &from
	}
	if to := query.Get("to"); to != "" {
		filter.To = &to
	}
	if employeeID := query.Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	filter.Format = query.Get("format")

	return filter
}

// GetMySummary handles GET /attendance/my-summary
func (h *reportHandlerImpl) GetMySummary(w http.ResponseWriter, r *http.Request) {
	employeeID, err := middleware.EmployeeID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.reportService.MySummary(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// GetTeamReport handles GET /attendance/all
func (h *reportHandlerImpl) GetTeamReport(w http.ResponseWriter, r *http.Request) {
	results, err := h.reportService.TeamReport(r.Context(), parseReportFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetTodayStatus handles GET /attendance/today-status
func (h *reportHandlerImpl) GetTodayStatus(w http.ResponseWriter, r *http.Request) {
	var (
		result report.TeamStatusResponse
		err    error
	)
	if date := r.URL.Query().Get("date"); date != "" {
		result, err = h.reportService.TeamStatusOn(r.Context(), date)
	} else {
		result, err = h.reportService.TodayStatus(r.Context())
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDailySummary handles GET /attendance/summary
func (h *reportHandlerImpl) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	counts, err := h.reportService.DailyCounts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, counts)
}

// Export handles GET /attendance/export
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	filter := parseReportFilter(r)
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.reportService.Export(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writer, err := export.ForFormat(filter.Format)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	values := make([][]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, row.Values())
	}

	// Headers are written only after a successful render
	var buf bytes.Buffer
	if err := writer.Write(&buf, report.ExportHeader, values); err != nil {
		slog.Error("Export render error", "format", filter.Format, "error", err)
		response.InternalServerError(w, "Failed to generate report")
		return
	}

	w.Header().Set("Content-Type", writer.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", writer.Filename()))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Export write error", "error", err)
	}
}
