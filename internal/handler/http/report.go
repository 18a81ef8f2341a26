package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tallerhq/ops-backend-go/internal/domain/report"
	"github.com/tallerhq/ops-backend-go/internal/handler/http/response"
	"github.com/tallerhq/ops-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	DayStatuses(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	ExportMonthlySummary(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// DayStatuses implements ReportHandler.
func (h *ReportHandlerImpl) DayStatuses(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	from, ok := validator.IsValidDate(r.URL.Query().Get("start_date"))
	if !ok {
		response.BadRequest(w, "start_date must be YYYY-MM-DD", nil)
		return
	}
	to, ok := validator.IsValidDate(r.URL.Query().Get("end_date"))
	if !ok {
		response.BadRequest(w, "end_date must be YYYY-MM-DD", nil)
		return
	}
	if to.Before(from) {
		response.BadRequest(w, "end_date must not be before start_date", nil)
		return
	}

	result, err := h.reportService.DayStatuses(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlySummary implements ReportHandler.
func (h *ReportHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}

	summary, err := h.reportService.MonthlySummary(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ExportMonthlySummary implements ReportHandler. Streams the XLSX workbook.
func (h *ReportHandlerImpl) ExportMonthlySummary(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}

	workbook, err := h.reportService.ExportMonthlySummary(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance-%d-%02d.xlsx", year, int(month))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}

func parseYearMonth(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return 0, 0, false
		}
		year = parsed
	}
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(w, "month must be 1-12", nil)
			return 0, 0, false
		}
		month = parsed
	}

	return year, time.Month(month), true
}
