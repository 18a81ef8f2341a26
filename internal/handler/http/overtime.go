package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tallerhq/ops-backend-go/internal/domain/overtime"
	"github.com/tallerhq/ops-backend-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &OvertimeHandlerImpl{overtimeService: overtimeService}
}

// Get implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Overtime record ID is required", nil)
		return
	}

	record, err := h.overtimeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// List implements OvertimeHandler.
func (h *OvertimeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter overtime.ListFilter
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("classification"); v != "" {
		filter.Classification = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		filter.Page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		filter.Limit = v
	}

	result, err := h.overtimeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, response.PageMeta(result.Page, result.Limit, result.TotalCount))
}

// Approve implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	var req overtime.ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Approve overtime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	record, err := h.overtimeService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime record approved successfully", record)
}

// Reject implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req overtime.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reject overtime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	record, err := h.overtimeService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime record rejected successfully", record)
}
