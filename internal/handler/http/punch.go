package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tallerhq/ops-backend-go/internal/domain/punch"
	"github.com/tallerhq/ops-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &PunchHandlerImpl{punchService: punchService}
}

// Record implements PunchHandler.
func (h *PunchHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req punch.RecordPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Record punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.punchService.RecordPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded successfully", result)
}

// Get implements PunchHandler.
func (h *PunchHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Punch ID is required", nil)
		return
	}

	result, err := h.punchService.GetPunch(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PunchHandler.
func (h *PunchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := punch.ListPunchFilter{
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("kind"); v != "" {
		filter.Kind = &v
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

	result, err := h.punchService.ListPunches(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Punches, response.PageMeta(result.Page, result.Limit, result.TotalCount))
}
