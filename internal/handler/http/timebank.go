package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tallerhq/ops-backend-go/internal/domain/timebank"
	"github.com/tallerhq/ops-backend-go/internal/handler/http/response"
)

type TimeBankHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	ManualAdjust(w http.ResponseWriter, r *http.Request)
}

type TimeBankHandlerImpl struct {
	timeBankService timebank.TimeBankService
}

func NewTimeBankHandler(timeBankService timebank.TimeBankService) TimeBankHandler {
	return &TimeBankHandlerImpl{timeBankService: timeBankService}
}

// GetBalance implements TimeBankHandler.
func (h *TimeBankHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	balance, err := h.timeBankService.Balance(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, timebank.BalanceResponse{
		EmployeeID:     employeeID,
		BalanceMinutes: balance,
	})
}

// GetHistory implements TimeBankHandler.
func (h *TimeBankHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var filter timebank.HistoryFilter
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := r.URL.Query().Get("origin"); v != "" {
		filter.Origin = &v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		filter.Limit = v
	}

	history, err := h.timeBankService.History(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

// ManualAdjust implements TimeBankHandler.
func (h *TimeBankHandlerImpl) ManualAdjust(w http.ResponseWriter, r *http.Request) {
	var req timebank.ManualAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ManualAdjust decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := h.timeBankService.ManualAdjust(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Adjustment recorded successfully", timebank.EntryResponse{
		ID:         entry.ID,
		EmployeeID: entry.EmployeeID,
		Date:       entry.Date.Format("2006-01-02"),
		Kind:       string(entry.Kind),
		Minutes:    entry.Minutes,
		Origin:     entry.Origin,
		PunchID:    entry.PunchID,
		Note:       entry.Note,
	})
}
