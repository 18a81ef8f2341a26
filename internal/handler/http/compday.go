package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tallerhq/ops-backend-go/internal/domain/compday"
	"github.com/tallerhq/ops-backend-go/internal/handler/http/response"
)

type CompDayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Redeem(w http.ResponseWriter, r *http.Request)
}

type CompDayHandlerImpl struct {
	compDayService compday.CompDayService
}

func NewCompDayHandler(compDayService compday.CompDayService) CompDayHandler {
	return &CompDayHandlerImpl{compDayService: compDayService}
}

// List implements CompDayHandler.
func (h *CompDayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter compday.ListFilter
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}

	days, err := h.compDayService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, days)
}

// Redeem implements CompDayHandler.
func (h *CompDayHandlerImpl) Redeem(w http.ResponseWriter, r *http.Request) {
	var req compday.RedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Redeem compensatory day decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	day, err := h.compDayService.Redeem(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Compensatory day redeemed successfully", day)
}
