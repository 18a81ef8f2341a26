package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tallerhq/ops-backend-go/internal/domain/vacation"
	"github.com/tallerhq/ops-backend-go/internal/handler/http/response"
)

type VacationHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type VacationHandlerImpl struct {
	vacationService vacation.VacationService
}

func NewVacationHandler(vacationService vacation.VacationService) VacationHandler {
	return &VacationHandlerImpl{vacationService: vacationService}
}

// Request implements VacationHandler.
func (h *VacationHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	var req vacation.CreateVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create vacation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.vacationService.Request(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vacation request created successfully", result)
}

// Approve implements VacationHandler.
func (h *VacationHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	var req vacation.ApproveVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Approve vacation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.vacationService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation request approved successfully", result)
}

// Reject implements VacationHandler.
func (h *VacationHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req vacation.RejectVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reject vacation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.vacationService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation request rejected successfully", result)
}

// List implements VacationHandler.
func (h *VacationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter vacation.ListFilter
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		filter.Year = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}

	requests, err := h.vacationService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// GetBalance implements VacationHandler.
func (h *VacationHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	year := time.Now().Year()
	if v, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		year = v
	}

	balance, err := h.vacationService.GetBalance(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}
