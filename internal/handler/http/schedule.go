package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tallerhq/ops-backend-go/internal/domain/schedule"
	"github.com/tallerhq/ops-backend-go/internal/handler/http/response"
	"github.com/tallerhq/ops-backend-go/internal/pkg/validator"
)

type ScheduleHandler interface {
	ResolveExpected(w http.ResponseWriter, r *http.Request)

	GetConfig(w http.ResponseWriter, r *http.Request)
	UpdateConfig(w http.ResponseWriter, r *http.Request)

	CreateShift(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
	DeactivateShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)

	AssignShift(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)
	RemoveAssignment(w http.ResponseWriter, r *http.Request)

	SetSpecialSchedule(w http.ResponseWriter, r *http.Request)
	ClearSpecialSchedule(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// ResolveExpected implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ResolveExpected(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	date := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, ok := validator.IsValidDate(v)
		if !ok {
			response.BadRequest(w, "date must be YYYY-MM-DD", nil)
			return
		}
		date = parsed
	}

	expected := h.scheduleService.ResolveExpected(r.Context(), employeeID, date)

	response.Success(w, schedule.ExpectedTimesResponse{
		EmployeeID: employeeID,
		Date:       date.Format("2006-01-02"),
		EntryTime:  expected.EntryTime,
		ExitTime:   expected.ExitTime,
		Source:     expected.Source,
	})
}

// GetConfig implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.scheduleService.GetConfig(r.Context())
	response.Success(w, mapConfigToResponse(cfg))
}

// UpdateConfig implements ScheduleHandler.
func (h *ScheduleHandlerImpl) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateConfig decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cfg, err := h.scheduleService.UpdateConfig(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance config updated successfully", mapConfigToResponse(cfg))
}

// CreateShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	shift, err := h.scheduleService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", mapShiftToResponse(shift))
}

// UpdateShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.scheduleService.UpdateShift(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated successfully", nil)
}

// DeactivateShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) DeactivateShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	if err := h.scheduleService.DeactivateShift(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deactivated successfully", nil)
}

// ListShifts implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	shifts, err := h.scheduleService.ListShifts(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]schedule.ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		responses = append(responses, mapShiftToResponse(shift))
	}
	response.Success(w, responses)
}

// AssignShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) AssignShift(w http.ResponseWriter, r *http.Request) {
	var req schedule.AssignShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AssignShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	assignment, err := h.scheduleService.AssignShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift assigned successfully", mapAssignmentToResponse(assignment))
}

// ListAssignments implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	assignments, err := h.scheduleService.ListAssignments(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]schedule.AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, mapAssignmentToResponse(assignment))
	}
	response.Success(w, responses)
}

// RemoveAssignment implements ScheduleHandler.
func (h *ScheduleHandlerImpl) RemoveAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Assignment ID is required", nil)
		return
	}

	if err := h.scheduleService.RemoveAssignment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift assignment removed successfully", nil)
}

// SetSpecialSchedule implements ScheduleHandler.
func (h *ScheduleHandlerImpl) SetSpecialSchedule(w http.ResponseWriter, r *http.Request) {
	var req schedule.SpecialScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetSpecialSchedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	special, err := h.scheduleService.SetSpecialSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Special schedule set successfully", schedule.SpecialScheduleResponse{
		ID:         special.ID,
		EmployeeID: special.EmployeeID,
		EntryTime:  special.EntryTime,
		ExitTime:   special.ExitTime,
		IsActive:   special.IsActive,
	})
}

// ClearSpecialSchedule implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ClearSpecialSchedule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Special schedule ID is required", nil)
		return
	}

	if err := h.scheduleService.ClearSpecialSchedule(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Special schedule cleared successfully", nil)
}

func mapConfigToResponse(cfg schedule.Config) schedule.ConfigResponse {
	return schedule.ConfigResponse{
		DefaultEntry:         cfg.DefaultEntry,
		DefaultExit:          cfg.DefaultExit,
		ToleranceMinutes:     cfg.ToleranceMinutes,
		RequireJustification: cfg.RequireJustification,
	}
}

func mapShiftToResponse(shift schedule.Shift) schedule.ShiftResponse {
	return schedule.ShiftResponse{
		ID:        shift.ID,
		Name:      shift.Name,
		EntryTime: shift.EntryTime,
		ExitTime:  shift.ExitTime,
		IsActive:  shift.IsActive,
	}
}

func mapAssignmentToResponse(assignment schedule.ShiftAssignment) schedule.AssignmentResponse {
	return schedule.AssignmentResponse{
		ID:         assignment.ID,
		EmployeeID: assignment.EmployeeID,
		ShiftID:    assignment.ShiftID,
		StartDate:  assignment.StartDate.Format("2006-01-02"),
		EndDate:    assignment.EndDate.Format("2006-01-02"),
	}
}
