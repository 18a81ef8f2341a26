package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tallerhq/ops-backend-go/internal/domain/leave"
	"github.com/tallerhq/ops-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Request implements LeaveHandler. The body is multipart: a JSON "data" field
// plus an optional "attachment" file.
func (h *LeaveHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	var req leave.CreateLeaveRequest
	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if file, header, err := r.FormFile("attachment"); err == nil {
		defer file.Close()
		req.Attachment = file
		req.AttachmentName = header.Filename
	}

	result, err := h.leaveService.Request(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created successfully", result)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	var req leave.ApproveLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Approve leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.leaveService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved successfully", result)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req leave.RejectLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reject leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.leaveService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected successfully", result)
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter leave.ListFilter
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	requests, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}
