package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tallerhq/ops-backend-go/internal/domain/holiday"
	"github.com/tallerhq/ops-backend-go/internal/handler/http/response"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.holidayService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created successfully", mapHolidayToResponse(created))
}

// List implements HolidayHandler.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if v, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		year = v
	}

	holidays, err := h.holidayService.List(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, hol := range holidays {
		responses = append(responses, mapHolidayToResponse(hol))
	}
	response.Success(w, responses)
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := h.holidayService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}

func mapHolidayToResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Date:        h.Date.Format("2006-01-02"),
		Name:        h.Name,
		NonWaivable: h.NonWaivable,
		Multiplier:  h.Multiplier.String(),
	}
}
