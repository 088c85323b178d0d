package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/raiyan/alumni-network/internal/apperror"
	"github.com/raiyan/alumni-network/internal/events"
	"github.com/raiyan/alumni-network/internal/model"
)

// EventsHandler serves the events calendar listing and registration.
type EventsHandler struct {
	cal    *events.Calendar
	logger *slog.Logger
}

func NewEventsHandler(cal *events.Calendar, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{cal: cal, logger: logger}
}

// HandleList returns the events matching the query parameters.
//
// HTTP: GET /api/events?q=&filter=upcoming
//
// filter is one of "all", "upcoming", "past"; anything else (including
// absent) behaves like "all".
func (h *EventsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	results := h.cal.Search(events.Query{
		Text:   params.Get("q"),
		Filter: params.Get("filter"),
	})

	writeJSON(w, http.StatusOK, listResponse[model.Event]{
		Records: results,
		Count:   len(results),
		Total:   h.cal.Total(),
	})
}

// HandleGet returns a single event.
//
// HTTP: GET /api/events/{id}
func (h *EventsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	event, ok := h.cal.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "event not found with id " + id,
		})
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// HandleRegister acknowledges a registration for an event. Registration is
// an acknowledgement, not a booking: the attendee count does not change.
//
// HTTP: POST /api/events/{id}/register (authenticated)
func (h *EventsHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	confirmation, err := h.cal.Register(id)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			h.logger.Error("event registration failed", "event_id", id, "error", err)
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, confirmation)
}
