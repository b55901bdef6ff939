package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/team-calendar/internal/domain"
)

func (h *Handler) AddEvent(w http.ResponseWriter, r *http.Request) {
	var req AddEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	event, err := h.eventService.AddEvent(r.Context(), actorFromRequest(r), req.Name, req.Date, req.Color, req.TeamID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(domainEventToHTTP(*event))
}

func (h *Handler) RemoveEvent(w http.ResponseWriter, r *http.Request) {
	var req RemoveEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.eventService.RemoveEvent(r.Context(), actorFromRequest(r), req.EventID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MoveEvent(w http.ResponseWriter, r *http.Request) {
	var req MoveEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	event, err := h.eventService.MoveEvent(r.Context(), actorFromRequest(r), req.EventID, req.NewDate)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainEventToHTTP(*event))
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "date parameter is required",
		})
		return
	}

	teamID := r.URL.Query().Get("team_id")
	events, err := h.eventService.EventsOn(r.Context(), date, teamID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ListEventsResponse{
		Events: domainEventsToHTTP(events),
	})
}
