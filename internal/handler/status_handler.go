package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/team-calendar/internal/domain"
)

func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	workday, err := h.statusService.SetStatus(
		r.Context(),
		actorFromRequest(r),
		req.UserID,
		req.Date,
		domain.Location(req.Location),
	)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainWorkDayToHTTP(*workday))
}

func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	var req ToggleStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	workday, err := h.statusService.ToggleStatus(r.Context(), actorFromRequest(r), req.UserID, req.Date)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainWorkDayToHTTP(*workday))
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	date := r.URL.Query().Get("date")
	if userID == "" || date == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "user_id and date parameters are required",
		})
		return
	}

	location, err := h.statusService.StatusOf(r.Context(), userID, date)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(StatusResponse{
		UserID:   userID,
		Date:     date,
		Location: string(location),
	})
}
