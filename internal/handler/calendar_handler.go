package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/team-calendar/internal/domain"
)

func (h *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "date parameter is required",
		})
		return
	}

	day, err := h.calendarService.Day(r.Context(), date, r.URL.Query().Get("team_id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(dayViewToHTTP(*day))
}

func (h *Handler) GetWeek(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	if start == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "start parameter is required",
		})
		return
	}

	week, err := h.calendarService.Week(r.Context(), start, r.URL.Query().Get("team_id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	days := make([]DayResponse, 0, len(week.Days))
	for _, day := range week.Days {
		days = append(days, dayViewToHTTP(day))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(WeekResponse{
		StartDate: week.StartDate,
		TeamID:    week.TeamID,
		Days:      days,
	})
}

func (h *Handler) ExportICS(w http.ResponseWriter, r *http.Request) {
	feed, err := h.calendarService.ExportICS(r.Context(), r.URL.Query().Get("team_id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(feed))
}
