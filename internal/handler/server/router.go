package server

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bagdasarian/team-calendar/internal/handler"
	"github.com/bagdasarian/team-calendar/internal/metrics"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /teams", instrument("POST /teams", h.CreateTeam))
	mux.HandleFunc("GET /teams", instrument("GET /teams", h.ListTeams))
	mux.HandleFunc("POST /teams/rename", instrument("POST /teams/rename", h.RenameTeam))
	mux.HandleFunc("POST /teams/remove", instrument("POST /teams/remove", h.RemoveTeam))

	mux.HandleFunc("POST /members", instrument("POST /members", h.AddMember))
	mux.HandleFunc("GET /members", instrument("GET /members", h.ListMembers))
	mux.HandleFunc("POST /members/remove", instrument("POST /members/remove", h.RemoveMember))

	mux.HandleFunc("POST /status", instrument("POST /status", h.SetStatus))
	mux.HandleFunc("POST /status/toggle", instrument("POST /status/toggle", h.ToggleStatus))
	mux.HandleFunc("GET /status", instrument("GET /status", h.GetStatus))

	mux.HandleFunc("POST /events", instrument("POST /events", h.AddEvent))
	mux.HandleFunc("GET /events", instrument("GET /events", h.ListEvents))
	mux.HandleFunc("POST /events/remove", instrument("POST /events/remove", h.RemoveEvent))
	mux.HandleFunc("POST /events/move", instrument("POST /events/move", h.MoveEvent))

	mux.HandleFunc("GET /calendar/day", instrument("GET /calendar/day", h.GetDay))
	mux.HandleFunc("GET /calendar/week", instrument("GET /calendar/week", h.GetWeek))
	mux.HandleFunc("GET /calendar.ics", instrument("GET /calendar.ics", h.ExportICS))

	mux.HandleFunc("GET /notes", instrument("GET /notes", h.GetNotes))
	mux.HandleFunc("POST /notes", instrument("POST /notes", h.SetNotes))

	mux.HandleFunc("POST /share", instrument("POST /share", h.CreateShareLink))
	mux.HandleFunc("GET /shared/{token}", instrument("GET /shared/{token}", h.GetSharedView))

	mux.HandleFunc("POST /backup/run", instrument("POST /backup/run", h.RunBackup))
	mux.HandleFunc("GET /backup/{kind}", instrument("GET /backup/{kind}", h.GetBackup))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("GET /metrics", promhttp.Handler())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(recorder, r)
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
	}
}
