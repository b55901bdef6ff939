package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/team-calendar/internal/auth"
	"github.com/bagdasarian/team-calendar/internal/domain"
	"github.com/bagdasarian/team-calendar/internal/metrics"
)

func (h *Handler) RunBackup(w http.ResponseWriter, r *http.Request) {
	if err := auth.CanPerform(actorFromRequest(r), auth.ActionRunBackup, ""); err != nil {
		h.handleError(w, err)
		return
	}

	var req RunBackupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	kind := domain.BackupKind(req.Kind)
	record, err := h.backupService.Snapshot(r.Context(), kind)
	if err != nil {
		metrics.BackupRuns.WithLabelValues(req.Kind, "error").Inc()
		h.handleError(w, err)
		return
	}
	metrics.BackupRuns.WithLabelValues(req.Kind, "ok").Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(domainBackupToHTTP(*record, false))
}

func (h *Handler) GetBackup(w http.ResponseWriter, r *http.Request) {
	if err := auth.CanPerform(actorFromRequest(r), auth.ActionRunBackup, ""); err != nil {
		h.handleError(w, err)
		return
	}

	kind := domain.BackupKind(r.PathValue("kind"))
	record, err := h.backupService.Get(r.Context(), kind)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if record == nil {
		h.handleError(w, domain.NewNotFoundError(string(kind)+" backup"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainBackupToHTTP(*record, true))
}
