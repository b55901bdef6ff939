package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) GetNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notesService.Notes(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(NotesResponse{Notes: notes})
}

func (h *Handler) SetNotes(w http.ResponseWriter, r *http.Request) {
	var req SetNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.notesService.SetNotes(r.Context(), actorFromRequest(r), req.Notes); err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(NotesResponse{Notes: req.Notes})
}
