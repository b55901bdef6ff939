package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), actorFromRequest(r), req.Name)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(domainTeamToHTTP(*team))
}

func (h *Handler) RenameTeam(w http.ResponseWriter, r *http.Request) {
	var req RenameTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	team, err := h.teamService.RenameTeam(r.Context(), actorFromRequest(r), req.TeamID, req.Name)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainTeamToHTTP(*team))
}

func (h *Handler) RemoveTeam(w http.ResponseWriter, r *http.Request) {
	var req RemoveTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.teamService.RemoveTeam(r.Context(), actorFromRequest(r), req.TeamID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ListTeamsResponse{
		Teams: domainTeamsToHTTP(teams),
	})
}
