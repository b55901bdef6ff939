package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/team-calendar/internal/domain"
)

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	member, err := h.memberService.AddMember(r.Context(), actorFromRequest(r), req.Name, req.Color, req.TeamID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(domainMemberToHTTP(*member))
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	var req RemoveMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.memberService.RemoveMember(r.Context(), actorFromRequest(r), req.MemberID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	teamID := r.URL.Query().Get("team_id")
	if teamID == "" {
		teamID = domain.TeamAll
	}

	members, err := h.memberService.ListMembers(r.Context(), teamID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ListMembersResponse{
		Members: domainMembersToHTTP(members),
	})
}
