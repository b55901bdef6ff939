package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) CreateShareLink(w http.ResponseWriter, r *http.Request) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	baseURL := scheme + "://" + r.Host

	url, err := h.shareService.CreateLink(r.Context(), baseURL)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ShareLinkResponse{URL: url})
}

func (h *Handler) GetSharedView(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")

	shared, err := h.shareService.SharedView(r.Context(), token)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SharedViewResponse{
		Teams:    domainTeamsToHTTP(shared.Teams),
		Members:  domainMembersToHTTP(shared.Members),
		Statuses: domainWorkDaysToHTTP(shared.Workdays),
		Events:   domainEventsToHTTP(shared.Events),
	})
}
