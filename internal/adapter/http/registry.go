package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

type createCampaignRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Goal         uint64 `json:"goal"`
	DurationDays int    `json:"duration_days"`
}

type registryEntryResponse struct {
	CampaignID string    `json:"campaign_id"`
	Creator    string    `json:"creator"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

func entryResponse(e port.RegistryEntry) registryEntryResponse {
	return registryEntryResponse{
		CampaignID: e.CampaignID.String(),
		Creator:    string(e.Creator),
		Name:       e.Name,
		CreatedAt:  e.CreatedAt,
	}
}

// handleCreate creates a new campaign owned by the caller. The request
// body is decoded into a createCampaignRequest. On success it returns the
// registry entry with HTTP 201. Parsing errors produce HTTP 400.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(r)
	if !ok {
		http.Error(w, "missing principal", http.StatusBadRequest)
		return
	}
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	entry, err := h.svc.Create(r.Context(), caller, port.CreateCampaignReq{
		Name:         req.Name,
		Description:  req.Description,
		Goal:         req.Goal,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, entryResponse(entry))
}

// handleList returns registered campaigns in creation order. With a
// ?creator= query parameter it returns that creator's campaigns only.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	var (
		entries []port.RegistryEntry
		err     error
	)
	if creator := r.URL.Query().Get("creator"); creator != "" {
		entries, err = h.svc.ListByCreator(r.Context(), domain.Principal(creator))
	} else {
		entries, err = h.svc.ListAll(r.Context())
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]registryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryResponse(e))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleRegistryPause toggles the registry pause flag. Admin-only.
func (h *Handler) handleRegistryPause(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(r)
	if !ok {
		http.Error(w, "missing principal", http.StatusBadRequest)
		return
	}
	paused, err := h.svc.TogglePause(r.Context(), caller)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"paused": paused})
}
