package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
)

type campaignDetailResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Owner       string    `json:"owner"`
	Goal        uint64    `json:"goal"`
	Deadline    time.Time `json:"deadline"`
	Balance     uint64    `json:"balance"`
	Paused      bool      `json:"paused"`
	State       uint8     `json:"state"`
	StateName   string    `json:"state_name"`
}

type tierResponse struct {
	Name    string `json:"name"`
	Amount  uint64 `json:"amount"`
	Backers uint64 `json:"backers"`
}

type addTierRequest struct {
	Name   string `json:"name"`
	Amount uint64 `json:"amount"`
}

// handleDetail returns the campaign read model. The state field is the
// authoritative projection at request time.
func (h *Handler) handleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	d, err := h.svc.Detail(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaignDetailResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		Description: d.Description,
		Owner:       string(d.Owner),
		Goal:        d.Goal,
		Deadline:    d.Deadline,
		Balance:     d.Balance,
		Paused:      d.Paused,
		State:       uint8(d.State),
		StateName:   d.State.String(),
	})
}

// handleListTiers returns the tier ledger. Tier indices in the returned
// array are positional and may be reassigned by a later removal.
func (h *Handler) handleListTiers(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	tiers, err := h.svc.Tiers(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]tierResponse, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, tierResponse{Name: t.Name, Amount: t.Amount, Backers: t.Backers})
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleAddTier appends a funding tier. Owner-only.
func (h *Handler) handleAddTier(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(r)
	if !ok {
		http.Error(w, "missing principal", http.StatusBadRequest)
		return
	}
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req addTierRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err = h.svc.AddTier(r.Context(), caller, id, req.Name, req.Amount); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// handleRemoveTier removes the tier at {index}. Owner-only.
func (h *Handler) handleRemoveTier(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(r)
	if !ok {
		http.Error(w, "missing principal", http.StatusBadRequest)
		return
	}
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	index, err := tierIndex(r)
	if err != nil {
		http.Error(w, "invalid tier index", http.StatusBadRequest)
		return
	}
	if err = h.svc.RemoveTier(r.Context(), caller, id, index); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleHasFundedTier reports whether {principal} has ever funded the tier
// at {index}. Out-of-range indices answer false rather than failing.
func (h *Handler) handleHasFundedTier(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	backer := domain.Principal(chi.URLParam(r, "principal"))
	index, err := tierIndex(r)
	if err != nil {
		http.Error(w, "invalid tier index", http.StatusBadRequest)
		return
	}
	funded, err := h.svc.HasFundedTier(r.Context(), id, backer, index)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"funded": funded})
}
