package httpadapter

import (
	"encoding/json"
	"net/http"
)

type fundRequest struct {
	TierIndex int    `json:"tier_index"`
	Amount    uint64 `json:"amount"`
}

type extendDeadlineRequest struct {
	Days int `json:"days"`
}

// handleFund contributes the request amount to a tier as the caller. The
// amount must exactly match the tier's required amount.
func (h *Handler) handleFund(w http.ResponseWriter, r *http.Request) {
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
	var req fundRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err = h.svc.Fund(r.Context(), caller, id, req.TierIndex, req.Amount); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleWithdraw pays the held balance out to the owner of a Successful
// campaign and returns the released amount.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
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
	amount, err := h.svc.Withdraw(r.Context(), caller, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]uint64{"amount": amount})
}

// handleRefund returns the caller's contribution from a Failed campaign.
func (h *Handler) handleRefund(w http.ResponseWriter, r *http.Request) {
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
	amount, err := h.svc.Refund(r.Context(), caller, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]uint64{"amount": amount})
}

// handlePauseCampaign toggles the campaign's paused flag. Owner-only.
func (h *Handler) handlePauseCampaign(w http.ResponseWriter, r *http.Request) {
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
	paused, err := h.svc.TogglePauseCampaign(r.Context(), caller, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"paused": paused})
}

// handleExtendDeadline pushes the campaign deadline out. Owner-only,
// Active campaigns only.
func (h *Handler) handleExtendDeadline(w http.ResponseWriter, r *http.Request) {
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
	var req extendDeadlineRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err = h.svc.ExtendDeadline(r.Context(), caller, id, req.Days); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
