package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"log/slog"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// principalHeader carries the authenticated caller identity. The adapter
// trusts it verbatim; see Handler.
const principalHeader = "X-Principal"

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v as the response body with the given status.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps a domain or port error onto an HTTP status, keeping the
// error kind distinguishable in the body so clients can assert on the
// specific condition.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, port.ErrCampaignNotFound),
		errors.Is(err, domain.ErrTierNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrAmountMismatch):
		status = http.StatusBadRequest
	case errors.Is(err, port.ErrFactoryPaused),
		errors.Is(err, domain.ErrPaused),
		errors.Is(err, domain.ErrCampaignClosed),
		errors.Is(err, domain.ErrNotSuccessful),
		errors.Is(err, domain.ErrNotFailed),
		errors.Is(err, domain.ErrZeroBalance),
		errors.Is(err, domain.ErrNoContribution):
		status = http.StatusConflict
	default:
		h.logger.Error("internal error", slog.Any("error", err))
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// principal extracts the caller identity from the request. A missing
// header means the request cannot be attributed to any principal.
func principal(r *http.Request) (domain.Principal, bool) {
	p := r.Header.Get(principalHeader)
	return domain.Principal(p), p != ""
}

// campaignID parses the {id} path parameter.
func campaignID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// tierIndex parses the {index} path parameter.
func tierIndex(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "index"))
}
