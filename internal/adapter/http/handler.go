package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"crowdfund/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. The caller principal for mutating operations is taken from the
// X-Principal header: this adapter plays the role of the execution
// environment that authenticates callers, and the core trusts the
// principal it is handed.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// CampaignUseCase implementation and a logger. The returned Handler
// registers handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/registry/pause", h.handleRegistryPause)
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreate)
			r.Get("/", h.handleList)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleDetail)
				r.Get("/tiers", h.handleListTiers)
				r.Post("/tiers", h.handleAddTier)
				r.Delete("/tiers/{index}", h.handleRemoveTier)
				r.Post("/fund", h.handleFund)
				r.Post("/withdraw", h.handleWithdraw)
				r.Post("/refund", h.handleRefund)
				r.Post("/pause", h.handlePauseCampaign)
				r.Post("/deadline", h.handleExtendDeadline)
				r.Get("/backers/{principal}/tiers/{index}", h.handleHasFundedTier)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
