package httpadapter

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"affitrack/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the usecases for script serving, event ingestion and
// reporting plus a logger for structured logging. Routes are registered on
// a chi.Router for convenient method handling.
type Handler struct {
	events  port.EventUseCase
	scripts port.ScriptUseCase
	reports port.ReportUseCase
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(events port.EventUseCase, scripts port.ScriptUseCase, reports port.ReportUseCase, logger *slog.Logger) *Handler {
	h := &Handler{events: events, scripts: scripts, reports: reports, logger: logger}
	r := chi.NewRouter()

	r.Get("/health", h.handleHealth)

	r.Route("/scripts", func(r chi.Router) {
		r.Get("/{scriptID}", h.handleScript)
		r.Get("/{scriptID}/info", h.handleScriptInfo)
	})

	r.Post("/events/track", h.handleTrackEvent)

	r.Route("/postbacks/{campaignID}", func(r chi.Router) {
		r.Post("/", h.handlePostback)
		r.Post("/test", h.handleTestPostback)
		r.Get("/url", h.handlePostbackURL)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/campaigns/{campaignID}", h.handleCampaignReport)
		r.Get("/overview", h.handleOverview)
		r.Get("/realtime", h.handleRealtime)
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
