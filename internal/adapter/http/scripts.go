package httpadapter

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"affitrack/internal/core/port"
)

// handleScript serves the obfuscated tracking script for a deployed
// campaign. Responses are cacheable for an hour and CORS-open so partner
// pages can embed the script from any origin. Error bodies are JS comments
// because the consumer is a <script> tag.
func (h *Handler) handleScript(w http.ResponseWriter, r *http.Request) {
	code, err := h.scripts.RenderScript(r.Context(), chi.URLParam(r, "scriptID"))
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		http.Error(w, "// Script not found", http.StatusNotFound)
		return
	case errors.Is(err, port.ErrUnsupportedTemplate):
		http.Error(w, "// Invalid template type", http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("script generation error", slog.Any("error", err))
		http.Error(w, "// Script generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	_, _ = w.Write([]byte(code))
}

// handleScriptInfo returns campaign details behind a script id, for
// debugging deployed snippets.
func (h *Handler) handleScriptInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.scripts.ScriptInfo(r.Context(), chi.URLParam(r, "scriptID"))
	if errors.Is(err, port.ErrCampaignNotFound) {
		h.respondJSON(w, http.StatusNotFound, errorBody{Error: "Script not found"})
		return
	}
	if err != nil {
		h.respondError(w, err, "Failed to fetch script info")
		return
	}
	h.respondData(w, info)
}
