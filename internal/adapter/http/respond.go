package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"affitrack/internal/core/port"
)

// errorBody is the failure envelope. Details carries per-field validation
// errors when present.
type errorBody struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Details []port.FieldError `json:"details,omitempty"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and give up on the response
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) respondSuccess(w http.ResponseWriter, body map[string]any) {
	out := map[string]any{"success": true}
	for k, v := range body {
		out[k] = v
	}
	h.respondJSON(w, http.StatusOK, out)
}

func (h *Handler) respondData(w http.ResponseWriter, data any) {
	h.respondSuccess(w, map[string]any{"data": data})
}

// respondError maps the usecase error taxonomy onto HTTP statuses.
// Internal failures are logged with full detail and surfaced with the
// generic message only.
func (h *Handler) respondError(w http.ResponseWriter, err error, internalMsg string) {
	var verr *port.ValidationError
	switch {
	case errors.As(err, &verr):
		h.respondJSON(w, http.StatusBadRequest, errorBody{Error: "Validation failed", Details: verr.Fields})
	case errors.Is(err, port.ErrCampaignNotFound):
		h.respondJSON(w, http.StatusNotFound, errorBody{Error: "Campaign not found"})
	case errors.Is(err, port.ErrUnsupportedTemplate):
		h.respondJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid template type"})
	default:
		h.logger.Error(internalMsg, slog.Any("error", err))
		h.respondJSON(w, http.StatusInternalServerError, errorBody{Error: internalMsg})
	}
}
