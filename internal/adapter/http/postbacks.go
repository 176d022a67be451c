package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"affitrack/internal/core/domain"
	"affitrack/internal/core/port"
)

// handlePostback processes a conversion postback from the casino platform.
// Validation failures list every violated field; replayed postbacks are
// recorded and counted again by design.
func (h *Handler) handlePostback(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.campaignIDParam(w, r)
	if !ok {
		return
	}
	var req port.PostbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid JSON"})
		return
	}
	req.UserAgent = r.UserAgent()
	req.IPAddress = clientIP(r)

	ev, err := h.events.AttributeConversion(r.Context(), campaignID, req)
	if err != nil {
		h.respondError(w, err, "Failed to process postback")
		return
	}

	h.logger.Info("postback received",
		slog.String("campaign", ev.Metadata.CampaignName),
		slog.String("eventType", string(ev.EventType)),
		slog.String("playerId", ev.PostbackData.PlayerID),
		slog.Float64("amount", ev.PostbackData.Amount),
		slog.String("currency", ev.PostbackData.Currency))

	h.respondSuccess(w, map[string]any{
		"message": "Postback processed successfully",
		"eventId": ev.ID,
	})
}

// handleTestPostback synthesizes a registration postback for the campaign,
// for wiring checks during casino integration.
func (h *Handler) handleTestPostback(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.campaignIDParam(w, r)
	if !ok {
		return
	}
	amount := float64(100)
	req := port.PostbackReq{
		EventType: string(domain.EventRegistration),
		PlayerID:  "test_player_" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		Amount:    &amount,
		Currency:  "USD",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		UserAgent: r.UserAgent(),
		IPAddress: clientIP(r),
	}
	ev, err := h.events.AttributeConversion(r.Context(), campaignID, req)
	if err != nil {
		h.respondError(w, err, "Test postback failed")
		return
	}
	h.respondSuccess(w, map[string]any{
		"message": "Test postback processed",
		"eventId": ev.ID,
	})
}

// handlePostbackURL returns the postback endpoint for the campaign.
func (h *Handler) handlePostbackURL(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.campaignIDParam(w, r)
	if !ok {
		return
	}
	resp, err := h.events.PostbackURL(r.Context(), campaignID)
	if err != nil {
		h.respondError(w, err, "Failed to generate postback URL")
		return
	}
	h.respondData(w, resp)
}

// campaignIDParam parses the {campaignID} path segment. A non-numeric id
// cannot match any campaign and reports 404.
func (h *Handler) campaignIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "campaignID"), 10, 64)
	if err != nil {
		h.respondJSON(w, http.StatusNotFound, errorBody{Error: "Campaign not found"})
		return 0, false
	}
	return id, true
}
