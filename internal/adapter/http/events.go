package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"affitrack/internal/core/domain"
	"affitrack/internal/core/port"
)

type trackEventBody struct {
	CampaignID flexID             `json:"campaignId"`
	EventType  domain.EventType   `json:"eventType"`
	UserAgent  string             `json:"userAgent"`
	Referrer   string             `json:"referrer"`
	CookieData *domain.CookieData `json:"cookieData"`
	Metadata   struct {
		SessionID string `json:"sessionId"`
	} `json:"metadata"`
}

// handleTrackEvent records events reported by the deployed tracking
// script. Missing fields produce HTTP 400, an unknown or inactive campaign
// HTTP 404 and persistence failures HTTP 500 with a generic message.
func (h *Handler) handleTrackEvent(w http.ResponseWriter, r *http.Request) {
	var body trackEventBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.respondJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid JSON"})
		return
	}

	ua := body.UserAgent
	if ua == "" {
		ua = r.UserAgent()
	}
	_, err := h.events.TrackEvent(r.Context(), port.TrackEventReq{
		CampaignID: int64(body.CampaignID),
		EventType:  body.EventType,
		UserAgent:  ua,
		Referrer:   body.Referrer,
		IPAddress:  clientIP(r),
		CookieData: body.CookieData,
		SessionID:  body.Metadata.SessionID,
	})
	if errors.Is(err, port.ErrCampaignNotFound) {
		h.respondJSON(w, http.StatusNotFound, errorBody{Error: "Campaign not found or inactive"})
		return
	}
	if err != nil {
		h.respondError(w, err, "Failed to track event")
		return
	}
	h.respondSuccess(w, map[string]any{"message": "Event tracked successfully"})
}
