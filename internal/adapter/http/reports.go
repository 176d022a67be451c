package httpadapter

import (
	"net/http"
	"time"

	"affitrack/internal/core/port"
)

// handleCampaignReport returns the bucketed report for one campaign. The
// window defaults to the trailing 30 days when startDate/endDate are
// omitted; period defaults to daily.
func (h *Handler) handleCampaignReport(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.campaignIDParam(w, r)
	if !ok {
		return
	}
	req, ok := h.reportParams(w, r)
	if !ok {
		return
	}
	req.CampaignID = campaignID

	report, err := h.reports.CampaignReport(r.Context(), req)
	if err != nil {
		h.respondError(w, err, "Failed to generate report")
		return
	}
	h.respondData(w, report)
}

// handleOverview returns per-campaign window totals for every active
// campaign plus a grand total.
func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	req, ok := h.reportParams(w, r)
	if !ok {
		return
	}
	report, err := h.reports.OverviewReport(r.Context(), req)
	if err != nil {
		h.respondError(w, err, "Failed to generate overview report")
		return
	}
	h.respondData(w, report)
}

// handleRealtime returns event counts of the trailing 24 hours.
func (h *Handler) handleRealtime(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.reports.RealtimeSnapshot(r.Context())
	if err != nil {
		h.respondError(w, err, "Failed to fetch real-time stats")
		return
	}
	h.respondData(w, snapshot)
}

// reportParams reads period/startDate/endDate. The window applies only
// when both bounds parse; a single bound falls back to the default window.
func (h *Handler) reportParams(w http.ResponseWriter, r *http.Request) (port.ReportReq, bool) {
	q := r.URL.Query()
	req := port.ReportReq{Period: q.Get("period")}

	startStr, endStr := q.Get("startDate"), q.Get("endDate")
	if startStr != "" && endStr != "" {
		start, err := parseDate(startStr)
		if err != nil {
			h.respondJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid startDate"})
			return port.ReportReq{}, false
		}
		end, err := parseDate(endStr)
		if err != nil {
			h.respondJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid endDate"})
			return port.ReportReq{}, false
		}
		req.From, req.To = start, end
	}
	return req, true
}

// parseDate accepts RFC3339 timestamps or bare dates. A bare date means
// midnight UTC of that day.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
