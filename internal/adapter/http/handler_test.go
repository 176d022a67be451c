package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"log/slog"

	"affitrack/internal/adapter/sqlite"
	"affitrack/internal/adapter/usecase"
	"affitrack/internal/core/domain"
	"affitrack/internal/script"
)

type testEnv struct {
	handler  http.Handler
	repo     *sqlite.TrackingRepository
	campaign *domain.Campaign
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo, err := sqlite.NewTrackingRepository(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	c := &domain.Campaign{
		Name:   "Summer Promo",
		Casino: "Lucky Palace",
		TemplateConfig: domain.TemplateConfig{
			TemplateType:  domain.TemplateMyaffiliates,
			CookieA:       domain.CookieSpec{Name: "aff_token", Value: "ref-7", Domain: ".casino.example", Expiry: time.Now().Add(24 * time.Hour)},
			CookieB:       domain.CookieSpec{Name: "aff_click", Value: "click-9", Domain: ".casino.example", Expiry: time.Now().Add(24 * time.Hour)},
			ReferrerRegex: `ref\d+`,
			CookieARegex:  `\d+`,
		},
		PostbackURL: "https://casino.example/postback",
		ScriptURL:   "/scripts/abc123.js",
		IsActive:    true,
	}
	if err = repo.InsertCampaign(context.Background(), c); err != nil {
		t.Fatalf("insert campaign: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	events := usecase.NewEventUseCase(repo, "https://track.example", false)
	scripts := usecase.NewScriptUseCase(repo, script.NewRenderer("https://track.example"))
	reports := usecase.NewReportUseCase(repo)

	return &testEnv{
		handler:  NewHandler(events, scripts, reports, logger).Router(),
		repo:     repo,
		campaign: c,
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if body := decodeBody(t, w); body["status"] != "OK" {
		t.Errorf("body %v", body)
	}
}

func TestTrackEventEndpoint(t *testing.T) {
	env := newTestEnv(t)

	// The rendered script sends the campaign id as a string.
	w := env.do(t, http.MethodPost, "/events/track", `{
		"campaignId": "1",
		"eventType": "cookie_set",
		"userAgent": "Mozilla/5.0",
		"referrer": "https://partner.example/ref123",
		"cookieData": {"cookieA": "ref-7", "cookieB": "click-9"},
		"metadata": {"sessionId": "1718000000000"}
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true || body["message"] != "Event tracked successfully" {
		t.Errorf("body %v", body)
	}

	c, err := env.repo.FindCampaign(context.Background(), env.campaign.ID)
	if err != nil {
		t.Fatalf("FindCampaign error: %v", err)
	}
	if c.Stats.CookieSets != 1 {
		t.Errorf("cookieSets %d, want 1", c.Stats.CookieSets)
	}
}

func TestTrackEventNumericCampaignID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/events/track", `{"campaignId": 1, "eventType": "cookie_set"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
}

func TestTrackEventBadJSON(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/events/track", `{nope`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "Invalid JSON" {
		t.Errorf("body %v", body)
	}
}

func TestTrackEventValidationDetails(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/events/track", `{"eventType": "clicked"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != false || body["error"] != "Validation failed" {
		t.Errorf("body %v", body)
	}
	if details, ok := body["details"].([]any); !ok || len(details) != 2 {
		t.Errorf("details %v", body["details"])
	}
}

func TestTrackEventUnknownCampaign(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/events/track", `{"campaignId": 99, "eventType": "cookie_set"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "Campaign not found or inactive" {
		t.Errorf("body %v", body)
	}
}

func TestScriptEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/scripts/abc123.js", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/javascript" {
		t.Errorf("content type %q", ct)
	}
	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=3600" {
		t.Errorf("cache control %q", cc)
	}
	if cors := w.Header().Get("Access-Control-Allow-Origin"); cors != "*" {
		t.Errorf("cors %q", cors)
	}
	code := w.Body.String()
	if !strings.Contains(code, "'aff_token'") {
		t.Errorf("script missing config:\n%s", code)
	}
	if strings.Contains(code, "executeScript") {
		t.Errorf("script not obfuscated:\n%s", code)
	}
}

func TestScriptEndpointNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/scripts/missing.js", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "// Script not found" {
		t.Errorf("body %q", got)
	}
}

func TestScriptInfoEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/scripts/abc123/info", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("body %v", body)
	}
	if data["campaignName"] != "Summer Promo" || data["templateType"] != "Myaffiliates" {
		t.Errorf("data %v", data)
	}
}

func TestPostbackEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/postbacks/1", `{
		"eventType": "ftd",
		"playerId": "player-1",
		"amount": 250.5,
		"currency": "EUR",
		"timestamp": "2024-01-15T10:30:00Z"
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true || body["eventId"] == nil {
		t.Errorf("body %v", body)
	}

	c, err := env.repo.FindCampaign(context.Background(), env.campaign.ID)
	if err != nil {
		t.Fatalf("FindCampaign error: %v", err)
	}
	if c.Stats.FTDs != 1 {
		t.Errorf("ftds %d, want 1", c.Stats.FTDs)
	}
}

func TestPostbackValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/postbacks/1", `{"eventType": "ftd", "currency": "EURO"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["error"] != "Validation failed" {
		t.Errorf("body %v", body)
	}
}

func TestPostbackNonNumericCampaignID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/postbacks/abc", `{"eventType": "ftd", "playerId": "p"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d", w.Code)
	}
}

func TestTestPostbackEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/postbacks/1/test", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	c, err := env.repo.FindCampaign(context.Background(), env.campaign.ID)
	if err != nil {
		t.Fatalf("FindCampaign error: %v", err)
	}
	if c.Stats.Registrations != 1 {
		t.Errorf("registrations %d, want 1", c.Stats.Registrations)
	}
}

func TestPostbackURLEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/postbacks/1/url", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]any)
	if data["postbackUrl"] != "https://track.example/postbacks/1" {
		t.Errorf("data %v", data)
	}
}

func TestCampaignReportEndpoint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := env.repo.InsertEvent(ctx, &domain.Event{CampaignID: 1, EventType: domain.EventCookieSet}); err != nil {
			t.Fatalf("InsertEvent error: %v", err)
		}
	}

	w := env.do(t, http.MethodGet, "/reports/campaigns/1?period=daily", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]any)
	totals := data["totals"].(map[string]any)
	if totals["cookieSets"] != float64(3) {
		t.Errorf("totals %v", totals)
	}
	if buckets := data["reportData"].([]any); len(buckets) != 1 {
		t.Errorf("buckets %v", buckets)
	}
}

func TestCampaignReportInvalidDates(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/reports/campaigns/1?startDate=nope&endDate=2024-01-31", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "Invalid startDate" {
		t.Errorf("body %v", body)
	}
}

func TestCampaignReportInvalidPeriod(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/reports/campaigns/1?period=weekly", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
}

func TestOverviewEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/reports/overview", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]any)
	if campaigns := data["campaigns"].([]any); len(campaigns) != 1 {
		t.Errorf("campaigns %v", campaigns)
	}
	grand := data["grandTotals"].(map[string]any)
	rates := grand["conversionRates"].(map[string]any)
	if rates["cookieToFtd"] != "0" {
		t.Errorf("rates %v", rates)
	}
}

func TestRealtimeEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/reports/realtime", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]any)
	if data["period"] != "last_24_hours" {
		t.Errorf("data %v", data)
	}
	stats := data["stats"].(map[string]any)
	// Zero stats are present keys, not absent ones.
	for _, k := range []string{"cookieSets", "registrations", "ftds"} {
		if v, ok := stats[k]; !ok || v != float64(0) {
			t.Errorf("stats[%s] = %v", k, v)
		}
	}
}
