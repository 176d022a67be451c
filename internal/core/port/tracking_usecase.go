package port

import (
	"context"
	"time"

	"affitrack/internal/core/domain"
)

// Report periods accepted by the reporting aggregator.
const (
	PeriodDaily   = "daily"
	PeriodMonthly = "monthly"
)

// EventUseCase ingests tracking events and conversion postbacks. It is the
// primary write port of the pipeline. Mock implementations can be generated
// from this interface for testing.
type EventUseCase interface {
	// TrackEvent validates and records an event reported by the deployed
	// tracking script, and bumps the cookieSets counter for cookie_set
	// events. Repeated identical calls produce repeated events; there is
	// no deduplication.
	TrackEvent(ctx context.Context, req TrackEventReq) (*domain.Event, error)

	// AttributeConversion validates and records a registration or ftd
	// postback and bumps the matching counter. Replayed postbacks
	// double-count; idempotency is the caller's concern.
	AttributeConversion(ctx context.Context, campaignID int64, req PostbackReq) (*domain.Event, error)

	// PostbackURL returns the postback endpoint details for a campaign.
	PostbackURL(ctx context.Context, campaignID int64) (*PostbackURLResp, error)

	// CampaignStats returns a campaign's counters, either as stored on the
	// campaign or recounted from the event log depending on configuration.
	CampaignStats(ctx context.Context, campaignID int64) (domain.Stats, error)
}

// ScriptUseCase serves rendered tracking scripts.
type ScriptUseCase interface {
	// RenderScript renders and obfuscates the script identified by the
	// /scripts/{scriptID} path segment.
	RenderScript(ctx context.Context, scriptID string) (string, error)
	// ScriptInfo returns campaign details behind a script id.
	ScriptInfo(ctx context.Context, scriptID string) (*ScriptInfoResp, error)
}

// ReportUseCase is the read-only reporting aggregator.
type ReportUseCase interface {
	// CampaignReport buckets a campaign's events by day or month within
	// the window and derives conversion rates. A nil from/to pair defaults
	// to the trailing 30 days.
	CampaignReport(ctx context.Context, req ReportReq) (*CampaignReport, error)
	// OverviewReport aggregates the same window across all active
	// campaigns plus a grand total.
	OverviewReport(ctx context.Context, req ReportReq) (*OverviewReport, error)
	// RealtimeSnapshot counts events of the trailing 24 hours grouped by
	// type. Missing types report as zero.
	RealtimeSnapshot(ctx context.Context) (*RealtimeSnapshot, error)
}

// TrackEventReq is the ingestion payload sent by the tracking script. The
// HTTP adapter owns the wire decoding; this struct carries the already
// parsed fields.
type TrackEventReq struct {
	CampaignID int64
	EventType  domain.EventType
	UserAgent  string
	Referrer   string
	IPAddress  string
	CookieData *domain.CookieData
	SessionID  string
}

// PostbackReq is the conversion payload reported by the casino platform.
// Amount, Currency and Timestamp are optional; defaults are 0, "USD" and
// the receipt time.
type PostbackReq struct {
	EventType string   `json:"eventType"`
	PlayerID  string   `json:"playerId"`
	Amount    *float64 `json:"amount"`
	Currency  string   `json:"currency"`
	Timestamp string   `json:"timestamp"`
	UserAgent string   `json:"-"`
	IPAddress string   `json:"-"`
}

// PostbackURLResp describes where a casino should deliver postbacks.
type PostbackURLResp struct {
	PostbackURL  string `json:"postbackUrl"`
	CampaignName string `json:"campaignName"`
	Casino       string `json:"casino"`
}

// ScriptInfoResp exposes non-sensitive campaign details behind a script id.
type ScriptInfoResp struct {
	CampaignName string              `json:"campaignName"`
	Casino       string              `json:"casino"`
	TemplateType domain.TemplateType `json:"templateType"`
	Stats        domain.Stats        `json:"stats"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ReportReq selects the window and granularity of a report. From/To are
// zero-valued when the caller omitted them.
type ReportReq struct {
	CampaignID int64
	Period     string
	From       time.Time
	To         time.Time
}

// DateRange is the resolved reporting window.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ReportBucket is one calendar bucket of a campaign report. Date is
// "YYYY-MM-DD" for daily and "YYYY-MM" for monthly reports.
type ReportBucket struct {
	Date            string                 `json:"date"`
	CookieSets      int64                  `json:"cookieSets"`
	Registrations   int64                  `json:"registrations"`
	FTDs            int64                  `json:"ftds"`
	TotalAmount     float64                `json:"totalAmount"`
	ConversionRates domain.ConversionRates `json:"conversionRates"`
}

// ReportCounts are the bare event counts of one report slice.
type ReportCounts struct {
	CookieSets    int64   `json:"cookieSets"`
	Registrations int64   `json:"registrations"`
	FTDs          int64   `json:"ftds"`
	TotalAmount   float64 `json:"totalAmount"`
}

// ReportTotals sums a report across buckets, with window-level rates.
type ReportTotals struct {
	ReportCounts
	ConversionRates domain.ConversionRates `json:"conversionRates"`
}

// CampaignRef identifies the campaign a report belongs to.
type CampaignRef struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Casino string `json:"casino"`
}

// CampaignReport is the bucketed report for one campaign.
type CampaignReport struct {
	Campaign   CampaignRef    `json:"campaign"`
	Period     string         `json:"period"`
	DateRange  DateRange      `json:"dateRange"`
	ReportData []ReportBucket `json:"reportData"`
	Totals     ReportTotals   `json:"totals"`
}

// CampaignOverview is one campaign's window totals inside the overview.
// Stats carries the bare counts; the rates sit beside it, never nested.
type CampaignOverview struct {
	ID              int64                  `json:"id"`
	Name            string                 `json:"name"`
	Casino          string                 `json:"casino"`
	CreatedAt       time.Time              `json:"createdAt"`
	Stats           ReportCounts           `json:"stats"`
	ConversionRates domain.ConversionRates `json:"conversionRates"`
}

// OverviewReport aggregates all active campaigns over one window.
type OverviewReport struct {
	Period      string             `json:"period"`
	DateRange   DateRange          `json:"dateRange"`
	Campaigns   []CampaignOverview `json:"campaigns"`
	GrandTotals ReportTotals       `json:"grandTotals"`
}

// RealtimeSnapshot counts events of the trailing 24 hours.
type RealtimeSnapshot struct {
	Period    string       `json:"period"`
	Stats     domain.Stats `json:"stats"`
	Timestamp time.Time    `json:"timestamp"`
}
