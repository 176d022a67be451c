package domain

import "time"

// Stat identifies one of the derived per-campaign counters.
type Stat string

const (
	StatCookieSets    Stat = "cookieSets"
	StatRegistrations Stat = "registrations"
	StatFTDs          Stat = "ftds"
)

// Stats holds the derived counters kept on a campaign. They approximate
// the event log: increments are atomic per campaign, but the counters are
// reconciled with the log only eventually.
type Stats struct {
	CookieSets    int64 `json:"cookieSets"`
	Registrations int64 `json:"registrations"`
	FTDs          int64 `json:"ftds"`
}

// Campaign represents a cookie-stuffing marketing campaign. Campaigns are
// created by the management layer and soft-deleted by clearing IsActive;
// this service only reads them and bumps the stat counters.
type Campaign struct {
	ID             int64
	Name           string
	Casino         string
	TemplateConfig TemplateConfig
	PostbackURL    string
	ScriptURL      string
	IsActive       bool
	CreatedBy      string
	Stats          Stats
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ConversionRates derives funnel rates from the stored counters.
func (c *Campaign) ConversionRates() ConversionRates {
	return RatesFor(c.Stats.CookieSets, c.Stats.Registrations, c.Stats.FTDs)
}

// StatFor maps an event type onto the counter it feeds. Cookie-set events
// feed cookieSets, postback events feed registrations or ftds.
func StatFor(et EventType) Stat {
	switch et {
	case EventFTD:
		return StatFTDs
	case EventRegistration:
		return StatRegistrations
	default:
		return StatCookieSets
	}
}
