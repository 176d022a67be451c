package domain

import (
	"time"
)

// EventType discriminates the append-only event log.
type EventType string

const (
	EventCookieSet    EventType = "cookie_set"
	EventRegistration EventType = "registration"
	EventFTD          EventType = "ftd"
)

// Valid reports whether the type is one of the known event kinds.
func (t EventType) Valid() bool {
	switch t {
	case EventCookieSet, EventRegistration, EventFTD:
		return true
	}
	return false
}

// CookieData carries the planted cookie values echoed by the tracking
// script on cookie_set events.
type CookieData struct {
	CookieA string `json:"cookieA"`
	CookieB string `json:"cookieB"`
}

// PostbackData carries the conversion payload of registration and ftd
// events reported by the casino platform.
type PostbackData struct {
	PlayerID  string    `json:"playerId"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Timestamp time.Time `json:"timestamp"`
}

// Metadata holds additional tracking context. CampaignName and Casino are
// filled in server-side from the campaign record at ingestion time.
type Metadata struct {
	SessionID    string `json:"sessionId,omitempty"`
	CampaignName string `json:"campaignName,omitempty"`
	Casino       string `json:"casino,omitempty"`
}

// Event is one record of the append-only event log. Events are never
// updated or deleted; they are the source of truth the campaign counters
// approximate. The variant payload depends on EventType: cookie_set events
// carry CookieData, postback events carry PostbackData.
type Event struct {
	ID           int64
	CampaignID   int64
	EventType    EventType
	UserAgent    string
	Referrer     string
	IPAddress    string
	CookieData   *CookieData
	PostbackData *PostbackData
	Metadata     Metadata
	CreatedAt    time.Time
}
