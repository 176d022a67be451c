// Package decision models the logic embedded in the rendered tracking
// script: a single-pass state machine that decides whether to plant the
// attribution cookies and report a cookie_set event. Every gate degrades
// silently; the host page must never observe a failure. The package is the
// server-side twin of the script template and doubles as a simulator
// against a live ingestion endpoint.
package decision

import (
	"regexp"
	"strconv"
	"time"

	"affitrack/internal/core/domain"
)

// State is the position of the engine in its single pass.
type State int

const (
	StateIdle State = iota
	StateReferrerChecked
	StateCookieAChecked
	StateCookiesPlanted
	StateReported
	StateTerminal
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReferrerChecked:
		return "referrer_checked"
	case StateCookieAChecked:
		return "cookie_a_checked"
	case StateCookiesPlanted:
		return "cookies_planted"
	case StateReported:
		return "reported"
	default:
		return "terminal"
	}
}

// Browser abstracts the host environment the script runs in: the document
// referrer and the cookie jar.
type Browser interface {
	Referrer() string
	// Cookie returns the currently stored value of a cookie; the second
	// result is false when the cookie is absent.
	Cookie(name string) (string, bool)
	SetCookie(c domain.CookieSpec) error
}

// TrackPayload is the wire body of the ingestion call, matching what the
// rendered script sends. CampaignID travels as a decimal string.
type TrackPayload struct {
	CampaignID string            `json:"campaignId"`
	EventType  string            `json:"eventType"`
	UserAgent  string            `json:"userAgent"`
	Referrer   string            `json:"referrer"`
	CookieData domain.CookieData `json:"cookieData"`
	Metadata   domain.Metadata   `json:"metadata"`
}

// Reporter delivers the tracking event. Implementations are fire-and-
// forget: no retry, no acknowledgment, response ignored.
type Reporter interface {
	Report(p TrackPayload)
}

// Engine runs the decision pass for one campaign.
type Engine struct {
	campaignID   int64
	campaignName string
	casino       string
	cfg          domain.TemplateConfig
	userAgent    string

	now func() time.Time
}

// NewEngine creates an engine for the campaign's template config.
func NewEngine(c *domain.Campaign) *Engine {
	return &Engine{
		campaignID:   c.ID,
		campaignName: c.Name,
		casino:       c.Casino,
		cfg:          c.TemplateConfig,
		now:          time.Now,
	}
}

// SetUserAgent sets the user agent echoed in the tracking payload.
func (e *Engine) SetUserAgent(ua string) { e.userAgent = ua }

// Run executes one pass:
//
//	Idle -> ReferrerChecked -> CookieAChecked -> CookiesPlanted -> Reported
//
// short-circuiting to Terminal at the first gate failure. Any panic inside
// a gate counts as a non-match and never propagates to the caller.
func (e *Engine) Run(b Browser, rep Reporter) State {
	if !safely(func() bool { return e.matchReferrer(b) }) {
		return StateTerminal
	}
	if !safely(func() bool { return e.matchCookieA(b) }) {
		return StateTerminal
	}

	// Each set attempt is independent; one failing does not block the
	// other, but reporting requires both.
	aSet := safely(func() bool { return b.SetCookie(e.cfg.CookieA) == nil })
	bSet := safely(func() bool { return b.SetCookie(e.cfg.CookieB) == nil })
	if !aSet || !bSet {
		return StateTerminal
	}

	if !safely(func() bool {
		rep.Report(e.payload(b))
		return true
	}) {
		return StateTerminal
	}
	return StateReported
}

// matchReferrer tests the referrer gate. An absent referrer is matched as
// the empty string, mirroring the in-browser `document.referrer || ''`.
func (e *Engine) matchReferrer(b Browser) bool {
	re, err := regexp.Compile("(?i)" + e.cfg.ReferrerRegex)
	if err != nil {
		return false
	}
	return re.MatchString(b.Referrer())
}

// matchCookieA tests the stored value of cookie A before this pass
// overwrites it. Absence or an empty value is a non-match.
func (e *Engine) matchCookieA(b Browser) bool {
	v, ok := b.Cookie(e.cfg.CookieA.Name)
	if !ok || v == "" {
		return false
	}
	re, err := regexp.Compile("(?i)" + e.cfg.CookieARegex)
	if err != nil {
		return false
	}
	return re.MatchString(v)
}

func (e *Engine) payload(b Browser) TrackPayload {
	return TrackPayload{
		CampaignID: strconv.FormatInt(e.campaignID, 10),
		EventType:  string(domain.EventCookieSet),
		UserAgent:  e.userAgent,
		Referrer:   b.Referrer(),
		CookieData: domain.CookieData{
			CookieA: e.cfg.CookieA.Value,
			CookieB: e.cfg.CookieB.Value,
		},
		Metadata: domain.Metadata{
			SessionID:    strconv.FormatInt(e.now().UnixMilli(), 10),
			CampaignName: e.campaignName,
			Casino:       e.casino,
		},
	}
}

// safely runs a gate, converting any panic into a failed outcome.
func safely(f func() bool) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return f()
}
