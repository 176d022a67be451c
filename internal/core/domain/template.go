package domain

import "time"

// TemplateType names the script template a campaign renders with. Only the
// Myaffiliates template exists today.
type TemplateType string

const TemplateMyaffiliates TemplateType = "Myaffiliates"

// CookieSpec describes one attribution cookie the generated script plants.
type CookieSpec struct {
	Name   string    `json:"name"`
	Value  string    `json:"value"`
	Domain string    `json:"domain"`
	Expiry time.Time `json:"expiry"`
}

// TemplateConfig is the per-campaign configuration embedded into the
// rendered tracking script. It is immutable once a script has been
// distributed: editing it changes future renders only, never scripts
// already deployed on partner pages.
type TemplateConfig struct {
	TemplateType  TemplateType `json:"templateType"`
	CookieA       CookieSpec   `json:"cookieA"`
	CookieB       CookieSpec   `json:"cookieB"`
	ReferrerRegex string       `json:"referrerRegex"`
	CookieARegex  string       `json:"cookieARegex"`
}
