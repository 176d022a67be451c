package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"affitrack/internal/core/domain"
	"affitrack/internal/core/port"
)

// EventUseCase implements ingestion of tracking events and conversion
// postbacks. It orchestrates campaign lookup, the append-only event log and
// the atomic counter increments. There is deliberately no deduplication:
// replayed payloads produce repeated events and repeated increments.
type EventUseCase struct {
	repo    port.TrackingRepository
	baseURL string

	// statsFromEvents switches CampaignStats from the stored counters to
	// an on-demand recount of the event log.
	statsFromEvents bool

	now func() time.Time
}

// NewEventUseCase creates the usecase. baseURL is the public origin used
// to build postback URLs.
func NewEventUseCase(repo port.TrackingRepository, baseURL string, statsFromEvents bool) *EventUseCase {
	return &EventUseCase{repo: repo, baseURL: baseURL, statsFromEvents: statsFromEvents, now: time.Now}
}

// TrackEvent validates and records an event reported by the deployed
// tracking script. Metadata is merged with the campaign's name and casino.
// cookie_set events bump the cookieSets counter.
func (u *EventUseCase) TrackEvent(ctx context.Context, req port.TrackEventReq) (*domain.Event, error) {
	var verr port.ValidationError
	if req.CampaignID == 0 {
		verr.Add("campaignId", "Campaign ID is required")
	}
	if req.EventType == "" {
		verr.Add("eventType", "Event type is required")
	} else if !req.EventType.Valid() {
		verr.Add("eventType", "Event type must be cookie_set, registration or ftd")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	camp, err := u.repo.FindActiveCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("find campaign: %w", err)
	}
	if camp == nil {
		return nil, port.ErrCampaignNotFound
	}

	ev := &domain.Event{
		CampaignID: camp.ID,
		EventType:  req.EventType,
		UserAgent:  req.UserAgent,
		Referrer:   req.Referrer,
		IPAddress:  req.IPAddress,
		CookieData: req.CookieData,
		Metadata: domain.Metadata{
			SessionID:    req.SessionID,
			CampaignName: camp.Name,
			Casino:       camp.Casino,
		},
	}
	if err = u.repo.InsertEvent(ctx, ev); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	if req.EventType == domain.EventCookieSet {
		if err = u.repo.IncrementStat(ctx, camp.ID, domain.StatCookieSets); err != nil {
			return nil, fmt.Errorf("increment stat: %w", err)
		}
	}
	return ev, nil
}

// AttributeConversion validates and records a registration or ftd postback
// and bumps the matching counter. Validation reports every violated field
// at once. Defaults: amount 0, currency USD, timestamp the receipt time.
func (u *EventUseCase) AttributeConversion(ctx context.Context, campaignID int64, req port.PostbackReq) (*domain.Event, error) {
	var verr port.ValidationError

	et := domain.EventType(req.EventType)
	if et != domain.EventRegistration && et != domain.EventFTD {
		verr.Add("eventType", "Event type must be registration or ftd")
	}
	if req.PlayerID == "" {
		verr.Add("playerId", "Player ID is required")
	}
	amount := float64(0)
	if req.Amount != nil {
		if math.IsNaN(*req.Amount) || math.IsInf(*req.Amount, 0) {
			verr.Add("amount", "Amount must be numeric")
		} else {
			amount = *req.Amount
		}
	}
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	} else if len(currency) != 3 {
		verr.Add("currency", "Currency must be 3 characters")
	}
	ts := u.now()
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			verr.Add("timestamp", "Timestamp must be valid ISO date")
		} else {
			ts = parsed
		}
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	camp, err := u.repo.FindActiveCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("find campaign: %w", err)
	}
	if camp == nil {
		return nil, port.ErrCampaignNotFound
	}

	ev := &domain.Event{
		CampaignID: camp.ID,
		EventType:  et,
		UserAgent:  req.UserAgent,
		IPAddress:  req.IPAddress,
		PostbackData: &domain.PostbackData{
			PlayerID:  req.PlayerID,
			Amount:    amount,
			Currency:  currency,
			Timestamp: ts,
		},
		Metadata: domain.Metadata{
			CampaignName: camp.Name,
			Casino:       camp.Casino,
		},
	}
	if err = u.repo.InsertEvent(ctx, ev); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	if err = u.repo.IncrementStat(ctx, camp.ID, domain.StatFor(et)); err != nil {
		return nil, fmt.Errorf("increment stat: %w", err)
	}
	return ev, nil
}

// PostbackURL returns the endpoint a casino should deliver postbacks to.
func (u *EventUseCase) PostbackURL(ctx context.Context, campaignID int64) (*port.PostbackURLResp, error) {
	camp, err := u.repo.FindCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("find campaign: %w", err)
	}
	if camp == nil {
		return nil, port.ErrCampaignNotFound
	}
	return &port.PostbackURLResp{
		PostbackURL:  fmt.Sprintf("%s/postbacks/%d", u.baseURL, camp.ID),
		CampaignName: camp.Name,
		Casino:       camp.Casino,
	}, nil
}

// CampaignStats returns a campaign's counters. Depending on configuration
// they come from the stored counters or from recounting the event log; the
// caller cannot tell the strategies apart.
func (u *EventUseCase) CampaignStats(ctx context.Context, campaignID int64) (domain.Stats, error) {
	camp, err := u.repo.FindCampaign(ctx, campaignID)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("find campaign: %w", err)
	}
	if camp == nil {
		return domain.Stats{}, port.ErrCampaignNotFound
	}
	if u.statsFromEvents {
		return u.repo.CountEventsByType(ctx, camp.ID)
	}
	return camp.Stats, nil
}
