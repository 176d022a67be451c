package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"affitrack/internal/core/domain"
	"affitrack/internal/core/port"
	"affitrack/internal/core/port/mocks"
)

func activeCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:       7,
		Name:     "Summer Promo",
		Casino:   "Lucky Palace",
		IsActive: true,
		Stats:    domain.Stats{CookieSets: 100, Registrations: 10, FTDs: 3},
	}
}

func TestTrackEventCookieSet(t *testing.T) {
	repo := mocks.NewMockTrackingRepository(t)
	repo.EXPECT().FindActiveCampaign(mock.Anything, int64(7)).Return(activeCampaign(), nil)
	repo.EXPECT().InsertEvent(mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)
	repo.EXPECT().IncrementStat(mock.Anything, int64(7), domain.StatCookieSets).Return(nil)

	svc := NewEventUseCase(repo, "https://track.example", false)
	ev, err := svc.TrackEvent(context.Background(), port.TrackEventReq{
		CampaignID: 7,
		EventType:  domain.EventCookieSet,
		UserAgent:  "Mozilla/5.0",
		Referrer:   "https://partner.example/ref123",
		IPAddress:  "10.0.0.1",
		CookieData: &domain.CookieData{CookieA: "ref-7", CookieB: "click-9"},
		SessionID:  "1718000000000",
	})
	if err != nil {
		t.Fatalf("TrackEvent error: %v", err)
	}
	if ev.CampaignID != 7 || ev.EventType != domain.EventCookieSet {
		t.Fatalf("event %+v", ev)
	}
	// Campaign context is merged server-side, never trusted from the client.
	if ev.Metadata.CampaignName != "Summer Promo" || ev.Metadata.Casino != "Lucky Palace" {
		t.Errorf("metadata %+v", ev.Metadata)
	}
	if ev.Metadata.SessionID != "1718000000000" {
		t.Errorf("sessionId %q", ev.Metadata.SessionID)
	}
}

// TestTrackEventNoIncrementForPostbackTypes ensures the track endpoint only
// feeds the cookieSets counter; conversion counters belong to postbacks.
func TestTrackEventNoIncrementForPostbackTypes(t *testing.T) {
	repo := mocks.NewMockTrackingRepository(t)
	repo.EXPECT().FindActiveCampaign(mock.Anything, int64(7)).Return(activeCampaign(), nil)
	repo.EXPECT().InsertEvent(mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

	svc := NewEventUseCase(repo, "https://track.example", false)
	_, err := svc.TrackEvent(context.Background(), port.TrackEventReq{
		CampaignID: 7,
		EventType:  domain.EventRegistration,
	})
	if err != nil {
		t.Fatalf("TrackEvent error: %v", err)
	}
	repo.AssertNotCalled(t, "IncrementStat", mock.Anything, mock.Anything, mock.Anything)
}

func TestTrackEventValidation(t *testing.T) {
	repo := mocks.NewMockTrackingRepository(t)
	svc := NewEventUseCase(repo, "https://track.example", false)

	_, err := svc.TrackEvent(context.Background(), port.TrackEventReq{EventType: "clicked"})

	var verr *port.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("fields %+v, want campaignId and eventType", verr.Fields)
	}
	if verr.Fields[0].Field != "campaignId" || verr.Fields[1].Field != "eventType" {
		t.Errorf("fields %+v", verr.Fields)
	}
}

func TestTrackEventUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockTrackingRepository(t)
	repo.EXPECT().FindActiveCampaign(mock.Anything, int64(99)).Return(nil, nil)

	svc := NewEventUseCase(repo, "https://track.example", false)
	_, err := svc.TrackEvent(context.Background(), port.TrackEventReq{CampaignID: 99, EventType: domain.EventCookieSet})
	if !errors.Is(err, port.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

func TestAttributeConversionFTD(t *testing.T) {
	repo := mocks.NewMockTrackingRepository(t)
	repo.EXPECT().FindActiveCampaign(mock.Anything, int64(7)).Return(activeCampaign(), nil)
	repo.EXPECT().InsertEvent(mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)
	repo.EXPECT().IncrementStat(mock.Anything, int64(7), domain.StatFTDs).Return(nil)

	amount := 250.5
	svc := NewEventUseCase(repo, "https://track.example", false)
	ev, err := svc.AttributeConversion(context.Background(), 7, port.PostbackReq{
		EventType: "ftd",
		PlayerID:  "player-1",
		Amount:    &amount,
		Currency:  "EUR",
		Timestamp: "2024-01-15T10:30:00Z",
	})
	if err != nil {
		t.Fatalf("AttributeConversion error: %v", err)
	}
	pd := ev.PostbackData
	if pd == nil {
		t.Fatal("missing postback data")
	}
	if pd.PlayerID != "player-1" || pd.Amount != 250.5 || pd.Currency != "EUR" {
		t.Errorf("postback data %+v", pd)
	}
	if !pd.Timestamp.Equal(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)) {
		t.Errorf("timestamp %v", pd.Timestamp)
	}
}

// TestAttributeConversionDefaults covers the omitted optional fields:
// amount 0, currency USD, timestamp the receipt time.
func TestAttributeConversionDefaults(t *testing.T) {
	repo := mocks.NewMockTrackingRepository(t)
	repo.EXPECT().FindActiveCampaign(mock.Anything, int64(7)).Return(activeCampaign(), nil)
	repo.EXPECT().InsertEvent(mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)
	repo.EXPECT().IncrementStat(mock.Anything, int64(7), domain.StatRegistrations).Return(nil)

	received := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewEventUseCase(repo, "https://track.example", false)
	svc.now = func() time.Time { return received }

	ev, err := svc.AttributeConversion(context.Background(), 7, port.PostbackReq{
		EventType: "registration",
		PlayerID:  "player-2",
	})
	if err != nil {
		t.Fatalf("AttributeConversion error: %v", err)
	}
	pd := ev.PostbackData
	if pd.Amount != 0 || pd.Currency != "USD" || !pd.Timestamp.Equal(received) {
		t.Errorf("defaults not applied: %+v", pd)
	}
}

// TestAttributeConversionValidation checks every violated field is listed
// in one response.
func TestAttributeConversionValidation(t *testing.T) {
	repo := mocks.NewMockTrackingRepository(t)
	svc := NewEventUseCase(repo, "https://track.example", false)

	nan := math.NaN()
	_, err := svc.AttributeConversion(context.Background(), 7, port.PostbackReq{
		EventType: "cookie_set",
		Amount:    &nan,
		Currency:  "EURO",
		Timestamp: "yesterday",
	})

	var verr *port.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	want := map[string]string{
		"eventType": "Event type must be registration or ftd",
		"playerId":  "Player ID is required",
		"amount":    "Amount must be numeric",
		"currency":  "Currency must be 3 characters",
		"timestamp": "Timestamp must be valid ISO date",
	}
	if len(verr.Fields) != len(want) {
		t.Fatalf("fields %+v", verr.Fields)
	}
	for _, f := range verr.Fields {
		if want[f.Field] != f.Message {
			t.Errorf("field %s: message %q", f.Field, f.Message)
		}
	}
}

// TestAttributeConversionReplayDoubleCounts pins the deliberate absence of
// deduplication: a replayed postback is recorded and counted again.
func TestAttributeConversionReplayDoubleCounts(t *testing.T) {
	repo := mocks.NewMockTrackingRepository(t)
	repo.EXPECT().FindActiveCampaign(mock.Anything, int64(7)).Return(activeCampaign(), nil).Times(2)
	repo.EXPECT().InsertEvent(mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil).Times(2)
	repo.EXPECT().IncrementStat(mock.Anything, int64(7), domain.StatFTDs).Return(nil).Times(2)

	amount := 100.0
	req := port.PostbackReq{EventType: "ftd", PlayerID: "player-1", Amount: &amount}
	svc := NewEventUseCase(repo, "https://track.example", false)

	for i := 0; i < 2; i++ {
		if _, err := svc.AttributeConversion(context.Background(), 7, req); err != nil {
			t.Fatalf("replay %d: %v", i, err)
		}
	}
}

func TestPostbackURL(t *testing.T) {
	repo := mocks.NewMockTrackingRepository(t)
	repo.EXPECT().FindCampaign(mock.Anything, int64(7)).Return(activeCampaign(), nil)

	svc := NewEventUseCase(repo, "https://track.example", false)
	resp, err := svc.PostbackURL(context.Background(), 7)
	if err != nil {
		t.Fatalf("PostbackURL error: %v", err)
	}
	if resp.PostbackURL != "https://track.example/postbacks/7" {
		t.Errorf("url %q", resp.PostbackURL)
	}
	if resp.CampaignName != "Summer Promo" || resp.Casino != "Lucky Palace" {
		t.Errorf("resp %+v", resp)
	}
}

func TestCampaignStatsFromCounters(t *testing.T) {
	repo := mocks.NewMockTrackingRepository(t)
	repo.EXPECT().FindCampaign(mock.Anything, int64(7)).Return(activeCampaign(), nil)

	svc := NewEventUseCase(repo, "https://track.example", false)
	stats, err := svc.CampaignStats(context.Background(), 7)
	if err != nil {
		t.Fatalf("CampaignStats error: %v", err)
	}
	if stats != (domain.Stats{CookieSets: 100, Registrations: 10, FTDs: 3}) {
		t.Errorf("stats %+v", stats)
	}
}

// TestCampaignStatsFromEvents checks the recount strategy: the counters on
// the campaign row are ignored in favor of the event log.
func TestCampaignStatsFromEvents(t *testing.T) {
	repo := mocks.NewMockTrackingRepository(t)
	repo.EXPECT().FindCampaign(mock.Anything, int64(7)).Return(activeCampaign(), nil)
	repo.EXPECT().CountEventsByType(mock.Anything, int64(7)).Return(domain.Stats{CookieSets: 101, Registrations: 11, FTDs: 4}, nil)

	svc := NewEventUseCase(repo, "https://track.example", true)
	stats, err := svc.CampaignStats(context.Background(), 7)
	if err != nil {
		t.Fatalf("CampaignStats error: %v", err)
	}
	if stats.CookieSets != 101 {
		t.Errorf("stats %+v came from the stored counters", stats)
	}
}
