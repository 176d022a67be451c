package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"affitrack/internal/core/domain"
	"affitrack/internal/core/port"
)

// ReportUseCase is the read-only reporting aggregator. It scans the event
// log over a window, buckets by calendar day or month in UTC and derives
// divide-by-zero-safe conversion rates. Reports are snapshots with no
// isolation against concurrently arriving events.
type ReportUseCase struct {
	repo port.TrackingRepository
	now  func() time.Time
}

// NewReportUseCase creates the aggregator.
func NewReportUseCase(repo port.TrackingRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo, now: time.Now}
}

// CampaignReport buckets one campaign's events within the window. Buckets
// appear in ascending chronological order and only when they hold at least
// one event; empty buckets are never synthesized.
func (u *ReportUseCase) CampaignReport(ctx context.Context, req port.ReportReq) (*port.CampaignReport, error) {
	period, window, err := u.resolve(req)
	if err != nil {
		return nil, err
	}

	camp, err := u.repo.FindCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("find campaign: %w", err)
	}
	if camp == nil {
		return nil, port.ErrCampaignNotFound
	}

	events, err := u.repo.EventsInWindow(ctx, camp.ID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	return &port.CampaignReport{
		Campaign:   port.CampaignRef{ID: camp.ID, Name: camp.Name, Casino: camp.Casino},
		Period:     period,
		DateRange:  window,
		ReportData: bucketize(events, period),
		Totals:     totalsOf(events),
	}, nil
}

// OverviewReport runs the window aggregation for every active campaign and
// adds a grand total computed with the same zero-safe rate formula.
func (u *ReportUseCase) OverviewReport(ctx context.Context, req port.ReportReq) (*port.OverviewReport, error) {
	period, window, err := u.resolve(req)
	if err != nil {
		return nil, err
	}

	campaigns, err := u.repo.ListActiveCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	out := &port.OverviewReport{
		Period:    period,
		DateRange: window,
		Campaigns: make([]port.CampaignOverview, 0, len(campaigns)),
	}
	var grand accumulator
	for i := range campaigns {
		c := &campaigns[i]
		events, err := u.repo.EventsInWindow(ctx, c.ID, window.Start, window.End)
		if err != nil {
			return nil, fmt.Errorf("query events: %w", err)
		}
		totals := totalsOf(events)
		out.Campaigns = append(out.Campaigns, port.CampaignOverview{
			ID:              c.ID,
			Name:            c.Name,
			Casino:          c.Casino,
			CreatedAt:       c.CreatedAt,
			Stats:           totals.ReportCounts,
			ConversionRates: totals.ConversionRates,
		})
		grand.cookieSets += totals.CookieSets
		grand.registrations += totals.Registrations
		grand.ftds += totals.FTDs
		grand.totalAmount += totals.TotalAmount
	}
	out.GrandTotals = grand.totals()
	return out, nil
}

// RealtimeSnapshot counts events of the trailing 24 hours grouped by type.
// Types without events report as zero, never as an absent key.
func (u *ReportUseCase) RealtimeSnapshot(ctx context.Context) (*port.RealtimeSnapshot, error) {
	now := u.now()
	stats, err := u.repo.CountEventsSince(ctx, now.Add(-24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	return &port.RealtimeSnapshot{
		Period:    "last_24_hours",
		Stats:     stats,
		Timestamp: now,
	}, nil
}

// resolve validates the period and defaults the window to the trailing 30
// days when the caller omitted either bound.
func (u *ReportUseCase) resolve(req port.ReportReq) (string, port.DateRange, error) {
	period := req.Period
	if period == "" {
		period = port.PeriodDaily
	}
	if period != port.PeriodDaily && period != port.PeriodMonthly {
		var verr port.ValidationError
		verr.Add("period", "Period must be daily or monthly")
		return "", port.DateRange{}, &verr
	}
	window := port.DateRange{Start: req.From, End: req.To}
	if window.Start.IsZero() || window.End.IsZero() {
		window.End = u.now()
		window.Start = window.End.AddDate(0, 0, -30)
	}
	return period, window, nil
}

// bucketKey formats an event time as its calendar bucket, in UTC.
func bucketKey(t time.Time, period string) string {
	if period == port.PeriodMonthly {
		return t.UTC().Format("2006-01")
	}
	return t.UTC().Format("2006-01-02")
}

type accumulator struct {
	cookieSets    int64
	registrations int64
	ftds          int64
	totalAmount   float64
}

func (a *accumulator) add(ev *domain.Event) {
	switch ev.EventType {
	case domain.EventCookieSet:
		a.cookieSets++
	case domain.EventRegistration:
		a.registrations++
	case domain.EventFTD:
		a.ftds++
		if ev.PostbackData != nil {
			a.totalAmount += ev.PostbackData.Amount
		}
	}
}

func (a *accumulator) totals() port.ReportTotals {
	return port.ReportTotals{
		ReportCounts: port.ReportCounts{
			CookieSets:    a.cookieSets,
			Registrations: a.registrations,
			FTDs:          a.ftds,
			TotalAmount:   a.totalAmount,
		},
		ConversionRates: domain.RatesFor(a.cookieSets, a.registrations, a.ftds),
	}
}

// bucketize groups events by calendar bucket and derives per-bucket rates.
func bucketize(events []domain.Event, period string) []port.ReportBucket {
	byKey := make(map[string]*accumulator)
	for i := range events {
		key := bucketKey(events[i].CreatedAt, period)
		acc, ok := byKey[key]
		if !ok {
			acc = &accumulator{}
			byKey[key] = acc
		}
		acc.add(&events[i])
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buckets := make([]port.ReportBucket, 0, len(keys))
	for _, k := range keys {
		t := byKey[k].totals()
		buckets = append(buckets, port.ReportBucket{
			Date:            k,
			CookieSets:      t.CookieSets,
			Registrations:   t.Registrations,
			FTDs:            t.FTDs,
			TotalAmount:     t.TotalAmount,
			ConversionRates: t.ConversionRates,
		})
	}
	return buckets
}

// totalsOf sums a window of events with window-level rates.
func totalsOf(events []domain.Event) port.ReportTotals {
	var acc accumulator
	for i := range events {
		acc.add(&events[i])
	}
	return acc.totals()
}
