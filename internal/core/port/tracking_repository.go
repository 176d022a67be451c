package port

import (
	"context"
	"time"

	"affitrack/internal/core/domain"
)

// TrackingRepository defines the persistence layer for the attribution
// pipeline. It is an outbound port in hexagonal architecture. The event log
// is append-only; IncrementStat must be atomic per campaign so concurrent
// ingestion and postback requests never lose increments.
//
// Lookup methods return (nil, nil) when no row matches so callers can map
// absence onto their own error taxonomy.
type TrackingRepository interface {
	// FindCampaign returns a campaign by id regardless of its active flag.
	FindCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// FindActiveCampaign returns a campaign by id only when it is active.
	FindActiveCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// FindActiveCampaignByScript returns the active campaign owning the
	// given script URL.
	FindActiveCampaignByScript(ctx context.Context, scriptURL string) (*domain.Campaign, error)
	// ListActiveCampaigns returns all active campaigns, newest first.
	ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// InsertEvent appends one event to the log and fills in ID/CreatedAt.
	InsertEvent(ctx context.Context, ev *domain.Event) error
	// IncrementStat bumps one campaign counter by 1.
	IncrementStat(ctx context.Context, campaignID int64, stat domain.Stat) error

	// EventsInWindow returns a campaign's events with creation time inside
	// [from, to], in ascending chronological order.
	EventsInWindow(ctx context.Context, campaignID int64, from, to time.Time) ([]domain.Event, error)
	// CountEventsByType recounts a campaign's stats from the event log.
	CountEventsByType(ctx context.Context, campaignID int64) (domain.Stats, error)
	// CountEventsSince counts events of every campaign created at or after
	// the given instant, grouped by event type. Absent types count as zero.
	CountEventsSince(ctx context.Context, since time.Time) (domain.Stats, error)
}
