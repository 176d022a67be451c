package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"affitrack/internal/core/domain"
	"affitrack/internal/core/port"
)

// TrackingRepository implements port.TrackingRepository using pgxpool for
// PostgreSQL. Counter increments run as single UPDATE statements so they
// are atomic per campaign without explicit locking.
type TrackingRepository struct {
	pool *pgxpool.Pool
}

// NewTrackingRepository returns a new repository instance.
func NewTrackingRepository(pool *pgxpool.Pool) *TrackingRepository {
	return &TrackingRepository{pool: pool}
}

const campaignColumns = `
            id,
            name,
            casino,
            template_config,
            postback_url,
            script_url,
            is_active,
            created_by,
            cookie_sets,
            registrations,
            ftds,
            created_at,
            updated_at`

// statColumns whitelists the counter columns reachable via IncrementStat.
var statColumns = map[domain.Stat]string{
	domain.StatCookieSets:    "cookie_sets",
	domain.StatRegistrations: "registrations",
	domain.StatFTDs:          "ftds",
}

// FindCampaign returns a campaign by id regardless of the active flag.
func (r *TrackingRepository) FindCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	return scanCampaign(row)
}

// FindActiveCampaign returns a campaign by id only when it is active.
func (r *TrackingRepository) FindActiveCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+campaignColumns+` FROM campaigns WHERE id = $1 AND is_active`, id)
	return scanCampaign(row)
}

// FindActiveCampaignByScript returns the active campaign owning scriptURL.
func (r *TrackingRepository) FindActiveCampaignByScript(ctx context.Context, scriptURL string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+campaignColumns+` FROM campaigns WHERE script_url = $1 AND is_active`, scriptURL)
	return scanCampaign(row)
}

// ListActiveCampaigns returns all active campaigns, newest first.
func (r *TrackingRepository) ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+campaignColumns+` FROM campaigns WHERE is_active ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaignRow(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// InsertEvent appends one event to the log, setting created_at explicitly
// and filling ev.ID from the inserted row.
func (r *TrackingRepository) InsertEvent(ctx context.Context, ev *domain.Event) error {
	cookieData, postbackData, metadata, err := marshalPayloads(ev)
	if err != nil {
		return err
	}
	ev.CreatedAt = time.Now().UTC()
	return r.pool.QueryRow(ctx, `INSERT INTO events
(campaign_id, event_type, user_agent, referrer, ip_address, cookie_data, postback_data, metadata, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id`,
		ev.CampaignID, ev.EventType, ev.UserAgent, ev.Referrer, ev.IPAddress,
		cookieData, postbackData, metadata, ev.CreatedAt).Scan(&ev.ID)
}

// IncrementStat bumps one campaign counter by 1 in a single UPDATE.
func (r *TrackingRepository) IncrementStat(ctx context.Context, campaignID int64, stat domain.Stat) error {
	col, ok := statColumns[stat]
	if !ok {
		return fmt.Errorf("unknown stat %q", stat)
	}
	tag, err := r.pool.Exec(ctx,
		fmt.Sprintf(`UPDATE campaigns SET %s = %s + 1, updated_at = now() WHERE id = $1`, col, col),
		campaignID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %d: no row updated", campaignID)
	}
	return nil
}

// EventsInWindow returns a campaign's events inside [from, to] in
// ascending chronological order. The compound
// (campaign_id, event_type, created_at) index keeps this a range scan.
func (r *TrackingRepository) EventsInWindow(ctx context.Context, campaignID int64, from, to time.Time) ([]domain.Event, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, event_type, user_agent, referrer, ip_address, cookie_data, postback_data, metadata, created_at
FROM events
WHERE campaign_id = $1 AND created_at >= $2 AND created_at <= $3
ORDER BY created_at ASC`, campaignID, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, collectEvent)
}

// CountEventsByType recounts a campaign's stats from the event log.
func (r *TrackingRepository) CountEventsByType(ctx context.Context, campaignID int64) (domain.Stats, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT event_type, count(*) FROM events WHERE campaign_id = $1 GROUP BY event_type`, campaignID)
	if err != nil {
		return domain.Stats{}, err
	}
	return collectStats(rows)
}

// CountEventsSince counts events of every campaign created at or after
// since, grouped by type.
func (r *TrackingRepository) CountEventsSince(ctx context.Context, since time.Time) (domain.Stats, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT event_type, count(*) FROM events WHERE created_at >= $1 GROUP BY event_type`, since)
	if err != nil {
		return domain.Stats{}, err
	}
	return collectStats(rows)
}

var _ port.TrackingRepository = (*TrackingRepository)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	c, err := scanCampaignRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func scanCampaignRow(row rowScanner) (*domain.Campaign, error) {
	var (
		c         domain.Campaign
		configRaw []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Casino,
		&configRaw,
		&c.PostbackURL,
		&c.ScriptURL,
		&c.IsActive,
		&c.CreatedBy,
		&c.Stats.CookieSets,
		&c.Stats.Registrations,
		&c.Stats.FTDs,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(configRaw, &c.TemplateConfig); err != nil {
		return nil, fmt.Errorf("campaign %d: template config: %w", c.ID, err)
	}
	return &c, nil
}

func collectEvent(row pgx.CollectableRow) (domain.Event, error) {
	var (
		ev          domain.Event
		cookieRaw   []byte
		postbackRaw []byte
		metadataRaw []byte
	)
	err := row.Scan(
		&ev.ID,
		&ev.CampaignID,
		&ev.EventType,
		&ev.UserAgent,
		&ev.Referrer,
		&ev.IPAddress,
		&cookieRaw,
		&postbackRaw,
		&metadataRaw,
		&ev.CreatedAt,
	)
	if err != nil {
		return domain.Event{}, err
	}
	if len(cookieRaw) > 0 {
		ev.CookieData = &domain.CookieData{}
		if err = json.Unmarshal(cookieRaw, ev.CookieData); err != nil {
			return domain.Event{}, err
		}
	}
	if len(postbackRaw) > 0 {
		ev.PostbackData = &domain.PostbackData{}
		if err = json.Unmarshal(postbackRaw, ev.PostbackData); err != nil {
			return domain.Event{}, err
		}
	}
	if len(metadataRaw) > 0 {
		if err = json.Unmarshal(metadataRaw, &ev.Metadata); err != nil {
			return domain.Event{}, err
		}
	}
	return ev, nil
}

func collectStats(rows pgx.Rows) (domain.Stats, error) {
	type typeCount struct {
		EventType domain.EventType
		Count     int64
	}
	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (typeCount, error) {
		var tc typeCount
		err := row.Scan(&tc.EventType, &tc.Count)
		return tc, err
	})
	if err != nil {
		return domain.Stats{}, err
	}
	var stats domain.Stats
	for _, tc := range counts {
		switch tc.EventType {
		case domain.EventCookieSet:
			stats.CookieSets = tc.Count
		case domain.EventRegistration:
			stats.Registrations = tc.Count
		case domain.EventFTD:
			stats.FTDs = tc.Count
		}
	}
	return stats, nil
}

func marshalPayloads(ev *domain.Event) (cookieData, postbackData, metadata []byte, err error) {
	if ev.CookieData != nil {
		if cookieData, err = json.Marshal(ev.CookieData); err != nil {
			return nil, nil, nil, err
		}
	}
	if ev.PostbackData != nil {
		if postbackData, err = json.Marshal(ev.PostbackData); err != nil {
			return nil, nil, nil, err
		}
	}
	if metadata, err = json.Marshal(ev.Metadata); err != nil {
		return nil, nil, nil, err
	}
	return cookieData, postbackData, metadata, nil
}
