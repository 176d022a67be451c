// Package sqlite provides the embedded-database backend of the tracking
// repository, backed by the pure-Go modernc.org/sqlite driver. It serves
// single-node deployments and in-memory test runs; the Postgres backend is
// the default deployment choice.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // database/sql driver

	"affitrack/internal/core/domain"
	"affitrack/internal/core/port"
)

// timeLayout is a fixed-width UTC format so lexicographic comparison of
// stored timestamps matches chronological order.
const timeLayout = "2006-01-02 15:04:05.000000000"

// TrackingRepository implements port.TrackingRepository on SQLite.
type TrackingRepository struct {
	db *sql.DB
}

// NewTrackingRepository opens (or creates) the database at path and
// applies the schema. Use ":memory:" for an in-memory database.
func NewTrackingRepository(path string) (*TrackingRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Concurrent writes to one SQLite handle serialize; a single
	// connection avoids SQLITE_BUSY under concurrent requests.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err = migrate(db); err != nil {
		return nil, err
	}
	return &TrackingRepository{db: db}, nil
}

// Close closes the underlying database handle.
func (r *TrackingRepository) Close() error { return r.db.Close() }

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS campaigns (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		casino TEXT NOT NULL,
		template_config TEXT NOT NULL,
		postback_url TEXT NOT NULL,
		script_url TEXT NOT NULL UNIQUE,
		is_active INTEGER NOT NULL DEFAULT 1,
		created_by TEXT NOT NULL DEFAULT '',
		cookie_sets INTEGER NOT NULL DEFAULT 0,
		registrations INTEGER NOT NULL DEFAULT 0,
		ftds INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_campaigns_is_active ON campaigns(is_active);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		campaign_id INTEGER NOT NULL,
		event_type TEXT NOT NULL,
		user_agent TEXT NOT NULL DEFAULT '',
		referrer TEXT NOT NULL DEFAULT '',
		ip_address TEXT NOT NULL DEFAULT '',
		cookie_data TEXT,
		postback_data TEXT,
		metadata TEXT,
		created_at TEXT NOT NULL,
		FOREIGN KEY (campaign_id) REFERENCES campaigns (id)
	);
	CREATE INDEX IF NOT EXISTS idx_events_window ON events(campaign_id, event_type, created_at);
	CREATE INDEX IF NOT EXISTS idx_events_created_at ON events(created_at);
	`
	_, err := db.Exec(schema)
	return err
}

const campaignColumns = `id, name, casino, template_config, postback_url, script_url, is_active, created_by, cookie_sets, registrations, ftds, created_at, updated_at`

var statColumns = map[domain.Stat]string{
	domain.StatCookieSets:    "cookie_sets",
	domain.StatRegistrations: "registrations",
	domain.StatFTDs:          "ftds",
}

// InsertCampaign stores a campaign. The management layer normally owns
// campaign writes; this exists for seeding and tests.
func (r *TrackingRepository) InsertCampaign(ctx context.Context, c *domain.Campaign) error {
	configRaw, err := json.Marshal(c.TemplateConfig)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	res, err := r.db.ExecContext(ctx, `INSERT INTO campaigns
(name, casino, template_config, postback_url, script_url, is_active, created_by, cookie_sets, registrations, ftds, created_at, updated_at)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		c.Name, c.Casino, string(configRaw), c.PostbackURL, c.ScriptURL, boolToInt(c.IsActive), c.CreatedBy,
		c.Stats.CookieSets, c.Stats.Registrations, c.Stats.FTDs,
		formatTime(c.CreatedAt), formatTime(c.UpdatedAt))
	if err != nil {
		return err
	}
	c.ID, err = res.LastInsertId()
	return err
}

// FindCampaign returns a campaign by id regardless of the active flag.
func (r *TrackingRepository) FindCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = ?`, id)
	return scanCampaign(row)
}

// FindActiveCampaign returns a campaign by id only when it is active.
func (r *TrackingRepository) FindActiveCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = ? AND is_active = 1`, id)
	return scanCampaign(row)
}

// FindActiveCampaignByScript returns the active campaign owning scriptURL.
func (r *TrackingRepository) FindActiveCampaignByScript(ctx context.Context, scriptURL string) (*domain.Campaign, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE script_url = ? AND is_active = 1`, scriptURL)
	return scanCampaign(row)
}

// ListActiveCampaigns returns all active campaigns, newest first.
func (r *TrackingRepository) ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE is_active = 1 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Campaign
	for rows.Next() {
		c, err := scanCampaignRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// InsertEvent appends one event to the log.
func (r *TrackingRepository) InsertEvent(ctx context.Context, ev *domain.Event) error {
	cookieData, postbackData, err := marshalVariant(ev)
	if err != nil {
		return err
	}
	metadata, err := json.Marshal(ev.Metadata)
	if err != nil {
		return err
	}
	ev.CreatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `INSERT INTO events
(campaign_id, event_type, user_agent, referrer, ip_address, cookie_data, postback_data, metadata, created_at)
VALUES (?,?,?,?,?,?,?,?,?)`,
		ev.CampaignID, string(ev.EventType), ev.UserAgent, ev.Referrer, ev.IPAddress,
		cookieData, postbackData, string(metadata), formatTime(ev.CreatedAt))
	if err != nil {
		return err
	}
	ev.ID, err = res.LastInsertId()
	return err
}

// IncrementStat bumps one campaign counter by 1 in a single UPDATE.
func (r *TrackingRepository) IncrementStat(ctx context.Context, campaignID int64, stat domain.Stat) error {
	col, ok := statColumns[stat]
	if !ok {
		return fmt.Errorf("unknown stat %q", stat)
	}
	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE campaigns SET %s = %s + 1, updated_at = ? WHERE id = ?`, col, col),
		formatTime(time.Now().UTC()), campaignID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("campaign %d: no row updated", campaignID)
	}
	return nil
}

// EventsInWindow returns a campaign's events inside [from, to] in
// ascending chronological order.
func (r *TrackingRepository) EventsInWindow(ctx context.Context, campaignID int64, from, to time.Time) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, campaign_id, event_type, user_agent, referrer, ip_address, cookie_data, postback_data, metadata, created_at
FROM events
WHERE campaign_id = ? AND created_at >= ? AND created_at <= ?
ORDER BY created_at ASC`, campaignID, formatTime(from), formatTime(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// CountEventsByType recounts a campaign's stats from the event log.
func (r *TrackingRepository) CountEventsByType(ctx context.Context, campaignID int64) (domain.Stats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT event_type, count(*) FROM events WHERE campaign_id = ? GROUP BY event_type`, campaignID)
	if err != nil {
		return domain.Stats{}, err
	}
	return collectStats(rows)
}

// CountEventsSince counts all campaigns' events created at or after since,
// grouped by type.
func (r *TrackingRepository) CountEventsSince(ctx context.Context, since time.Time) (domain.Stats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT event_type, count(*) FROM events WHERE created_at >= ? GROUP BY event_type`, formatTime(since))
	if err != nil {
		return domain.Stats{}, err
	}
	return collectStats(rows)
}

var _ port.TrackingRepository = (*TrackingRepository)(nil)

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	c, err := scanCampaignRow(row)
	if errors.Is(err, sql.ErrNoRows) {
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
		configRaw string
		isActive  int
		createdAt string
		updatedAt string
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.Casino, &configRaw, &c.PostbackURL, &c.ScriptURL,
		&isActive, &c.CreatedBy,
		&c.Stats.CookieSets, &c.Stats.Registrations, &c.Stats.FTDs,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.IsActive = isActive != 0
	if err = json.Unmarshal([]byte(configRaw), &c.TemplateConfig); err != nil {
		return nil, fmt.Errorf("campaign %d: template config: %w", c.ID, err)
	}
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanEvent(row rowScanner) (domain.Event, error) {
	var (
		ev          domain.Event
		eventType   string
		cookieRaw   sql.NullString
		postbackRaw sql.NullString
		metadataRaw sql.NullString
		createdAt   string
	)
	err := row.Scan(
		&ev.ID, &ev.CampaignID, &eventType, &ev.UserAgent, &ev.Referrer, &ev.IPAddress,
		&cookieRaw, &postbackRaw, &metadataRaw, &createdAt,
	)
	if err != nil {
		return domain.Event{}, err
	}
	ev.EventType = domain.EventType(eventType)
	if cookieRaw.Valid && cookieRaw.String != "" {
		ev.CookieData = &domain.CookieData{}
		if err = json.Unmarshal([]byte(cookieRaw.String), ev.CookieData); err != nil {
			return domain.Event{}, err
		}
	}
	if postbackRaw.Valid && postbackRaw.String != "" {
		ev.PostbackData = &domain.PostbackData{}
		if err = json.Unmarshal([]byte(postbackRaw.String), ev.PostbackData); err != nil {
			return domain.Event{}, err
		}
	}
	if metadataRaw.Valid && metadataRaw.String != "" {
		if err = json.Unmarshal([]byte(metadataRaw.String), &ev.Metadata); err != nil {
			return domain.Event{}, err
		}
	}
	if ev.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Event{}, err
	}
	return ev, nil
}

func collectStats(rows *sql.Rows) (domain.Stats, error) {
	defer rows.Close()
	var stats domain.Stats
	for rows.Next() {
		var (
			eventType string
			count     int64
		)
		if err := rows.Scan(&eventType, &count); err != nil {
			return domain.Stats{}, err
		}
		switch domain.EventType(eventType) {
		case domain.EventCookieSet:
			stats.CookieSets = count
		case domain.EventRegistration:
			stats.Registrations = count
		case domain.EventFTD:
			stats.FTDs = count
		}
	}
	return stats, rows.Err()
}

// marshalVariant serializes the variant payload; absent payloads stay NULL.
func marshalVariant(ev *domain.Event) (cookieData, postbackData any, err error) {
	if ev.CookieData != nil {
		raw, err := json.Marshal(ev.CookieData)
		if err != nil {
			return nil, nil, err
		}
		cookieData = string(raw)
	}
	if ev.PostbackData != nil {
		raw, err := json.Marshal(ev.PostbackData)
		if err != nil {
			return nil, nil, err
		}
		postbackData = string(raw)
	}
	return cookieData, postbackData, nil
}
