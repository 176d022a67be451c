package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"affitrack/internal/core/domain"
)

// Seed inserts demo campaigns and a month of synthetic events into the
// Postgres database, keeping the stat counters in line with the event log.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	casinos := []string{"Lucky Palace", "Golden Spin", "Royal Flush"}
	for i := 1; i <= len(casinos); i++ {
		name := fmt.Sprintf("Campaign %d", i)
		casino := casinos[i-1]
		scriptURL := fmt.Sprintf("/scripts/%s.js", strings.ReplaceAll(uuid.NewString(), "-", ""))
		expiry := time.Now().UTC().AddDate(0, 1, 0)

		config := domain.TemplateConfig{
			TemplateType: domain.TemplateMyaffiliates,
			CookieA: domain.CookieSpec{
				Name:   fmt.Sprintf("aff_token_%d", i),
				Value:  fmt.Sprintf("ref-%d", r.Intn(100000)),
				Domain: ".example.com",
				Expiry: expiry,
			},
			CookieB: domain.CookieSpec{
				Name:   fmt.Sprintf("aff_click_%d", i),
				Value:  uuid.NewString(),
				Domain: ".example.com",
				Expiry: expiry,
			},
			ReferrerRegex: `ref\d+`,
			CookieARegex:  `\d+`,
		}
		configJSON, err := json.Marshal(config)
		if err != nil {
			return err
		}

		var campaignID int64
		err = db.QueryRow(ctx, `INSERT INTO campaigns
(name, casino, template_config, postback_url, script_url, is_active, created_by, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,TRUE,'seed',now(),now())
ON CONFLICT (script_url) DO UPDATE SET updated_at = now()
RETURNING id`,
			name, casino, configJSON, "https://casino.example.com/postback", scriptURL).Scan(&campaignID)
		if err != nil {
			return err
		}

		if err = seedEvents(ctx, db, r, campaignID, name, casino); err != nil {
			return err
		}
	}
	return nil
}

func seedEvents(ctx context.Context, db *pgxpool.Pool, r *rand.Rand, campaignID int64, name, casino string) error {
	cookieSets := 50 + r.Intn(200)
	registrations := cookieSets / 10
	ftds := registrations / 2

	insert := func(eventType domain.EventType, cookieData, postbackData any, createdAt time.Time) error {
		metadata, err := json.Marshal(domain.Metadata{
			SessionID:    fmt.Sprintf("%d", createdAt.UnixMilli()),
			CampaignName: name,
			Casino:       casino,
		})
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO events
(campaign_id, event_type, user_agent, referrer, ip_address, cookie_data, postback_data, metadata, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			campaignID, eventType, "Mozilla/5.0 (seed)", "https://partner.example/ref123",
			fmt.Sprintf("10.0.%d.%d", r.Intn(255), r.Intn(255)),
			cookieData, postbackData, metadata, createdAt)
		return err
	}
	randomTime := func() time.Time {
		return time.Now().UTC().Add(-time.Duration(r.Intn(30*24)) * time.Hour)
	}

	for i := 0; i < cookieSets; i++ {
		cookieData, err := json.Marshal(domain.CookieData{CookieA: fmt.Sprintf("ref-%d", r.Intn(100000)), CookieB: uuid.NewString()})
		if err != nil {
			return err
		}
		if err = insert(domain.EventCookieSet, cookieData, nil, randomTime()); err != nil {
			return err
		}
	}
	for i := 0; i < registrations+ftds; i++ {
		eventType := domain.EventRegistration
		amount := float64(0)
		if i >= registrations {
			eventType = domain.EventFTD
			amount = float64(20 + r.Intn(480))
		}
		ts := randomTime()
		postbackData, err := json.Marshal(domain.PostbackData{
			PlayerID:  fmt.Sprintf("player-%d", r.Intn(10000)),
			Amount:    amount,
			Currency:  "USD",
			Timestamp: ts,
		})
		if err != nil {
			return err
		}
		if err = insert(eventType, nil, postbackData, ts); err != nil {
			return err
		}
	}

	// Keep the derived counters consistent with the log we just wrote.
	_, err := db.Exec(ctx, `UPDATE campaigns SET
cookie_sets = (SELECT count(*) FROM events WHERE campaign_id = $1 AND event_type = 'cookie_set'),
registrations = (SELECT count(*) FROM events WHERE campaign_id = $1 AND event_type = 'registration'),
ftds = (SELECT count(*) FROM events WHERE campaign_id = $1 AND event_type = 'ftd'),
updated_at = now()
WHERE id = $1`, campaignID)
	return err
}
