package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"stormy/internal/core/domain"
)

// DemoCampaignID identifies the campaign inserted by Seed.
const DemoCampaignID = "campaign-demo"

const demoCreatorCount = 3

const demoTargetCriteria = `{"platforms":["YouTube","TikTok"],"countries":["US"],"minFollowers":10000}`

// Seed inserts a demo campaign holding the first few of creators. Existing
// rows are left untouched so Seed can run on every start.
func Seed(ctx context.Context, db *pgxpool.Pool, creators []domain.Creator) error {
	now := time.Now().UTC()

	_, err := db.Exec(ctx, `INSERT INTO campaigns (id, name, description, budget, target_criteria, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`,
		DemoCampaignID, "Demo Campaign", "Sample campaign with generated creators", 10000.0, demoTargetCriteria, domain.CampaignStatusDraft, now)
	if err != nil {
		return fmt.Errorf("seed campaign: %w", err)
	}

	for _, c := range creators[:min(len(creators), demoCreatorCount)] {
		data, err := json.Marshal(c)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO campaign_creators (campaign_id, creator_id, platform, data, status, added_at)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
			DemoCampaignID, c.ID, string(c.Platform), data, domain.MembershipPending, now)
		if err != nil {
			return fmt.Errorf("seed creator %s: %w", c.ID, err)
		}
	}
	return nil
}
