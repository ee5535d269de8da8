package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stormy/internal/core/domain"
	"stormy/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository on PostgreSQL.
// Creator snapshots are kept as JSONB next to their membership columns.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// queryer is satisfied by both the pool and a transaction.
type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const campaignColumns = `id, name, description, budget, target_criteria, status, created_at`

// Create inserts a campaign together with any creators it already has.
func (r *CampaignRepository) Create(ctx context.Context, c domain.Campaign) (err error) {
	criteria := []byte(c.TargetCriteria)
	if len(criteria) == 0 {
		criteria = []byte(domain.EmptyTargetCriteria)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		c.ID, c.Name, c.Description, c.Budget, criteria, c.Status, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	for _, cc := range c.Creators {
		if err = insertCreator(ctx, tx, c.ID, cc); err != nil {
			return err
		}
	}
	return nil
}

// List returns every campaign ordered by creation time.
func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	campaigns, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, err
	}

	members, err := loadCreators(ctx, r.pool, `SELECT campaign_id, data, status, added_at FROM campaign_creators ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	for i := range campaigns {
		campaigns[i].Creators = append(campaigns[i].Creators, members[campaigns[i].ID]...)
	}
	return campaigns, nil
}

// Get returns a campaign by id.
func (r *CampaignRepository) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	return getCampaign(ctx, r.pool, id)
}

// AddCreator inserts the membership unless it already exists and returns
// the campaign as seen inside the same transaction.
func (r *CampaignRepository) AddCreator(ctx context.Context, campaignID string, cc domain.CampaignCreator) (_ *domain.Campaign, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	// lock the campaign row so concurrent adds serialise
	var exists bool
	err = tx.QueryRow(ctx, `SELECT true FROM campaigns WHERE id = $1 FOR UPDATE`, campaignID).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	if err = insertCreator(ctx, tx, campaignID, cc); err != nil {
		return nil, err
	}
	return getCampaign(ctx, tx, campaignID)
}

func insertCreator(ctx context.Context, tx pgx.Tx, campaignID string, cc domain.CampaignCreator) error {
	data, err := json.Marshal(cc.Creator)
	if err != nil {
		return fmt.Errorf("encode creator: %w", err)
	}
	_, err = tx.Exec(ctx, `INSERT INTO campaign_creators (campaign_id, creator_id, platform, data, status, added_at)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (campaign_id, creator_id) DO NOTHING`,
		campaignID, cc.ID, string(cc.Platform), data, cc.Status, cc.AddedAt)
	if err != nil {
		return fmt.Errorf("insert campaign creator: %w", err)
	}
	return nil
}

func getCampaign(ctx context.Context, q queryer, id string) (*domain.Campaign, error) {
	rows, err := q.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}

	members, err := loadCreators(ctx, q, `SELECT campaign_id, data, status, added_at FROM campaign_creators WHERE campaign_id = $1 ORDER BY seq`, id)
	if err != nil {
		return nil, err
	}
	c.Creators = append(c.Creators, members[id]...)
	return &c, nil
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c        domain.Campaign
		criteria []byte
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Budget, &criteria, &c.Status, &c.CreatedAt); err != nil {
		return c, err
	}
	c.TargetCriteria = domain.TargetCriteria(criteria)
	c.Creators = []domain.CampaignCreator{}
	return c, nil
}

// loadCreators groups membership rows by campaign id.
func loadCreators(ctx context.Context, q queryer, sql string, args ...any) (map[string][]domain.CampaignCreator, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	type member struct {
		campaignID string
		cc         domain.CampaignCreator
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (member, error) {
		var (
			m    member
			data []byte
		)
		if err := row.Scan(&m.campaignID, &data, &m.cc.Status, &m.cc.AddedAt); err != nil {
			return m, err
		}
		if err := json.Unmarshal(data, &m.cc.Creator); err != nil {
			return m, fmt.Errorf("decode creator snapshot: %w", err)
		}
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	out := make(map[string][]domain.CampaignCreator)
	for _, m := range list {
		out[m.campaignID] = append(out[m.campaignID], m.cc)
	}
	return out, nil
}
