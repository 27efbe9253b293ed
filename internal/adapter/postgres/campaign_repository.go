package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cuptrace/internal/core/domain"
	"cuptrace/internal/core/port"
)

// Repository implements port.CampaignRepository and port.BrandRepository
// using pgxpool for PostgreSQL. The mutating campaign methods run as single
// transactions that lock the campaign row, so counter updates and event rows
// commit together and concurrent submissions against the same campaign
// serialize.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository returns a new repository instance.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// CreateCampaign inserts a campaign owned by a brand.
func (r *Repository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx, `INSERT INTO campaigns (brand_id, name, start_date, end_date)
VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		c.BrandID, c.Name, c.StartDate, c.EndDate).Scan(&c.ID, &c.CreatedAt)
}

// ListCampaigns returns all campaigns owned by a brand.
func (r *Repository) ListCampaigns(ctx context.Context, brandID int64) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, brand_id, name, start_date, end_date,
manufactured, distributed, locations_count, created_at
FROM campaigns WHERE brand_id = $1 ORDER BY id`, brandID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.BrandID, &c.Name, &c.StartDate, &c.EndDate,
			&c.Manufactured, &c.Distributed, &c.LocationsCount, &c.CreatedAt)
		return c, err
	})
}

// GetCampaign returns a campaign by id, or nil when absent.
func (r *Repository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT id, brand_id, name, start_date, end_date,
manufactured, distributed, locations_count, created_at
FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.BrandID, &c.Name, &c.StartDate, &c.EndDate,
			&c.Manufactured, &c.Distributed, &c.LocationsCount, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// AddBatch inserts a manufacturing batch and adds its count to the campaign
// counter in the same transaction.
func (r *Repository) AddBatch(ctx context.Context, batch *domain.ManufacturingBatch) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
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
	if err = lockCampaign(ctx, tx, batch.CampaignID); err != nil {
		return err
	}
	err = tx.QueryRow(ctx, `INSERT INTO manufacturing_batches (campaign_id, batch_number, manufactured_count)
VALUES ($1, $2, $3) RETURNING id, produced_at`,
		batch.CampaignID, batch.BatchNumber, batch.ManufacturedCount).
		Scan(&batch.ID, &batch.ProducedAt)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns SET manufactured = manufactured + $1 WHERE id = $2`,
		batch.ManufacturedCount, batch.CampaignID)
	return err
}

// AddDistribution inserts a standalone distribution record, adds its count to
// the campaign counter and bumps locations_count by one. locations_count
// counts submissions, not distinct places.
func (r *Repository) AddDistribution(ctx context.Context, rec *domain.DistributionRecord) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
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
	if err = lockCampaign(ctx, tx, rec.CampaignID); err != nil {
		return err
	}
	err = tx.QueryRow(ctx, `INSERT INTO distribution_records
(campaign_id, location_name, lat, lng, distributed_count)
VALUES ($1, $2, $3, $4, $5) RETURNING id, distributed_at`,
		rec.CampaignID, rec.LocationName, rec.Lat, rec.Lng, rec.DistributedCount).
		Scan(&rec.ID, &rec.DistributedAt)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns
SET distributed = distributed + $1, locations_count = locations_count + 1 WHERE id = $2`,
		rec.DistributedCount, rec.CampaignID)
	return err
}

// UpsertDailyActivity creates or overwrites the activity row for
// (campaign, day). The campaign counters are adjusted by the difference to
// the previous submission, so resubmitting a day never double-counts. When
// locations is non-empty, every distribution record in the day's window is
// replaced by one midday-stamped record per location; an empty slice leaves
// the existing facts untouched.
func (r *Repository) UpsertDailyActivity(ctx context.Context, act *domain.DailyActivity, locations []domain.DistributionRecord) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
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
	if err = lockCampaign(ctx, tx, act.CampaignID); err != nil {
		return err
	}

	var prev *domain.DailyActivity
	{
		var p domain.DailyActivity
		err = tx.QueryRow(ctx, `SELECT id, manufactured_today, distributed_today, scan_count_today, created_at
FROM daily_activities WHERE campaign_id = $1 AND day = $2`,
			act.CampaignID, act.Day).
			Scan(&p.ID, &p.ManufacturedToday, &p.DistributedToday, &p.ScanCountToday, &p.CreatedAt)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			err = nil
		case err != nil:
			return err
		default:
			prev = &p
		}
	}

	if prev != nil {
		act.ID = prev.ID
		act.CreatedAt = prev.CreatedAt
		_, err = tx.Exec(ctx, `UPDATE daily_activities
SET manufactured_today = $1, distributed_today = $2, scan_count_today = $3 WHERE id = $4`,
			act.ManufacturedToday, act.DistributedToday, act.ScanCountToday, act.ID)
	} else {
		err = tx.QueryRow(ctx, `INSERT INTO daily_activities
(campaign_id, day, manufactured_today, distributed_today, scan_count_today)
VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
			act.CampaignID, act.Day, act.ManufacturedToday, act.DistributedToday, act.ScanCountToday).
			Scan(&act.ID, &act.CreatedAt)
	}
	if err != nil {
		return err
	}

	dm, dd := domain.ActivityDelta(prev, act.ManufacturedToday, act.DistributedToday)
	_, err = tx.Exec(ctx, `UPDATE campaigns
SET manufactured = manufactured + $1, distributed = distributed + $2 WHERE id = $3`,
		dm, dd, act.CampaignID)
	if err != nil {
		return err
	}

	if len(locations) > 0 {
		from, to := domain.DayWindow(act.Day)
		_, err = tx.Exec(ctx, `DELETE FROM distribution_records
WHERE campaign_id = $1 AND distributed_at >= $2 AND distributed_at < $3`,
			act.CampaignID, from, to)
		if err != nil {
			return err
		}
		midday := domain.Midday(act.Day)
		for i := range locations {
			loc := &locations[i]
			loc.CampaignID = act.CampaignID
			loc.DistributedAt = midday
			err = tx.QueryRow(ctx, `INSERT INTO distribution_records
(campaign_id, location_name, lat, lng, distributed_count, distributed_at)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
				loc.CampaignID, loc.LocationName, loc.Lat, loc.Lng, loc.DistributedCount, loc.DistributedAt).
				Scan(&loc.ID)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// ListActivities returns a campaign's daily activities, newest day first.
func (r *Repository) ListActivities(ctx context.Context, campaignID int64) ([]domain.DailyActivity, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, day,
manufactured_today, distributed_today, scan_count_today, proof_hash, proof_txid, created_at
FROM daily_activities WHERE campaign_id = $1 ORDER BY day DESC`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailyActivity, error) {
		var a domain.DailyActivity
		var hash, txid *string
		err := row.Scan(&a.ID, &a.CampaignID, &a.Day,
			&a.ManufacturedToday, &a.DistributedToday, &a.ScanCountToday, &hash, &txid, &a.CreatedAt)
		a.Anchor = anchorFrom(hash, txid)
		return a, err
	})
}

// ListDistributionsBetween returns a campaign's distribution records with a
// timestamp in [from, to).
func (r *Repository) ListDistributionsBetween(ctx context.Context, campaignID int64, from, to time.Time) ([]domain.DistributionRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, location_name, lat, lng,
distributed_count, distributed_at, proof_hash, proof_txid
FROM distribution_records
WHERE campaign_id = $1 AND distributed_at >= $2 AND distributed_at < $3
ORDER BY id`, campaignID, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DistributionRecord, error) {
		var d domain.DistributionRecord
		var hash, txid *string
		err := row.Scan(&d.ID, &d.CampaignID, &d.LocationName, &d.Lat, &d.Lng,
			&d.DistributedCount, &d.DistributedAt, &hash, &txid)
		d.Anchor = anchorFrom(hash, txid)
		return d, err
	})
}

// DistinctLocationCount counts distinct location names across all of a
// campaign's distribution records.
func (r *Repository) DistinctLocationCount(ctx context.Context, campaignID int64) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(DISTINCT location_name)
FROM distribution_records WHERE campaign_id = $1`, campaignID).Scan(&n)
	return n, err
}

// AttachAnchor stores the anchor on the record identified by kind and id and
// appends a row to the ledger proof index. This is the best-effort second
// write after a mutation; its failure does not undo the mutation.
func (r *Repository) AttachAnchor(ctx context.Context, kind string, id int64, anchor domain.Anchor) (err error) {
	var table string
	switch kind {
	case domain.KindBatch:
		table = "manufacturing_batches"
	case domain.KindDistribution:
		table = "distribution_records"
	case domain.KindActivity:
		table = "daily_activities"
	default:
		return fmt.Errorf("unknown anchor kind %q", kind)
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
	_, err = tx.Exec(ctx, fmt.Sprintf(`UPDATE %s SET proof_hash = $1, proof_txid = NULLIF($2, '') WHERE id = $3`, table),
		anchor.Digest, anchor.TxID, id)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO ledger_proofs (related_kind, related_id, digest, txid)
VALUES ($1, $2, $3, NULLIF($4, ''))`, kind, id, anchor.Digest, anchor.TxID)
	return err
}

// lockCampaign takes the row lock that serializes counter mutations for a
// campaign. Missing campaigns map to port.ErrNotFound.
func lockCampaign(ctx context.Context, tx pgx.Tx, campaignID int64) error {
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM campaigns WHERE id = $1 FOR UPDATE`, campaignID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrNotFound
	}
	return err
}

func anchorFrom(hash, txid *string) domain.Anchor {
	var a domain.Anchor
	if hash != nil {
		a.Digest = *hash
	}
	if txid != nil {
		a.TxID = *txid
	}
	return a
}
