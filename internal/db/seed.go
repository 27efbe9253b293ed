package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"cuptrace/internal/auth"
	"cuptrace/internal/core/domain"
)

// Seed inserts demo data: one brand (demo@cuptrace.dev / demo-password),
// three campaigns with production batches and a week of daily activity each.
// Intended for local development only.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	hash, err := auth.HashPassword("demo-password")
	if err != nil {
		return err
	}
	var brandID int64
	err = pool.QueryRow(ctx, `INSERT INTO brands (name, email, password_hash)
VALUES ($1, $2, $3)
ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
RETURNING id`, "Demo Brand", "demo@cuptrace.dev", hash).Scan(&brandID)
	if err != nil {
		return err
	}

	locations := []string{"Central Station", "Market Square", "Harbor Cafe", "Airport T2", "Old Town"}

	for i := 1; i <= 3; i++ {
		name := fmt.Sprintf("Campaign %d", i)
		start := time.Now().AddDate(0, 0, -14)
		end := time.Now().AddDate(0, 1, 0)
		var campaignID int64
		err = pool.QueryRow(ctx, `INSERT INTO campaigns (brand_id, name, start_date, end_date)
VALUES ($1, $2, $3, $4) RETURNING id`, brandID, name, start, end).Scan(&campaignID)
		if err != nil {
			return err
		}

		// a couple of standalone production batches
		for j := 0; j < 2; j++ {
			count := int64(1000 + r.Intn(4000))
			batchNumber := fmt.Sprintf("B-%s", uuid.NewString()[:8])
			_, err = pool.Exec(ctx, `INSERT INTO manufacturing_batches
(campaign_id, batch_number, manufactured_count) VALUES ($1, $2, $3)`,
				campaignID, batchNumber, count)
			if err != nil {
				return err
			}
			_, err = pool.Exec(ctx, `UPDATE campaigns SET manufactured = manufactured + $1 WHERE id = $2`,
				count, campaignID)
			if err != nil {
				return err
			}
		}

		// one week of daily activity with midday location facts
		for d := 0; d < 7; d++ {
			day := domain.NormalizeDay(time.Now().AddDate(0, 0, -d))
			manufactured := int64(100 + r.Intn(400))
			distributed := int64(50 + r.Intn(200))
			scans := int64(r.Intn(100))
			_, err = pool.Exec(ctx, `INSERT INTO daily_activities
(campaign_id, day, manufactured_today, distributed_today, scan_count_today)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (campaign_id, day) DO NOTHING`,
				campaignID, day, manufactured, distributed, scans)
			if err != nil {
				return err
			}
			_, err = pool.Exec(ctx, `UPDATE campaigns
SET manufactured = manufactured + $1, distributed = distributed + $2 WHERE id = $3`,
				manufactured, distributed, campaignID)
			if err != nil {
				return err
			}

			midday := domain.Midday(day)
			for _, loc := range locations[:1+r.Intn(3)] {
				_, err = pool.Exec(ctx, `INSERT INTO distribution_records
(campaign_id, location_name, distributed_count, distributed_at)
VALUES ($1, $2, $3, $4)`,
					campaignID, loc, int64(10+r.Intn(50)), midday)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}
