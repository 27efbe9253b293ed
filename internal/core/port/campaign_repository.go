package port

import (
	"context"
	"errors"
	"time"

	"cuptrace/internal/core/domain"
)

var (
	// ErrNotFound covers both genuinely missing rows and rows the requesting
	// brand does not own; callers cannot distinguish the two.
	ErrNotFound = errors.New("not found")
)

// CampaignRepository is the outbound persistence port for campaigns and
// their event rows. The three mutating methods own the counter arithmetic:
// each runs as a single transaction that locks the campaign row, applies the
// counter deltas and writes the event rows, so a failure leaves counters and
// rows consistent. AttachAnchor is a separate, best-effort write.
type CampaignRepository interface {
	// CreateCampaign inserts a campaign and fills its ID and CreatedAt.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// ListCampaigns returns all campaigns owned by a brand.
	ListCampaigns(ctx context.Context, brandID int64) ([]domain.Campaign, error)
	// GetCampaign returns a campaign by id, or nil when absent.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// AddBatch inserts a manufacturing batch and adds its count to
	// Campaign.Manufactured in the same transaction. Fills ID and ProducedAt.
	AddBatch(ctx context.Context, batch *domain.ManufacturingBatch) error
	// AddDistribution inserts a standalone distribution record, adds its
	// count to Campaign.Distributed and increments Campaign.LocationsCount
	// by one in the same transaction. Fills ID and DistributedAt.
	AddDistribution(ctx context.Context, rec *domain.DistributionRecord) error
	// UpsertDailyActivity creates or overwrites the activity row keyed by
	// (campaign, day), adjusting the campaign counters by the difference to
	// the previous submission. When locations is non-empty, every
	// distribution record in the day's window is deleted and one record per
	// location is inserted at midday; an empty slice leaves existing
	// location facts untouched. Fills the activity's ID and CreatedAt.
	UpsertDailyActivity(ctx context.Context, act *domain.DailyActivity, locations []domain.DistributionRecord) error

	// ListActivities returns a campaign's daily activities, newest day first.
	ListActivities(ctx context.Context, campaignID int64) ([]domain.DailyActivity, error)
	// ListDistributionsBetween returns a campaign's distribution records
	// with a timestamp in the half-open window [from, to).
	ListDistributionsBetween(ctx context.Context, campaignID int64, from, to time.Time) ([]domain.DistributionRecord, error)
	// DistinctLocationCount counts distinct location names across all of a
	// campaign's distribution records.
	DistinctLocationCount(ctx context.Context, campaignID int64) (int64, error)

	// AttachAnchor stores the anchor on the record identified by kind and id
	// and appends a row to the ledger proof index. Kind is one of the
	// domain.Kind* constants.
	AttachAnchor(ctx context.Context, kind string, id int64, anchor domain.Anchor) error
}
