package usecase

import (
	"context"
	"log/slog"

	"cuptrace/internal/core/domain"
	"cuptrace/internal/core/port"
	"cuptrace/internal/proof"
)

// CampaignService implements port.CampaignUseCase. It owns the anchoring
// flow: every mutating operation first commits the business transaction
// through the repository, then fingerprints the persisted fact and submits
// the digest to the ledger. Anchoring is strictly best-effort: a failed
// submission or a failed anchor write is logged and the operation still
// succeeds, returning an empty transaction id.
type CampaignService struct {
	repo   port.CampaignRepository
	ledger port.LedgerClient
	logger *slog.Logger
}

// NewCampaignService creates the service. The ledger client is an explicit
// dependency with process lifetime; nothing here reads ambient state.
func NewCampaignService(repo port.CampaignRepository, ledger port.LedgerClient, logger *slog.Logger) *CampaignService {
	return &CampaignService{repo: repo, ledger: ledger, logger: logger}
}

// CreateCampaign creates a campaign owned by the brand.
func (s *CampaignService) CreateCampaign(ctx context.Context, brandID int64, req port.CreateCampaignReq) (*domain.Campaign, error) {
	c := &domain.Campaign{
		BrandID:   brandID,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := s.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCampaigns returns the brand's campaigns.
func (s *CampaignService) ListCampaigns(ctx context.Context, brandID int64) ([]domain.Campaign, error) {
	return s.repo.ListCampaigns(ctx, brandID)
}

// AddBatch records a manufacturing batch, bumps the campaign counter and
// anchors the batch.
func (s *CampaignService) AddBatch(ctx context.Context, brandID, campaignID int64, req port.BatchReq) (*port.BatchResp, error) {
	if _, err := s.campaignForBrand(ctx, brandID, campaignID); err != nil {
		return nil, err
	}
	batch := &domain.ManufacturingBatch{
		CampaignID:        campaignID,
		BatchNumber:       req.BatchNumber,
		ManufacturedCount: req.ManufacturedCount,
	}
	if err := s.repo.AddBatch(ctx, batch); err != nil {
		return nil, err
	}
	anchor := s.anchor(ctx, domain.KindBatch, batch.ID, map[string]any{
		"type":               domain.KindBatch,
		"campaign_id":        campaignID,
		"batch_id":           batch.ID,
		"batch_number":       batch.BatchNumber,
		"manufactured_count": batch.ManufacturedCount,
	})
	return &port.BatchResp{BatchID: batch.ID, ProofHash: anchor.Digest, TxID: anchor.TxID}, nil
}

// AddDistribution records a standalone distribution event and anchors it.
func (s *CampaignService) AddDistribution(ctx context.Context, brandID, campaignID int64, req port.DistributionReq) (*port.DistributionResp, error) {
	if _, err := s.campaignForBrand(ctx, brandID, campaignID); err != nil {
		return nil, err
	}
	rec := &domain.DistributionRecord{
		CampaignID:       campaignID,
		LocationName:     req.LocationName,
		DistributedCount: req.DistributedCount,
		Lat:              req.Lat,
		Lng:              req.Lng,
	}
	if err := s.repo.AddDistribution(ctx, rec); err != nil {
		return nil, err
	}
	anchor := s.anchor(ctx, domain.KindDistribution, rec.ID, map[string]any{
		"type":              domain.KindDistribution,
		"campaign_id":       campaignID,
		"distribution_id":   rec.ID,
		"location":          rec.LocationName,
		"distributed_count": rec.DistributedCount,
	})
	return &port.DistributionResp{DistributionID: rec.ID, ProofHash: anchor.Digest, TxID: anchor.TxID}, nil
}

// UpsertDailyActivity creates or replaces the activity for (campaign, day),
// reconciles counters and location facts in one transaction, then anchors
// the submitted values. The response carries the day's current location
// facts read back from storage.
func (s *CampaignService) UpsertDailyActivity(ctx context.Context, brandID, campaignID int64, req port.DailyActivityReq) (*port.ActivityResp, error) {
	if _, err := s.campaignForBrand(ctx, brandID, campaignID); err != nil {
		return nil, err
	}
	act := &domain.DailyActivity{
		CampaignID:        campaignID,
		Day:               domain.NormalizeDay(req.Day),
		ManufacturedToday: req.ManufacturedToday,
		DistributedToday:  req.DistributedToday,
		ScanCountToday:    req.ScanCountToday,
	}
	locations := make([]domain.DistributionRecord, 0, len(req.Locations))
	for _, l := range req.Locations {
		locations = append(locations, domain.DistributionRecord{
			LocationName:     l.LocationName,
			DistributedCount: l.DistributedCount,
			Lat:              l.Lat,
			Lng:              l.Lng,
		})
	}
	if err := s.repo.UpsertDailyActivity(ctx, act, locations); err != nil {
		return nil, err
	}
	act.Anchor = s.anchor(ctx, domain.KindActivity, act.ID, map[string]any{
		"type":               domain.KindActivity,
		"campaign_id":        campaignID,
		"activity_id":        act.ID,
		"date":               act.Day.Format("2006-01-02"),
		"manufactured_today": act.ManufacturedToday,
		"distributed_today":  act.DistributedToday,
		"scan_count_today":   act.ScanCountToday,
	})

	resp, err := s.activityResp(ctx, act)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListDailyActivities returns the campaign's history newest day first, each
// day with its window of location facts.
func (s *CampaignService) ListDailyActivities(ctx context.Context, brandID, campaignID int64) ([]port.ActivityResp, error) {
	if _, err := s.campaignForBrand(ctx, brandID, campaignID); err != nil {
		return nil, err
	}
	activities, err := s.repo.ListActivities(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	out := make([]port.ActivityResp, 0, len(activities))
	for i := range activities {
		resp, err := s.activityResp(ctx, &activities[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Summary composes the dashboard view. Totals are recomputed by summing the
// daily rows rather than read from the maintained campaign counters, so
// standalone batch and distribution submissions are intentionally absent
// from them; totals.locations counts distinct names, unlike the per-call
// Campaign.LocationsCount.
func (s *CampaignService) Summary(ctx context.Context, brandID, campaignID int64) (*port.SummaryResp, error) {
	campaign, err := s.campaignForBrand(ctx, brandID, campaignID)
	if err != nil {
		return nil, err
	}
	history, err := s.ListDailyActivities(ctx, brandID, campaignID)
	if err != nil {
		return nil, err
	}
	var totals port.Totals
	for _, a := range history {
		totals.Manufactured += a.ManufacturedToday
		totals.Distributed += a.DistributedToday
		totals.Scans += a.ScanCountToday
	}
	totals.Locations, err = s.repo.DistinctLocationCount(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	resp := &port.SummaryResp{
		CampaignID: campaignID,
		Totals:     totals,
		History:    history,
		StartDate:  campaign.StartDate,
		EndDate:    campaign.EndDate,
	}
	if len(history) > 0 {
		resp.Today = &history[0]
	}
	return resp, nil
}

// VerifyProof reads a previously anchored digest back from the ledger.
func (s *CampaignService) VerifyProof(ctx context.Context, txid string) (string, error) {
	return s.ledger.Lookup(ctx, txid)
}

// campaignForBrand loads a campaign and checks ownership. A missing campaign
// and one owned by another brand are both reported as not found.
func (s *CampaignService) campaignForBrand(ctx context.Context, brandID, campaignID int64) (*domain.Campaign, error) {
	c, err := s.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil || c.BrandID != brandID {
		return nil, port.ErrNotFound
	}
	return c, nil
}

// anchor fingerprints the payload, makes exactly one submission attempt and
// attaches the result to the record. Neither a failed submission nor a
// failed attachment aborts the owning operation.
func (s *CampaignService) anchor(ctx context.Context, kind string, id int64, payload map[string]any) domain.Anchor {
	anchor := domain.Anchor{Digest: proof.Fingerprint(payload)}
	txid, err := s.ledger.Submit(ctx, anchor.Digest)
	if err != nil {
		s.logger.Warn("ledger submission failed",
			slog.String("kind", kind), slog.Int64("id", id), slog.Any("error", err))
	} else {
		anchor.TxID = txid
	}
	if err := s.repo.AttachAnchor(ctx, kind, id, anchor); err != nil {
		s.logger.Warn("anchor attachment failed",
			slog.String("kind", kind), slog.Int64("id", id), slog.Any("error", err))
	}
	return anchor
}

// activityResp builds the transport shape for an activity, attaching the
// location facts currently in the day's window.
func (s *CampaignService) activityResp(ctx context.Context, act *domain.DailyActivity) (*port.ActivityResp, error) {
	from, to := domain.DayWindow(act.Day)
	records, err := s.repo.ListDistributionsBetween(ctx, act.CampaignID, from, to)
	if err != nil {
		return nil, err
	}
	locations := make([]port.LocationReq, 0, len(records))
	for _, d := range records {
		locations = append(locations, port.LocationReq{
			LocationName:     d.LocationName,
			DistributedCount: d.DistributedCount,
			Lat:              d.Lat,
			Lng:              d.Lng,
		})
	}
	return &port.ActivityResp{
		ID:                act.ID,
		CampaignID:        act.CampaignID,
		Day:               act.Day.Format("2006-01-02"),
		ManufacturedToday: act.ManufacturedToday,
		DistributedToday:  act.DistributedToday,
		ScanCountToday:    act.ScanCountToday,
		ProofHash:         act.Anchor.Digest,
		TxID:              act.Anchor.TxID,
		CreatedAt:         act.CreatedAt,
		Locations:         locations,
	}, nil
}
