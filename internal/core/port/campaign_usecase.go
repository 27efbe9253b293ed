package port

import (
	"context"
	"time"

	"cuptrace/internal/core/domain"
)

// CampaignUseCase is the primary port into the campaign domain. Every
// mutating operation persists first, then fingerprints the persisted fact
// and anchors it on the ledger best-effort; the returned TxID is empty when
// the submission failed. Mock implementations are generated from this
// interface for testing.
type CampaignUseCase interface {
	CreateCampaign(ctx context.Context, brandID int64, req CreateCampaignReq) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, brandID int64) ([]domain.Campaign, error)

	// AddBatch records a manufacturing batch and anchors it.
	AddBatch(ctx context.Context, brandID, campaignID int64, req BatchReq) (*BatchResp, error)
	// AddDistribution records a standalone distribution event and anchors it.
	AddDistribution(ctx context.Context, brandID, campaignID int64, req DistributionReq) (*DistributionResp, error)
	// UpsertDailyActivity creates or replaces the activity for (campaign,
	// day), reconciles the campaign counters and location facts, and anchors
	// the submitted values.
	UpsertDailyActivity(ctx context.Context, brandID, campaignID int64, req DailyActivityReq) (*ActivityResp, error)
	// ListDailyActivities returns the campaign's history newest day first,
	// each day carrying its location facts.
	ListDailyActivities(ctx context.Context, brandID, campaignID int64) ([]ActivityResp, error)
	// Summary composes the dashboard view: totals recomputed from the daily
	// rows, today's activity and the full history.
	Summary(ctx context.Context, brandID, campaignID int64) (*SummaryResp, error)
	// VerifyProof reads a previously anchored digest back from the ledger.
	VerifyProof(ctx context.Context, txid string) (string, error)
}

type CreateCampaignReq struct {
	Name      string     `json:"name"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type BatchReq struct {
	BatchNumber       string `json:"batch_number"`
	ManufacturedCount int64  `json:"manufactured_count"`
}

type BatchResp struct {
	BatchID   int64  `json:"batch_id"`
	ProofHash string `json:"proof_hash"`
	TxID      string `json:"txid,omitempty"`
}

type DistributionReq struct {
	LocationName     string   `json:"location_name"`
	DistributedCount int64    `json:"distributed_count"`
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
}

type DistributionResp struct {
	DistributionID int64  `json:"distribution_id"`
	ProofHash      string `json:"proof_hash"`
	TxID           string `json:"txid,omitempty"`
}

type LocationReq struct {
	LocationName     string   `json:"location_name"`
	DistributedCount int64    `json:"distributed_count"`
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
}

// DailyActivityReq carries one day's numbers. Locations is optional: nil or
// empty preserves the day's existing location facts, a non-empty list
// replaces them wholesale.
type DailyActivityReq struct {
	Day               time.Time     `json:"-"`
	ManufacturedToday int64         `json:"manufactured_today"`
	DistributedToday  int64         `json:"distributed_today"`
	ScanCountToday    int64         `json:"scan_count_today"`
	Locations         []LocationReq `json:"locations"`
}

type ActivityResp struct {
	ID                int64         `json:"id"`
	CampaignID        int64         `json:"campaign_id"`
	Day               string        `json:"day"`
	ManufacturedToday int64         `json:"manufactured_today"`
	DistributedToday  int64         `json:"distributed_today"`
	ScanCountToday    int64         `json:"scan_count_today"`
	ProofHash         string        `json:"proof_hash,omitempty"`
	TxID              string        `json:"txid,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	Locations         []LocationReq `json:"locations"`
}

// Totals is recomputed from the DailyActivity rows on every summary read.
// Manufactured/Distributed deliberately exclude standalone batch and
// distribution submissions, which only show up in the maintained campaign
// counters; Locations counts distinct location names, unlike the per-call
// Campaign.LocationsCount.
type Totals struct {
	Manufactured int64 `json:"manufactured"`
	Distributed  int64 `json:"distributed"`
	Scans        int64 `json:"scans"`
	Locations    int64 `json:"locations"`
}

type SummaryResp struct {
	CampaignID int64          `json:"campaign_id"`
	Totals     Totals         `json:"totals"`
	Today      *ActivityResp  `json:"today"`
	History    []ActivityResp `json:"history"`
	StartDate  *time.Time     `json:"start_date"`
	EndDate    *time.Time     `json:"end_date"`
}
