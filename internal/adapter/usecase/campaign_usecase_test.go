package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"cuptrace/internal/core/domain"
	"cuptrace/internal/core/port"
	"cuptrace/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

var hexDigest = regexp.MustCompile(`^[0-9a-f]{64}$`)

func testService(repo port.CampaignRepository, ledger port.LedgerClient) *CampaignService {
	return NewCampaignService(repo, ledger, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// TestAddBatchAnchorsRecord checks the happy path: the batch is persisted,
// fingerprinted and anchored, and the ledger transaction id comes back to
// the caller.
func TestAddBatchAnchorsRecord(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	ledger := mocks.NewMockLedgerClient(t)

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(7)).
		Return(&domain.Campaign{ID: 7, BrandID: 1}, nil)
	repo.EXPECT().
		AddBatch(mock.Anything, mock.AnythingOfType("*domain.ManufacturingBatch")).
		Run(func(ctx context.Context, batch *domain.ManufacturingBatch) {
			batch.ID = 42
		}).
		Return(nil)
	ledger.EXPECT().
		Submit(mock.Anything, mock.AnythingOfType("string")).
		Return("TX123", nil)
	repo.EXPECT().
		AttachAnchor(mock.Anything, domain.KindBatch, int64(42), mock.AnythingOfType("domain.Anchor")).
		Return(nil)

	svc := testService(repo, ledger)

	resp, err := svc.AddBatch(context.Background(), 1, 7, port.BatchReq{
		BatchNumber:       "B-001",
		ManufacturedCount: 500,
	})
	if err != nil {
		t.Fatalf("AddBatch error: %v", err)
	}
	if resp.BatchID != 42 {
		t.Fatalf("expected batch id 42, got %d", resp.BatchID)
	}
	if resp.TxID != "TX123" {
		t.Fatalf("expected txid TX123, got %q", resp.TxID)
	}
	if !hexDigest.MatchString(resp.ProofHash) {
		t.Fatalf("proof hash is not a sha256 hex digest: %q", resp.ProofHash)
	}
}

// TestAddBatchLedgerFailure checks that a failed ledger submission does not
// abort the operation: the batch stays persisted, the digest is still
// computed and attached, and only the transaction id is absent.
func TestAddBatchLedgerFailure(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	ledger := mocks.NewMockLedgerClient(t)

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(7)).
		Return(&domain.Campaign{ID: 7, BrandID: 1}, nil)
	repo.EXPECT().
		AddBatch(mock.Anything, mock.AnythingOfType("*domain.ManufacturingBatch")).
		Run(func(ctx context.Context, batch *domain.ManufacturingBatch) {
			batch.ID = 42
		}).
		Return(nil)
	ledger.EXPECT().
		Submit(mock.Anything, mock.AnythingOfType("string")).
		Return("", errors.New("node unreachable"))

	var attached domain.Anchor
	repo.EXPECT().
		AttachAnchor(mock.Anything, domain.KindBatch, int64(42), mock.AnythingOfType("domain.Anchor")).
		Run(func(ctx context.Context, kind string, id int64, anchor domain.Anchor) {
			attached = anchor
		}).
		Return(nil)

	svc := testService(repo, ledger)

	resp, err := svc.AddBatch(context.Background(), 1, 7, port.BatchReq{
		BatchNumber:       "B-001",
		ManufacturedCount: 500,
	})
	if err != nil {
		t.Fatalf("AddBatch error: %v", err)
	}
	if resp.TxID != "" {
		t.Fatalf("expected empty txid after ledger failure, got %q", resp.TxID)
	}
	if !hexDigest.MatchString(resp.ProofHash) {
		t.Fatalf("proof hash is not a sha256 hex digest: %q", resp.ProofHash)
	}
	if attached.Digest != resp.ProofHash || attached.TxID != "" {
		t.Fatalf("attached anchor %+v does not match response", attached)
	}
}

// TestOwnershipCheck ensures a campaign owned by another brand is reported
// as not found, same as a genuinely missing one.
func TestOwnershipCheck(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	ledger := mocks.NewMockLedgerClient(t)

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(7)).
		Return(&domain.Campaign{ID: 7, BrandID: 2}, nil).
		Once()
	repo.EXPECT().
		GetCampaign(mock.Anything, int64(8)).
		Return(nil, nil).
		Once()

	svc := testService(repo, ledger)

	if _, err := svc.AddBatch(context.Background(), 1, 7, port.BatchReq{}); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("foreign campaign: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Summary(context.Background(), 1, 8); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("missing campaign: expected ErrNotFound, got %v", err)
	}
}

// TestUpsertDailyActivity checks that the response reflects the upserted row
// plus the location facts currently in the day's window.
func TestUpsertDailyActivity(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	ledger := mocks.NewMockLedgerClient(t)

	day := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC) // normalized to midnight inside

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(7)).
		Return(&domain.Campaign{ID: 7, BrandID: 1}, nil)
	repo.EXPECT().
		UpsertDailyActivity(mock.Anything, mock.AnythingOfType("*domain.DailyActivity"), mock.AnythingOfType("[]domain.DistributionRecord")).
		Run(func(ctx context.Context, act *domain.DailyActivity, locations []domain.DistributionRecord) {
			if !act.Day.Equal(domain.NormalizeDay(day)) {
				t.Errorf("day not normalized: %v", act.Day)
			}
			if len(locations) != 1 || locations[0].LocationName != "Festival Gate" {
				t.Errorf("unexpected locations: %+v", locations)
			}
			act.ID = 9
		}).
		Return(nil)
	ledger.EXPECT().
		Submit(mock.Anything, mock.AnythingOfType("string")).
		Return("TXACT", nil)
	repo.EXPECT().
		AttachAnchor(mock.Anything, domain.KindActivity, int64(9), mock.AnythingOfType("domain.Anchor")).
		Return(nil)

	from, to := domain.DayWindow(day)
	repo.EXPECT().
		ListDistributionsBetween(mock.Anything, int64(7), from, to).
		Return([]domain.DistributionRecord{
			{ID: 1, CampaignID: 7, LocationName: "Festival Gate", DistributedCount: 120, DistributedAt: domain.Midday(day)},
		}, nil)

	svc := testService(repo, ledger)

	resp, err := svc.UpsertDailyActivity(context.Background(), 1, 7, port.DailyActivityReq{
		Day:               day,
		ManufacturedToday: 300,
		DistributedToday:  120,
		ScanCountToday:    45,
		Locations:         []port.LocationReq{{LocationName: "Festival Gate", DistributedCount: 120}},
	})
	if err != nil {
		t.Fatalf("UpsertDailyActivity error: %v", err)
	}
	if resp.Day != "2026-03-15" {
		t.Fatalf("expected day 2026-03-15, got %q", resp.Day)
	}
	if resp.TxID != "TXACT" {
		t.Fatalf("expected txid TXACT, got %q", resp.TxID)
	}
	if len(resp.Locations) != 1 || resp.Locations[0].LocationName != "Festival Gate" {
		t.Fatalf("unexpected locations in response: %+v", resp.Locations)
	}
}

// TestSummaryTotals checks that totals are summed from the daily rows, that
// the distinct location count feeds totals.locations and that today is the
// newest history entry.
func TestSummaryTotals(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	ledger := mocks.NewMockLedgerClient(t)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().
		GetCampaign(mock.Anything, int64(7)).
		Return(&domain.Campaign{ID: 7, BrandID: 1, StartDate: &start}, nil)

	newest := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().
		ListActivities(mock.Anything, int64(7)).
		Return([]domain.DailyActivity{
			{ID: 2, CampaignID: 7, Day: newest, ManufacturedToday: 300, DistributedToday: 120, ScanCountToday: 45},
			{ID: 1, CampaignID: 7, Day: older, ManufacturedToday: 200, DistributedToday: 80, ScanCountToday: 30},
		}, nil)
	repo.EXPECT().
		ListDistributionsBetween(mock.Anything, int64(7), mock.Anything, mock.Anything).
		Return(nil, nil)
	repo.EXPECT().
		DistinctLocationCount(mock.Anything, int64(7)).
		Return(int64(3), nil)

	svc := testService(repo, ledger)

	resp, err := svc.Summary(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	want := port.Totals{Manufactured: 500, Distributed: 200, Scans: 75, Locations: 3}
	if resp.Totals != want {
		t.Fatalf("totals = %+v, want %+v", resp.Totals, want)
	}
	if resp.Today == nil || resp.Today.Day != "2026-03-15" {
		t.Fatalf("today should be the newest row, got %+v", resp.Today)
	}
	if len(resp.History) != 2 {
		t.Fatalf("expected 2 history rows, got %d", len(resp.History))
	}
	if resp.StartDate == nil || !resp.StartDate.Equal(start) {
		t.Fatalf("start date not propagated: %v", resp.StartDate)
	}
}

// TestVerifyProof passes the lookup straight through to the ledger client.
func TestVerifyProof(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	ledger := mocks.NewMockLedgerClient(t)

	ledger.EXPECT().
		Lookup(mock.Anything, "TX123").
		Return("deadbeef", nil)

	svc := testService(repo, ledger)

	digest, err := svc.VerifyProof(context.Background(), "TX123")
	if err != nil {
		t.Fatalf("VerifyProof error: %v", err)
	}
	if digest != "deadbeef" {
		t.Fatalf("expected digest deadbeef, got %q", digest)
	}
}
