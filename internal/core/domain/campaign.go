package domain

import "time"

// Campaign tracks a supply-chain campaign for a brand. Manufactured,
// Distributed and LocationsCount are running counters maintained by the
// repository transactions: batches and standalone distributions add to them
// unconditionally, daily-activity upserts subtract the day's previous
// contribution before re-adding the new one. LocationsCount increments once
// per distribution call and therefore counts submissions, not distinct
// places; the distinct-name count lives on the summary view.
type Campaign struct {
	ID             int64
	BrandID        int64
	Name           string
	StartDate      *time.Time
	EndDate        *time.Time
	Manufactured   int64
	Distributed    int64
	LocationsCount int64
	CreatedAt      time.Time
}
