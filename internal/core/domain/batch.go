package domain

import "time"

// ManufacturingBatch is an immutable record of a production event. Each
// submission is a distinct physical event and contributes additively to
// Campaign.Manufactured. The anchor is attached after creation and the record
// is never mutated afterwards.
type ManufacturingBatch struct {
	ID                int64
	CampaignID        int64
	BatchNumber       string
	ManufacturedCount int64
	ProducedAt        time.Time
	Anchor            Anchor
}
