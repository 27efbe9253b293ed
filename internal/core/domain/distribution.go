package domain

import "time"

// DistributionRecord is either a standalone distribution event (anchored
// individually, counters bumped per call) or a location fact created in bulk
// by a daily-activity upsert, timestamped at the midpoint of the owning day.
// Location facts for a day are replaced wholesale when the day is resubmitted
// with a non-empty location list.
type DistributionRecord struct {
	ID               int64
	CampaignID       int64
	LocationName     string
	Lat              *float64
	Lng              *float64
	DistributedCount int64
	DistributedAt    time.Time
	Anchor           Anchor
}
