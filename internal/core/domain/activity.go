package domain

import "time"

// DailyActivity is one row per (campaign, day). Rows are upserted, never
// deleted: a resubmission for the same day overwrites the three counters in
// place after the campaign totals have been adjusted by ActivityDelta.
type DailyActivity struct {
	ID                int64
	CampaignID        int64
	Day               time.Time
	ManufacturedToday int64
	DistributedToday  int64
	ScanCountToday    int64
	Anchor            Anchor
	CreatedAt         time.Time
}

// NormalizeDay truncates t to midnight UTC, the canonical form for the
// daily_activities day column.
func NormalizeDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayWindow returns the half-open window [midnight, midnight+24h) covering
// day. Distribution records with timestamps in this window belong to the day.
func DayWindow(day time.Time) (time.Time, time.Time) {
	start := NormalizeDay(day)
	return start, start.Add(24 * time.Hour)
}

// Midday returns midnight(day)+12h, the timestamp given to location facts
// created by a daily-activity upsert so they always fall inside DayWindow.
func Midday(day time.Time) time.Time {
	return NormalizeDay(day).Add(12 * time.Hour)
}

// ActivityDelta returns the adjustments to apply to the campaign counters
// when upserting a day with the given values. When prev is nil the day is
// new and the values contribute in full; otherwise the previous day's
// contribution is subtracted first, so resubmitting identical values is a
// no-op on the counters.
func ActivityDelta(prev *DailyActivity, manufactured, distributed int64) (int64, int64) {
	if prev == nil {
		return manufactured, distributed
	}
	return manufactured - prev.ManufacturedToday, distributed - prev.DistributedToday
}
