package domain

import (
	"testing"
	"time"
)

func TestNormalizeDay(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2026, 3, 15, 2, 30, 0, 0, loc) // 2026-03-14 21:30 UTC
	got := NormalizeDay(in)
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("NormalizeDay(%v) = %v, want %v", in, got, want)
	}
}

func TestDayWindowContainsMidday(t *testing.T) {
	day := time.Date(2026, 3, 15, 18, 45, 0, 0, time.UTC)
	from, to := DayWindow(day)
	mid := Midday(day)

	if !from.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("window start = %v", from)
	}
	if to.Sub(from) != 24*time.Hour {
		t.Fatalf("window length = %v", to.Sub(from))
	}
	if mid.Before(from) || !mid.Before(to) {
		t.Fatalf("midday %v outside window [%v, %v)", mid, from, to)
	}
}

func TestActivityDelta(t *testing.T) {
	tests := []struct {
		name                     string
		prev                     *DailyActivity
		manufactured, distributed int64
		wantMan, wantDist        int64
	}{
		{
			name:         "new day contributes in full",
			prev:         nil,
			manufactured: 300, distributed: 120,
			wantMan: 300, wantDist: 120,
		},
		{
			name:         "resubmit higher values adds the difference",
			prev:         &DailyActivity{ManufacturedToday: 200, DistributedToday: 100},
			manufactured: 300, distributed: 120,
			wantMan: 100, wantDist: 20,
		},
		{
			name:         "resubmit lower values subtracts",
			prev:         &DailyActivity{ManufacturedToday: 300, DistributedToday: 120},
			manufactured: 200, distributed: 100,
			wantMan: -100, wantDist: -20,
		},
		{
			name:         "identical resubmit is a no-op",
			prev:         &DailyActivity{ManufacturedToday: 300, DistributedToday: 120},
			manufactured: 300, distributed: 120,
			wantMan: 0, wantDist: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			man, dist := ActivityDelta(tt.prev, tt.manufactured, tt.distributed)
			if man != tt.wantMan || dist != tt.wantDist {
				t.Fatalf("ActivityDelta = (%d, %d), want (%d, %d)", man, dist, tt.wantMan, tt.wantDist)
			}
		})
	}
}
