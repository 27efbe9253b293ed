package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"cuptrace/internal/core/port"
)

// dailyActivityIn is the wire shape for a daily-activity submission; the day
// arrives as a calendar date, not a timestamp.
type dailyActivityIn struct {
	Day               string             `json:"day"`
	ManufacturedToday int64              `json:"manufactured_today"`
	DistributedToday  int64              `json:"distributed_today"`
	ScanCountToday    int64              `json:"scan_count_today"`
	Locations         []port.LocationReq `json:"locations"`
}

// handleDailyActivityUpsert creates or replaces the activity for a day.
// Resubmitting a day replaces its values without double-counting; supplying
// locations replaces the day's location facts wholesale, omitting them
// preserves the previous set.
func (h *Handler) handleDailyActivityUpsert(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var in dailyActivityIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	day, err := time.Parse("2006-01-02", in.Day)
	if err != nil {
		http.Error(w, "invalid 'day' date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	resp, err := h.campaigns.UpsertDailyActivity(r.Context(), brandFrom(r).ID, id, port.DailyActivityReq{
		Day:               day,
		ManufacturedToday: in.ManufacturedToday,
		DistributedToday:  in.DistributedToday,
		ScanCountToday:    in.ScanCountToday,
		Locations:         in.Locations,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleDailyActivityList returns the campaign's activity history, newest
// day first.
func (h *Handler) handleDailyActivityList(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	list, err := h.campaigns.ListDailyActivities(r.Context(), brandFrom(r).ID, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}
