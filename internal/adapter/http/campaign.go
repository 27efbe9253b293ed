package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"cuptrace/internal/core/domain"
	"cuptrace/internal/core/port"
)

type campaignOut struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	BrandID        int64      `json:"brand_id"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Manufactured   int64      `json:"manufactured"`
	Distributed    int64      `json:"distributed"`
	LocationsCount int64      `json:"locations_count"`
}

func toCampaignOut(c domain.Campaign) campaignOut {
	return campaignOut{
		ID:             c.ID,
		Name:           c.Name,
		BrandID:        c.BrandID,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		Manufactured:   c.Manufactured,
		Distributed:    c.Distributed,
		LocationsCount: c.LocationsCount,
	}
}

// handleCampaignCreate creates a campaign for the authenticated brand.
func (h *Handler) handleCampaignCreate(w http.ResponseWriter, r *http.Request) {
	var req port.CreateCampaignReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	c, err := h.campaigns.CreateCampaign(r.Context(), brandFrom(r).ID, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignOut(*c))
}

// handleCampaignList returns the authenticated brand's campaigns.
func (h *Handler) handleCampaignList(w http.ResponseWriter, r *http.Request) {
	list, err := h.campaigns.ListCampaigns(r.Context(), brandFrom(r).ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]campaignOut, 0, len(list))
	for _, c := range list {
		out = append(out, toCampaignOut(c))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleCampaignSummary returns the dashboard view: recomputed totals,
// today's activity and the full history with location facts.
func (h *Handler) handleCampaignSummary(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	summary, err := h.campaigns.Summary(r.Context(), brandFrom(r).ID, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}
