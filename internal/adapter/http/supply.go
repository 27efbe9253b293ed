package httpadapter

import (
	"encoding/json"
	"net/http"

	"cuptrace/internal/core/port"
)

// handleManufacture records a manufacturing batch. The response always
// carries the proof hash; txid is omitted when the ledger submission failed.
func (h *Handler) handleManufacture(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req port.BatchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	resp, err := h.campaigns.AddBatch(r.Context(), brandFrom(r).ID, id, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleDistribute records a standalone distribution event.
func (h *Handler) handleDistribute(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req port.DistributionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	resp, err := h.campaigns.AddDistribution(r.Context(), brandFrom(r).ID, id, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}
