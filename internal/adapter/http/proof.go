package httpadapter

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cuptrace/internal/core/port"
)

// handleProofLookup reads an anchored digest back from the ledger by
// transaction id. Unknown references are a plain 404, not an error.
func (h *Handler) handleProofLookup(w http.ResponseWriter, r *http.Request) {
	txid := chi.URLParam(r, "txid")
	if txid == "" {
		http.Error(w, "missing txid", http.StatusBadRequest)
		return
	}
	digest, err := h.campaigns.VerifyProof(r.Context(), txid)
	if errors.Is(err, port.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"txid":   txid,
		"digest": digest,
	})
}
