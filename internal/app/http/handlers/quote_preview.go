package handlers

import (
	"encoding/json"
	"net/http"

	"quotedesk/backend/internal/domain/quote"
)

// QuotePreview renders one draft snapshot and returns the preview the
// client injects into its slots. Called on every form change.
func (h *Handlers) QuotePreview(w http.ResponseWriter, r *http.Request) {
	var req DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "invalid draft: "+err.Error(), http.StatusBadRequest)
		return
	}

	p := quote.Render(req.toDraft(), h.Policy)
	writeJSON(w, http.StatusOK, p)
}
