package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"quotedesk/backend/internal/domain/quote"
	"quotedesk/backend/internal/domain/quote/pdf"
)

// QuotePDF renders the draft and returns it as a downloadable PDF.
func (h *Handlers) QuotePDF(w http.ResponseWriter, r *http.Request) {
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
	pdfBytes, err := h.PDF.Generate(p)
	if err != nil {
		log.Printf("quote pdf: generate: %v", err)
		http.Error(w, "pdf generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdf.Filename(req.Number)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
