package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"quotedesk/backend/internal/app/config"
	"quotedesk/backend/internal/domain/quote"
	"quotedesk/backend/internal/domain/quote/pdf"
	pdfgen "quotedesk/backend/internal/domain/quote/pdf/gofpdf"
)

type Handlers struct {
	Cfg      config.Config
	Policy   quote.Policy
	PDF      pdf.Generator
	validate *validatorv10.Validate
}

func New(cfg config.Config) *Handlers {
	return &Handlers{
		Cfg:      cfg,
		Policy:   policyFrom(cfg),
		PDF:      pdfgen.New(),
		validate: validatorv10.New(),
	}
}

func policyFrom(cfg config.Config) quote.Policy {
	pol := quote.DefaultPolicy()
	if cfg.TotalPeriod == string(quote.TotalPeriodAlways) {
		pol.TotalPeriod = quote.TotalPeriodAlways
	}
	if amt, err := decimal.NewFromString(cfg.Tier1Amount); err == nil && amt.IsPositive() {
		pol.TierAmount = amt
	} else if cfg.Tier1Amount != "" && err != nil {
		log.Printf("config: bad TIER1_AMOUNT %q, keeping default", cfg.Tier1Amount)
	}
	return pol
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("http: write response: %v", err)
	}
}
