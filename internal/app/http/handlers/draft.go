package handlers

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"quotedesk/backend/internal/domain/quote"
)

// DraftRequest is one full form snapshot as the client sends it.
// Quantity and price arrive as the raw text field contents; anything that
// does not parse as a number is treated as 0, never rejected.
type DraftRequest struct {
	Number         string        `json:"number"`
	IssueDate      string        `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	ExpirationDate string        `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
	Recipient      string        `json:"recipient"`
	IncludeTax     bool          `json:"include_tax"`
	Items          []ItemRequest `json:"items" validate:"dive"`
}

type ItemRequest struct {
	Description  string `json:"description"`
	Quantity     string `json:"quantity"`
	QuantityUnit string `json:"quantity_unit" validate:"omitempty,oneof=GBs TBs"`
	Price        string `json:"price"`
	Period       string `json:"period" validate:"omitempty,oneof=one_time per_gb per_gb_month per_month per_gb_year per_year"`
	Mode         string `json:"mode" validate:"omitempty,oneof=number tbd tier1"`
}

func (req DraftRequest) toDraft() quote.Draft {
	d := quote.Draft{
		Number:         strings.TrimSpace(req.Number),
		IssueDate:      parseDate(req.IssueDate),
		ExpirationDate: parseDate(req.ExpirationDate),
		Recipient:      req.Recipient,
		IncludeTax:     req.IncludeTax,
	}
	for _, it := range req.Items {
		mode := quote.DisplayMode(it.Mode)
		if mode == "" {
			mode = quote.ModeNumber
		}
		d.Items = append(d.Items, quote.LineItem{
			Description:  it.Description,
			Quantity:     parseAmount(it.Quantity),
			QuantityUnit: it.QuantityUnit,
			UnitPrice:    parseAmount(it.Price),
			Period:       quote.PeriodTag(it.Period),
			Mode:         mode,
		})
	}
	return d
}

// parseDate is strict only about format; dates are pre-validated.
func parseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseAmount mirrors the form behavior: empty or garbage input is 0.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
