package quote

import (
	"strings"

	"github.com/shopspring/decimal"

	"quotedesk/backend/internal/domain/quote/format"
)

// NoItemsMessage fills the table body when nothing survives filtering.
const NoItemsMessage = "No items added"

// TaxNote is shown whenever the draft does not include tax.
const TaxNote = "plus applicable tax"

var minPrice = decimal.RequireFromString("0.01")

// TotalPeriodPolicy decides when the subtotal/total carry a "/month"
// suffix: derived from the included items, or always.
type TotalPeriodPolicy string

const (
	TotalPeriodAuto   TotalPeriodPolicy = "auto"
	TotalPeriodAlways TotalPeriodPolicy = "always"
)

type Policy struct {
	TotalPeriod TotalPeriodPolicy
	TierAmount  decimal.Decimal // fixed amount billed for tier1 lines
}

func DefaultPolicy() Policy {
	return Policy{
		TotalPeriod: TotalPeriodAuto,
		TierAmount:  decimal.NewFromInt(199),
	}
}

// Row is one rendered table line: description plus quantity, rate and
// amount cells.
type Row struct {
	Description string          `json:"description"`
	Quantity    format.Fragment `json:"quantity"`
	Rate        format.Fragment `json:"rate"`
	Amount      format.Fragment `json:"amount"`
}

// Preview is the full rendered output, one field per UI slot. It carries
// everything the host needs to paint the preview or bake the PDF.
type Preview struct {
	Number         string          `json:"number"`
	IssueDate      string          `json:"issue_date"`
	ExpirationDate string          `json:"expiration_date"`
	Recipient      []string        `json:"recipient"`
	Rows           []Row           `json:"rows"`
	EmptyMessage   string          `json:"empty_message,omitempty"`
	Subtotal       format.Fragment `json:"subtotal"`
	Total          format.Fragment `json:"total"`
	ShowTaxNote    bool            `json:"show_tax_note"`
	TaxNote        string          `json:"tax_note,omitempty"`
}

// Render computes the preview for one draft snapshot. It is a pure
// function: same draft and policy in, byte-identical preview out.
func Render(d Draft, pol Policy) Preview {
	p := Preview{
		Number:         orDash(d.Number),
		IssueDate:      format.Date(d.IssueDate),
		ExpirationDate: format.Date(d.EffectiveExpiration()),
		Recipient:      recipientLines(d.Recipient),
		ShowTaxNote:    !d.IncludeTax,
	}
	if p.ShowTaxNote {
		p.TaxNote = TaxNote
	}

	subtotal := decimal.Zero
	monthly := false
	for _, it := range d.Items {
		qty := clampQuantity(it.Quantity)
		price := clampPrice(it.UnitPrice)
		if !included(it, qty, price) {
			continue
		}

		row := Row{
			Description: orDash(strings.TrimSpace(it.Description)),
			Quantity:    format.Quantity(qty, it.QuantityUnit),
		}
		switch it.Mode {
		case ModeTier1:
			row.Rate = format.Fragment{Text: "Tier 1"}
			row.Amount = format.Currency(pol.TierAmount, "/month")
			subtotal = subtotal.Add(pol.TierAmount)
			monthly = true
		case ModeTBD:
			row.Rate = format.Rate(price, it.Period.RateSuffix())
			row.Amount = format.Fragment{Text: "TBD"}
			if it.Period.Monthly() {
				monthly = true
			}
		default:
			total := qty.Mul(price)
			suffix := ""
			if it.Period.Monthly() {
				suffix = "/month"
				monthly = true
			}
			row.Rate = format.Rate(price, it.Period.RateSuffix())
			row.Amount = format.Currency(total, suffix)
			subtotal = subtotal.Add(total)
		}
		p.Rows = append(p.Rows, row)
	}

	if len(p.Rows) == 0 {
		p.EmptyMessage = NoItemsMessage
	}

	totalSuffix := ""
	if pol.TotalPeriod == TotalPeriodAlways || monthly {
		totalSuffix = "/month"
	}
	p.Subtotal = format.Currency(subtotal, "")
	p.Total = format.Currency(subtotal, totalSuffix)
	return p
}

// included keeps a line that has anything entered on it; tier1 lines
// always show since their amount is fixed.
func included(it LineItem, qty, price decimal.Decimal) bool {
	return strings.TrimSpace(it.Description) != "" ||
		!qty.IsZero() ||
		!price.IsZero() ||
		it.Mode == ModeTier1
}

// clampPrice keeps entered rates out of (0, 0.01) and never negative.
func clampPrice(price decimal.Decimal) decimal.Decimal {
	if price.IsNegative() {
		return decimal.Zero
	}
	if price.IsPositive() && price.LessThan(minPrice) {
		return minPrice
	}
	return price
}

func clampQuantity(qty decimal.Decimal) decimal.Decimal {
	if qty.IsNegative() {
		return decimal.Zero
	}
	return qty
}

func recipientLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{"LINE", "LINE", "LINE", "LINE", "LINE"}
	}
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
