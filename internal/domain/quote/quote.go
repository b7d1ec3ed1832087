package quote

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodTag marks whether and how a rate recurs.
type PeriodTag string

const (
	PeriodNone    PeriodTag = ""
	PeriodOneTime PeriodTag = "one_time"
	PeriodGB      PeriodTag = "per_gb"
	PeriodGBMonth PeriodTag = "per_gb_month"
	PeriodMonth   PeriodTag = "per_month"
	PeriodGBYear  PeriodTag = "per_gb_year"
	PeriodYear    PeriodTag = "per_year"
)

// Monthly reports whether the tag recurs per calendar month.
func (p PeriodTag) Monthly() bool {
	return p == PeriodMonth || p == PeriodGBMonth
}

// RateSuffix is the trailing fragment shown next to a rate. Only the
// monthly tags carry one; everything else renders bare.
func (p PeriodTag) RateSuffix() string {
	switch p {
	case PeriodGBMonth:
		return "per GB/month"
	case PeriodMonth:
		return "/month"
	default:
		return ""
	}
}

// DisplayMode overrides the normal quantity*price arithmetic of a line.
type DisplayMode string

const (
	ModeNumber DisplayMode = "number" // computed: quantity * unit price
	ModeTBD    DisplayMode = "tbd"    // pending: amount shown as "TBD", excluded from subtotal
	ModeTier1  DisplayMode = "tier1"  // flat tier: fixed monthly amount
)

type LineItem struct {
	Description  string
	Quantity     decimal.Decimal
	QuantityUnit string // "", "GBs" or "TBs"
	UnitPrice    decimal.Decimal
	Period       PeriodTag
	Mode         DisplayMode
}

// Draft is one full form snapshot. The client rebuilds and resends it on
// every change; nothing is cached or persisted on this side.
type Draft struct {
	Number         string
	IssueDate      time.Time // zero = not set
	ExpirationDate time.Time // zero = not set
	Recipient      string
	IncludeTax     bool
	Items          []LineItem
}

// EffectiveExpiration resolves the expiration date: the explicit value if
// set, otherwise issue date + 30 days, otherwise zero.
func (d Draft) EffectiveExpiration() time.Time {
	if !d.ExpirationDate.IsZero() {
		return d.ExpirationDate
	}
	if !d.IssueDate.IsZero() {
		return d.IssueDate.AddDate(0, 0, 30)
	}
	return time.Time{}
}
