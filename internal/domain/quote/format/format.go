// Package format holds the display formatting for quote previews: dates,
// currency amounts, rates and quantities. Everything is pure and returns
// either a plain string or a Fragment.
package format

import (
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "Jan 2, 2006"

// Fragment is one preview cell: the main text plus an optional trailing
// suffix ("/month", "GBs") that the host renders in a muted span and the
// PDF generator joins with a space.
type Fragment struct {
	Text   string `json:"text"`
	Suffix string `json:"suffix,omitempty"`
}

func (f Fragment) Plain() string {
	if f.Suffix == "" {
		return f.Text
	}
	return f.Text + " " + f.Suffix
}

// Date renders a calendar date as "Mar 5, 2024". The zero time renders
// as "-".
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

// Currency rounds to cents and collapses whole amounts to an integer
// string: $10, $10.50.
func Currency(d decimal.Decimal, suffix string) Fragment {
	return Fragment{Text: "$" + money(d.Round(2)), Suffix: suffix}
}

// Rate always keeps two decimals ($5.00), except that a zero rate is
// "$0" with no suffix regardless of period.
func Rate(d decimal.Decimal, suffix string) Fragment {
	r := d.Round(2)
	if r.IsZero() {
		return Fragment{Text: "$0"}
	}
	return Fragment{Text: "$" + r.StringFixed(2), Suffix: suffix}
}

// Quantity rounds to the nearest whole number for display; zero renders
// as "-". The unit tag (GBs, TBs) rides along as the suffix.
func Quantity(q decimal.Decimal, unit string) Fragment {
	n := q.Round(0)
	if n.IsZero() {
		return Fragment{Text: "-", Suffix: unit}
	}
	return Fragment{Text: n.StringFixed(0), Suffix: unit}
}

func money(r decimal.Decimal) string {
	if r.IsInteger() {
		return r.StringFixed(0)
	}
	return r.StringFixed(2)
}
