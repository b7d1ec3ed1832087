package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0"},
		{"10", "$10"},
		{"10.5", "$10.50"},
		{"10.555", "$10.56"},
		{"199", "$199"},
		{"0.1", "$0.10"},
		{"1234.005", "$1234.01"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Currency(dec(tt.in), "").Text, "amount %s", tt.in)
	}
}

func TestCurrencySuffix(t *testing.T) {
	f := Currency(dec("50"), "/month")
	assert.Equal(t, "$50", f.Text)
	assert.Equal(t, "/month", f.Suffix)
	assert.Equal(t, "$50 /month", f.Plain())
}

func TestRate(t *testing.T) {
	// zero ignores the period entirely
	f := Rate(dec("0"), "/month")
	assert.Equal(t, "$0", f.Text)
	assert.Empty(t, f.Suffix)

	// rounds-to-zero is still zero
	f = Rate(dec("0.004"), "per GB/month")
	assert.Equal(t, "$0", f.Text)
	assert.Empty(t, f.Suffix)

	// rates never collapse to integers
	f = Rate(dec("5"), "/month")
	assert.Equal(t, "$5.00", f.Text)
	assert.Equal(t, "/month", f.Suffix)

	f = Rate(dec("0.01"), "")
	assert.Equal(t, "$0.01", f.Text)
}

func TestDate(t *testing.T) {
	assert.Equal(t, "-", Date(time.Time{}))

	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mar 5, 2024", Date(d))

	d = time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Dec 25, 2023", Date(d))
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, Fragment{Text: "-"}, Quantity(dec("0"), ""))
	assert.Equal(t, Fragment{Text: "10"}, Quantity(dec("10"), ""))
	assert.Equal(t, Fragment{Text: "10"}, Quantity(dec("10.4"), ""))
	assert.Equal(t, Fragment{Text: "11"}, Quantity(dec("10.5"), ""))
	// rounds to zero displays the dash, unit still shown
	assert.Equal(t, Fragment{Text: "-", Suffix: "GBs"}, Quantity(dec("0.4"), "GBs"))
	assert.Equal(t, "250 TBs", Quantity(dec("250"), "TBs").Plain())
}
