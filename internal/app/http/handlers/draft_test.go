package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotedesk/backend/internal/domain/quote"
)

func TestToDraft(t *testing.T) {
	req := DraftRequest{
		Number:    " Q-7 ",
		IssueDate: "2024-03-05",
		Items: []ItemRequest{
			{Description: "Storage", Quantity: "10.5", Price: "0.02", Period: "per_gb_month", QuantityUnit: "GBs"},
			{Description: "Egress", Quantity: "oops", Price: "-", Mode: "tbd"},
		},
	}
	d := req.toDraft()

	assert.Equal(t, "Q-7", d.Number)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), d.IssueDate)
	assert.True(t, d.ExpirationDate.IsZero())

	require.Len(t, d.Items, 2)
	assert.Equal(t, "10.5", d.Items[0].Quantity.String())
	assert.Equal(t, "0.02", d.Items[0].UnitPrice.String())
	assert.Equal(t, quote.PeriodGBMonth, d.Items[0].Period)
	assert.Equal(t, quote.ModeNumber, d.Items[0].Mode, "mode defaults to computed")

	// unparseable numbers degrade to zero
	assert.True(t, d.Items[1].Quantity.IsZero())
	assert.True(t, d.Items[1].UnitPrice.IsZero())
	assert.Equal(t, quote.ModeTBD, d.Items[1].Mode)
}

func TestPolicyFrom(t *testing.T) {
	pol := testHandlers().Policy
	assert.Equal(t, quote.TotalPeriodAuto, pol.TotalPeriod)
	assert.Equal(t, "199", pol.TierAmount.String())
}
