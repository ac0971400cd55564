package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCharge_SetAmounts(t *testing.T) {
	tests := []struct {
		name      string
		net       string
		rate      string
		wantNet   string
		wantTax   string
		wantTotal string
	}{
		{name: "standard rate", net: "1000", rate: "18", wantNet: "1000.00", wantTax: "180.00", wantTotal: "1180.00"},
		{name: "rounds tax to cents", net: "99.99", rate: "18", wantNet: "99.99", wantTax: "18.00", wantTotal: "117.99"},
		{name: "zero rate", net: "250.50", rate: "0", wantNet: "250.50", wantTax: "0.00", wantTotal: "250.50"},
		{name: "zero net", net: "0", rate: "18", wantNet: "0.00", wantTax: "0.00", wantTotal: "0.00"},
		{name: "fractional rate", net: "200", rate: "8.5", wantNet: "200.00", wantTax: "17.00", wantTotal: "217.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var charge Charge
			charge.SetAmounts(decimal.RequireFromString(tt.net), decimal.RequireFromString(tt.rate))

			assert.Equal(t, tt.wantNet, charge.Net.StringFixed(2))
			assert.Equal(t, tt.wantTax, charge.Tax.StringFixed(2))
			assert.Equal(t, tt.wantTotal, charge.Total.StringFixed(2))
		})
	}
}

func TestCharge_SetAmountsNoFloatDrift(t *testing.T) {
	// 0.1 + 0.2 style inputs stay exact in fixed point.
	var charge Charge
	charge.SetAmounts(decimal.RequireFromString("0.30"), decimal.RequireFromString("10"))

	assert.Equal(t, "0.03", charge.Tax.StringFixed(2))
	assert.Equal(t, "0.33", charge.Total.StringFixed(2))
}
