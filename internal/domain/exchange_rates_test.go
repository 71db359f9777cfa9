package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExchangeRates_ToReporting(t *testing.T) {
	rates := &ExchangeRates{
		Base:  CurrencyEUR,
		Rates: map[string]float64{"MDL": 20, "USD": 1.25, "EUR": 1},
	}

	v, ok := rates.ToReporting(100, CurrencyMDL)
	assert.True(t, ok)
	assert.InDelta(t, 100, v, 1e-9)

	v, ok = rates.ToReporting(100, CurrencyEUR)
	assert.True(t, ok)
	assert.InDelta(t, 2000, v, 1e-9)

	v, ok = rates.ToReporting(125, CurrencyUSD)
	assert.True(t, ok)
	assert.InDelta(t, 2000, v, 1e-9)
}

func TestExchangeRates_Missing(t *testing.T) {
	var rates *ExchangeRates

	v, ok := rates.ToReporting(50, CurrencyMDL)
	assert.True(t, ok)
	assert.Equal(t, 50.0, v)

	_, ok = rates.ToReporting(50, CurrencyEUR)
	assert.False(t, ok)
}
