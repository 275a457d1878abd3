package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotienda/internal/pricing"
)

func TestMarginPercent(t *testing.T) {
	m, ok := pricing.MarginPercent(10, 15)
	require.True(t, ok)
	assert.InDelta(t, 50.0, m, 1e-9)

	_, ok = pricing.MarginPercent(0, 15)
	assert.False(t, ok)

	assert.Nil(t, pricing.MarginPtr(0, 15))
	require.NotNil(t, pricing.MarginPtr(10, 15))
	assert.InDelta(t, 50.0, *pricing.MarginPtr(10, 15), 1e-9)
}

func TestSaleDerivedFields(t *testing.T) {
	total := pricing.SaleTotal(3, 1500)
	assert.Equal(t, 4500.0, total)

	// 4500 - 10% de comissão (450) - 3 unidades a 800 de custo (2400)
	assert.InDelta(t, 1650.0, pricing.NetProfit(total, 10, 3, 800), 1e-9)
	assert.InDelta(t, 2100.0, pricing.NetProfit(total, 0, 3, 800), 1e-9)
}

func TestPurchaseTotal(t *testing.T) {
	assert.Equal(t, 250.0, pricing.PurchaseTotal(10, 25))
}
