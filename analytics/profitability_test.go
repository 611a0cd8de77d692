package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/analytics"
)

func TestStoreProfitability(t *testing.T) {
	e := newEngine()
	rows, err := e.StoreProfitability(fixtureSnapshot(t))
	require.NoError(t, err)

	require.Len(t, rows, 2)

	santaCruz := rows[0]
	assert.Equal(t, uint(1), santaCruz.StoreID)
	assert.Equal(t, 3, santaCruz.OrdersCount)
	assert.Equal(t, "2459.92", santaCruz.GrossSales.StringFixed(2))
	assert.Equal(t, "134.10", santaCruz.DiscountAmount.StringFixed(2))
	assert.Equal(t, "2325.82", santaCruz.NetSales.StringFixed(2))
	assert.Equal(t, "5.45", fixed(t, santaCruz.AvgDiscountPct))
	assert.Equal(t, "697.75", santaCruz.EstimatedProfit.StringFixed(2))
	assert.Equal(t, "30.00", fixed(t, santaCruz.ProfitMarginPct))
	assert.Equal(t, "775.27", fixed(t, santaCruz.AvgOrderValue))

	baldwin := rows[1]
	assert.Equal(t, uint(2), baldwin.StoreID)
	assert.Equal(t, "3499.99", baldwin.GrossSales.StringFixed(2))
	assert.Equal(t, "700.00", baldwin.DiscountAmount.StringFixed(2))
	assert.Equal(t, "2799.99", baldwin.NetSales.StringFixed(2))
	assert.Equal(t, "20.00", fixed(t, baldwin.AvgDiscountPct))
	assert.Equal(t, "840.00", baldwin.EstimatedProfit.StringFixed(2))
	assert.Equal(t, "30.00", fixed(t, baldwin.ProfitMarginPct))
}

func TestStoreProfitabilityHonorsConfiguredMargin(t *testing.T) {
	e := analytics.New(analytics.Config{ProfitMargin: price("0.50")})
	rows, err := e.StoreProfitability(fixtureSnapshot(t))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Net sales are unchanged; only the profit assumption moves.
	santaCruz := rows[0]
	assert.Equal(t, "2325.82", santaCruz.NetSales.StringFixed(2))
	assert.Equal(t, "1162.91", santaCruz.EstimatedProfit.StringFixed(2))
	assert.Equal(t, "50.00", fixed(t, santaCruz.ProfitMarginPct))
}
