package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventorySnapshot(t *testing.T) {
	e := newEngine()
	rows, err := e.InventorySnapshot(fixtureSnapshot(t))
	require.NoError(t, err)

	require.Len(t, rows, 3)

	santaCruz := rows[0]
	assert.Equal(t, uint(1), santaCruz.StoreID)
	assert.Equal(t, 12, santaCruz.TotalStockUnits)
	// The zero-quantity row still counts as a stocked product.
	assert.Equal(t, 2, santaCruz.TotalProductsStocked)
	assert.Equal(t, "6.00", fixed(t, santaCruz.AvgStockPerProduct))

	baldwin := rows[1]
	assert.Equal(t, 10, baldwin.TotalStockUnits)
	assert.Equal(t, 2, baldwin.TotalProductsStocked)
	assert.Equal(t, "5.00", fixed(t, baldwin.AvgStockPerProduct))

	rowlett := rows[2]
	assert.Equal(t, 5, rowlett.TotalStockUnits)
	assert.Equal(t, 1, rowlett.TotalProductsStocked)
	assert.Equal(t, "5.00", fixed(t, rowlett.AvgStockPerProduct))
}

func TestInventoryEfficiency(t *testing.T) {
	e := newEngine()
	rows, err := e.InventoryEfficiency(fixtureSnapshot(t))
	require.NoError(t, err)

	require.Len(t, rows, 3)

	santaCruz := rows[0]
	assert.Equal(t, 12, santaCruz.TotalStockUnits)
	assert.Equal(t, 8, santaCruz.TotalUnitsSold)
	assert.Equal(t, "1.50", fixed(t, santaCruz.StockToSalesRatio))

	baldwin := rows[1]
	assert.Equal(t, 10, baldwin.TotalStockUnits)
	assert.Equal(t, 1, baldwin.TotalUnitsSold)
	assert.Equal(t, "10.00", fixed(t, baldwin.StockToSalesRatio))

	// Stock with no sales renders a null ratio, never a division error.
	rowlett := rows[2]
	assert.Equal(t, 5, rowlett.TotalStockUnits)
	assert.Equal(t, 0, rowlett.TotalUnitsSold)
	assert.Nil(t, rowlett.StockToSalesRatio)
}

func TestCategoryEfficiency(t *testing.T) {
	e := newEngine()
	rows, err := e.CategoryEfficiency(fixtureSnapshot(t))
	require.NoError(t, err)

	require.Len(t, rows, 4)

	// (Santa Cruz, Children): both stocked products share the category.
	assert.Equal(t, uint(1), rows[0].StoreID)
	assert.Equal(t, uint(1), rows[0].CategoryID)
	assert.Equal(t, 12, rows[0].TotalStockUnits)
	assert.Equal(t, 8, rows[0].TotalUnitsSold)
	assert.Equal(t, "1.50", fixed(t, rows[0].StockToSalesRatio))

	// (Baldwin, Children): stocked but the store only sold electric bikes.
	assert.Equal(t, uint(2), rows[1].StoreID)
	assert.Equal(t, uint(1), rows[1].CategoryID)
	assert.Equal(t, 8, rows[1].TotalStockUnits)
	assert.Equal(t, 0, rows[1].TotalUnitsSold)
	assert.Nil(t, rows[1].StockToSalesRatio)

	// (Baldwin, Electric): the one Powerfly sale against two in stock.
	assert.Equal(t, uint(2), rows[2].StoreID)
	assert.Equal(t, uint(2), rows[2].CategoryID)
	assert.Equal(t, 2, rows[2].TotalStockUnits)
	assert.Equal(t, 1, rows[2].TotalUnitsSold)
	assert.Equal(t, "2.00", fixed(t, rows[2].StockToSalesRatio))

	// (Rowlett, Children): stock only, no sales at all.
	assert.Equal(t, uint(3), rows[3].StoreID)
	assert.Equal(t, uint(1), rows[3].CategoryID)
	assert.Equal(t, 5, rows[3].TotalStockUnits)
	assert.Equal(t, 0, rows[3].TotalUnitsSold)
	assert.Nil(t, rows[3].StockToSalesRatio)
}
