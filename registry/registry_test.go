package registry_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/analytics"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/models"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/registry"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/store"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newTestRegistry builds a registry over a small populated store.
func newTestRegistry(t *testing.T) (*registry.Registry, *store.EntityStore) {
	t.Helper()
	st := store.New()
	require.NoError(t, st.InsertBrand(models.Brand{BrandID: 1, BrandName: "Electra"}))
	require.NoError(t, st.InsertCategory(models.Category{CategoryID: 1, CategoryName: "Cruisers"}))
	require.NoError(t, st.InsertStore(models.Store{StoreID: 1, StoreName: "Santa Cruz Bikes"}))
	require.NoError(t, st.InsertCustomer(models.Customer{CustomerID: 1, FirstName: "Debra", LastName: "Burks", Email: "debra@example.com"}))
	require.NoError(t, st.InsertStaff(models.Staff{StaffID: 1, FirstName: "Fabiola", LastName: "Jackson", Email: "fabiola@example.com", Active: true, StoreID: 1}))
	require.NoError(t, st.InsertProduct(models.Product{ProductID: 1, ProductName: "Electra Cruiser 1", BrandID: 1, CategoryID: 1, ModelYear: 2016, ListPrice: price("269.99")}))
	require.NoError(t, st.InsertStock(models.Stock{StoreID: 1, ProductID: 1, Quantity: 10}))
	require.NoError(t, st.InsertOrder(models.Order{OrderID: 1, CustomerID: 1, OrderStatus: models.OrderCompleted, OrderDate: day(2024, time.May, 1), StoreID: 1, StaffID: 1}))
	require.NoError(t, st.InsertOrderItem(models.OrderItem{OrderID: 1, ItemID: 1, ProductID: 1, Quantity: 2, ListPrice: price("269.99"), Discount: price("0.10")}))

	engine := analytics.New(analytics.DefaultConfig())
	return registry.New(st, engine, nil), st
}

func TestNamesAreSortedAndComplete(t *testing.T) {
	reg, _ := newTestRegistry(t)

	names := reg.Names()
	assert.Equal(t, []string{
		registry.ViewCategoryBrandSales,
		registry.ViewCategoryEfficiency,
		registry.ViewCustomerFrequency,
		registry.ViewFulfillmentSummary,
		registry.ViewInventoryEfficiency,
		registry.ViewInventorySnapshot,
		registry.ViewOrderFulfillment,
		registry.ViewProductSales,
		registry.ViewRegionSales,
		registry.ViewStaffPerformance,
		registry.ViewStoreProfitability,
		registry.ViewStoreSales,
	}, names)
}

func TestRefreshUnknownView(t *testing.T) {
	reg, _ := newTestRegistry(t)

	_, err := reg.Refresh("store_sale")
	require.ErrorIs(t, err, registry.ErrUnknownView)

	_, err = reg.Get("store_sale")
	require.ErrorIs(t, err, registry.ErrUnknownView)
}

func TestGetComputesOnFirstAccess(t *testing.T) {
	reg, _ := newTestRegistry(t)

	res, err := reg.Get(registry.ViewStoreSales)
	require.NoError(t, err)
	assert.Equal(t, registry.ViewStoreSales, res.Name)
	assert.Equal(t, 1, res.RowCount)
	assert.False(t, res.RefreshedAt.IsZero())

	// A second Get returns the cached result, not a recomputation.
	again, err := reg.Get(registry.ViewStoreSales)
	require.NoError(t, err)
	assert.Equal(t, res.RefreshedAt, again.RefreshedAt)
}

// Two refreshes over unchanged data must serialize to identical bytes.
func TestRefreshIsDeterministic(t *testing.T) {
	reg, _ := newTestRegistry(t)

	for _, name := range reg.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			first, err := reg.Refresh(name)
			require.NoError(t, err)
			second, err := reg.Refresh(name)
			require.NoError(t, err)

			b1, err := json.Marshal(first.Rows)
			require.NoError(t, err)
			b2, err := json.Marshal(second.Rows)
			require.NoError(t, err)
			assert.Equal(t, b1, b2)
		})
	}
}

func TestRefreshPicksUpNewData(t *testing.T) {
	reg, st := newTestRegistry(t)

	fulfillment, err := reg.Refresh(registry.ViewOrderFulfillment)
	require.NoError(t, err)
	assert.Equal(t, 1, fulfillment.RowCount)
	storeSales, err := reg.Refresh(registry.ViewStoreSales)
	require.NoError(t, err)

	require.NoError(t, st.InsertOrder(models.Order{OrderID: 2, CustomerID: 1, OrderStatus: models.OrderPending, OrderDate: day(2024, time.May, 3), StoreID: 1, StaffID: 1}))

	fulfillment, err = reg.Refresh(registry.ViewOrderFulfillment)
	require.NoError(t, err)
	assert.Equal(t, 2, fulfillment.RowCount)

	// Refreshing one view never recomputes another: the sales view still
	// serves its cached pre-insert result.
	cached, err := reg.Get(registry.ViewStoreSales)
	require.NoError(t, err)
	assert.Equal(t, storeSales.RefreshedAt, cached.RefreshedAt)
}

func TestRefreshAll(t *testing.T) {
	reg, _ := newTestRegistry(t)

	require.NoError(t, reg.RefreshAll())

	statuses := reg.Status()
	require.Len(t, statuses, 12)
	for _, s := range statuses {
		assert.NotNil(t, s.RefreshedAt, "view %s must be refreshed", s.Name)
	}

	// Every view was derived from the same snapshot, so per-order views
	// and per-store aggregates agree on the order count.
	fulfillment, err := reg.Get(registry.ViewOrderFulfillment)
	require.NoError(t, err)
	storeSales, err := reg.Get(registry.ViewStoreSales)
	require.NoError(t, err)
	rows, ok := storeSales.Rows.([]analytics.StoreSalesRow)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, fulfillment.RowCount, rows[0].OrdersCount)
}

func TestStatusBeforeFirstRefresh(t *testing.T) {
	reg, _ := newTestRegistry(t)

	for _, s := range reg.Status() {
		assert.Zero(t, s.RowCount)
		assert.Nil(t, s.RefreshedAt)
	}
}
