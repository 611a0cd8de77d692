package database_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/analytics"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/database"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/loader"
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

// openTestDB opens a per-test in-memory database. The shared cache keeps the
// database alive across pooled connections; the test name keeps tests apart.
// Tables are created plain: referential rules are enforced by the store on
// the way in, like the two-pass production migration's first pass.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	require.NoError(t, db.AutoMigrate(append(models.AllModels(), analytics.ViewModels()...)...))
	return db
}

func rowCount(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestCheckConnection(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, database.CheckConnection(db))
}

func TestSeedDataPopulatesEmptyDatabase(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, database.SeedData(db))

	sample := loader.Sample()
	assert.Equal(t, int64(len(sample.Brands)), rowCount(t, db, &models.Brand{}))
	assert.Equal(t, int64(len(sample.Categories)), rowCount(t, db, &models.Category{}))
	assert.Equal(t, int64(len(sample.Stores)), rowCount(t, db, &models.Store{}))
	assert.Equal(t, int64(len(sample.Customers)), rowCount(t, db, &models.Customer{}))
	assert.Equal(t, int64(len(sample.Products)), rowCount(t, db, &models.Product{}))
	assert.Equal(t, int64(len(sample.Staff)), rowCount(t, db, &models.Staff{}))
	assert.Equal(t, int64(len(sample.Stocks)), rowCount(t, db, &models.Stock{}))
	assert.Equal(t, int64(len(sample.Orders)), rowCount(t, db, &models.Order{}))
	assert.Equal(t, int64(len(sample.OrderItems)), rowCount(t, db, &models.OrderItem{}))
}

func TestSeedDatasetSkipsNonEmptyDatabase(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, database.SeedData(db))
	before := rowCount(t, db, &models.Order{})

	ds := loader.Generate(loader.GenerateConfig{Seed: 2, Days: 7, Customers: 5, DailyBase: 3})
	require.NoError(t, database.SeedDataset(db, ds))

	assert.Equal(t, before, rowCount(t, db, &models.Order{}))
	assert.Equal(t, int64(3), rowCount(t, db, &models.Customer{}), "existing data must win over the new dataset")
}

func TestSeedDatasetRejectsBrokenDataset(t *testing.T) {
	db := openTestDB(t)

	ds := loader.Sample()
	ds.Name = "broken"
	ds.OrderItems = append(ds.OrderItems, models.OrderItem{OrderID: 99, ItemID: 1, ProductID: 1, Quantity: 1, ListPrice: price("599.99"), Discount: price("0.00")})

	err := database.SeedDataset(db, ds)
	require.Error(t, err)
	var ie *store.IntegrityError
	assert.ErrorAs(t, err, &ie)

	// Validation runs before any write, so nothing lands.
	assert.Zero(t, rowCount(t, db, &models.Brand{}))
	assert.Zero(t, rowCount(t, db, &models.Order{}))
}

func TestHydrateRoundTrip(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, database.SeedData(db))

	st, err := database.Hydrate(db)
	require.NoError(t, err)

	sample := loader.Sample()
	counts := st.Counts()
	assert.Equal(t, len(sample.Brands), counts["brands"])
	assert.Equal(t, len(sample.Categories), counts["categories"])
	assert.Equal(t, len(sample.Stores), counts["stores"])
	assert.Equal(t, len(sample.Customers), counts["customers"])
	assert.Equal(t, len(sample.Products), counts["products"])
	assert.Equal(t, len(sample.Staff), counts["staffs"])
	assert.Equal(t, len(sample.Stocks), counts["stocks"])
	assert.Equal(t, len(sample.Orders), counts["orders"])
	assert.Equal(t, len(sample.OrderItems), counts["order_items"])

	snap := st.Snapshot()
	orders := make(map[uint]models.Order, len(snap.Orders))
	for _, o := range snap.Orders {
		orders[o.OrderID] = o
	}
	require.NotNil(t, orders[1].ShippedDate)
	assert.True(t, orders[1].ShippedDate.Equal(day(2024, time.March, 7)), "shipped date survives the round trip")
	assert.Nil(t, orders[3].ShippedDate)
	assert.Nil(t, orders[4].RequiredDate)

	for _, s := range snap.Stores {
		if s.StoreID == 3 {
			assert.Nil(t, s.State, "missing state stays absent")
		}
	}
	for _, p := range snap.Products {
		if p.ProductID == 1 {
			assert.True(t, p.ListPrice.Equal(price("599.99")), "list price %s", p.ListPrice)
		}
	}
}

func TestHydrateRejectsBrokenDatabase(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, database.SeedData(db))

	// Orphan line written behind the store's back.
	orphan := models.OrderItem{OrderID: 99, ItemID: 1, ProductID: 1, Quantity: 1, ListPrice: price("1.00"), Discount: price("0.00")}
	require.NoError(t, db.Create(&orphan).Error)

	_, err := database.Hydrate(db)
	require.Error(t, err)
	var ie *store.IntegrityError
	assert.ErrorAs(t, err, &ie)
	assert.Equal(t, "order", ie.Reference)
}

// seededRegistry seeds the sample dataset and builds a registry over it.
func seededRegistry(t *testing.T, db *gorm.DB) *registry.Registry {
	t.Helper()
	require.NoError(t, database.SeedData(db))
	st, err := database.Hydrate(db)
	require.NoError(t, err)
	engine := analytics.New(analytics.Config{ProfitMargin: decimal.NewFromFloat(0.30)})
	return registry.New(st, engine, nil)
}

func TestExportViews(t *testing.T) {
	db := openTestDB(t)
	reg := seededRegistry(t, db)

	require.NoError(t, database.ExportViews(db, reg))

	tables := map[string]interface{}{
		registry.ViewStoreSales:          &analytics.StoreSalesRow{},
		registry.ViewRegionSales:         &analytics.RegionSalesRow{},
		registry.ViewProductSales:        &analytics.ProductSalesRow{},
		registry.ViewCategoryBrandSales:  &analytics.CategoryBrandSalesRow{},
		registry.ViewStaffPerformance:    &analytics.StaffPerformanceRow{},
		registry.ViewCustomerFrequency:   &analytics.CustomerFrequencyRow{},
		registry.ViewOrderFulfillment:    &analytics.OrderFulfillmentRow{},
		registry.ViewFulfillmentSummary:  &analytics.FulfillmentSummaryRow{},
		registry.ViewInventorySnapshot:   &analytics.InventorySnapshotRow{},
		registry.ViewInventoryEfficiency: &analytics.InventoryEfficiencyRow{},
		registry.ViewCategoryEfficiency:  &analytics.CategoryEfficiencyRow{},
		registry.ViewStoreProfitability:  &analytics.StoreProfitabilityRow{},
	}
	for _, status := range reg.Status() {
		model, ok := tables[status.Name]
		require.True(t, ok, "view %s has no table mapping", status.Name)
		assert.Equal(t, int64(status.RowCount), rowCount(t, db, model), "table rows for %s", status.Name)
	}

	var row analytics.StoreSalesRow
	require.NoError(t, db.Where("store_id = ?", 1).Take(&row).Error)
	assert.Equal(t, "Santa Cruz Bikes", row.StoreName)
	assert.Equal(t, 2, row.OrdersCount)
	assert.True(t, row.NetSales.Equal(price("1816.45")), "net sales %s", row.NetSales)
}

func TestExportViewsRewritesInPlace(t *testing.T) {
	db := openTestDB(t)
	reg := seededRegistry(t, db)

	require.NoError(t, database.ExportViews(db, reg))
	first := rowCount(t, db, &analytics.OrderFulfillmentRow{})
	require.NotZero(t, first)

	// A second export replaces the tables instead of appending to them.
	require.NoError(t, database.ExportViews(db, reg))
	assert.Equal(t, first, rowCount(t, db, &analytics.OrderFulfillmentRow{}))
}
