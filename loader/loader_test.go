package loader_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/loader"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/models"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/store"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func uintPtr(v uint) *uint { return &v }

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLoadSample(t *testing.T) {
	st := store.New()
	ds := loader.Sample()

	report, err := loader.Load(st, ds)
	require.NoError(t, err)

	_, err = uuid.Parse(report.BatchID)
	assert.NoError(t, err, "batch id should be a uuid")
	assert.Equal(t, "sample", report.Dataset)
	assert.Equal(t, ds.Size(), report.Inserted)

	counts := st.Counts()
	assert.Equal(t, len(ds.Brands), counts["brands"])
	assert.Equal(t, len(ds.Categories), counts["categories"])
	assert.Equal(t, len(ds.Stores), counts["stores"])
	assert.Equal(t, len(ds.Customers), counts["customers"])
	assert.Equal(t, len(ds.Products), counts["products"])
	assert.Equal(t, len(ds.Staff), counts["staffs"])
	assert.Equal(t, len(ds.Stocks), counts["stocks"])
	assert.Equal(t, len(ds.Orders), counts["orders"])
	assert.Equal(t, len(ds.OrderItems), counts["order_items"])
}

func TestLoadStaffListedBeforeManagers(t *testing.T) {
	st := store.New()
	ds := loader.Dataset{
		Name:   "reversed-staff",
		Stores: []models.Store{{StoreID: 1, StoreName: "Santa Cruz Bikes"}},
		Staff: []models.Staff{
			{StaffID: 3, FirstName: "Genna", LastName: "Serrano", Email: "genna@example.com", Active: true, StoreID: 1, ManagerID: uintPtr(2)},
			{StaffID: 2, FirstName: "Mireya", LastName: "Copeland", Email: "mireya@example.com", Active: true, StoreID: 1, ManagerID: uintPtr(1)},
			{StaffID: 1, FirstName: "Fabiola", LastName: "Jackson", Email: "fabiola@example.com", Active: true, StoreID: 1},
		},
	}

	report, err := loader.Load(st, ds)
	require.NoError(t, err)
	assert.Equal(t, 4, report.Inserted)
	assert.Equal(t, 3, st.Counts()["staffs"])
}

func TestLoadRejectsManagerOutsideDataset(t *testing.T) {
	st := store.New()
	ds := loader.Dataset{
		Name:   "orphan-manager",
		Stores: []models.Store{{StoreID: 1, StoreName: "Santa Cruz Bikes"}},
		Staff: []models.Staff{
			{StaffID: 2, FirstName: "Mireya", LastName: "Copeland", Email: "mireya@example.com", Active: true, StoreID: 1, ManagerID: uintPtr(99)},
		},
	}

	_, err := loader.Load(st, ds)
	require.Error(t, err)
	assert.ErrorContains(t, err, `dataset "orphan-manager"`)

	var ie *store.IntegrityError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "staff", ie.Reference)
}

func TestLoadSurfacesFirstRejectedRow(t *testing.T) {
	ds := loader.Sample()
	ds.Name = "broken"
	ds.OrderItems = append(ds.OrderItems, models.OrderItem{OrderID: 99, ItemID: 1, ProductID: 1, Quantity: 1, ListPrice: price("599.99")})

	st := store.New()
	_, err := loader.Load(st, ds)
	require.Error(t, err)
	assert.ErrorContains(t, err, `dataset "broken"`)

	var ie *store.IntegrityError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "order", ie.Reference)

	// Load is not transactional: rows accepted before the bad one stay in.
	counts := st.Counts()
	assert.Equal(t, 5, counts["orders"])
	assert.Equal(t, 6, counts["order_items"])
}
