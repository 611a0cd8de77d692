package loader_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/loader"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/models"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/store"
)

// writeDataDir lays out a small CSV dataset with its manifest in a temp dir.
// Staff rows list the report before the manager, stores and customers carry
// both NULL and empty cells, and one order ships while the other does not.
func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"manifest.yaml": `version: 1
name: bikes-mini
files:
  brands: brands.csv
  categories: categories.csv
  stores: stores.csv
  customers: customers.csv
  products: products.csv
  staffs: staffs.csv
  stocks: stocks.csv
  orders: orders.csv
  order_items: order_items.csv
`,
		"brands.csv": `brand_id,brand_name
1,Electra
2,Trek
`,
		"categories.csv": `category_id,category_name
1,Comfort Bicycles
`,
		"stores.csv": `store_id,store_name,phone,email,street,city,state,zip_code
1,Santa Cruz Bikes,(831) 476-4321,santacruz@bikes.shop,3700 Portola Drive,Santa Cruz,CA,95060
2,Rowlett Bikes,NULL,rowlett@bikes.shop,,,NULL,
`,
		"customers.csv": `customer_id,first_name,last_name,phone,email,street,city,state,zip_code
1,Debra,Burks,NULL,debra.burks@yahoo.com,,Orchard Park,NY,
2,Kasha,Todd,(941) 555-0146,kasha.todd@yahoo.com,,Garland,TX,
`,
		"products.csv": `product_id,product_name,brand_id,category_id,model_year,list_price
1,Electra Townie Original 7D,1,1,2016,599.99
2,Trek Powerfly 5,2,1,2018,3499.99
`,
		"staffs.csv": `staff_id,first_name,last_name,email,phone,active,store_id,manager_id
2,Mireya,Copeland,mireya.copeland@bikes.shop,NULL,1,1,1
1,Fabiola,Jackson,fabiola.jackson@bikes.shop,(831) 555-0101,true,1,NULL
`,
		"stocks.csv": `store_id,product_id,quantity
1,1,12
2,2,0
`,
		"orders.csv": `order_id,customer_id,order_status,order_date,required_date,shipped_date,store_id,staff_id
1,1,completed,2024-03-05,2024-03-08,2024-03-07,1,2
2,2,processing,2024-04-01,2024-04-05,NULL,1,2
`,
		"order_items.csv": `order_id,item_id,product_id,quantity,list_price,discount
1,1,1,1,599.99,0.10
1,2,2,1,3499.99,0.00
2,1,1,2,599.99,0.05
`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestDatasetFromDir(t *testing.T) {
	dir := writeDataDir(t)

	m, err := loader.ReadManifest(filepath.Join(dir, "manifest.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "bikes-mini", m.Name)

	ds, err := loader.DatasetFromDir(dir, m)
	require.NoError(t, err)
	assert.Equal(t, "bikes-mini", ds.Name)
	assert.Equal(t, 18, ds.Size())

	require.Len(t, ds.Stores, 2)
	pickup := ds.Stores[1]
	assert.Equal(t, "Rowlett Bikes", pickup.StoreName)
	assert.Nil(t, pickup.Phone, "literal NULL reads as absent")
	assert.Nil(t, pickup.Street, "empty cell reads as absent")
	assert.Nil(t, pickup.State)
	require.NotNil(t, pickup.Email)
	assert.Equal(t, "rowlett@bikes.shop", *pickup.Email)

	require.Len(t, ds.Staff, 2)
	assert.Equal(t, uint(2), ds.Staff[0].StaffID, "row order is preserved")
	assert.True(t, ds.Staff[0].Active, "0/1 flags parse alongside true/false")
	require.NotNil(t, ds.Staff[0].ManagerID)
	assert.Equal(t, uint(1), *ds.Staff[0].ManagerID)
	assert.Nil(t, ds.Staff[1].ManagerID)

	require.Len(t, ds.Orders, 2)
	assert.Equal(t, models.OrderCompleted, ds.Orders[0].OrderStatus)
	assert.Equal(t, day(2024, time.March, 5), ds.Orders[0].OrderDate)
	require.NotNil(t, ds.Orders[0].ShippedDate)
	assert.Equal(t, day(2024, time.March, 7), *ds.Orders[0].ShippedDate)
	assert.Nil(t, ds.Orders[1].ShippedDate)

	require.Len(t, ds.OrderItems, 3)
	assert.True(t, ds.OrderItems[0].ListPrice.Equal(price("599.99")))
	assert.True(t, ds.OrderItems[0].Discount.Equal(price("0.10")))
}

func TestDatasetFromDirSkipsAbsentEntities(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brands.csv"), []byte("brand_id,brand_name\n1,Electra\n"), 0o644))

	m := &loader.Manifest{Version: 1, Name: "brands-only", Files: map[string]string{"brands": "brands.csv"}}
	ds, err := loader.DatasetFromDir(dir, m)
	require.NoError(t, err)

	assert.Len(t, ds.Brands, 1)
	assert.Empty(t, ds.Orders)
	assert.Equal(t, 1, ds.Size())
}

func TestLoadDir(t *testing.T) {
	dir := writeDataDir(t)
	st := store.New()

	report, err := loader.LoadDir(st, dir)
	require.NoError(t, err)
	assert.Equal(t, "bikes-mini", report.Dataset)
	assert.Equal(t, 18, report.Inserted)

	counts := st.Counts()
	assert.Equal(t, 2, counts["staffs"], "report listed before manager still loads")
	assert.Equal(t, 2, counts["orders"])
	assert.Equal(t, 3, counts["order_items"])
}

func TestLoadDirRejectsRowsTheStoreRefuses(t *testing.T) {
	dir := writeDataDir(t)
	orders := "order_id,customer_id,order_status,order_date,required_date,shipped_date,store_id,staff_id\n" +
		"1,1,shipped,2024-03-05,NULL,NULL,1,2\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.csv"), []byte(orders), 0o644))

	st := store.New()
	_, err := loader.LoadDir(st, dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, `dataset "bikes-mini"`)

	var iv *store.InvariantViolation
	assert.ErrorAs(t, err, &iv)
}

func TestReadManifestRejects(t *testing.T) {
	writeManifest := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "manifest.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.ReadManifest(filepath.Join(t.TempDir(), "manifest.yaml"))
		assert.ErrorContains(t, err, "read manifest")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeManifest(t, "version: [\n")
		_, err := loader.ReadManifest(path)
		assert.ErrorContains(t, err, "parse manifest")
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := writeManifest(t, "version: 2\nname: future\nfiles: {}\n")
		_, err := loader.ReadManifest(path)
		assert.ErrorContains(t, err, "unsupported manifest version 2")
	})

	t.Run("unknown entity", func(t *testing.T) {
		path := writeManifest(t, "version: 1\nname: odd\nfiles:\n  warehouses: warehouses.csv\n")
		_, err := loader.ReadManifest(path)
		assert.ErrorContains(t, err, `unknown entity "warehouses"`)
	})
}

func TestDatasetFromDirErrors(t *testing.T) {
	write := func(t *testing.T, dir, name, content string) {
		t.Helper()
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	t.Run("named file missing", func(t *testing.T) {
		m := &loader.Manifest{Version: 1, Name: "gap", Files: map[string]string{"brands": "brands.csv"}}
		_, err := loader.DatasetFromDir(t.TempDir(), m)
		assert.ErrorContains(t, err, "open brands.csv")
	})

	t.Run("missing required column", func(t *testing.T) {
		dir := t.TempDir()
		write(t, dir, "brands.csv", "id,brand_name\n1,Electra\n")
		m := &loader.Manifest{Version: 1, Name: "bad", Files: map[string]string{"brands": "brands.csv"}}
		_, err := loader.DatasetFromDir(dir, m)
		assert.ErrorContains(t, err, `missing column "brand_id"`)
	})

	t.Run("bad value reports line and column", func(t *testing.T) {
		dir := t.TempDir()
		write(t, dir, "stocks.csv", "store_id,product_id,quantity\n1,1,twelve\n")
		m := &loader.Manifest{Version: 1, Name: "bad", Files: map[string]string{"stocks": "stocks.csv"}}
		_, err := loader.DatasetFromDir(dir, m)
		assert.ErrorContains(t, err, "stocks.csv")
		assert.ErrorContains(t, err, "line 2: column quantity")
	})
}
