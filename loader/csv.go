package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/models"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/store"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// LoadDir reads the manifest in dir, parses the CSV files it names and loads
// the resulting dataset into the store.
func LoadDir(st *store.EntityStore, dir string) (*Report, error) {
	m, err := ReadManifest(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil, err
	}
	ds, err := DatasetFromDir(dir, m)
	if err != nil {
		return nil, err
	}
	return Load(st, ds)
}

// DatasetFromDir parses every CSV file the manifest names.
func DatasetFromDir(dir string, m *Manifest) (Dataset, error) {
	ds := Dataset{Name: m.Name}
	for _, entity := range entityOrder {
		file, ok := m.Files[entity]
		if !ok {
			continue
		}
		f, err := os.Open(filepath.Join(dir, file))
		if err != nil {
			return Dataset{}, fmt.Errorf("open %s: %w", file, err)
		}
		err = parseEntityCSV(entity, f, &ds)
		f.Close()
		if err != nil {
			return Dataset{}, fmt.Errorf("%s: %w", file, err)
		}
	}
	return ds, nil
}

func parseEntityCSV(entity string, r io.Reader, ds *Dataset) error {
	var err error
	switch entity {
	case "brands":
		ds.Brands, err = parseBrands(r)
	case "categories":
		ds.Categories, err = parseCategories(r)
	case "stores":
		ds.Stores, err = parseStores(r)
	case "customers":
		ds.Customers, err = parseCustomers(r)
	case "products":
		ds.Products, err = parseProducts(r)
	case "staffs":
		ds.Staff, err = parseStaff(r)
	case "stocks":
		ds.Stocks, err = parseStocks(r)
	case "orders":
		ds.Orders, err = parseOrders(r)
	case "order_items":
		ds.OrderItems, err = parseOrderItems(r)
	default:
		err = fmt.Errorf("unknown entity %q", entity)
	}
	return err
}

func parseBrands(r io.Reader) ([]models.Brand, error) {
	records, err := readRecords(r, []string{"brand_id", "brand_name"})
	if err != nil {
		return nil, err
	}
	out := make([]models.Brand, 0, len(records))
	for _, rec := range records {
		id, err := rec.uintField("brand_id")
		if err != nil {
			return nil, err
		}
		out = append(out, models.Brand{
			BrandID:   id,
			BrandName: rec.strField("brand_name"),
		})
	}
	return out, nil
}

func parseCategories(r io.Reader) ([]models.Category, error) {
	records, err := readRecords(r, []string{"category_id", "category_name"})
	if err != nil {
		return nil, err
	}
	out := make([]models.Category, 0, len(records))
	for _, rec := range records {
		id, err := rec.uintField("category_id")
		if err != nil {
			return nil, err
		}
		out = append(out, models.Category{
			CategoryID:   id,
			CategoryName: rec.strField("category_name"),
		})
	}
	return out, nil
}

func parseStores(r io.Reader) ([]models.Store, error) {
	records, err := readRecords(r, []string{"store_id", "store_name"})
	if err != nil {
		return nil, err
	}
	out := make([]models.Store, 0, len(records))
	for _, rec := range records {
		id, err := rec.uintField("store_id")
		if err != nil {
			return nil, err
		}
		out = append(out, models.Store{
			StoreID:   id,
			StoreName: rec.strField("store_name"),
			Phone:     rec.strPtrField("phone"),
			Email:     rec.strPtrField("email"),
			Street:    rec.strPtrField("street"),
			City:      rec.strPtrField("city"),
			State:     rec.strPtrField("state"),
			ZipCode:   rec.strPtrField("zip_code"),
		})
	}
	return out, nil
}

func parseCustomers(r io.Reader) ([]models.Customer, error) {
	records, err := readRecords(r, []string{"customer_id", "first_name", "last_name", "email"})
	if err != nil {
		return nil, err
	}
	out := make([]models.Customer, 0, len(records))
	for _, rec := range records {
		id, err := rec.uintField("customer_id")
		if err != nil {
			return nil, err
		}
		out = append(out, models.Customer{
			CustomerID: id,
			FirstName:  rec.strField("first_name"),
			LastName:   rec.strField("last_name"),
			Phone:      rec.strPtrField("phone"),
			Email:      rec.strField("email"),
			Street:     rec.strPtrField("street"),
			City:       rec.strPtrField("city"),
			State:      rec.strPtrField("state"),
			ZipCode:    rec.strPtrField("zip_code"),
		})
	}
	return out, nil
}

func parseProducts(r io.Reader) ([]models.Product, error) {
	records, err := readRecords(r, []string{"product_id", "product_name", "brand_id", "category_id", "model_year", "list_price"})
	if err != nil {
		return nil, err
	}
	out := make([]models.Product, 0, len(records))
	for _, rec := range records {
		id, err := rec.uintField("product_id")
		if err != nil {
			return nil, err
		}
		brandID, err := rec.uintField("brand_id")
		if err != nil {
			return nil, err
		}
		categoryID, err := rec.uintField("category_id")
		if err != nil {
			return nil, err
		}
		modelYear, err := rec.intField("model_year")
		if err != nil {
			return nil, err
		}
		listPrice, err := rec.decimalField("list_price")
		if err != nil {
			return nil, err
		}
		out = append(out, models.Product{
			ProductID:   id,
			ProductName: rec.strField("product_name"),
			BrandID:     brandID,
			CategoryID:  categoryID,
			ModelYear:   modelYear,
			ListPrice:   listPrice,
		})
	}
	return out, nil
}

func parseStaff(r io.Reader) ([]models.Staff, error) {
	records, err := readRecords(r, []string{"staff_id", "first_name", "last_name", "email", "active", "store_id"})
	if err != nil {
		return nil, err
	}
	out := make([]models.Staff, 0, len(records))
	for _, rec := range records {
		id, err := rec.uintField("staff_id")
		if err != nil {
			return nil, err
		}
		storeID, err := rec.uintField("store_id")
		if err != nil {
			return nil, err
		}
		active, err := rec.boolField("active")
		if err != nil {
			return nil, err
		}
		managerID, err := rec.uintPtrField("manager_id")
		if err != nil {
			return nil, err
		}
		out = append(out, models.Staff{
			StaffID:   id,
			FirstName: rec.strField("first_name"),
			LastName:  rec.strField("last_name"),
			Email:     rec.strField("email"),
			Phone:     rec.strPtrField("phone"),
			Active:    active,
			StoreID:   storeID,
			ManagerID: managerID,
		})
	}
	return out, nil
}

func parseStocks(r io.Reader) ([]models.Stock, error) {
	records, err := readRecords(r, []string{"store_id", "product_id", "quantity"})
	if err != nil {
		return nil, err
	}
	out := make([]models.Stock, 0, len(records))
	for _, rec := range records {
		storeID, err := rec.uintField("store_id")
		if err != nil {
			return nil, err
		}
		productID, err := rec.uintField("product_id")
		if err != nil {
			return nil, err
		}
		quantity, err := rec.intField("quantity")
		if err != nil {
			return nil, err
		}
		out = append(out, models.Stock{
			StoreID:   storeID,
			ProductID: productID,
			Quantity:  quantity,
		})
	}
	return out, nil
}

func parseOrders(r io.Reader) ([]models.Order, error) {
	records, err := readRecords(r, []string{"order_id", "customer_id", "order_status", "order_date", "store_id", "staff_id"})
	if err != nil {
		return nil, err
	}
	out := make([]models.Order, 0, len(records))
	for _, rec := range records {
		id, err := rec.uintField("order_id")
		if err != nil {
			return nil, err
		}
		customerID, err := rec.uintField("customer_id")
		if err != nil {
			return nil, err
		}
		storeID, err := rec.uintField("store_id")
		if err != nil {
			return nil, err
		}
		staffID, err := rec.uintField("staff_id")
		if err != nil {
			return nil, err
		}
		orderDate, err := rec.dateField("order_date")
		if err != nil {
			return nil, err
		}
		requiredDate, err := rec.datePtrField("required_date")
		if err != nil {
			return nil, err
		}
		shippedDate, err := rec.datePtrField("shipped_date")
		if err != nil {
			return nil, err
		}
		out = append(out, models.Order{
			OrderID:      id,
			CustomerID:   customerID,
			OrderStatus:  models.OrderStatus(rec.strField("order_status")),
			OrderDate:    orderDate,
			RequiredDate: requiredDate,
			ShippedDate:  shippedDate,
			StoreID:      storeID,
			StaffID:      staffID,
		})
	}
	return out, nil
}

func parseOrderItems(r io.Reader) ([]models.OrderItem, error) {
	records, err := readRecords(r, []string{"order_id", "item_id", "product_id", "quantity", "list_price", "discount"})
	if err != nil {
		return nil, err
	}
	out := make([]models.OrderItem, 0, len(records))
	for _, rec := range records {
		orderID, err := rec.uintField("order_id")
		if err != nil {
			return nil, err
		}
		itemID, err := rec.uintField("item_id")
		if err != nil {
			return nil, err
		}
		productID, err := rec.uintField("product_id")
		if err != nil {
			return nil, err
		}
		quantity, err := rec.intField("quantity")
		if err != nil {
			return nil, err
		}
		listPrice, err := rec.decimalField("list_price")
		if err != nil {
			return nil, err
		}
		discount, err := rec.decimalField("discount")
		if err != nil {
			return nil, err
		}
		out = append(out, models.OrderItem{
			OrderID:   orderID,
			ItemID:    itemID,
			ProductID: productID,
			Quantity:  quantity,
			ListPrice: listPrice,
			Discount:  discount,
		})
	}
	return out, nil
}

// record is one CSV row with header-addressed fields.
type record struct {
	line   int
	fields map[string]string
}

// readRecords parses a CSV stream into header-addressed records and checks
// that the required columns are present.
func readRecords(r io.Reader, required []string) ([]record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var out []record
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		fields := make(map[string]string, len(header))
		for name, i := range idx {
			if i < len(row) {
				fields[name] = strings.TrimSpace(row[i])
			}
		}
		out = append(out, record{line: line, fields: fields})
	}
	return out, nil
}

// isNull treats empty cells and the literal NULL as absent values.
func isNull(s string) bool {
	return s == "" || strings.EqualFold(s, "NULL")
}

func (rec record) strField(col string) string {
	return rec.fields[col]
}

func (rec record) strPtrField(col string) *string {
	v := rec.fields[col]
	if isNull(v) {
		return nil
	}
	return &v
}

func (rec record) uintField(col string) (uint, error) {
	v, err := strconv.ParseUint(rec.fields[col], 10, 64)
	if err != nil {
		return 0, rec.fieldErr(col, err)
	}
	return uint(v), nil
}

func (rec record) uintPtrField(col string) (*uint, error) {
	raw := rec.fields[col]
	if isNull(raw) {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, rec.fieldErr(col, err)
	}
	u := uint(v)
	return &u, nil
}

func (rec record) intField(col string) (int, error) {
	v, err := strconv.Atoi(rec.fields[col])
	if err != nil {
		return 0, rec.fieldErr(col, err)
	}
	return v, nil
}

func (rec record) boolField(col string) (bool, error) {
	raw := rec.fields[col]
	// Allow 0/1 flags alongside true/false.
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, rec.fieldErr(col, err)
	}
	return v, nil
}

func (rec record) decimalField(col string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(rec.fields[col])
	if err != nil {
		return decimal.Decimal{}, rec.fieldErr(col, err)
	}
	return v, nil
}

func (rec record) dateField(col string) (time.Time, error) {
	v, err := time.Parse(dateLayout, rec.fields[col])
	if err != nil {
		return time.Time{}, rec.fieldErr(col, err)
	}
	return v, nil
}

func (rec record) datePtrField(col string) (*time.Time, error) {
	raw := rec.fields[col]
	if isNull(raw) {
		return nil, nil
	}
	v, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, rec.fieldErr(col, err)
	}
	return &v, nil
}

func (rec record) fieldErr(col string, err error) error {
	return fmt.Errorf("line %d: column %s: %w", rec.line, col, err)
}
