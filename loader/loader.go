// Package loader ingests retail datasets into the entity store. A dataset is
// a plain bundle of entity slices; it can come from the built-in sample, from
// a CSV directory described by a manifest, or from database tables.
package loader

import (
	"errors"
	"fmt"
	"time"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/models"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dataset holds entity rows waiting to be inserted.
type Dataset struct {
	Name       string
	Brands     []models.Brand
	Categories []models.Category
	Stores     []models.Store
	Customers  []models.Customer
	Products   []models.Product
	Staff      []models.Staff
	Stocks     []models.Stock
	Orders     []models.Order
	OrderItems []models.OrderItem
}

// Size returns the total number of rows in the dataset.
func (d Dataset) Size() int {
	return len(d.Brands) + len(d.Categories) + len(d.Stores) + len(d.Customers) +
		len(d.Products) + len(d.Staff) + len(d.Stocks) + len(d.Orders) + len(d.OrderItems)
}

// Report summarizes one load batch.
type Report struct {
	BatchID  string        `json:"batch_id"`
	Dataset  string        `json:"dataset"`
	Inserted int           `json:"inserted"`
	Took     time.Duration `json:"took"`
}

// Load inserts the dataset into the store in dependency order: independent
// entities first, then products and staff, then stock and orders, then order
// items. The first rejected row aborts the load with the store's error.
func Load(st *store.EntityStore, ds Dataset) (*Report, error) {
	batchID := uuid.New().String()
	log := zap.L().With(
		zap.String("batch_id", batchID),
		zap.String("dataset", ds.Name),
	)
	start := time.Now()

	for _, b := range ds.Brands {
		if err := st.InsertBrand(b); err != nil {
			return nil, loadErr(ds, err)
		}
	}
	for _, c := range ds.Categories {
		if err := st.InsertCategory(c); err != nil {
			return nil, loadErr(ds, err)
		}
	}
	for _, s := range ds.Stores {
		if err := st.InsertStore(s); err != nil {
			return nil, loadErr(ds, err)
		}
	}
	for _, c := range ds.Customers {
		if err := st.InsertCustomer(c); err != nil {
			return nil, loadErr(ds, err)
		}
	}
	for _, p := range ds.Products {
		if err := st.InsertProduct(p); err != nil {
			return nil, loadErr(ds, err)
		}
	}
	if err := loadStaff(st, ds); err != nil {
		return nil, err
	}
	for _, s := range ds.Stocks {
		if err := st.InsertStock(s); err != nil {
			return nil, loadErr(ds, err)
		}
	}
	for _, o := range ds.Orders {
		if err := st.InsertOrder(o); err != nil {
			return nil, loadErr(ds, err)
		}
	}
	for _, i := range ds.OrderItems {
		if err := st.InsertOrderItem(i); err != nil {
			return nil, loadErr(ds, err)
		}
	}

	report := &Report{
		BatchID:  batchID,
		Dataset:  ds.Name,
		Inserted: ds.Size(),
		Took:     time.Since(start),
	}
	log.Info("dataset loaded",
		zap.Int("rows", report.Inserted),
		zap.Duration("took", report.Took),
	)
	return report, nil
}

// loadStaff inserts staff rows, deferring any whose manager has not been
// inserted yet so datasets may list reports before their managers.
func loadStaff(st *store.EntityStore, ds Dataset) error {
	pending := ds.Staff
	for len(pending) > 0 {
		var deferred []models.Staff
		progress := false
		for _, s := range pending {
			err := st.InsertStaff(s)
			if err == nil {
				progress = true
				continue
			}
			var ie *store.IntegrityError
			if errors.As(err, &ie) && ie.Reference == "staff" {
				deferred = append(deferred, s)
				continue
			}
			return loadErr(ds, err)
		}
		if !progress {
			// Every remaining row points at a manager outside the dataset;
			// surface the first concrete failure.
			return loadErr(ds, st.InsertStaff(deferred[0]))
		}
		pending = deferred
	}
	return nil
}

func loadErr(ds Dataset, err error) error {
	return fmt.Errorf("dataset %q: %w", ds.Name, err)
}
