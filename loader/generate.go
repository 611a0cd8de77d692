package loader

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/models"

	"github.com/shopspring/decimal"
)

// GenerateConfig holds the parameters of a synthetic dataset.
type GenerateConfig struct {
	Seed      int64
	StartDate time.Time
	Days      int // trading days to simulate
	Customers int
	DailyBase int // average orders per day
}

// Generate builds a deterministic synthetic dataset on the sample catalog:
// the same brands, categories, stores, products and staff, plus generated
// customers, stock levels and an order history with day-of-week variation.
// The same config always yields the same dataset.
func Generate(cfg GenerateConfig) Dataset {
	if cfg.Days == 0 {
		cfg.Days = 30
	}
	if cfg.Customers == 0 {
		cfg.Customers = 40
	}
	if cfg.DailyBase == 0 {
		cfg.DailyBase = 6
	}
	if cfg.StartDate.IsZero() {
		cfg.StartDate = date(2024, time.January, 8)
	}
	r := rand.New(rand.NewSource(cfg.Seed))

	catalog := Sample()
	ds := Dataset{
		Name:       fmt.Sprintf("simulated-%dd", cfg.Days),
		Brands:     catalog.Brands,
		Categories: catalog.Categories,
		Stores:     catalog.Stores,
		Products:   catalog.Products,
		Staff:      catalog.Staff,
	}

	ds.Customers = generateCustomers(r, cfg.Customers)
	ds.Stocks = generateStocks(r, ds.Stores, ds.Products)

	// Sales staff per store, managers excluded from order taking.
	staffByStore := make(map[uint][]uint)
	for _, s := range ds.Staff {
		if s.ManagerID == nil {
			continue
		}
		staffByStore[s.StoreID] = append(staffByStore[s.StoreID], s.StaffID)
	}
	// Stores without a dedicated seller fall back to any staff member.
	for _, st := range ds.Stores {
		if len(staffByStore[st.StoreID]) == 0 {
			for _, s := range ds.Staff {
				if s.StoreID == st.StoreID {
					staffByStore[st.StoreID] = append(staffByStore[st.StoreID], s.StaffID)
				}
			}
		}
	}

	discounts := []string{"0.00", "0.00", "0.05", "0.07", "0.10", "0.20"}

	orderID := uint(0)
	for day := 0; day < cfg.Days; day++ {
		current := cfg.StartDate.AddDate(0, 0, day)
		for n := 0; n < dailyOrderCount(r, cfg.DailyBase, current.Weekday()); n++ {
			orderID++
			store := ds.Stores[r.Intn(len(ds.Stores))]
			sellers := staffByStore[store.StoreID]

			o := models.Order{
				OrderID:    orderID,
				CustomerID: uint(r.Intn(cfg.Customers) + 1),
				OrderDate:  current,
				StoreID:    store.StoreID,
				StaffID:    sellers[r.Intn(len(sellers))],
			}
			// Most orders carry a promised date; the rest ship without one.
			if r.Intn(10) > 0 {
				req := current.AddDate(0, 0, 3+r.Intn(5))
				o.RequiredDate = &req
			}
			switch pick := r.Intn(100); {
			case pick < 70:
				o.OrderStatus = models.OrderCompleted
				shipped := current.AddDate(0, 0, 1+r.Intn(7))
				o.ShippedDate = &shipped
			case pick < 82:
				o.OrderStatus = models.OrderProcessing
			case pick < 92:
				o.OrderStatus = models.OrderPending
			default:
				o.OrderStatus = models.OrderRejected
			}
			ds.Orders = append(ds.Orders, o)

			// A small share of orders is never picked and carries no lines.
			if r.Intn(20) == 0 {
				continue
			}
			lines := 1 + r.Intn(3)
			for item := 1; item <= lines; item++ {
				p := ds.Products[r.Intn(len(ds.Products))]
				ds.OrderItems = append(ds.OrderItems, models.OrderItem{
					OrderID:   orderID,
					ItemID:    uint(item),
					ProductID: p.ProductID,
					Quantity:  1 + r.Intn(2),
					ListPrice: p.ListPrice,
					Discount:  decimal.RequireFromString(discounts[r.Intn(len(discounts))]),
				})
			}
		}
	}

	return ds
}

// dailyOrderCount varies order volume by day of week.
func dailyOrderCount(r *rand.Rand, base int, weekday time.Weekday) int {
	switch weekday {
	case time.Saturday, time.Sunday:
		return base + r.Intn(base)
	case time.Monday:
		n := base - r.Intn(base/2+1)
		if n < 1 {
			n = 1
		}
		return n
	default:
		return base + r.Intn(base/2+1) - base/4
	}
}

func generateCustomers(r *rand.Rand, n int) []models.Customer {
	firstNames := []string{
		"Debra", "Kasha", "Tameka", "Daryl", "Charolette", "Lyndsey", "Latasha",
		"Jacquline", "Genoveva", "Marcelene", "Ronna", "Shena", "Lorrie", "Pamelia",
	}
	lastNames := []string{
		"Burks", "Todd", "Fisher", "Spurlock", "Rice", "Bean", "Hopkins",
		"Duarte", "Baldwin", "Riggs", "Butler", "Mccray", "Becker", "Newman",
	}
	states := []string{"CA", "NY", "TX"}

	customers := make([]models.Customer, 0, n)
	for i := 1; i <= n; i++ {
		first := firstNames[r.Intn(len(firstNames))]
		last := lastNames[r.Intn(len(lastNames))]
		c := models.Customer{
			CustomerID: uint(i),
			FirstName:  first,
			LastName:   last,
			Email:      fmt.Sprintf("customer%03d@example.com", i),
			State:      strPtr(states[r.Intn(len(states))]),
		}
		if r.Intn(3) > 0 {
			c.Phone = strPtr(fmt.Sprintf("(555) 010-%04d", i))
		}
		customers = append(customers, c)
	}
	return customers
}

func generateStocks(r *rand.Rand, stores []models.Store, products []models.Product) []models.Stock {
	stocks := make([]models.Stock, 0, len(stores)*len(products))
	for _, st := range stores {
		for _, p := range products {
			qty := r.Intn(40)
			if r.Intn(10) == 0 {
				qty = 0
			}
			stocks = append(stocks, models.Stock{
				StoreID:   st.StoreID,
				ProductID: p.ProductID,
				Quantity:  qty,
			})
		}
	}
	return stocks
}
