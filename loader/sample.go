package loader

import (
	"time"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/models"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Sample returns a small self-consistent dataset used by the seed command and
// the demo server. It covers every fulfillment state, an order without lines,
// a stock row at zero quantity and a store with no recorded state.
func Sample() Dataset {
	return Dataset{
		Name: "sample",
		Brands: []models.Brand{
			{BrandID: 1, BrandName: "Electra"},
			{BrandID: 2, BrandName: "Haro"},
			{BrandID: 3, BrandName: "Trek"},
		},
		Categories: []models.Category{
			{CategoryID: 1, CategoryName: "Children Bicycles"},
			{CategoryID: 2, CategoryName: "Comfort Bicycles"},
			{CategoryID: 3, CategoryName: "Electric Bikes"},
		},
		Stores: []models.Store{
			{
				StoreID:   1,
				StoreName: "Santa Cruz Bikes",
				Phone:     strPtr("(831) 476-4321"),
				Email:     strPtr("santacruz@bikes.shop"),
				Street:    strPtr("3700 Portola Drive"),
				City:      strPtr("Santa Cruz"),
				State:     strPtr("CA"),
				ZipCode:   strPtr("95060"),
			},
			{
				StoreID:   2,
				StoreName: "Baldwin Bikes",
				Phone:     strPtr("(516) 379-8888"),
				Email:     strPtr("baldwin@bikes.shop"),
				Street:    strPtr("4200 Chestnut Lane"),
				City:      strPtr("Baldwin"),
				State:     strPtr("NY"),
				ZipCode:   strPtr("11432"),
			},
			{
				// Pickup point with no registered address.
				StoreID:   3,
				StoreName: "Rowlett Bikes",
				Email:     strPtr("rowlett@bikes.shop"),
			},
		},
		Customers: []models.Customer{
			{
				CustomerID: 1,
				FirstName:  "Debra",
				LastName:   "Burks",
				Email:      "debra.burks@yahoo.com",
				City:       strPtr("Orchard Park"),
				State:      strPtr("NY"),
			},
			{
				CustomerID: 2,
				FirstName:  "Kasha",
				LastName:   "Todd",
				Phone:      strPtr("(941) 555-0146"),
				Email:      "kasha.todd@yahoo.com",
				City:       strPtr("Garland"),
				State:      strPtr("TX"),
			},
			{
				CustomerID: 3,
				FirstName:  "Tameka",
				LastName:   "Fisher",
				Email:      "tameka.fisher@aol.com",
				City:       strPtr("Redondo Beach"),
				State:      strPtr("CA"),
			},
		},
		Products: []models.Product{
			{ProductID: 1, ProductName: "Electra Townie Original 7D", BrandID: 1, CategoryID: 2, ModelYear: 2016, ListPrice: price("599.99")},
			{ProductID: 2, ProductName: "Haro Shredder 20", BrandID: 2, CategoryID: 1, ModelYear: 2017, ListPrice: price("209.99")},
			{ProductID: 3, ProductName: "Trek Powerfly 5", BrandID: 3, CategoryID: 3, ModelYear: 2018, ListPrice: price("3499.99")},
			{ProductID: 4, ProductName: "Electra Cruiser 1", BrandID: 1, CategoryID: 2, ModelYear: 2016, ListPrice: price("269.99")},
		},
		Staff: []models.Staff{
			{StaffID: 1, FirstName: "Fabiola", LastName: "Jackson", Email: "fabiola.jackson@bikes.shop", Active: true, StoreID: 1},
			{StaffID: 2, FirstName: "Mireya", LastName: "Copeland", Email: "mireya.copeland@bikes.shop", Active: true, StoreID: 1, ManagerID: uintPtr(1)},
			{StaffID: 3, FirstName: "Genna", LastName: "Serrano", Email: "genna.serrano@bikes.shop", Active: true, StoreID: 2, ManagerID: uintPtr(1)},
			{StaffID: 4, FirstName: "Virgie", LastName: "Wiggins", Email: "virgie.wiggins@bikes.shop", Active: true, StoreID: 2, ManagerID: uintPtr(3)},
			{StaffID: 5, FirstName: "Jannette", LastName: "David", Email: "jannette.david@bikes.shop", Active: false, StoreID: 3, ManagerID: uintPtr(1)},
		},
		Stocks: []models.Stock{
			{StoreID: 1, ProductID: 1, Quantity: 27},
			{StoreID: 1, ProductID: 2, Quantity: 5},
			{StoreID: 1, ProductID: 4, Quantity: 0},
			{StoreID: 2, ProductID: 1, Quantity: 14},
			{StoreID: 2, ProductID: 3, Quantity: 3},
			{StoreID: 3, ProductID: 2, Quantity: 11},
			{StoreID: 3, ProductID: 4, Quantity: 8},
		},
		Orders: []models.Order{
			{
				OrderID:      1,
				CustomerID:   1,
				OrderStatus:  models.OrderCompleted,
				OrderDate:    date(2024, time.March, 5),
				RequiredDate: datePtr(2024, time.March, 8),
				ShippedDate:  datePtr(2024, time.March, 7),
				StoreID:      1,
				StaffID:      2,
			},
			{
				OrderID:      2,
				CustomerID:   2,
				OrderStatus:  models.OrderCompleted,
				OrderDate:    date(2024, time.March, 10),
				RequiredDate: datePtr(2024, time.March, 12),
				ShippedDate:  datePtr(2024, time.March, 19),
				StoreID:      2,
				StaffID:      3,
			},
			{
				OrderID:      3,
				CustomerID:   3,
				OrderStatus:  models.OrderProcessing,
				OrderDate:    date(2024, time.April, 1),
				RequiredDate: datePtr(2024, time.April, 5),
				StoreID:      1,
				StaffID:      2,
			},
			{
				OrderID:     4,
				CustomerID:  1,
				OrderStatus: models.OrderCompleted,
				OrderDate:   date(2024, time.April, 2),
				ShippedDate: datePtr(2024, time.April, 6),
				StoreID:     3,
				StaffID:     5,
			},
			{
				// Accepted but not yet picked; carries no lines.
				OrderID:      5,
				CustomerID:   3,
				OrderStatus:  models.OrderPending,
				OrderDate:    date(2024, time.April, 10),
				RequiredDate: datePtr(2024, time.April, 15),
				StoreID:      2,
				StaffID:      4,
			},
		},
		OrderItems: []models.OrderItem{
			{OrderID: 1, ItemID: 1, ProductID: 1, Quantity: 1, ListPrice: price("599.99"), Discount: price("0.10")},
			{OrderID: 1, ItemID: 2, ProductID: 2, Quantity: 2, ListPrice: price("209.99"), Discount: price("0.00")},
			{OrderID: 2, ItemID: 1, ProductID: 3, Quantity: 1, ListPrice: price("3499.99"), Discount: price("0.20")},
			{OrderID: 3, ItemID: 1, ProductID: 4, Quantity: 1, ListPrice: price("269.99"), Discount: price("0.05")},
			{OrderID: 3, ItemID: 2, ProductID: 1, Quantity: 1, ListPrice: price("599.99"), Discount: price("0.00")},
			{OrderID: 4, ItemID: 1, ProductID: 2, Quantity: 3, ListPrice: price("209.99"), Discount: price("0.07")},
		},
	}
}
