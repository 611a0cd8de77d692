package store

import (
	"time"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/models"
)

// StockKey identifies a stock row by its composite primary key.
type StockKey struct {
	StoreID   uint
	ProductID uint
}

// OrderItemKey identifies an order line by its composite primary key.
type OrderItemKey struct {
	OrderID uint
	ItemID  uint
}

// Snapshot is an immutable point-in-time copy of every entity in the store.
// Derivations read from a Snapshot, never from live state, so a refresh can
// run while inserts continue without observing a torn write. All maps and the
// rows inside them are deep copies; mutating a Snapshot never reaches the
// store it came from.
type Snapshot struct {
	Brands     map[uint]models.Brand
	Categories map[uint]models.Category
	Products   map[uint]models.Product
	Stores     map[uint]models.Store
	Stocks     map[StockKey]models.Stock
	Customers  map[uint]models.Customer
	Staff      map[uint]models.Staff
	Orders     map[uint]models.Order
	OrderItems map[OrderItemKey]models.OrderItem
}

// Counts returns the number of rows held per entity, keyed by table name.
func (s Snapshot) Counts() map[string]int {
	return map[string]int{
		models.Brand{}.TableName():     len(s.Brands),
		models.Category{}.TableName():  len(s.Categories),
		models.Product{}.TableName():   len(s.Products),
		models.Store{}.TableName():     len(s.Stores),
		models.Stock{}.TableName():     len(s.Stocks),
		models.Customer{}.TableName():  len(s.Customers),
		models.Staff{}.TableName():     len(s.Staff),
		models.Order{}.TableName():     len(s.Orders),
		models.OrderItem{}.TableName(): len(s.OrderItems),
	}
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneUintPtr(p *uint) *uint {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTimePtr(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// The clone helpers copy column values only; association fields hydrated by
// the caller are dropped so the store holds plain rows, not object graphs.

func cloneBrand(b models.Brand) models.Brand { return b }

func cloneCategory(c models.Category) models.Category { return c }

func cloneProduct(p models.Product) models.Product {
	cp := p
	cp.Brand = models.Brand{}
	cp.Category = models.Category{}
	return cp
}

func cloneStore(s models.Store) models.Store {
	cp := s
	cp.Phone = cloneStringPtr(s.Phone)
	cp.Email = cloneStringPtr(s.Email)
	cp.Street = cloneStringPtr(s.Street)
	cp.City = cloneStringPtr(s.City)
	cp.State = cloneStringPtr(s.State)
	cp.ZipCode = cloneStringPtr(s.ZipCode)
	return cp
}

func cloneStock(s models.Stock) models.Stock {
	cp := s
	cp.Store = models.Store{}
	cp.Product = models.Product{}
	return cp
}

func cloneCustomer(c models.Customer) models.Customer {
	cp := c
	cp.Phone = cloneStringPtr(c.Phone)
	cp.Street = cloneStringPtr(c.Street)
	cp.City = cloneStringPtr(c.City)
	cp.State = cloneStringPtr(c.State)
	cp.ZipCode = cloneStringPtr(c.ZipCode)
	return cp
}

func cloneStaff(s models.Staff) models.Staff {
	cp := s
	cp.Phone = cloneStringPtr(s.Phone)
	cp.ManagerID = cloneUintPtr(s.ManagerID)
	cp.Store = models.Store{}
	cp.Manager = nil
	return cp
}

func cloneOrder(o models.Order) models.Order {
	cp := o
	cp.RequiredDate = cloneTimePtr(o.RequiredDate)
	cp.ShippedDate = cloneTimePtr(o.ShippedDate)
	cp.Customer = models.Customer{}
	cp.Store = models.Store{}
	cp.Staff = models.Staff{}
	return cp
}

func cloneOrderItem(i models.OrderItem) models.OrderItem {
	cp := i
	cp.Order = models.Order{}
	cp.Product = models.Product{}
	return cp
}
