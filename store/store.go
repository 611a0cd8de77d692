// Package store provides the in-memory entity store backing the metrics
// engine: normalized retail records (brands through order lines) guarded by a
// single write lock, with referential integrity and value invariants enforced
// on insert and immutable snapshots handed out for derivation.
package store

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/models"

	"github.com/shopspring/decimal"
)

const (
	minModelYear = 1900
	maxModelYear = 2100
)

type state struct {
	brands     map[uint]models.Brand
	categories map[uint]models.Category
	products   map[uint]models.Product
	stores     map[uint]models.Store
	stocks     map[StockKey]models.Stock
	customers  map[uint]models.Customer
	staff      map[uint]models.Staff
	orders     map[uint]models.Order
	orderItems map[OrderItemKey]models.OrderItem
}

func newState() state {
	return state{
		brands:     map[uint]models.Brand{},
		categories: map[uint]models.Category{},
		products:   map[uint]models.Product{},
		stores:     map[uint]models.Store{},
		stocks:     map[StockKey]models.Stock{},
		customers:  map[uint]models.Customer{},
		staff:      map[uint]models.Staff{},
		orders:     map[uint]models.Order{},
		orderItems: map[OrderItemKey]models.OrderItem{},
	}
}

// EntityStore accepts inserts under a write lock while derivations read from
// snapshots. Entities are append-only facts: there is no update path, and the
// only delete is DeleteOrder, which cascades to the order's lines.
type EntityStore struct {
	mu    sync.RWMutex
	state state
}

// New returns an empty EntityStore.
func New() *EntityStore {
	return &EntityStore{state: newState()}
}

// Snapshot returns a deep-copied view of the current state. The copy is
// detached: later inserts, and any mutation of the returned maps, leave the
// other side untouched.
func (st *EntityStore) Snapshot() Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s := Snapshot{
		Brands:     make(map[uint]models.Brand, len(st.state.brands)),
		Categories: make(map[uint]models.Category, len(st.state.categories)),
		Products:   make(map[uint]models.Product, len(st.state.products)),
		Stores:     make(map[uint]models.Store, len(st.state.stores)),
		Stocks:     make(map[StockKey]models.Stock, len(st.state.stocks)),
		Customers:  make(map[uint]models.Customer, len(st.state.customers)),
		Staff:      make(map[uint]models.Staff, len(st.state.staff)),
		Orders:     make(map[uint]models.Order, len(st.state.orders)),
		OrderItems: make(map[OrderItemKey]models.OrderItem, len(st.state.orderItems)),
	}
	for k, v := range st.state.brands {
		s.Brands[k] = cloneBrand(v)
	}
	for k, v := range st.state.categories {
		s.Categories[k] = cloneCategory(v)
	}
	for k, v := range st.state.products {
		s.Products[k] = cloneProduct(v)
	}
	for k, v := range st.state.stores {
		s.Stores[k] = cloneStore(v)
	}
	for k, v := range st.state.stocks {
		s.Stocks[k] = cloneStock(v)
	}
	for k, v := range st.state.customers {
		s.Customers[k] = cloneCustomer(v)
	}
	for k, v := range st.state.staff {
		s.Staff[k] = cloneStaff(v)
	}
	for k, v := range st.state.orders {
		s.Orders[k] = cloneOrder(v)
	}
	for k, v := range st.state.orderItems {
		s.OrderItems[k] = cloneOrderItem(v)
	}
	return s
}

// Counts returns the current number of rows per entity, keyed by table name.
func (st *EntityStore) Counts() map[string]int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return map[string]int{
		models.Brand{}.TableName():     len(st.state.brands),
		models.Category{}.TableName():  len(st.state.categories),
		models.Product{}.TableName():   len(st.state.products),
		models.Store{}.TableName():     len(st.state.stores),
		models.Stock{}.TableName():     len(st.state.stocks),
		models.Customer{}.TableName():  len(st.state.customers),
		models.Staff{}.TableName():     len(st.state.staff),
		models.Order{}.TableName():     len(st.state.orders),
		models.OrderItem{}.TableName(): len(st.state.orderItems),
	}
}

// InsertBrand adds a brand. The name must be non-empty.
func (st *EntityStore) InsertBrand(b models.Brand) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, exists := st.state.brands[b.BrandID]; exists {
		return &DuplicateKeyError{Entity: "brand", Key: ukey(b.BrandID)}
	}
	if b.BrandName == "" {
		return &InvariantViolation{Entity: "brand", Key: ukey(b.BrandID), Rule: "brand name must be non-empty"}
	}
	st.state.brands[b.BrandID] = cloneBrand(b)
	return nil
}

// InsertCategory adds a category. The name must be non-empty.
func (st *EntityStore) InsertCategory(c models.Category) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, exists := st.state.categories[c.CategoryID]; exists {
		return &DuplicateKeyError{Entity: "category", Key: ukey(c.CategoryID)}
	}
	if c.CategoryName == "" {
		return &InvariantViolation{Entity: "category", Key: ukey(c.CategoryID), Rule: "category name must be non-empty"}
	}
	st.state.categories[c.CategoryID] = cloneCategory(c)
	return nil
}

// InsertProduct adds a product. Its brand and category must already exist,
// the list price must be positive and the model year plausible.
func (st *EntityStore) InsertProduct(p models.Product) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	key := ukey(p.ProductID)
	if _, exists := st.state.products[p.ProductID]; exists {
		return &DuplicateKeyError{Entity: "product", Key: key}
	}
	if _, ok := st.state.brands[p.BrandID]; !ok {
		return &IntegrityError{Entity: "product", Key: key, Reference: "brand", RefKey: ukey(p.BrandID)}
	}
	if _, ok := st.state.categories[p.CategoryID]; !ok {
		return &IntegrityError{Entity: "product", Key: key, Reference: "category", RefKey: ukey(p.CategoryID)}
	}
	if p.ListPrice.Sign() <= 0 {
		return &InvariantViolation{Entity: "product", Key: key, Rule: "list price must be positive"}
	}
	if p.ModelYear < minModelYear || p.ModelYear > maxModelYear {
		return &InvariantViolation{Entity: "product", Key: key, Rule: fmt.Sprintf("model year must be between %d and %d", minModelYear, maxModelYear)}
	}
	st.state.products[p.ProductID] = cloneProduct(p)
	return nil
}

// InsertStore adds a store.
func (st *EntityStore) InsertStore(s models.Store) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, exists := st.state.stores[s.StoreID]; exists {
		return &DuplicateKeyError{Entity: "store", Key: ukey(s.StoreID)}
	}
	st.state.stores[s.StoreID] = cloneStore(s)
	return nil
}

// InsertStock adds an on-hand quantity row. Store and product must already
// exist, the quantity must not be negative, and at most one row may exist per
// (store, product) pair.
func (st *EntityStore) InsertStock(s models.Stock) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	key := pairKey(s.StoreID, s.ProductID)
	if _, exists := st.state.stocks[StockKey{StoreID: s.StoreID, ProductID: s.ProductID}]; exists {
		return &DuplicateKeyError{Entity: "stock", Key: key}
	}
	if _, ok := st.state.stores[s.StoreID]; !ok {
		return &IntegrityError{Entity: "stock", Key: key, Reference: "store", RefKey: ukey(s.StoreID)}
	}
	if _, ok := st.state.products[s.ProductID]; !ok {
		return &IntegrityError{Entity: "stock", Key: key, Reference: "product", RefKey: ukey(s.ProductID)}
	}
	if s.Quantity < 0 {
		return &InvariantViolation{Entity: "stock", Key: key, Rule: "quantity must not be negative"}
	}
	st.state.stocks[StockKey{StoreID: s.StoreID, ProductID: s.ProductID}] = cloneStock(s)
	return nil
}

// InsertCustomer adds a customer.
func (st *EntityStore) InsertCustomer(c models.Customer) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, exists := st.state.customers[c.CustomerID]; exists {
		return &DuplicateKeyError{Entity: "customer", Key: ukey(c.CustomerID)}
	}
	st.state.customers[c.CustomerID] = cloneCustomer(c)
	return nil
}

// InsertStaff adds a staff member. The store must exist; the manager, when
// set, must reference an existing staff member and must not close a cycle in
// the management chain.
func (st *EntityStore) InsertStaff(s models.Staff) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	key := ukey(s.StaffID)
	if _, exists := st.state.staff[s.StaffID]; exists {
		return &DuplicateKeyError{Entity: "staff", Key: key}
	}
	if _, ok := st.state.stores[s.StoreID]; !ok {
		return &IntegrityError{Entity: "staff", Key: key, Reference: "store", RefKey: ukey(s.StoreID)}
	}
	if s.ManagerID != nil {
		if *s.ManagerID == s.StaffID {
			return &InvariantViolation{Entity: "staff", Key: key, Rule: "management chain must not cycle"}
		}
		mgr, ok := st.state.staff[*s.ManagerID]
		if !ok {
			return &IntegrityError{Entity: "staff", Key: key, Reference: "staff", RefKey: ukey(*s.ManagerID)}
		}
		// Walk the chain upward; hitting the new id means the insert would
		// close a loop.
		seen := map[uint]bool{s.StaffID: true}
		for {
			if seen[mgr.StaffID] {
				return &InvariantViolation{Entity: "staff", Key: key, Rule: "management chain must not cycle"}
			}
			seen[mgr.StaffID] = true
			if mgr.ManagerID == nil {
				break
			}
			next, ok := st.state.staff[*mgr.ManagerID]
			if !ok {
				break
			}
			mgr = next
		}
	}
	st.state.staff[s.StaffID] = cloneStaff(s)
	return nil
}

// InsertOrder adds an order header. Customer, store and staff must exist, the
// status must be a known state, and the required/shipped dates, when present,
// must not precede the order date.
func (st *EntityStore) InsertOrder(o models.Order) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	key := ukey(o.OrderID)
	if _, exists := st.state.orders[o.OrderID]; exists {
		return &DuplicateKeyError{Entity: "order", Key: key}
	}
	if _, ok := st.state.customers[o.CustomerID]; !ok {
		return &IntegrityError{Entity: "order", Key: key, Reference: "customer", RefKey: ukey(o.CustomerID)}
	}
	if _, ok := st.state.stores[o.StoreID]; !ok {
		return &IntegrityError{Entity: "order", Key: key, Reference: "store", RefKey: ukey(o.StoreID)}
	}
	if _, ok := st.state.staff[o.StaffID]; !ok {
		return &IntegrityError{Entity: "order", Key: key, Reference: "staff", RefKey: ukey(o.StaffID)}
	}
	if !o.OrderStatus.Valid() {
		return &InvariantViolation{Entity: "order", Key: key, Rule: fmt.Sprintf("unknown order status %q", o.OrderStatus)}
	}
	if o.RequiredDate != nil && o.RequiredDate.Before(o.OrderDate) {
		return &InvariantViolation{Entity: "order", Key: key, Rule: "required date must not be before order date"}
	}
	if o.ShippedDate != nil && o.ShippedDate.Before(o.OrderDate) {
		return &InvariantViolation{Entity: "order", Key: key, Rule: "shipped date must not be before order date"}
	}
	st.state.orders[o.OrderID] = cloneOrder(o)
	return nil
}

// InsertOrderItem adds an order line. The order and product must exist, the
// quantity and list price must be positive, and the discount must lie in
// [0,1].
func (st *EntityStore) InsertOrderItem(i models.OrderItem) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	key := pairKey(i.OrderID, i.ItemID)
	if _, exists := st.state.orderItems[OrderItemKey{OrderID: i.OrderID, ItemID: i.ItemID}]; exists {
		return &DuplicateKeyError{Entity: "order_item", Key: key}
	}
	if _, ok := st.state.orders[i.OrderID]; !ok {
		return &IntegrityError{Entity: "order_item", Key: key, Reference: "order", RefKey: ukey(i.OrderID)}
	}
	if _, ok := st.state.products[i.ProductID]; !ok {
		return &IntegrityError{Entity: "order_item", Key: key, Reference: "product", RefKey: ukey(i.ProductID)}
	}
	if i.Quantity <= 0 {
		return &InvariantViolation{Entity: "order_item", Key: key, Rule: "quantity must be positive"}
	}
	if i.ListPrice.Sign() <= 0 {
		return &InvariantViolation{Entity: "order_item", Key: key, Rule: "list price must be positive"}
	}
	if i.Discount.Sign() < 0 || i.Discount.Cmp(decimal.NewFromInt(1)) > 0 {
		return &InvariantViolation{Entity: "order_item", Key: key, Rule: "discount must be between 0 and 1"}
	}
	st.state.orderItems[OrderItemKey{OrderID: i.OrderID, ItemID: i.ItemID}] = cloneOrderItem(i)
	return nil
}

// DeleteOrder removes an order together with all of its lines. Orders own
// their lines exclusively, so the cascade cannot strand a reference.
func (st *EntityStore) DeleteOrder(orderID uint) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.state.orders[orderID]; !ok {
		return &IntegrityError{Entity: "order", Key: ukey(orderID)}
	}
	for k := range st.state.orderItems {
		if k.OrderID == orderID {
			delete(st.state.orderItems, k)
		}
	}
	delete(st.state.orders, orderID)
	return nil
}

func ukey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func pairKey(a, b uint) string {
	return fmt.Sprintf("%d/%d", a, b)
}
