package analytics

import (
	"sort"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/store"

	"github.com/shopspring/decimal"
)

// StoreSales groups order lines by store. Stores without any order line do
// not appear; the AOV is null when a group somehow carries no distinct order.
func (e *Engine) StoreSales(snap store.Snapshot) ([]StoreSalesRow, error) {
	lines, err := joinLines(snap)
	if err != nil {
		return nil, err
	}
	type agg struct {
		name   string
		orders map[uint]struct{}
		units  int
		net    decimal.Decimal
	}
	byStore := map[uint]*agg{}
	for _, l := range lines {
		s, err := storeName(snap, l.order)
		if err != nil {
			return nil, err
		}
		a := byStore[s.StoreID]
		if a == nil {
			a = &agg{name: s.StoreName, orders: map[uint]struct{}{}}
			byStore[s.StoreID] = a
		}
		a.orders[l.order.OrderID] = struct{}{}
		a.units += l.item.Quantity
		a.net = a.net.Add(l.item.NetSale())
	}
	rows := make([]StoreSalesRow, 0, len(byStore))
	for _, id := range sortedKeys(byStore) {
		a := byStore[id]
		rows = append(rows, StoreSalesRow{
			StoreID:     id,
			StoreName:   a.name,
			OrdersCount: len(a.orders),
			UnitsSold:   a.units,
			NetSales:    a.net.Round(2),
			AOV:         divCount(a.net, len(a.orders)),
		})
	}
	return rows, nil
}

// RegionSales groups order lines by the state of the selling store. Stores
// without a state value fall into the empty-string region.
func (e *Engine) RegionSales(snap store.Snapshot) ([]RegionSalesRow, error) {
	lines, err := joinLines(snap)
	if err != nil {
		return nil, err
	}
	type agg struct {
		stores map[uint]struct{}
		orders map[uint]struct{}
		units  int
		net    decimal.Decimal
	}
	byState := map[string]*agg{}
	for _, l := range lines {
		s, err := storeName(snap, l.order)
		if err != nil {
			return nil, err
		}
		state := ""
		if s.State != nil {
			state = *s.State
		}
		a := byState[state]
		if a == nil {
			a = &agg{stores: map[uint]struct{}{}, orders: map[uint]struct{}{}}
			byState[state] = a
		}
		a.stores[s.StoreID] = struct{}{}
		a.orders[l.order.OrderID] = struct{}{}
		a.units += l.item.Quantity
		a.net = a.net.Add(l.item.NetSale())
	}
	states := make([]string, 0, len(byState))
	for state := range byState {
		states = append(states, state)
	}
	sort.Strings(states)
	rows := make([]RegionSalesRow, 0, len(states))
	for _, state := range states {
		a := byState[state]
		rows = append(rows, RegionSalesRow{
			State:       state,
			StoresCount: len(a.stores),
			OrdersCount: len(a.orders),
			UnitsSold:   a.units,
			NetSales:    a.net.Round(2),
			AOV:         divCount(a.net, len(a.orders)),
		})
	}
	return rows, nil
}

// ProductSales groups order lines by product, carrying the brand and
// category names for display.
func (e *Engine) ProductSales(snap store.Snapshot) ([]ProductSalesRow, error) {
	lines, err := joinLines(snap)
	if err != nil {
		return nil, err
	}
	type agg struct {
		name     string
		brand    string
		category string
		orders   map[uint]struct{}
		units    int
		net      decimal.Decimal
	}
	byProduct := map[uint]*agg{}
	for _, l := range lines {
		a := byProduct[l.product.ProductID]
		if a == nil {
			brand, ok := snap.Brands[l.product.BrandID]
			if !ok {
				return nil, &store.IntegrityError{Entity: "product", Key: ukey(l.product.ProductID), Reference: "brand", RefKey: ukey(l.product.BrandID)}
			}
			category, ok := snap.Categories[l.product.CategoryID]
			if !ok {
				return nil, &store.IntegrityError{Entity: "product", Key: ukey(l.product.ProductID), Reference: "category", RefKey: ukey(l.product.CategoryID)}
			}
			a = &agg{name: l.product.ProductName, brand: brand.BrandName, category: category.CategoryName, orders: map[uint]struct{}{}}
			byProduct[l.product.ProductID] = a
		}
		a.orders[l.order.OrderID] = struct{}{}
		a.units += l.item.Quantity
		a.net = a.net.Add(l.item.NetSale())
	}
	rows := make([]ProductSalesRow, 0, len(byProduct))
	for _, id := range sortedKeys(byProduct) {
		a := byProduct[id]
		rows = append(rows, ProductSalesRow{
			ProductID:       id,
			ProductName:     a.name,
			BrandName:       a.brand,
			CategoryName:    a.category,
			OrdersCount:     len(a.orders),
			UnitsSold:       a.units,
			NetSales:        a.net.Round(2),
			AvgPricePerUnit: divCount(a.net, a.units),
		})
	}
	return rows, nil
}

// CategoryBrandSales groups order lines by the (category, brand) pair of the
// sold product.
func (e *Engine) CategoryBrandSales(snap store.Snapshot) ([]CategoryBrandSalesRow, error) {
	lines, err := joinLines(snap)
	if err != nil {
		return nil, err
	}
	type key struct {
		categoryID uint
		brandID    uint
	}
	type agg struct {
		category string
		brand    string
		units    int
		net      decimal.Decimal
	}
	pairs := map[key]*agg{}
	for _, l := range lines {
		k := key{categoryID: l.product.CategoryID, brandID: l.product.BrandID}
		a := pairs[k]
		if a == nil {
			brand, ok := snap.Brands[k.brandID]
			if !ok {
				return nil, &store.IntegrityError{Entity: "product", Key: ukey(l.product.ProductID), Reference: "brand", RefKey: ukey(k.brandID)}
			}
			category, ok := snap.Categories[k.categoryID]
			if !ok {
				return nil, &store.IntegrityError{Entity: "product", Key: ukey(l.product.ProductID), Reference: "category", RefKey: ukey(k.categoryID)}
			}
			a = &agg{category: category.CategoryName, brand: brand.BrandName}
			pairs[k] = a
		}
		a.units += l.item.Quantity
		a.net = a.net.Add(l.item.NetSale())
	}
	keys := make([]key, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].categoryID != keys[j].categoryID {
			return keys[i].categoryID < keys[j].categoryID
		}
		return keys[i].brandID < keys[j].brandID
	})
	rows := make([]CategoryBrandSalesRow, 0, len(keys))
	for _, k := range keys {
		a := pairs[k]
		rows = append(rows, CategoryBrandSalesRow{
			CategoryID:      k.categoryID,
			CategoryName:    a.category,
			BrandID:         k.brandID,
			BrandName:       a.brand,
			UnitsSold:       a.units,
			NetSales:        a.net.Round(2),
			AvgPricePerUnit: divCount(a.net, a.units),
		})
	}
	return rows, nil
}
