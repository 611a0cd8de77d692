package analytics

import (
	"sort"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/store"
)

// InventorySnapshot sums on-hand quantities per store. A zero-quantity stock
// row still marks its product as stocked, so it raises the product count and
// lowers the average.
func (e *Engine) InventorySnapshot(snap store.Snapshot) ([]InventorySnapshotRow, error) {
	type agg struct {
		name     string
		units    int
		products int
	}
	byStore := map[uint]*agg{}
	for key, s := range snap.Stocks {
		st, ok := snap.Stores[key.StoreID]
		if !ok {
			return nil, &store.IntegrityError{Entity: "stock", Key: stockKey(key), Reference: "store", RefKey: ukey(key.StoreID)}
		}
		a := byStore[key.StoreID]
		if a == nil {
			a = &agg{name: st.StoreName}
			byStore[key.StoreID] = a
		}
		a.units += s.Quantity
		a.products++
	}
	rows := make([]InventorySnapshotRow, 0, len(byStore))
	for _, id := range sortedKeys(byStore) {
		a := byStore[id]
		rows = append(rows, InventorySnapshotRow{
			StoreID:              id,
			StoreName:            a.name,
			TotalStockUnits:      a.units,
			TotalProductsStocked: a.products,
			AvgStockPerProduct:   unitRatio(a.units, a.products),
		})
	}
	return rows, nil
}

// InventoryEfficiency relates each store's on-hand stock to the units it has
// sold. Rows are driven from the stock side: a store with stock but no sales
// appears with a null ratio, a store with sales but no stock rows does not
// appear.
func (e *Engine) InventoryEfficiency(snap store.Snapshot) ([]InventoryEfficiencyRow, error) {
	type agg struct {
		name  string
		stock int
		sold  int
	}
	byStore := map[uint]*agg{}
	for key, s := range snap.Stocks {
		st, ok := snap.Stores[key.StoreID]
		if !ok {
			return nil, &store.IntegrityError{Entity: "stock", Key: stockKey(key), Reference: "store", RefKey: ukey(key.StoreID)}
		}
		a := byStore[key.StoreID]
		if a == nil {
			a = &agg{name: st.StoreName}
			byStore[key.StoreID] = a
		}
		a.stock += s.Quantity
	}
	lines, err := joinLines(snap)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		if _, err := storeName(snap, l.order); err != nil {
			return nil, err
		}
		if a, ok := byStore[l.order.StoreID]; ok {
			a.sold += l.item.Quantity
		}
	}
	rows := make([]InventoryEfficiencyRow, 0, len(byStore))
	for _, id := range sortedKeys(byStore) {
		a := byStore[id]
		rows = append(rows, InventoryEfficiencyRow{
			StoreID:           id,
			StoreName:         a.name,
			TotalStockUnits:   a.stock,
			TotalUnitsSold:    a.sold,
			StockToSalesRatio: unitRatio(a.stock, a.sold),
		})
	}
	return rows, nil
}

// CategoryEfficiency refines InventoryEfficiency to (store, category). Units
// sold are restricted to order lines whose product belongs to the category at
// that store; without the predicate every line would count once per category.
func (e *Engine) CategoryEfficiency(snap store.Snapshot) ([]CategoryEfficiencyRow, error) {
	type key struct {
		storeID    uint
		categoryID uint
	}
	type agg struct {
		store    string
		category string
		stock    int
		sold     int
	}
	groups := map[key]*agg{}
	for sk, s := range snap.Stocks {
		st, ok := snap.Stores[sk.StoreID]
		if !ok {
			return nil, &store.IntegrityError{Entity: "stock", Key: stockKey(sk), Reference: "store", RefKey: ukey(sk.StoreID)}
		}
		p, ok := snap.Products[sk.ProductID]
		if !ok {
			return nil, &store.IntegrityError{Entity: "stock", Key: stockKey(sk), Reference: "product", RefKey: ukey(sk.ProductID)}
		}
		c, ok := snap.Categories[p.CategoryID]
		if !ok {
			return nil, &store.IntegrityError{Entity: "product", Key: ukey(p.ProductID), Reference: "category", RefKey: ukey(p.CategoryID)}
		}
		k := key{storeID: sk.StoreID, categoryID: p.CategoryID}
		a := groups[k]
		if a == nil {
			a = &agg{store: st.StoreName, category: c.CategoryName}
			groups[k] = a
		}
		a.stock += s.Quantity
	}
	lines, err := joinLines(snap)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		if _, err := storeName(snap, l.order); err != nil {
			return nil, err
		}
		k := key{storeID: l.order.StoreID, categoryID: l.product.CategoryID}
		if a, ok := groups[k]; ok {
			a.sold += l.item.Quantity
		}
	}
	keys := make([]key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].storeID != keys[j].storeID {
			return keys[i].storeID < keys[j].storeID
		}
		return keys[i].categoryID < keys[j].categoryID
	})
	rows := make([]CategoryEfficiencyRow, 0, len(keys))
	for _, k := range keys {
		a := groups[k]
		rows = append(rows, CategoryEfficiencyRow{
			StoreID:           k.storeID,
			StoreName:         a.store,
			CategoryID:        k.categoryID,
			CategoryName:      a.category,
			TotalStockUnits:   a.stock,
			TotalUnitsSold:    a.sold,
			StockToSalesRatio: unitRatio(a.stock, a.sold),
		})
	}
	return rows, nil
}
