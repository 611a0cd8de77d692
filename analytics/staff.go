package analytics

import (
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/store"

	"github.com/shopspring/decimal"
)

// StaffPerformance reports order volume per staff member. Unlike the sales
// views this is a left join: staff who handled no orders still appear, with
// zero counts and a null fulfillment average. The average covers only orders
// that have actually shipped.
func (e *Engine) StaffPerformance(snap store.Snapshot) ([]StaffPerformanceRow, error) {
	type agg struct {
		orders      int
		units       int
		net         decimal.Decimal
		shippedDays int
		shipped     int
	}
	byStaff := map[uint]*agg{}
	for id := range snap.Staff {
		byStaff[id] = &agg{}
	}
	for _, o := range snap.Orders {
		a, ok := byStaff[o.StaffID]
		if !ok {
			return nil, &store.IntegrityError{Entity: "order", Key: ukey(o.OrderID), Reference: "staff", RefKey: ukey(o.StaffID)}
		}
		a.orders++
		if o.ShippedDate != nil {
			a.shippedDays += daysBetween(o.OrderDate, *o.ShippedDate)
			a.shipped++
		}
	}
	lines, err := joinLines(snap)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		a := byStaff[l.order.StaffID]
		a.units += l.item.Quantity
		a.net = a.net.Add(l.item.NetSale())
	}
	rows := make([]StaffPerformanceRow, 0, len(byStaff))
	for _, id := range sortedKeys(byStaff) {
		member := snap.Staff[id]
		st, ok := snap.Stores[member.StoreID]
		if !ok {
			return nil, &store.IntegrityError{Entity: "staff", Key: ukey(id), Reference: "store", RefKey: ukey(member.StoreID)}
		}
		a := byStaff[id]
		rows = append(rows, StaffPerformanceRow{
			StaffID:            id,
			StaffName:          member.FullName(),
			StoreName:          st.StoreName,
			Active:             member.Active,
			OrdersCount:        a.orders,
			UnitsSold:          a.units,
			NetSales:           a.net.Round(2),
			AvgFulfillmentDays: avgDays(a.shippedDays, a.shipped),
		})
	}
	return rows, nil
}
