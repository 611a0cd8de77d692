package analytics

import (
	"time"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/store"

	"github.com/shopspring/decimal"
)

// CustomerFrequency reports spend and order cadence per customer. Only
// customers with at least one order line appear. The cadence average spreads
// the span between first and last order over the gaps between orders; with a
// single order there is no gap and the average is null.
func (e *Engine) CustomerFrequency(snap store.Snapshot) ([]CustomerFrequencyRow, error) {
	lines, err := joinLines(snap)
	if err != nil {
		return nil, err
	}
	type agg struct {
		orders map[uint]struct{}
		spent  decimal.Decimal
		first  time.Time
		last   time.Time
	}
	byCustomer := map[uint]*agg{}
	for _, l := range lines {
		if _, ok := snap.Customers[l.order.CustomerID]; !ok {
			return nil, &store.IntegrityError{Entity: "order", Key: ukey(l.order.OrderID), Reference: "customer", RefKey: ukey(l.order.CustomerID)}
		}
		a := byCustomer[l.order.CustomerID]
		if a == nil {
			a = &agg{orders: map[uint]struct{}{}, first: l.order.OrderDate, last: l.order.OrderDate}
			byCustomer[l.order.CustomerID] = a
		}
		a.orders[l.order.OrderID] = struct{}{}
		a.spent = a.spent.Add(l.item.NetSale())
		if l.order.OrderDate.Before(a.first) {
			a.first = l.order.OrderDate
		}
		if l.order.OrderDate.After(a.last) {
			a.last = l.order.OrderDate
		}
	}
	rows := make([]CustomerFrequencyRow, 0, len(byCustomer))
	for _, id := range sortedKeys(byCustomer) {
		c := snap.Customers[id]
		a := byCustomer[id]
		var between *decimal.Decimal
		if n := len(a.orders); n > 1 {
			between = avgDays(daysBetween(a.first, a.last), n-1)
		}
		rows = append(rows, CustomerFrequencyRow{
			CustomerID:           id,
			CustomerName:         c.FullName(),
			OrdersCount:          len(a.orders),
			TotalSpent:           a.spent.Round(2),
			AvgOrderValue:        divCount(a.spent, len(a.orders)),
			FirstOrderDate:       a.first,
			LastOrderDate:        a.last,
			AvgDaysBetweenOrders: between,
		})
	}
	return rows, nil
}
