package analytics

import (
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/models"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/store"
)

// FulfillmentStatus classifies an order against its shipping deadline.
type FulfillmentStatus string

const (
	FulfillmentPending      FulfillmentStatus = "Pending"
	FulfillmentShippedNoSLA FulfillmentStatus = "Shipped (No SLA)"
	FulfillmentOnTime       FulfillmentStatus = "On Time"
	FulfillmentLate         FulfillmentStatus = "Late"
)

// fulfillmentStatuses lists every status in precedence order; summaries keep
// this order so refreshed output is stable.
var fulfillmentStatuses = []FulfillmentStatus{
	FulfillmentPending,
	FulfillmentShippedNoSLA,
	FulfillmentOnTime,
	FulfillmentLate,
}

// ClassifyOrder assigns exactly one fulfillment status. The cases are checked
// in strict precedence order, first match wins: not yet shipped, shipped with
// no deadline, shipped on or before the deadline, shipped after it.
func ClassifyOrder(o models.Order) FulfillmentStatus {
	switch {
	case o.ShippedDate == nil:
		return FulfillmentPending
	case o.RequiredDate == nil:
		return FulfillmentShippedNoSLA
	case !o.ShippedDate.After(*o.RequiredDate):
		return FulfillmentOnTime
	default:
		return FulfillmentLate
	}
}

// FulfillmentDays returns the calendar days from order to shipment, nil while
// the order has not shipped.
func FulfillmentDays(o models.Order) *int {
	if o.ShippedDate == nil {
		return nil
	}
	d := daysBetween(o.OrderDate, *o.ShippedDate)
	return &d
}

// OrderFulfillment classifies every order in the snapshot.
func (e *Engine) OrderFulfillment(snap store.Snapshot) ([]OrderFulfillmentRow, error) {
	rows := make([]OrderFulfillmentRow, 0, len(snap.Orders))
	for _, id := range sortedKeys(snap.Orders) {
		o := snap.Orders[id]
		s, err := storeName(snap, o)
		if err != nil {
			return nil, err
		}
		rows = append(rows, OrderFulfillmentRow{
			OrderID:           o.OrderID,
			StoreID:           o.StoreID,
			StoreName:         s.StoreName,
			OrderStatus:       string(o.OrderStatus),
			OrderDate:         o.OrderDate,
			RequiredDate:      o.RequiredDate,
			ShippedDate:       o.ShippedDate,
			FulfillmentStatus: ClassifyOrder(o),
			FulfillmentDays:   FulfillmentDays(o),
		})
	}
	return rows, nil
}

// FulfillmentSummary counts orders per fulfillment status. Orders without a
// shipped date count toward their group but not toward its day average.
func (e *Engine) FulfillmentSummary(snap store.Snapshot) ([]FulfillmentSummaryRow, error) {
	type agg struct {
		orders  int
		days    int
		shipped int
	}
	byStatus := map[FulfillmentStatus]*agg{}
	for _, o := range snap.Orders {
		status := ClassifyOrder(o)
		a := byStatus[status]
		if a == nil {
			a = &agg{}
			byStatus[status] = a
		}
		a.orders++
		if d := FulfillmentDays(o); d != nil {
			a.days += *d
			a.shipped++
		}
	}
	rows := make([]FulfillmentSummaryRow, 0, len(byStatus))
	for _, status := range fulfillmentStatuses {
		a, ok := byStatus[status]
		if !ok {
			continue
		}
		rows = append(rows, FulfillmentSummaryRow{
			FulfillmentStatus:  status,
			OrdersCount:        a.orders,
			AvgFulfillmentDays: avgDays(a.days, a.shipped),
		})
	}
	return rows, nil
}
