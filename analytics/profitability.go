package analytics

import (
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/store"

	"github.com/shopspring/decimal"
)

// StoreProfitability estimates per-store margin from the revenue formula.
// True cost of goods is not recorded, so profit is net sales times the
// configured margin assumption; the discount percentage is the share of gross
// revenue given away across all lines.
func (e *Engine) StoreProfitability(snap store.Snapshot) ([]StoreProfitabilityRow, error) {
	lines, err := joinLines(snap)
	if err != nil {
		return nil, err
	}
	type agg struct {
		name   string
		orders map[uint]struct{}
		gross  decimal.Decimal
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
		gross := decimal.NewFromInt(int64(l.item.Quantity)).Mul(l.item.ListPrice).Round(2)
		a.gross = a.gross.Add(gross)
		a.net = a.net.Add(l.item.NetSale())
	}
	rows := make([]StoreProfitabilityRow, 0, len(byStore))
	for _, id := range sortedKeys(byStore) {
		a := byStore[id]
		discount := a.gross.Sub(a.net)
		profit := a.net.Mul(e.cfg.ProfitMargin).Round(2)
		rows = append(rows, StoreProfitabilityRow{
			StoreID:         id,
			StoreName:       a.name,
			OrdersCount:     len(a.orders),
			GrossSales:      a.gross.Round(2),
			DiscountAmount:  discount.Round(2),
			NetSales:        a.net.Round(2),
			AvgDiscountPct:  pct(discount, a.gross),
			EstimatedProfit: profit,
			ProfitMarginPct: pct(profit, a.net),
			AvgOrderValue:   divCount(a.net, len(a.orders)),
		})
	}
	return rows, nil
}
