// Package analytics derives the KPI views from an entity snapshot. Every
// view is a pure function of the snapshot it is given: identical snapshots
// produce identical rows, and no view depends on another view's output. All
// revenue figures come from one shared formula, net_sales = quantity *
// list_price * (1 - discount), summed over order lines at cent precision.
package analytics

import (
	"sort"
	"strconv"
	"time"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/models"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/store"

	"github.com/shopspring/decimal"
)

// DefaultProfitMargin is the assumed share of net sales kept as profit. It
// stands in until true cost-of-goods data exists and can be overridden via
// Config.
const DefaultProfitMargin = 0.30

// Config tunes the derivation constants.
type Config struct {
	// ProfitMargin is the assumed margin applied by the store profitability
	// view. Zero means "use DefaultProfitMargin".
	ProfitMargin decimal.Decimal
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{ProfitMargin: decimal.NewFromFloat(DefaultProfitMargin)}
}

// Engine computes the derived views. It is stateless apart from its
// configuration and safe for concurrent use: views may be computed in
// parallel against the same snapshot.
type Engine struct {
	cfg Config
}

// New returns an Engine with the given configuration, falling back to
// DefaultConfig values where cfg leaves them zero.
func New(cfg Config) *Engine {
	if cfg.ProfitMargin.Sign() == 0 {
		cfg.ProfitMargin = decimal.NewFromFloat(DefaultProfitMargin)
	}
	return &Engine{cfg: cfg}
}

// line is an order line joined to its order header and product. Views
// aggregate over lines rather than re-resolving the joins each time.
type line struct {
	item    models.OrderItem
	order   models.Order
	product models.Product
}

// joinLines resolves every order line against its order and product. A line
// whose order or product is missing from the snapshot means the snapshot was
// assembled out of dependency order; that surfaces as an IntegrityError and
// aborts the calling view only.
func joinLines(snap store.Snapshot) ([]line, error) {
	lines := make([]line, 0, len(snap.OrderItems))
	for key, item := range snap.OrderItems {
		order, ok := snap.Orders[key.OrderID]
		if !ok {
			return nil, &store.IntegrityError{Entity: "order_item", Key: itemKey(key), Reference: "order", RefKey: ukey(key.OrderID)}
		}
		product, ok := snap.Products[item.ProductID]
		if !ok {
			return nil, &store.IntegrityError{Entity: "order_item", Key: itemKey(key), Reference: "product", RefKey: ukey(item.ProductID)}
		}
		lines = append(lines, line{item: item, order: order, product: product})
	}
	return lines, nil
}

// storeName resolves an order's store or reports the broken reference.
func storeName(snap store.Snapshot, o models.Order) (models.Store, error) {
	s, ok := snap.Stores[o.StoreID]
	if !ok {
		return models.Store{}, &store.IntegrityError{Entity: "order", Key: ukey(o.OrderID), Reference: "store", RefKey: ukey(o.StoreID)}
	}
	return s, nil
}

// daysBetween returns the calendar-day difference to - from. Dates are
// midnight values, so the hour arithmetic is exact.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// divCount divides total by a row count, nil when the count is zero.
func divCount(total decimal.Decimal, count int) *decimal.Decimal {
	if count == 0 {
		return nil
	}
	v := total.Div(decimal.NewFromInt(int64(count))).Round(2)
	return &v
}

// unitRatio divides one unit count by another, nil when the denominator is
// zero.
func unitRatio(num, den int) *decimal.Decimal {
	if den == 0 {
		return nil
	}
	v := decimal.NewFromInt(int64(num)).Div(decimal.NewFromInt(int64(den))).Round(2)
	return &v
}

// pct returns part/whole as a percentage, nil when whole is zero.
func pct(part, whole decimal.Decimal) *decimal.Decimal {
	if whole.Sign() == 0 {
		return nil
	}
	v := part.Div(whole).Mul(decimal.NewFromInt(100)).Round(2)
	return &v
}

// avgDays averages a day-count sum to one decimal place, nil when no orders
// contribute.
func avgDays(sumDays, count int) *decimal.Decimal {
	if count == 0 {
		return nil
	}
	v := decimal.NewFromInt(int64(sumDays)).Div(decimal.NewFromInt(int64(count))).Round(1)
	return &v
}

func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func ukey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func itemKey(k store.OrderItemKey) string {
	return ukey(k.OrderID) + "/" + ukey(k.ItemID)
}

func stockKey(k store.StockKey) string {
	return ukey(k.StoreID) + "/" + ukey(k.ProductID)
}
