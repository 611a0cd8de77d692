// Package registry exposes the derived KPI views as named result sets. Each
// view refreshes independently from an entity snapshot; refreshing one never
// recomputes another, and RefreshAll derives every view from the same
// snapshot so the results describe one consistent state.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/analytics"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/metrics"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/store"

	"go.uber.org/zap"
)

// Registered view names.
const (
	ViewStoreSales          = "store_sales"
	ViewRegionSales         = "region_sales"
	ViewProductSales        = "product_sales"
	ViewCategoryBrandSales  = "category_brand_sales"
	ViewStaffPerformance    = "staff_performance"
	ViewCustomerFrequency   = "customer_frequency"
	ViewOrderFulfillment    = "order_fulfillment"
	ViewFulfillmentSummary  = "fulfillment_summary"
	ViewInventorySnapshot   = "inventory_snapshot"
	ViewInventoryEfficiency = "inventory_efficiency"
	ViewCategoryEfficiency  = "category_efficiency"
	ViewStoreProfitability  = "store_profitability"
)

// ErrUnknownView is returned when a view name is not registered.
var ErrUnknownView = errors.New("unknown view")

// Result is one refreshed view: its rows plus refresh bookkeeping.
type Result struct {
	Name        string      `json:"name"`
	RefreshedAt time.Time   `json:"refreshed_at"`
	RowCount    int         `json:"row_count"`
	Rows        interface{} `json:"rows"`
}

// ViewStatus summarizes a view's cache state without carrying its rows.
type ViewStatus struct {
	Name        string     `json:"name"`
	RowCount    int        `json:"row_count"`
	RefreshedAt *time.Time `json:"refreshed_at"`
}

type viewFunc func(store.Snapshot) (interface{}, int, error)

func view[R any](fn func(store.Snapshot) ([]R, error)) viewFunc {
	return func(snap store.Snapshot) (interface{}, int, error) {
		rows, err := fn(snap)
		if err != nil {
			return nil, 0, err
		}
		return rows, len(rows), nil
	}
}

// Registry holds the named views and a cache of their latest results.
type Registry struct {
	store *store.EntityStore
	log   *zap.Logger
	views map[string]viewFunc

	mu    sync.RWMutex
	cache map[string]Result
}

// New wires the registry to an entity store and a derivation engine.
func New(st *store.EntityStore, engine *analytics.Engine, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		store: st,
		log:   log,
		views: map[string]viewFunc{
			ViewStoreSales:          view(engine.StoreSales),
			ViewRegionSales:         view(engine.RegionSales),
			ViewProductSales:        view(engine.ProductSales),
			ViewCategoryBrandSales:  view(engine.CategoryBrandSales),
			ViewStaffPerformance:    view(engine.StaffPerformance),
			ViewCustomerFrequency:   view(engine.CustomerFrequency),
			ViewOrderFulfillment:    view(engine.OrderFulfillment),
			ViewFulfillmentSummary:  view(engine.FulfillmentSummary),
			ViewInventorySnapshot:   view(engine.InventorySnapshot),
			ViewInventoryEfficiency: view(engine.InventoryEfficiency),
			ViewCategoryEfficiency:  view(engine.CategoryEfficiency),
			ViewStoreProfitability:  view(engine.StoreProfitability),
		},
		cache: map[string]Result{},
	}
}

// Names returns the registered view names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.views))
	for name := range r.views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Refresh recomputes one view from the latest entity snapshot and caches the
// result.
func (r *Registry) Refresh(name string) (Result, error) {
	fn, ok := r.views[name]
	if !ok {
		return Result{}, fmt.Errorf("view %q: %w", name, ErrUnknownView)
	}
	return r.refreshFrom(name, fn, r.store.Snapshot())
}

// RefreshAll recomputes every view in parallel against one shared snapshot.
// A failing view aborts only itself; the others still refresh. The returned
// error joins the per-view failures, if any.
func (r *Registry) RefreshAll() error {
	snap := r.store.Snapshot()
	names := r.Names()
	errs := make([]error, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			if _, err := r.refreshFrom(name, r.views[name], snap); err != nil {
				errs[i] = fmt.Errorf("%s: %w", name, err)
			}
		}(i, name)
	}
	wg.Wait()
	return errors.Join(errs...)
}

// Get returns the cached result for a view, refreshing it first if it has
// never been computed.
func (r *Registry) Get(name string) (Result, error) {
	r.mu.RLock()
	res, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		return res, nil
	}
	return r.Refresh(name)
}

// Status reports the cache state of every registered view, sorted by name.
func (r *Registry) Status() []ViewStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	statuses := make([]ViewStatus, 0, len(r.views))
	for _, name := range r.Names() {
		status := ViewStatus{Name: name}
		if res, ok := r.cache[name]; ok {
			status.RowCount = res.RowCount
			at := res.RefreshedAt
			status.RefreshedAt = &at
		}
		statuses = append(statuses, status)
	}
	return statuses
}

func (r *Registry) refreshFrom(name string, fn viewFunc, snap store.Snapshot) (Result, error) {
	start := time.Now()
	rows, count, err := fn(snap)
	took := time.Since(start)
	metrics.ObserveViewRefresh(name, took, err)
	if err != nil {
		r.log.Warn("view refresh failed",
			zap.String("view", name),
			zap.Error(err),
		)
		return Result{}, err
	}
	res := Result{
		Name:        name,
		RefreshedAt: time.Now().UTC(),
		RowCount:    count,
		Rows:        rows,
	}
	r.mu.Lock()
	r.cache[name] = res
	r.mu.Unlock()
	metrics.SetViewRows(name, count)
	r.log.Debug("view refreshed",
		zap.String("view", name),
		zap.Int("rows", count),
		zap.Duration("took", took),
	)
	return res, nil
}
