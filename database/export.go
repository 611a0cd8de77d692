package database

import (
	"fmt"

	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/analytics"
	"github.com/mani9kanta3/Retail-Sales-and-Inventory-Intelligence-System/registry"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// viewTables maps each registered view to the table its rows persist into.
var viewTables = map[string]string{
	registry.ViewStoreSales:          analytics.StoreSalesRow{}.TableName(),
	registry.ViewRegionSales:         analytics.RegionSalesRow{}.TableName(),
	registry.ViewProductSales:        analytics.ProductSalesRow{}.TableName(),
	registry.ViewCategoryBrandSales:  analytics.CategoryBrandSalesRow{}.TableName(),
	registry.ViewStaffPerformance:    analytics.StaffPerformanceRow{}.TableName(),
	registry.ViewCustomerFrequency:   analytics.CustomerFrequencyRow{}.TableName(),
	registry.ViewOrderFulfillment:    analytics.OrderFulfillmentRow{}.TableName(),
	registry.ViewFulfillmentSummary:  analytics.FulfillmentSummaryRow{}.TableName(),
	registry.ViewInventorySnapshot:   analytics.InventorySnapshotRow{}.TableName(),
	registry.ViewInventoryEfficiency: analytics.InventoryEfficiencyRow{}.TableName(),
	registry.ViewCategoryEfficiency:  analytics.CategoryEfficiencyRow{}.TableName(),
	registry.ViewStoreProfitability:  analytics.StoreProfitabilityRow{}.TableName(),
}

// ExportViews refreshes every view against one snapshot and rewrites the
// kpi_ tables inside a single transaction, so readers never observe a
// half-exported warehouse.
func ExportViews(db *gorm.DB, reg *registry.Registry) error {
	if err := reg.RefreshAll(); err != nil {
		return fmt.Errorf("refresh views: %w", err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, name := range reg.Names() {
			res, err := reg.Get(name)
			if err != nil {
				return err
			}
			table, ok := viewTables[name]
			if !ok {
				return fmt.Errorf("view %q has no export table", name)
			}
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
			if res.RowCount > 0 {
				if err := tx.CreateInBatches(res.Rows, 500).Error; err != nil {
					return fmt.Errorf("export %s: %w", table, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	zap.L().Info("views exported", zap.Int("views", len(viewTables)))
	return nil
}
