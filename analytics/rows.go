package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// Row types for the derived views. Ratio columns are pointers: nil means the
// denominator was zero and the metric is undefined, which serializes as JSON
// null and as SQL NULL when the rows are materialized into their kpi_ tables.

// StoreSalesRow aggregates order lines per store.
type StoreSalesRow struct {
	StoreID     uint             `gorm:"column:store_id" json:"store_id"`
	StoreName   string           `gorm:"type:varchar(255);column:store_name" json:"store_name"`
	OrdersCount int              `gorm:"column:orders_count" json:"orders_count"`
	UnitsSold   int              `gorm:"column:units_sold" json:"units_sold"`
	NetSales    decimal.Decimal  `gorm:"type:decimal(12,2);column:net_sales" json:"net_sales"`
	AOV         *decimal.Decimal `gorm:"type:decimal(12,2);column:aov" json:"aov"`
}

// TableName specifies the table name for StoreSalesRow
func (StoreSalesRow) TableName() string {
	return "kpi_store_sales"
}

// RegionSalesRow aggregates order lines per store state. Stores without a
// state value group under the empty string.
type RegionSalesRow struct {
	State       string           `gorm:"type:varchar(25);column:state" json:"state"`
	StoresCount int              `gorm:"column:stores_count" json:"stores_count"`
	OrdersCount int              `gorm:"column:orders_count" json:"orders_count"`
	UnitsSold   int              `gorm:"column:units_sold" json:"units_sold"`
	NetSales    decimal.Decimal  `gorm:"type:decimal(12,2);column:net_sales" json:"net_sales"`
	AOV         *decimal.Decimal `gorm:"type:decimal(12,2);column:aov" json:"aov"`
}

// TableName specifies the table name for RegionSalesRow
func (RegionSalesRow) TableName() string {
	return "kpi_region_sales"
}

// ProductSalesRow aggregates order lines per product.
type ProductSalesRow struct {
	ProductID       uint             `gorm:"column:product_id" json:"product_id"`
	ProductName     string           `gorm:"type:varchar(255);column:product_name" json:"product_name"`
	BrandName       string           `gorm:"type:varchar(255);column:brand_name" json:"brand_name"`
	CategoryName    string           `gorm:"type:varchar(255);column:category_name" json:"category_name"`
	OrdersCount     int              `gorm:"column:orders_count" json:"orders_count"`
	UnitsSold       int              `gorm:"column:units_sold" json:"units_sold"`
	NetSales        decimal.Decimal  `gorm:"type:decimal(12,2);column:net_sales" json:"net_sales"`
	AvgPricePerUnit *decimal.Decimal `gorm:"type:decimal(12,2);column:avg_price_per_unit" json:"avg_price_per_unit"`
}

// TableName specifies the table name for ProductSalesRow
func (ProductSalesRow) TableName() string {
	return "kpi_product_sales"
}

// CategoryBrandSalesRow aggregates order lines per (category, brand) pair.
type CategoryBrandSalesRow struct {
	CategoryID      uint             `gorm:"column:category_id" json:"category_id"`
	CategoryName    string           `gorm:"type:varchar(255);column:category_name" json:"category_name"`
	BrandID         uint             `gorm:"column:brand_id" json:"brand_id"`
	BrandName       string           `gorm:"type:varchar(255);column:brand_name" json:"brand_name"`
	UnitsSold       int              `gorm:"column:units_sold" json:"units_sold"`
	NetSales        decimal.Decimal  `gorm:"type:decimal(12,2);column:net_sales" json:"net_sales"`
	AvgPricePerUnit *decimal.Decimal `gorm:"type:decimal(12,2);column:avg_price_per_unit" json:"avg_price_per_unit"`
}

// TableName specifies the table name for CategoryBrandSalesRow
func (CategoryBrandSalesRow) TableName() string {
	return "kpi_category_brand_sales"
}

// StaffPerformanceRow reports order volume per staff member. Staff with no
// orders still appear with zero counts and null averages.
type StaffPerformanceRow struct {
	StaffID            uint             `gorm:"column:staff_id" json:"staff_id"`
	StaffName          string           `gorm:"type:varchar(255);column:staff_name" json:"staff_name"`
	StoreName          string           `gorm:"type:varchar(255);column:store_name" json:"store_name"`
	Active             bool             `gorm:"column:active" json:"active"`
	OrdersCount        int              `gorm:"column:orders_count" json:"orders_count"`
	UnitsSold          int              `gorm:"column:units_sold" json:"units_sold"`
	NetSales           decimal.Decimal  `gorm:"type:decimal(12,2);column:net_sales" json:"net_sales"`
	AvgFulfillmentDays *decimal.Decimal `gorm:"type:decimal(6,1);column:avg_fulfillment_days" json:"avg_fulfillment_days"`
}

// TableName specifies the table name for StaffPerformanceRow
func (StaffPerformanceRow) TableName() string {
	return "kpi_staff_performance"
}

// CustomerFrequencyRow reports order cadence and spend per customer with at
// least one order.
type CustomerFrequencyRow struct {
	CustomerID           uint             `gorm:"column:customer_id" json:"customer_id"`
	CustomerName         string           `gorm:"type:varchar(255);column:customer_name" json:"customer_name"`
	OrdersCount          int              `gorm:"column:orders_count" json:"orders_count"`
	TotalSpent           decimal.Decimal  `gorm:"type:decimal(12,2);column:total_spent" json:"total_spent"`
	AvgOrderValue        *decimal.Decimal `gorm:"type:decimal(12,2);column:avg_order_value" json:"avg_order_value"`
	FirstOrderDate       time.Time        `gorm:"type:date;column:first_order_date" json:"first_order_date"`
	LastOrderDate        time.Time        `gorm:"type:date;column:last_order_date" json:"last_order_date"`
	AvgDaysBetweenOrders *decimal.Decimal `gorm:"type:decimal(8,1);column:avg_days_between_orders" json:"avg_days_between_orders"`
}

// TableName specifies the table name for CustomerFrequencyRow
func (CustomerFrequencyRow) TableName() string {
	return "kpi_customer_frequency"
}

// OrderFulfillmentRow classifies a single order against its shipping SLA.
type OrderFulfillmentRow struct {
	OrderID           uint              `gorm:"column:order_id" json:"order_id"`
	StoreID           uint              `gorm:"column:store_id" json:"store_id"`
	StoreName         string            `gorm:"type:varchar(255);column:store_name" json:"store_name"`
	OrderStatus       string            `gorm:"type:varchar(20);column:order_status" json:"order_status"`
	OrderDate         time.Time         `gorm:"type:date;column:order_date" json:"order_date"`
	RequiredDate      *time.Time        `gorm:"type:date;column:required_date" json:"required_date"`
	ShippedDate       *time.Time        `gorm:"type:date;column:shipped_date" json:"shipped_date"`
	FulfillmentStatus FulfillmentStatus `gorm:"type:varchar(20);column:fulfillment_status" json:"fulfillment_status"`
	FulfillmentDays   *int              `gorm:"column:fulfillment_days" json:"fulfillment_days"`
}

// TableName specifies the table name for OrderFulfillmentRow
func (OrderFulfillmentRow) TableName() string {
	return "kpi_order_fulfillment"
}

// FulfillmentSummaryRow counts orders per fulfillment status. The average
// excludes orders without a shipped date.
type FulfillmentSummaryRow struct {
	FulfillmentStatus  FulfillmentStatus `gorm:"type:varchar(20);column:fulfillment_status" json:"fulfillment_status"`
	OrdersCount        int               `gorm:"column:orders_count" json:"orders_count"`
	AvgFulfillmentDays *decimal.Decimal  `gorm:"type:decimal(6,1);column:avg_fulfillment_days" json:"avg_fulfillment_days"`
}

// TableName specifies the table name for FulfillmentSummaryRow
func (FulfillmentSummaryRow) TableName() string {
	return "kpi_fulfillment_summary"
}

// InventorySnapshotRow sums on-hand stock per store. Zero-quantity rows still
// count as stocked products.
type InventorySnapshotRow struct {
	StoreID              uint             `gorm:"column:store_id" json:"store_id"`
	StoreName            string           `gorm:"type:varchar(255);column:store_name" json:"store_name"`
	TotalStockUnits      int              `gorm:"column:total_stock_units" json:"total_stock_units"`
	TotalProductsStocked int              `gorm:"column:total_products_stocked" json:"total_products_stocked"`
	AvgStockPerProduct   *decimal.Decimal `gorm:"type:decimal(10,2);column:avg_stock_per_product" json:"avg_stock_per_product"`
}

// TableName specifies the table name for InventorySnapshotRow
func (InventorySnapshotRow) TableName() string {
	return "kpi_inventory_snapshot"
}

// InventoryEfficiencyRow relates on-hand stock to units sold per store.
type InventoryEfficiencyRow struct {
	StoreID           uint             `gorm:"column:store_id" json:"store_id"`
	StoreName         string           `gorm:"type:varchar(255);column:store_name" json:"store_name"`
	TotalStockUnits   int              `gorm:"column:total_stock_units" json:"total_stock_units"`
	TotalUnitsSold    int              `gorm:"column:total_units_sold" json:"total_units_sold"`
	StockToSalesRatio *decimal.Decimal `gorm:"type:decimal(10,2);column:stock_to_sales_ratio" json:"stock_to_sales_ratio"`
}

// TableName specifies the table name for InventoryEfficiencyRow
func (InventoryEfficiencyRow) TableName() string {
	return "kpi_inventory_efficiency"
}

// CategoryEfficiencyRow is the (store, category) refinement of
// InventoryEfficiencyRow. Both the stock and the sold side are restricted to
// products of the category at the store, so no line is counted twice.
type CategoryEfficiencyRow struct {
	StoreID           uint             `gorm:"column:store_id" json:"store_id"`
	StoreName         string           `gorm:"type:varchar(255);column:store_name" json:"store_name"`
	CategoryID        uint             `gorm:"column:category_id" json:"category_id"`
	CategoryName      string           `gorm:"type:varchar(255);column:category_name" json:"category_name"`
	TotalStockUnits   int              `gorm:"column:total_stock_units" json:"total_stock_units"`
	TotalUnitsSold    int              `gorm:"column:total_units_sold" json:"total_units_sold"`
	StockToSalesRatio *decimal.Decimal `gorm:"type:decimal(10,2);column:stock_to_sales_ratio" json:"stock_to_sales_ratio"`
}

// TableName specifies the table name for CategoryEfficiencyRow
func (CategoryEfficiencyRow) TableName() string {
	return "kpi_category_efficiency"
}

// StoreProfitabilityRow estimates margin per store from the shared revenue
// formula and the configured profit assumption.
type StoreProfitabilityRow struct {
	StoreID         uint             `gorm:"column:store_id" json:"store_id"`
	StoreName       string           `gorm:"type:varchar(255);column:store_name" json:"store_name"`
	OrdersCount     int              `gorm:"column:orders_count" json:"orders_count"`
	GrossSales      decimal.Decimal  `gorm:"type:decimal(12,2);column:gross_sales" json:"gross_sales"`
	DiscountAmount  decimal.Decimal  `gorm:"type:decimal(12,2);column:discount_amount" json:"discount_amount"`
	NetSales        decimal.Decimal  `gorm:"type:decimal(12,2);column:net_sales" json:"net_sales"`
	AvgDiscountPct  *decimal.Decimal `gorm:"type:decimal(6,2);column:avg_discount_pct" json:"avg_discount_pct"`
	EstimatedProfit decimal.Decimal  `gorm:"type:decimal(12,2);column:estimated_profit" json:"estimated_profit"`
	ProfitMarginPct *decimal.Decimal `gorm:"type:decimal(6,2);column:profit_margin_pct" json:"profit_margin_pct"`
	AvgOrderValue   *decimal.Decimal `gorm:"type:decimal(12,2);column:avg_order_value" json:"avg_order_value"`
}

// TableName specifies the table name for StoreProfitabilityRow
func (StoreProfitabilityRow) TableName() string {
	return "kpi_store_profitability"
}

// ViewModels returns all derived view row models for migration.
// These tables carry no foreign keys; they are rebuilt wholesale on export.
func ViewModels() []interface{} {
	return []interface{}{
		&StoreSalesRow{},
		&RegionSalesRow{},
		&ProductSalesRow{},
		&CategoryBrandSalesRow{},
		&StaffPerformanceRow{},
		&CustomerFrequencyRow{},
		&OrderFulfillmentRow{},
		&FulfillmentSummaryRow{},
		&InventorySnapshotRow{},
		&InventoryEfficiencyRow{},
		&CategoryEfficiencyRow{},
		&StoreProfitabilityRow{},
	}
}
