package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus type for order lifecycle states
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderRejected   OrderStatus = "rejected"
	OrderCompleted  OrderStatus = "completed"
)

// Valid reports whether s is one of the known order states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderRejected, OrderCompleted:
		return true
	}
	return false
}

// Order represents orders table
type Order struct {
	OrderID      uint        `gorm:"primaryKey;column:order_id" json:"order_id"`
	CustomerID   uint        `gorm:"not null" json:"customer_id"`
	OrderStatus  OrderStatus `gorm:"type:varchar(20);not null" json:"order_status"`
	OrderDate    time.Time   `gorm:"type:date;not null" json:"order_date"`
	RequiredDate *time.Time  `gorm:"type:date" json:"required_date,omitempty"`
	ShippedDate  *time.Time  `gorm:"type:date" json:"shipped_date,omitempty"`
	StoreID      uint        `gorm:"not null" json:"store_id"`
	StaffID      uint        `gorm:"not null" json:"staff_id"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Store    Store    `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Staff    Staff    `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	// Reverse relationships - commented out to avoid circular dependency issues during migration
	// Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents order_items table
type OrderItem struct {
	OrderID   uint            `gorm:"primaryKey;column:order_id" json:"order_id"`
	ItemID    uint            `gorm:"primaryKey;column:item_id" json:"item_id"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	Quantity  int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	ListPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"list_price"`
	Discount  decimal.Decimal `gorm:"type:decimal(4,2);not null;default:0" json:"discount"`

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for OrderItem
func (OrderItem) TableName() string {
	return "order_items"
}

// NetSale returns quantity * list_price * (1 - discount) rounded to cents.
// Every revenue figure in the derived views is a sum of these line amounts.
func (i OrderItem) NetSale() decimal.Decimal {
	qty := decimal.NewFromInt(int64(i.Quantity))
	factor := decimal.NewFromInt(1).Sub(i.Discount)
	return qty.Mul(i.ListPrice).Mul(factor).Round(2)
}
