package models

import (
	"github.com/shopspring/decimal"
)

// Product represents products table
type Product struct {
	ProductID   uint            `gorm:"primaryKey;column:product_id" json:"product_id"`
	ProductName string          `gorm:"type:varchar(255);not null" json:"product_name"`
	BrandID     uint            `gorm:"not null" json:"brand_id"`
	CategoryID  uint            `gorm:"not null" json:"category_id"`
	ModelYear   int             `gorm:"not null" json:"model_year"`
	ListPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"list_price"`

	// Relationships
	Brand    Brand    `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}
