package models

// Store represents stores table
type Store struct {
	StoreID   uint    `gorm:"primaryKey;column:store_id" json:"store_id"`
	StoreName string  `gorm:"type:varchar(255);not null" json:"store_name"`
	Phone     *string `gorm:"type:varchar(25)" json:"phone,omitempty"`
	Email     *string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Street    *string `gorm:"type:varchar(255)" json:"street,omitempty"`
	City      *string `gorm:"type:varchar(255)" json:"city,omitempty"`
	State     *string `gorm:"type:varchar(10)" json:"state,omitempty"`
	ZipCode   *string `gorm:"type:varchar(5)" json:"zip_code,omitempty"`
}

// TableName specifies the table name for Store
func (Store) TableName() string {
	return "stores"
}

// Stock represents stocks table (quantity on hand per store and product)
type Stock struct {
	StoreID   uint `gorm:"primaryKey;column:store_id" json:"store_id"`
	ProductID uint `gorm:"primaryKey;column:product_id" json:"product_id"`
	Quantity  int  `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"`

	// Relationships
	Store   Store   `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for Stock
func (Stock) TableName() string {
	return "stocks"
}
