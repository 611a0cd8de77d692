package models

// Category represents categories table
type Category struct {
	CategoryID   uint   `gorm:"primaryKey;column:category_id" json:"category_id"`
	CategoryName string `gorm:"type:varchar(255);not null" json:"category_name"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
