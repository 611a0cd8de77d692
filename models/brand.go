package models

// Brand represents brands table
type Brand struct {
	BrandID   uint   `gorm:"primaryKey;column:brand_id" json:"brand_id"`
	BrandName string `gorm:"type:varchar(255);not null" json:"brand_name"`
}

// TableName specifies the table name for Brand
func (Brand) TableName() string {
	return "brands"
}
