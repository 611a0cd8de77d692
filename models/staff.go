package models

import "fmt"

// Staff represents staffs table
type Staff struct {
	StaffID   uint    `gorm:"primaryKey;column:staff_id" json:"staff_id"`
	FirstName string  `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName  string  `gorm:"type:varchar(50);not null" json:"last_name"`
	Email     string  `gorm:"type:varchar(255);not null;unique" json:"email"`
	Phone     *string `gorm:"type:varchar(25)" json:"phone,omitempty"`
	Active    bool    `gorm:"not null;default:true" json:"active"`
	StoreID   uint    `gorm:"not null" json:"store_id"`
	ManagerID *uint   `json:"manager_id,omitempty"`

	// Relationships
	Store   Store  `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Manager *Staff `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
}

// TableName specifies the table name for Staff
func (Staff) TableName() string {
	return "staffs"
}

// FullName returns the staff member's display name
func (s Staff) FullName() string {
	return fmt.Sprintf("%s %s", s.FirstName, s.LastName)
}
