package models

import "fmt"

// Customer represents customers table
type Customer struct {
	CustomerID uint    `gorm:"primaryKey;column:customer_id" json:"customer_id"`
	FirstName  string  `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName   string  `gorm:"type:varchar(255);not null" json:"last_name"`
	Phone      *string `gorm:"type:varchar(25)" json:"phone,omitempty"`
	Email      string  `gorm:"type:varchar(255);not null" json:"email"`
	Street     *string `gorm:"type:varchar(255)" json:"street,omitempty"`
	City       *string `gorm:"type:varchar(255)" json:"city,omitempty"`
	State      *string `gorm:"type:varchar(25)" json:"state,omitempty"`
	ZipCode    *string `gorm:"type:varchar(5)" json:"zip_code,omitempty"`
}

// TableName specifies the table name for Customer
func (Customer) TableName() string {
	return "customers"
}

// FullName returns the customer's display name
func (c Customer) FullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}
