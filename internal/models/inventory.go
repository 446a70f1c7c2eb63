package models

import (
	"time"
)

// Inventory is the stock level of a product (optionally per size) at one
// location. A quantity of zero is never stored: the row is deleted instead,
// so "never stocked" and "explicitly depleted" look the same on read.
type Inventory struct {
	ID         string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ProductID  string `gorm:"type:uuid;uniqueIndex:idx_inventory_key;not null" json:"productId"`
	LocationID string `gorm:"type:uuid;uniqueIndex:idx_inventory_key;not null" json:"locationId"`

	// Empty for products without sizes.
	SizeName string `gorm:"uniqueIndex:idx_inventory_key;default:''" json:"sizeName,omitempty"`

	Quantity int `gorm:"not null" json:"quantity"`

	// Null means "use the product's default price".
	Price *float64 `json:"price,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Product  *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Location *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

// TableName specifies the table name for Inventory model
func (Inventory) TableName() string {
	return "inventory"
}
