package models

import (
	"time"

	"gorm.io/gorm"
)

// LocationType defines the kind of location
type LocationType string

const (
	LocationStore          LocationType = "store"
	LocationWarehouse      LocationType = "warehouse"
	LocationVirtualCourier LocationType = "virtual_courier"
)

// Location is a store, warehouse or virtual courier hub. Referenced by
// Profile (assignment), Inventory (stock location) and Order (pickup point).
type Location struct {
	ID      string       `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name    string       `gorm:"not null" json:"name"`
	Type    LocationType `gorm:"default:'store';index" json:"type"`
	Address string       `json:"address"`

	// Optional geocoordinate for the address
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Location model
func (Location) TableName() string {
	return "locations"
}
