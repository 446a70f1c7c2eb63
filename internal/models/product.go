package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product is a catalog entry. Categories drive the measurement schema
// (see internal/sizing); Sizes is the denormalized ordered list of size
// names, kept in step with the ProductSize rows by the handlers.
type Product struct {
	ID   string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name string `gorm:"not null" json:"name"`
	SKU  string `gorm:"uniqueIndex;not null" json:"sku"`

	Categories datatypes.JSONSlice[string] `json:"categories"`

	// Used only for measurement-schema selection, never listed as a category.
	ClothingType string `json:"clothingType,omitempty"`

	Sizes                   datatypes.JSONSlice[string] `json:"sizes"`
	AllowCustomMeasurements bool                        `gorm:"default:false" json:"allowCustomMeasurements"`

	WeightGrams  int     `json:"weightGrams"`
	DefaultPrice float64 `json:"defaultPrice"`
	ImageURL     string  `json:"imageUrl,omitempty"`

	// True iff the product has no inventory rows at any location.
	// Reconciled after every stock mutation, not a DB constraint.
	IsArchived bool `gorm:"default:false;index" json:"isArchived"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Product model
func (Product) TableName() string {
	return "products"
}
