package models

import (
	"time"
)

// ProductSize holds the measurements for one size of one product. All
// measurement fields are nullable on purpose: only the fields of the
// product's detected category are expected to be filled, but older values
// from a prior categorization may remain and are not purged.
type ProductSize struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ProductID string `gorm:"type:uuid;uniqueIndex:idx_product_size;not null" json:"productId"`
	SizeName  string `gorm:"uniqueIndex:idx_product_size;not null" json:"sizeName"`

	// Garment measurements (cm)
	Chest        *float64 `json:"chest,omitempty"`
	Waist        *float64 `json:"waist,omitempty"`
	Hip          *float64 `json:"hip,omitempty"`
	Inseam       *float64 `json:"inseam,omitempty"`
	Shoulder     *float64 `json:"shoulder,omitempty"`
	SleeveLength *float64 `json:"sleeveLength,omitempty"`
	FrontLength  *float64 `json:"frontLength,omitempty"`
	BackLength   *float64 `json:"backLength,omitempty"`
	Thigh        *float64 `json:"thigh,omitempty"`

	// Footwear
	ShoeSizeUS *float64 `json:"shoeSizeUs,omitempty"`
	ShoeSizeEU *float64 `json:"shoeSizeEu,omitempty"`
	FootLength *float64 `json:"footLength,omitempty"`
	FootWidth  *float64 `json:"footWidth,omitempty"`

	// Belts
	BeltLength *float64 `json:"beltLength,omitempty"`
	BeltWidth  *float64 `json:"beltWidth,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}

// TableName specifies the table name for ProductSize model
func (ProductSize) TableName() string {
	return "product_sizes"
}
