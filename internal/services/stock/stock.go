// Package stock owns inventory mutations. Every write goes through one
// transaction that applies the quantity change and reconciles the product's
// archive flag, so the "archived iff no stock anywhere" invariant cannot
// drift through this path.
package stock

import (
	"errors"
	"fmt"

	"github.com/threadcount/retailops/internal/database"
	"github.com/threadcount/retailops/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNegativeQuantity rejects an upsert below zero.
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	// ErrUnknownProduct marks an upsert against a missing product.
	ErrUnknownProduct = errors.New("product not found")
	// ErrUnknownLocation marks an upsert against a missing location.
	ErrUnknownLocation = errors.New("location not found")
)

// UpsertInput is one stock level write.
type UpsertInput struct {
	ProductID  string   `json:"productId"`
	LocationID string   `json:"locationId"`
	SizeName   string   `json:"sizeName"`
	Quantity   int      `json:"quantity"`
	Price      *float64 `json:"price"`
}

// Validate checks the input before touching the database.
func (in UpsertInput) Validate() error {
	if in.ProductID == "" || in.LocationID == "" {
		return fmt.Errorf("productId and locationId are required")
	}
	if in.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// Service mutates inventory rows.
type Service struct {
	db *database.DB
}

// NewService creates a stock service
func NewService(db *database.DB) *Service {
	return &Service{db: db}
}

// Upsert writes one stock level. Quantity zero deletes the row instead of
// storing a zero. Returns the resulting row, or nil when the row was
// deleted.
func (s *Service) Upsert(in UpsertInput) (*models.Inventory, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var result *models.Inventory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", in.ProductID).Error; err != nil {
			return ErrUnknownProduct
		}
		var count int64
		if err := tx.Model(&models.Location{}).Where("id = ?", in.LocationID).Count(&count).Error; err != nil || count == 0 {
			return ErrUnknownLocation
		}

		if in.Quantity == 0 {
			if err := tx.Where("product_id = ? AND location_id = ? AND size_name = ?",
				in.ProductID, in.LocationID, in.SizeName).Delete(&models.Inventory{}).Error; err != nil {
				return err
			}
		} else {
			row := models.Inventory{
				ProductID:  in.ProductID,
				LocationID: in.LocationID,
				SizeName:   in.SizeName,
				Quantity:   in.Quantity,
				Price:      in.Price,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "product_id"}, {Name: "location_id"}, {Name: "size_name"}},
				DoUpdates: clause.AssignmentColumns([]string{"quantity", "price", "updated_at"}),
			}).Create(&row).Error; err != nil {
				return err
			}
			result = &row
		}

		return ReconcileArchive(tx, in.ProductID)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ReconcileArchive re-derives the product archive flag from the remaining
// inventory rows. Must run inside the same transaction as the stock write.
func ReconcileArchive(tx *gorm.DB, productID string) error {
	var count int64
	if err := tx.Model(&models.Inventory{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return err
	}
	return tx.Model(&models.Product{}).Where("id = ?", productID).
		Update("is_archived", ShouldArchive(count)).Error
}

// ShouldArchive is the archive decision: a product with no inventory rows
// across all locations is archived.
func ShouldArchive(inventoryRows int64) bool {
	return inventoryRows == 0
}
