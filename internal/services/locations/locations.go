// Package locations owns the location lifecycle. Deletion dereferences every
// dependent row (orders, inventory, staff assignments) and removes the
// location inside a single transaction, so a failing step leaves nothing
// half-deleted.
package locations

import (
	"errors"
	"fmt"

	"github.com/threadcount/retailops/internal/database"
	"github.com/threadcount/retailops/internal/models"
	"github.com/threadcount/retailops/internal/services/stock"
	"gorm.io/gorm"
)

// ErrNotFound marks an operation against an unknown location.
var ErrNotFound = errors.New("location not found")

// Service manages location rows.
type Service struct {
	db *database.DB
}

// NewService creates a locations service
func NewService(db *database.DB) *Service {
	return &Service{db: db}
}

// Delete removes a location after clearing every reference to it. The whole
// cascade runs in one transaction: either all steps commit or none do.
func (s *Service) Delete(locationID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Location{}).Where("id = ?", locationID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}

		if err := tx.Model(&models.Order{}).Where("pickup_location_id = ?", locationID).
			Update("pickup_location_id", nil).Error; err != nil {
			return fmt.Errorf("clearing order references: %w", err)
		}
		var productIDs []string
		if err := tx.Model(&models.Inventory{}).Distinct("product_id").
			Where("location_id = ?", locationID).Pluck("product_id", &productIDs).Error; err != nil {
			return fmt.Errorf("listing affected products: %w", err)
		}
		if err := tx.Where("location_id = ?", locationID).Delete(&models.Inventory{}).Error; err != nil {
			return fmt.Errorf("removing inventory rows: %w", err)
		}
		// Products whose last stock lived here flip to archived.
		for _, productID := range productIDs {
			if err := stock.ReconcileArchive(tx, productID); err != nil {
				return fmt.Errorf("reconciling product %s: %w", productID, err)
			}
		}
		if err := tx.Model(&models.Profile{}).Where("assigned_location_id = ?", locationID).
			Update("assigned_location_id", nil).Error; err != nil {
			return fmt.Errorf("clearing staff assignments: %w", err)
		}
		if err := tx.Where("id = ?", locationID).Delete(&models.Location{}).Error; err != nil {
			return fmt.Errorf("deleting location: %w", err)
		}
		return nil
	})
}
