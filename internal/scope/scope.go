// Package scope narrows list queries by role. The decision of WHAT to filter
// is a pure function of the session (testable without a database); applying
// it is a gorm scope. Scopes are re-derived from the session on every
// request, never cached, so role or location reassignment takes effect on
// the next fetch.
package scope

import (
	"errors"

	"github.com/threadcount/retailops/internal/models"
	"github.com/threadcount/retailops/internal/session"
	"gorm.io/gorm"
)

// ErrForbidden marks a dataset the role may not read at all.
var ErrForbidden = errors.New("role may not access this dataset")

// Visibility describes the narrowing applied to a list query.
type Visibility struct {
	// All grants an unfiltered view.
	All bool
	// LocationID, when set, restricts rows to this location.
	LocationID string
	// Empty yields a degenerate empty result set. Used for managers without
	// an assigned location; by design this is not an error.
	Empty bool
	// DriverTasks restricts orders to the driver-actionable status subsets.
	DriverTasks bool
}

// ForInventory returns the inventory visibility for a session. Drivers have
// no inventory access.
func ForInventory(s *session.Session) (Visibility, error) {
	switch {
	case s.Caps.IsAdmin:
		return Visibility{All: true}, nil
	case s.Caps.IsManager:
		if s.Profile.AssignedLocationID == nil {
			return Visibility{Empty: true}, nil
		}
		return Visibility{LocationID: *s.Profile.AssignedLocationID}, nil
	default:
		return Visibility{}, ErrForbidden
	}
}

// ForOrders returns the order visibility for a session. Drivers see the
// fulfillment-relevant subsets across the whole network - never a location
// filter.
func ForOrders(s *session.Session) Visibility {
	switch {
	case s.Caps.IsAdmin:
		return Visibility{All: true}
	case s.Caps.IsManager:
		if s.Profile.AssignedLocationID == nil {
			return Visibility{Empty: true}
		}
		return Visibility{LocationID: *s.Profile.AssignedLocationID}
	default:
		return Visibility{DriverTasks: true}
	}
}

// Apply turns the visibility into a gorm scope. locationColumn names the
// column a location restriction filters on (location_id for inventory,
// pickup_location_id for orders).
func (v Visibility) Apply(locationColumn string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case v.Empty:
			// Degenerate filter: matches nothing.
			return db.Where("1 = 0")
		case v.DriverTasks:
			return db.Where(
				"(fulfillment_type = ? AND status = ?) OR (fulfillment_type IN ? AND status = ?)",
				models.FulfillmentCourier, models.StatusTransit,
				[]models.FulfillmentType{models.FulfillmentPickup, models.FulfillmentWarehousePickup},
				models.StatusPacked,
			)
		case v.LocationID != "":
			return db.Where(locationColumn+" = ?", v.LocationID)
		default:
			return db
		}
	}
}
