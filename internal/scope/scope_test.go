package scope

import (
	"testing"

	"github.com/threadcount/retailops/internal/models"
	"github.com/threadcount/retailops/internal/session"
)

func managerSession(locationID *string) *session.Session {
	return &session.Session{
		Profile: &models.Profile{Role: models.RoleManager, AssignedLocationID: locationID, IsActive: true},
		Caps:    session.CapabilitiesFor(models.RoleManager),
	}
}

func roleSession(role models.Role) *session.Session {
	return &session.Session{
		Profile: &models.Profile{Role: role, IsActive: true},
		Caps:    session.CapabilitiesFor(role),
	}
}

func TestForInventoryAdmin(t *testing.T) {
	v, err := ForInventory(roleSession(models.RoleAdmin))
	if err != nil {
		t.Fatal(err)
	}
	if !v.All || v.LocationID != "" || v.Empty {
		t.Errorf("admin inventory visibility should be unfiltered, got %+v", v)
	}
}

func TestForInventoryManager(t *testing.T) {
	loc := "loc-42"
	v, err := ForInventory(managerSession(&loc))
	if err != nil {
		t.Fatal(err)
	}
	if v.LocationID != "loc-42" || v.All || v.Empty {
		t.Errorf("manager inventory should filter to loc-42, got %+v", v)
	}
}

func TestForInventoryManagerWithoutLocation(t *testing.T) {
	// Not an error: a manager with no assignment sees an empty set.
	v, err := ForInventory(managerSession(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Empty {
		t.Errorf("unassigned manager should get the degenerate filter, got %+v", v)
	}
}

func TestForInventoryDriverForbidden(t *testing.T) {
	if _, err := ForInventory(roleSession(models.RoleDriver)); err != ErrForbidden {
		t.Errorf("driver inventory access should be forbidden, got %v", err)
	}
}

func TestForOrdersDriver(t *testing.T) {
	v := ForOrders(roleSession(models.RoleDriver))
	if !v.DriverTasks {
		t.Errorf("driver orders should use the task subset, got %+v", v)
	}
	if v.LocationID != "" {
		t.Error("drivers never filter by location")
	}
}

func TestForOrdersManager(t *testing.T) {
	loc := "loc-42"
	v := ForOrders(managerSession(&loc))
	if v.LocationID != "loc-42" {
		t.Errorf("manager orders should filter to the assigned location, got %+v", v)
	}
}

func TestForOrdersAdmin(t *testing.T) {
	if v := ForOrders(roleSession(models.RoleAdmin)); !v.All {
		t.Errorf("admin orders should be unfiltered, got %+v", v)
	}
}
