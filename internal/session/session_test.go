package session

import (
	"testing"

	"github.com/threadcount/retailops/internal/models"
)

func TestCapabilitiesFor(t *testing.T) {
	tests := []struct {
		role models.Role
		want Capabilities
	}{
		{models.RoleAdmin, Capabilities{IsAdmin: true}},
		{models.RoleManager, Capabilities{IsManager: true}},
		{models.RoleDriver, Capabilities{IsDriver: true}},
		{models.RoleCustomer, Capabilities{}},
		{models.Role("superuser"), Capabilities{}},
	}

	for _, tt := range tests {
		got := CapabilitiesFor(tt.role)
		if got != tt.want {
			t.Errorf("CapabilitiesFor(%q) = %+v, want %+v", tt.role, got, tt.want)
		}
	}
}

func TestStaffFlag(t *testing.T) {
	if !(Capabilities{IsAdmin: true}).Staff() {
		t.Error("admin should have staff capability")
	}
	if !(Capabilities{IsManager: true}).Staff() {
		t.Error("manager should have staff capability")
	}
	if (Capabilities{IsDriver: true}).Staff() {
		t.Error("driver should not have staff capability")
	}
}

func TestResolve(t *testing.T) {
	s, err := Resolve(&models.Profile{Role: models.RoleManager, IsActive: true})
	if err != nil {
		t.Fatalf("Resolve manager: %v", err)
	}
	if !s.Caps.IsManager || s.Caps.IsAdmin || s.Caps.IsDriver {
		t.Errorf("unexpected capabilities: %+v", s.Caps)
	}
}

func TestResolveRejectsCustomer(t *testing.T) {
	_, err := Resolve(&models.Profile{Role: models.RoleCustomer, IsActive: true})
	if err != ErrAccessDenied {
		t.Errorf("expected ErrAccessDenied, got %v", err)
	}
}

func TestResolveRejectsInactive(t *testing.T) {
	_, err := Resolve(&models.Profile{Role: models.RoleAdmin, IsActive: false})
	if err != ErrAccessDenied {
		t.Errorf("expected ErrAccessDenied, got %v", err)
	}
}

func TestResolveRejectsNil(t *testing.T) {
	if _, err := Resolve(nil); err != ErrAccessDenied {
		t.Errorf("expected ErrAccessDenied, got %v", err)
	}
}
