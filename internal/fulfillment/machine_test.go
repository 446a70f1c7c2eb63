package fulfillment

import (
	"testing"

	"github.com/threadcount/retailops/internal/models"
	"github.com/threadcount/retailops/internal/session"
)

var allStatuses = []models.OrderStatus{
	models.StatusPaid, models.StatusPacked, models.StatusTransit,
	models.StatusReady, models.StatusDelivered, models.StatusCollected,
	models.StatusPOSComplete,
}

var allTypes = []models.FulfillmentType{
	models.FulfillmentPickup, models.FulfillmentCourier,
	models.FulfillmentWarehousePickup, models.FulfillmentPOS,
}

// legal is the expected machine, written out independently of the
// implementation table.
var legal = map[[2]string]models.OrderStatus{
	{"paid", "courier"}:            models.StatusPacked,
	{"paid", "pickup"}:             models.StatusPacked,
	{"paid", "warehouse_pickup"}:   models.StatusPacked,
	{"packed", "courier"}:          models.StatusTransit,
	{"packed", "pickup"}:           models.StatusReady,
	{"packed", "warehouse_pickup"}: models.StatusReady,
	{"transit", "courier"}:         models.StatusDelivered,
	{"ready", "pickup"}:            models.StatusCollected,
	{"ready", "warehouse_pickup"}:  models.StatusCollected,
}

func TestTransitionGrid(t *testing.T) {
	for _, status := range allStatuses {
		for _, ftype := range allTypes {
			tr, ok := Next(status, ftype)
			want, legalPair := legal[[2]string{string(status), string(ftype)}]
			if legalPair != ok {
				t.Errorf("Next(%s, %s): legality = %v, want %v", status, ftype, ok, legalPair)
				continue
			}
			if ok && tr.To != want {
				t.Errorf("Next(%s, %s) = %s, want %s", status, ftype, tr.To, want)
			}
		}
	}
}

func TestPackedForksOnFulfillmentType(t *testing.T) {
	courier, _ := Next(models.StatusPacked, models.FulfillmentCourier)
	pickup, _ := Next(models.StatusPacked, models.FulfillmentPickup)

	if courier.To != models.StatusTransit {
		t.Errorf("packed courier order should go to transit, got %s", courier.To)
	}
	if pickup.To != models.StatusReady {
		t.Errorf("packed pickup order should go to ready, got %s", pickup.To)
	}
}

func TestTerminalStatesAcceptNothing(t *testing.T) {
	for _, status := range []models.OrderStatus{models.StatusDelivered, models.StatusCollected, models.StatusPOSComplete} {
		for _, ftype := range allTypes {
			if _, ok := Next(status, ftype); ok {
				t.Errorf("terminal status %s (%s) should accept no transition", status, ftype)
			}
		}
	}
}

func TestCourierScenario(t *testing.T) {
	order := &models.Order{Status: models.StatusPacked, FulfillmentType: models.FulfillmentCourier}

	tr, ok := Next(order.Status, order.FulfillmentType)
	if !ok || tr.Action != "Dispatch to Courier" || tr.To != models.StatusTransit {
		t.Fatalf("packed courier order should offer exactly 'Dispatch to Courier' -> transit, got %+v", tr)
	}

	order.Status = tr.To
	tr, ok = Next(order.Status, order.FulfillmentType)
	if !ok || tr.Action != "Delivered" || tr.Actor != ActorDriver {
		t.Fatalf("transit courier order should offer exactly 'Delivered' for drivers, got %+v", tr)
	}
}

func TestValidateActorGates(t *testing.T) {
	staff := session.Capabilities{IsManager: true}
	driver := session.Capabilities{IsDriver: true}

	courier := &models.Order{Status: models.StatusTransit, FulfillmentType: models.FulfillmentCourier}
	if err := Validate(driver, courier, models.StatusDelivered); err != nil {
		t.Errorf("driver should deliver a transit courier order: %v", err)
	}
	if err := Validate(staff, courier, models.StatusDelivered); err != ErrActorNotPermitted {
		t.Errorf("staff delivering should be rejected, got %v", err)
	}

	paid := &models.Order{Status: models.StatusPaid, FulfillmentType: models.FulfillmentPickup}
	if err := Validate(staff, paid, models.StatusPacked); err != nil {
		t.Errorf("staff should pack a paid order: %v", err)
	}
	if err := Validate(driver, paid, models.StatusPacked); err != ErrActorNotPermitted {
		t.Errorf("driver packing should be rejected, got %v", err)
	}
}

func TestValidateRejectsWrongTarget(t *testing.T) {
	staff := session.Capabilities{IsAdmin: true}
	order := &models.Order{Status: models.StatusPacked, FulfillmentType: models.FulfillmentCourier}

	// Legal successor is transit; anything else is illegal even for an admin.
	if err := Validate(staff, order, models.StatusReady); err != ErrIllegalTransition {
		t.Errorf("expected ErrIllegalTransition, got %v", err)
	}
	if err := Validate(staff, order, models.StatusDelivered); err != ErrIllegalTransition {
		t.Errorf("skipping a state should be rejected, got %v", err)
	}
}

func TestIsDriverTask(t *testing.T) {
	tests := []struct {
		status models.OrderStatus
		ftype  models.FulfillmentType
		want   bool
	}{
		{models.StatusTransit, models.FulfillmentCourier, true},
		{models.StatusPacked, models.FulfillmentCourier, false},
		{models.StatusPacked, models.FulfillmentPickup, true},
		{models.StatusPacked, models.FulfillmentWarehousePickup, true},
		{models.StatusReady, models.FulfillmentPickup, false},
		{models.StatusDelivered, models.FulfillmentCourier, false},
		{models.StatusPOSComplete, models.FulfillmentPOS, false},
	}

	for _, tt := range tests {
		order := &models.Order{Status: tt.status, FulfillmentType: tt.ftype}
		if got := IsDriverTask(order); got != tt.want {
			t.Errorf("IsDriverTask(%s, %s) = %v, want %v", tt.status, tt.ftype, got, tt.want)
		}
	}
}
