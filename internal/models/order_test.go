package models

import (
	"strings"
	"testing"
)

func TestOrderNumberGeneration(t *testing.T) {
	order := &Order{FulfillmentType: FulfillmentCourier}
	if err := order.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate: %v", err)
	}
	if !strings.HasPrefix(order.OrderNumber, "ORD") {
		t.Errorf("courier order number should start with ORD, got %s", order.OrderNumber)
	}

	pos := &Order{FulfillmentType: FulfillmentPOS}
	if err := pos.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate: %v", err)
	}
	if !strings.HasPrefix(pos.OrderNumber, "POS") {
		t.Errorf("pos order number should start with POS, got %s", pos.OrderNumber)
	}

	// Pre-set numbers are kept
	fixed := &Order{OrderNumber: "ORD20250101-XXXX"}
	_ = fixed.BeforeCreate(nil)
	if fixed.OrderNumber != "ORD20250101-XXXX" {
		t.Error("existing order number must not be regenerated")
	}
}

func TestOrderNumbersDistinctInTightLoop(t *testing.T) {
	// Orders created back to back in the same instant must still get
	// distinct numbers, or the unique index on order_number rejects them.
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		order := &Order{FulfillmentType: FulfillmentCourier}
		if err := order.BeforeCreate(nil); err != nil {
			t.Fatalf("BeforeCreate: %v", err)
		}
		if seen[order.OrderNumber] {
			t.Fatalf("duplicate order number %s after %d orders", order.OrderNumber, i)
		}
		seen[order.OrderNumber] = true
	}
}

func TestIsTerminal(t *testing.T) {
	for _, status := range []OrderStatus{StatusDelivered, StatusCollected, StatusPOSComplete} {
		if !(&Order{Status: status}).IsTerminal() {
			t.Errorf("%s should be terminal", status)
		}
	}
	for _, status := range []OrderStatus{StatusPaid, StatusPacked, StatusTransit, StatusReady} {
		if (&Order{Status: status}).IsTerminal() {
			t.Errorf("%s should not be terminal", status)
		}
	}
}
