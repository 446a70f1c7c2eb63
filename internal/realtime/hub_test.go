package realtime

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubBroadcastsOrderEvents(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.register <- client

	hub.NotifyOrders("update", "order-1")

	select {
	case msg := <-client.send:
		var ev Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			t.Fatalf("bad event payload: %v", err)
		}
		if ev.Table != "orders" || ev.Action != "update" || ev.ID != "order-1" {
			t.Errorf("unexpected event: %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive the event")
	}
}

func TestHubUnregisterClosesSendOnce(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.register <- client
	hub.unregister <- client

	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("send channel should be closed after unregister")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}

	// A second unregister for the same client must be a no-op, not a double
	// close.
	done := make(chan struct{})
	go func() {
		hub.unregister <- client
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("duplicate unregister blocked")
	}
}

func TestHubDropsEventsForSlowConsumers(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// Unbuffered consumer that never reads.
	client := &Client{hub: hub, send: make(chan []byte)}
	hub.register <- client

	// Must not block the hub loop.
	hub.NotifyInventory("update")
	hub.NotifyOrders("insert", "order-2")

	healthy := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.register <- healthy
	hub.NotifyOrders("delete", "order-3")

	select {
	case <-healthy.send:
	case <-time.After(time.Second):
		t.Fatal("hub loop appears blocked by a slow consumer")
	}
}
