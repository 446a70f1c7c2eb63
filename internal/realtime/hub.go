// Package realtime pushes change notifications to connected portal views.
// Clients subscribe once per mounted view and refetch their current query on
// every event; the feed itself is unfiltered, scoping happens on the refetch.
package realtime

import (
	"encoding/json"
	"log"
	"sync"
)

// Event is one change notification.
type Event struct {
	Table  string `json:"table"`
	Action string `json:"action"` // insert | update | delete
	ID     string `json:"id,omitempty"`
}

// Hub maintains the set of active subscribers and broadcasts events
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			active := len(h.clients)
			h.mu.Unlock()
			log.Printf("🔔 View subscribed (%d active)", active)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			active := len(h.clients)
			h.mu.Unlock()
			log.Printf("🔕 View unsubscribed (%d active)", active)

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; it will refetch on reconnect.
				}
			}
			h.mu.RUnlock()
		}
	}
}

// NotifyOrders broadcasts an orders-table change event to every subscriber.
func (h *Hub) NotifyOrders(action, orderID string) {
	h.notify(Event{Table: "orders", Action: action, ID: orderID})
}

// NotifyInventory broadcasts an inventory-table change event.
func (h *Hub) NotifyInventory(action string) {
	h.notify(Event{Table: "inventory", Action: action})
}

func (h *Hub) notify(ev Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		log.Printf("Error marshaling event: %v", err)
		return
	}
	h.broadcast <- msg
}
