package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/threadcount/retailops/internal/config"
	"github.com/threadcount/retailops/internal/database"
	"github.com/threadcount/retailops/internal/middleware"
	"github.com/threadcount/retailops/internal/realtime"
	"github.com/threadcount/retailops/internal/services/locations"
	"github.com/threadcount/retailops/internal/services/staff"
	"github.com/threadcount/retailops/internal/services/stock"
	"github.com/threadcount/retailops/internal/storage"
)

// Router wraps the mux router and the service dependencies
type Router struct {
	*mux.Router
	db        *database.DB
	cfg       *config.Config
	hub       *realtime.Hub
	uploader  *storage.Uploader
	stock     *stock.Service
	staff     *staff.Service
	locations *locations.Service
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(db *database.DB, cfg *config.Config, hub *realtime.Hub, uploader *storage.Uploader) *Router {
	r := &Router{
		Router:    mux.NewRouter(),
		db:        db,
		cfg:       cfg,
		hub:       hub,
		uploader:  uploader,
		stock:     stock.NewService(db),
		staff:     staff.NewService(db),
		locations: locations.NewService(db),
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Auth routes
	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.login).Methods("POST")
	auth.HandleFunc("/logout", r.logout).Methods("POST")

	// Protected API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(db, cfg))

	api.HandleFunc("/me", r.me).Methods("GET")

	// Orders
	api.HandleFunc("/orders", r.listOrders).Methods("GET")
	api.HandleFunc("/orders", r.createOrder).Methods("POST")
	api.HandleFunc("/orders/{id}", r.getOrder).Methods("GET")
	api.HandleFunc("/orders/{id}/status", r.updateOrderStatus).Methods("POST")
	api.HandleFunc("/orders/{id}/packing-slip", r.orderPackingSlip).Methods("GET")
	api.HandleFunc("/orders/{id}/collection-qr", r.orderCollectionQR).Methods("GET")
	api.HandleFunc("/driver/tasks", r.listDriverTasks).Methods("GET")

	// Inventory
	api.HandleFunc("/inventory", r.listInventory).Methods("GET")
	api.HandleFunc("/inventory", r.upsertInventory).Methods("POST")

	// Products
	api.HandleFunc("/products", r.listProducts).Methods("GET")
	api.HandleFunc("/products", r.createProduct).Methods("POST")
	api.HandleFunc("/products/{id}", r.getProduct).Methods("GET")
	api.HandleFunc("/products/{id}", r.updateProduct).Methods("PUT")
	api.HandleFunc("/products/{id}/sizes", r.listProductSizes).Methods("GET")
	api.HandleFunc("/products/{id}/sizes/{size}", r.upsertProductSize).Methods("PUT")
	api.HandleFunc("/products/{id}/measurement-schema", r.productMeasurementSchema).Methods("GET")
	api.HandleFunc("/products/{id}/image", r.uploadProductImage).Methods("POST")

	// Locations
	api.HandleFunc("/locations", r.listLocations).Methods("GET")
	api.HandleFunc("/locations", r.createLocation).Methods("POST")
	api.HandleFunc("/locations/{id}", r.deleteLocation).Methods("DELETE")

	// Staff management (admin only)
	api.HandleFunc("/staff", r.listStaff).Methods("GET")
	api.HandleFunc("/staff", r.createStaff).Methods("POST")
	api.HandleFunc("/staff/{id}/reset-password", r.resetStaffPassword).Methods("POST")

	// Realtime feed
	r.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
		realtime.ServeWs(hub, w, req)
	})

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
