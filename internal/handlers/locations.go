package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/threadcount/retailops/internal/middleware"
	"github.com/threadcount/retailops/internal/models"
	"github.com/threadcount/retailops/internal/services/locations"
)

// listLocations returns all locations
func (r *Router) listLocations(w http.ResponseWriter, req *http.Request) {
	var locs []models.Location
	if err := r.db.Order("name ASC").Find(&locs).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch locations")
		return
	}
	respondJSON(w, http.StatusOK, locs)
}

// createLocation adds a store, warehouse or courier hub (admin only)
func (r *Router) createLocation(w http.ResponseWriter, req *http.Request) {
	sess, _ := middleware.GetSession(req.Context())
	if !sess.Caps.IsAdmin {
		respondError(w, http.StatusForbidden, "Access denied")
		return
	}

	var loc models.Location
	if err := json.NewDecoder(req.Body).Decode(&loc); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if loc.Name == "" {
		respondError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if err := r.db.Create(&loc).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create location")
		return
	}
	respondJSON(w, http.StatusCreated, loc)
}

// deleteLocation removes a location and every reference to it in one
// transaction (admin only)
func (r *Router) deleteLocation(w http.ResponseWriter, req *http.Request) {
	sess, _ := middleware.GetSession(req.Context())
	if !sess.Caps.IsAdmin {
		respondError(w, http.StatusForbidden, "Access denied")
		return
	}
	vars := mux.Vars(req)

	err := r.locations.Delete(vars["id"])
	switch {
	case errors.Is(err, locations.ErrNotFound):
		respondError(w, http.StatusNotFound, "Location not found")
		return
	case err != nil:
		// The transaction rolled back; the error names the failing step.
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	r.hub.NotifyOrders("update", "")
	respondJSON(w, http.StatusOK, map[string]string{"message": "Location deleted"})
}
