package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/threadcount/retailops/internal/middleware"
	"github.com/threadcount/retailops/internal/models"
	"github.com/threadcount/retailops/internal/scope"
	"github.com/threadcount/retailops/internal/services/stock"
)

// listInventory returns stock rows narrowed by the caller's role
func (r *Router) listInventory(w http.ResponseWriter, req *http.Request) {
	sess, _ := middleware.GetSession(req.Context())

	visibility, err := scope.ForInventory(sess)
	if err != nil {
		respondError(w, http.StatusForbidden, "Access denied")
		return
	}

	var rows []models.Inventory
	q := r.db.Scopes(visibility.Apply("location_id")).
		Preload("Product").Preload("Location")
	if err := q.Find(&rows).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch inventory")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// upsertInventory writes one stock level. Managers may only write inside
// their assigned location.
func (r *Router) upsertInventory(w http.ResponseWriter, req *http.Request) {
	sess, _ := middleware.GetSession(req.Context())
	if !sess.Caps.Staff() {
		respondError(w, http.StatusForbidden, "Access denied")
		return
	}

	var input stock.UpsertInput
	if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if sess.Caps.IsManager {
		assigned := sess.Profile.AssignedLocationID
		if assigned == nil || *assigned != input.LocationID {
			respondError(w, http.StatusForbidden, "Managers may only write stock at their assigned location")
			return
		}
	}

	row, err := r.stock.Upsert(input)
	switch {
	case errors.Is(err, stock.ErrNegativeQuantity):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, stock.ErrUnknownProduct), errors.Is(err, stock.ErrUnknownLocation):
		respondError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Stock write rejected")
		return
	}

	r.hub.NotifyInventory("update")

	if row == nil {
		// Quantity zero: the row is gone, not stored as zero.
		respondJSON(w, http.StatusOK, map[string]string{"message": "Stock level depleted, row removed"})
		return
	}
	respondJSON(w, http.StatusOK, row)
}
