package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/threadcount/retailops/internal/middleware"
	"github.com/threadcount/retailops/internal/models"
	"github.com/threadcount/retailops/internal/services/staff"
)

// listStaff returns all portal accounts (admin only)
func (r *Router) listStaff(w http.ResponseWriter, req *http.Request) {
	sess, _ := middleware.GetSession(req.Context())
	if !sess.Caps.IsAdmin {
		respondError(w, http.StatusForbidden, "Access denied")
		return
	}

	var profiles []models.Profile
	if err := r.db.Where("role IN ?", []models.Role{models.RoleAdmin, models.RoleManager, models.RoleDriver}).
		Preload("AssignedLocation").Order("full_name ASC").Find(&profiles).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch staff")
		return
	}
	respondJSON(w, http.StatusOK, profiles)
}

// createStaff provisions a new staff account (admin only)
func (r *Router) createStaff(w http.ResponseWriter, req *http.Request) {
	sess, _ := middleware.GetSession(req.Context())
	if !sess.Caps.IsAdmin {
		respondError(w, http.StatusForbidden, "Access denied")
		return
	}

	var input staff.CreateInput
	if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	profile, err := r.staff.Create(input)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, profile)
}

// ResetPasswordRequest carries the new credential
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// resetStaffPassword replaces another user's password (admin only)
func (r *Router) resetStaffPassword(w http.ResponseWriter, req *http.Request) {
	sess, _ := middleware.GetSession(req.Context())
	if !sess.Caps.IsAdmin {
		respondError(w, http.StatusForbidden, "Access denied")
		return
	}
	vars := mux.Vars(req)

	var resetReq ResetPasswordRequest
	if err := json.NewDecoder(req.Body).Decode(&resetReq); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	err := r.staff.ResetPassword(vars["id"], resetReq.Password)
	switch {
	case errors.Is(err, staff.ErrNotFound):
		respondError(w, http.StatusNotFound, "Profile not found")
		return
	case err != nil:
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Password reset"})
}
