package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/threadcount/retailops/internal/middleware"
	"github.com/threadcount/retailops/internal/models"
	"github.com/threadcount/retailops/internal/session"
	"github.com/threadcount/retailops/internal/utils"
)

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login authenticates a staff member for the portal. Wrong credentials and
// "your role has no portal access" are distinct errors on purpose: only the
// latter should force a sign-out on an otherwise valid account.
func (r *Router) login(w http.ResponseWriter, req *http.Request) {
	var loginReq LoginRequest
	if err := json.NewDecoder(req.Body).Decode(&loginReq); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var profile models.Profile
	if err := r.db.Where("email = ?", loginReq.Email).First(&profile).Error; err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !utils.CheckPasswordHash(loginReq.Password, profile.Password) {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	sess, err := session.Resolve(&profile)
	if err != nil {
		respondError(w, http.StatusForbidden, "Access denied for this portal")
		return
	}

	now := time.Now()
	profile.LastLogin = &now
	r.db.Save(&profile)

	accessToken, refreshToken, err := utils.GenerateTokens(&profile, r.cfg)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate tokens")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"tokens": map[string]string{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		},
		"user": profile,
		"capabilities": sess.Caps,
	})
}

// logout handles user logout
func (r *Router) logout(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// me returns the resolved session for the current token
func (r *Router) me(w http.ResponseWriter, req *http.Request) {
	sess, ok := middleware.GetSession(req.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "No session")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user":         sess.Profile,
		"capabilities": sess.Caps,
	})
}
