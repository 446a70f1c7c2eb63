// Package session resolves an authenticated profile into an explicit set of
// capability flags. The flags are derived exactly once per request and are
// the only role artifact the rest of the code consumes - downstream packages
// never inspect the role string again.
package session

import (
	"errors"

	"github.com/threadcount/retailops/internal/models"
)

// ErrAccessDenied marks an authenticated user whose role has no portal
// access. Handlers map it to 403, distinct from invalid credentials.
var ErrAccessDenied = errors.New("access denied for this portal")

// Capabilities is the closed set of permission flags for the staff portal.
type Capabilities struct {
	IsAdmin   bool `json:"isAdmin"`
	IsManager bool `json:"isManager"`
	IsDriver  bool `json:"isDriver"`
}

// Staff reports whether the session may perform staff actions
// (pack, dispatch, ready, collect).
func (c Capabilities) Staff() bool {
	return c.IsAdmin || c.IsManager
}

// Session carries the resolved profile and its capabilities for one request.
type Session struct {
	Profile *models.Profile
	Caps    Capabilities
}

// CapabilitiesFor derives the capability flags from a role. Unknown roles and
// customers get the zero value.
func CapabilitiesFor(role models.Role) Capabilities {
	return Capabilities{
		IsAdmin:   role == models.RoleAdmin,
		IsManager: role == models.RoleManager,
		IsDriver:  role == models.RoleDriver,
	}
}

// Resolve turns a profile row into a portal session. Inactive accounts and
// roles outside the portal's allowed set are rejected; the caller must treat
// that as a forced sign-out.
func Resolve(profile *models.Profile) (*Session, error) {
	if profile == nil || !profile.IsActive {
		return nil, ErrAccessDenied
	}
	caps := CapabilitiesFor(profile.Role)
	if !caps.IsAdmin && !caps.IsManager && !caps.IsDriver {
		return nil, ErrAccessDenied
	}
	return &Session{Profile: profile, Caps: caps}, nil
}
