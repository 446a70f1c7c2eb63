package models

import (
	"time"

	"gorm.io/gorm"
)

// Role determines every visibility and capability rule in the portal.
type Role string

const (
	RoleAdmin    Role = "admin"    // global scope, staff management
	RoleManager  Role = "manager"  // scoped to an assigned location
	RoleDriver   Role = "driver"   // logistics tasks across the network
	RoleCustomer Role = "customer" // storefront only, no portal access
)

// Profile represents a user account.
// Standardized: Go (PascalCase) -> DB (snake_case) -> JSON (camelCase)
type Profile struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	FullName string `json:"fullName,omitempty"`
	Role     Role   `gorm:"default:'customer';index" json:"role"`

	// Null means global scope. Only meaningful for managers.
	AssignedLocationID *string `gorm:"type:uuid;index" json:"assignedLocationId,omitempty"`

	IsActive  bool       `gorm:"default:true" json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	AssignedLocation *Location `gorm:"foreignKey:AssignedLocationID" json:"assignedLocation,omitempty"`
}

// TableName specifies the table name for Profile model
func (Profile) TableName() string {
	return "profiles"
}
