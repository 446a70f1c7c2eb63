// Package staff implements the privileged provisioning operations: creating
// a staff account and resetting another user's password. Both are admin-only
// and enforced at the handler via capability flags.
package staff

import (
	"errors"
	"fmt"

	"github.com/threadcount/retailops/internal/database"
	"github.com/threadcount/retailops/internal/models"
	"github.com/threadcount/retailops/internal/utils"
)

// ErrNotFound marks a reset against an unknown profile.
var ErrNotFound = errors.New("profile not found")

// CreateInput describes a new staff account.
type CreateInput struct {
	Email      string      `json:"email"`
	Password   string      `json:"password"`
	FullName   string      `json:"fullName"`
	Role       models.Role `json:"role"`
	LocationID *string     `json:"locationId"`
}

// Validate checks the provisioning request.
func (in CreateInput) Validate() error {
	if in.Email == "" || in.Password == "" {
		return fmt.Errorf("email and password are required")
	}
	if len(in.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	switch in.Role {
	case models.RoleAdmin, models.RoleManager, models.RoleDriver:
		return nil
	}
	return fmt.Errorf("role %q cannot be provisioned", in.Role)
}

// Service provisions staff accounts.
type Service struct {
	db *database.DB
}

// NewService creates a staff service
func NewService(db *database.DB) *Service {
	return &Service{db: db}
}

// Create provisions a staff profile with a hashed password.
func (s *Service) Create(in CreateInput) (*models.Profile, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := models.Profile{
		Email:              in.Email,
		Password:           hashed,
		FullName:           in.FullName,
		Role:               in.Role,
		AssignedLocationID: in.LocationID,
		IsActive:           true,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create profile (email may exist): %w", err)
	}
	return &profile, nil
}

// ResetPassword replaces a user's credential with a new one.
func (s *Service) ResetPassword(profileID, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	res := s.db.Model(&models.Profile{}).Where("id = ?", profileID).Update("password", hashed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
