package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/threadcount/retailops/internal/config"
	"github.com/threadcount/retailops/internal/database"
	"github.com/threadcount/retailops/internal/models"
	"github.com/threadcount/retailops/internal/realtime"
	"github.com/threadcount/retailops/internal/storage"
	"github.com/threadcount/retailops/internal/utils"
)

// newTestRouter wires a full router against a throwaway database, the same
// composition as cmd/api but with uploads disabled.
func newTestRouter(t *testing.T) (*Router, *database.DB, *config.Config) {
	t.Helper()

	db := database.NewTestDB(t,
		&models.Profile{}, &models.Location{}, &models.Product{}, &models.ProductSize{},
		&models.Inventory{}, &models.Order{}, &models.OrderItem{})

	cfg := &config.Config{Env: "test", JWTSecret: "test-secret"}

	hub := realtime.NewHub()
	go hub.Run()

	uploader, err := storage.NewUploader(context.Background(), config.UploadConfig{})
	if err != nil {
		t.Fatalf("building uploader: %v", err)
	}

	return NewRouter(db, cfg, hub, uploader), db, cfg
}

func seedStaff(t *testing.T, db *database.DB, role models.Role) *models.Profile {
	t.Helper()
	hash, err := utils.HashPassword("demo1234")
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	profile := &models.Profile{
		Email:    string(role) + "@example.com",
		Password: hash,
		FullName: "Test " + string(role),
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("seeding profile: %v", err)
	}
	return profile
}

func bearerToken(t *testing.T, cfg *config.Config, profile *models.Profile) string {
	t.Helper()
	access, _, err := utils.GenerateTokens(profile, cfg)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return "Bearer " + access
}

func serve(router *Router, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
