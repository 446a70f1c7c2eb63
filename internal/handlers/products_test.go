package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/threadcount/retailops/internal/models"
	"gorm.io/datatypes"
)

func TestUpdateProductPartialBodyKeepsOmittedFields(t *testing.T) {
	router, db, cfg := newTestRouter(t)
	admin := seedStaff(t, db, models.RoleAdmin)

	product := &models.Product{
		Name:         "Trail Runner",
		SKU:          "SN-TRL-001",
		Categories:   datatypes.NewJSONSlice([]string{"shoes"}),
		Sizes:        datatypes.NewJSONSlice([]string{"42", "43"}),
		WeightGrams:  640,
		DefaultPrice: 89.90,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seeding product: %v", err)
	}

	// Body carries only the price; everything else must survive.
	req := httptest.NewRequest("PUT", "/api/products/"+product.ID,
		strings.NewReader(`{"defaultPrice": 74.50}`))
	req.Header.Set("Authorization", bearerToken(t, cfg, admin))
	req.Header.Set("Content-Type", "application/json")
	if rec := serve(router, req); rec.Code != http.StatusOK {
		t.Fatalf("partial update: code = %d, body %s", rec.Code, rec.Body.String())
	}

	var reloaded models.Product
	if err := db.First(&reloaded, "id = ?", product.ID).Error; err != nil {
		t.Fatalf("reloading product: %v", err)
	}
	if reloaded.DefaultPrice != 74.50 {
		t.Errorf("defaultPrice = %v, want 74.50", reloaded.DefaultPrice)
	}
	if reloaded.Name != "Trail Runner" {
		t.Errorf("name = %q, omitted field must keep its value", reloaded.Name)
	}
	if len(reloaded.Categories) != 1 || reloaded.Categories[0] != "shoes" {
		t.Errorf("categories = %v, omitted field must keep its value", reloaded.Categories)
	}
	if len(reloaded.Sizes) != 2 {
		t.Errorf("sizes = %v, omitted field must keep its value", reloaded.Sizes)
	}
	if reloaded.WeightGrams != 640 {
		t.Errorf("weightGrams = %d, omitted field must keep its value", reloaded.WeightGrams)
	}
}

func TestUpdateProductRejectsEmptyName(t *testing.T) {
	router, db, cfg := newTestRouter(t)
	admin := seedStaff(t, db, models.RoleAdmin)

	product := &models.Product{Name: "Trail Runner", SKU: "SN-TRL-002"}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seeding product: %v", err)
	}

	req := httptest.NewRequest("PUT", "/api/products/"+product.ID,
		strings.NewReader(`{"name": ""}`))
	req.Header.Set("Authorization", bearerToken(t, cfg, admin))
	req.Header.Set("Content-Type", "application/json")
	if rec := serve(router, req); rec.Code != http.StatusBadRequest {
		t.Errorf("blank name: code = %d, want 400", rec.Code)
	}

	var reloaded models.Product
	if err := db.First(&reloaded, "id = ?", product.ID).Error; err != nil {
		t.Fatalf("reloading product: %v", err)
	}
	if reloaded.Name != "Trail Runner" {
		t.Errorf("name = %q, rejected update must not persist", reloaded.Name)
	}
}
