package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/threadcount/retailops/internal/middleware"
	"github.com/threadcount/retailops/internal/models"
	"github.com/threadcount/retailops/internal/sizing"
	"gorm.io/datatypes"
)

// listProducts returns the catalog. Archived products are included only when
// requested; they reappear automatically once stock returns.
func (r *Router) listProducts(w http.ResponseWriter, req *http.Request) {
	var products []models.Product
	q := r.db.Order("name ASC")
	if req.URL.Query().Get("includeArchived") != "true" {
		q = q.Where("is_archived = ?", false)
	}
	if err := q.Find(&products).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// getProduct returns a single product
func (r *Router) getProduct(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	var product models.Product
	if err := r.db.First(&product, "id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// createProduct adds a catalog entry
func (r *Router) createProduct(w http.ResponseWriter, req *http.Request) {
	sess, _ := middleware.GetSession(req.Context())
	if !sess.Caps.Staff() {
		respondError(w, http.StatusForbidden, "Access denied")
		return
	}

	var product models.Product
	if err := json.NewDecoder(req.Body).Decode(&product); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if product.SKU == "" || product.Name == "" {
		respondError(w, http.StatusBadRequest, "Name and SKU are required")
		return
	}

	// New products have no stock yet.
	product.IsArchived = true

	if err := r.db.Create(&product).Error; err != nil {
		respondError(w, http.StatusBadRequest, "Failed to create product (SKU may exist)")
		return
	}
	respondJSON(w, http.StatusCreated, product)
}

// updateProduct edits a catalog entry. The clothing_type column arrived
// after the initial rollout; on databases that have not migrated yet the
// write fails, which is logged and swallowed since the feature is optional.
func (r *Router) updateProduct(w http.ResponseWriter, req *http.Request) {
	sess, _ := middleware.GetSession(req.Context())
	if !sess.Caps.Staff() {
		respondError(w, http.StatusForbidden, "Access denied")
		return
	}
	vars := mux.Vars(req)

	var product models.Product
	if err := r.db.First(&product, "id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	// Pointer fields distinguish "omitted" from "set to zero": a partial
	// payload only touches the columns it carries.
	var update struct {
		Name                    *string                      `json:"name"`
		Categories              *datatypes.JSONSlice[string] `json:"categories"`
		Sizes                   *datatypes.JSONSlice[string] `json:"sizes"`
		AllowCustomMeasurements *bool                        `json:"allowCustomMeasurements"`
		WeightGrams             *int                         `json:"weightGrams"`
		DefaultPrice            *float64                     `json:"defaultPrice"`
		ClothingType            *string                      `json:"clothingType"`
	}
	if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	updates := map[string]interface{}{}
	if update.Name != nil {
		if *update.Name == "" {
			respondError(w, http.StatusBadRequest, "Name must not be empty")
			return
		}
		updates["name"] = *update.Name
	}
	if update.Categories != nil {
		updates["categories"] = *update.Categories
	}
	if update.Sizes != nil {
		updates["sizes"] = *update.Sizes
	}
	if update.AllowCustomMeasurements != nil {
		updates["allow_custom_measurements"] = *update.AllowCustomMeasurements
	}
	if update.WeightGrams != nil {
		updates["weight_grams"] = *update.WeightGrams
	}
	if update.DefaultPrice != nil {
		updates["default_price"] = *update.DefaultPrice
	}
	if len(updates) > 0 {
		if err := r.db.Model(&product).Updates(updates).Error; err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to update product")
			return
		}
	}

	if update.ClothingType != nil {
		if err := r.db.Model(&product).Update("clothing_type", *update.ClothingType).Error; err != nil {
			log.Printf("⚠️ Skipping clothing_type write (column missing?): %v", err)
		}
	}

	r.db.First(&product, "id = ?", vars["id"])
	respondJSON(w, http.StatusOK, product)
}

// listProductSizes returns the measurement rows for a product. Reloaded rows
// carry exactly the non-null fields that were saved; nothing is coerced or
// dropped.
func (r *Router) listProductSizes(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	var sizes []models.ProductSize
	if err := r.db.Where("product_id = ?", vars["id"]).Order("created_at ASC").Find(&sizes).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch sizes")
		return
	}
	respondJSON(w, http.StatusOK, sizes)
}

// upsertProductSize writes the sparse measurement set for one size. Fields
// outside the product's current schema are accepted and kept: storage is
// nullable by design and old values survive a reclassification.
func (r *Router) upsertProductSize(w http.ResponseWriter, req *http.Request) {
	sess, _ := middleware.GetSession(req.Context())
	if !sess.Caps.Staff() {
		respondError(w, http.StatusForbidden, "Access denied")
		return
	}
	vars := mux.Vars(req)

	var product models.Product
	if err := r.db.First(&product, "id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	var size models.ProductSize
	if err := json.NewDecoder(req.Body).Decode(&size); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	size.ProductID = product.ID
	size.SizeName = vars["size"]

	var existing models.ProductSize
	err := r.db.Where("product_id = ? AND size_name = ?", product.ID, size.SizeName).First(&existing).Error
	if err == nil {
		size.ID = existing.ID
		size.CreatedAt = existing.CreatedAt
		if err := r.db.Save(&size).Error; err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to update size")
			return
		}
	} else {
		if err := r.db.Create(&size).Error; err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to create size")
			return
		}
	}

	respondJSON(w, http.StatusOK, size)
}

// productMeasurementSchema returns the ordered entry fields for the
// product's detected category.
func (r *Router) productMeasurementSchema(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	var product models.Product
	if err := r.db.First(&product, "id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	tags := append([]string{}, product.Categories...)
	if product.ClothingType != "" {
		tags = append(tags, product.ClothingType)
	}

	category := sizing.DetectCategory(tags)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"fields":   sizing.FieldsFor(category),
	})
}

const maxImageSize = 5 << 20 // 5MB

// uploadProductImage stores the image blob and persists its public URL
func (r *Router) uploadProductImage(w http.ResponseWriter, req *http.Request) {
	sess, _ := middleware.GetSession(req.Context())
	if !sess.Caps.Staff() {
		respondError(w, http.StatusForbidden, "Access denied")
		return
	}
	vars := mux.Vars(req)

	var product models.Product
	if err := r.db.First(&product, "id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	data, err := io.ReadAll(io.LimitReader(req.Body, maxImageSize+1))
	if err != nil || len(data) == 0 {
		respondError(w, http.StatusBadRequest, "Invalid image payload")
		return
	}
	if len(data) > maxImageSize {
		respondError(w, http.StatusRequestEntityTooLarge, "Image exceeds 5MB")
		return
	}

	contentType := req.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	key := fmt.Sprintf("products/%s/%s", product.ID, uuid.NewString())
	url, err := r.uploader.UploadImage(req.Context(), key, data, contentType)
	if err != nil {
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	if err := r.db.Model(&product).Update("image_url", url).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to persist image URL")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"imageUrl": url})
}
