package main

import (
	"fmt"
	"log"

	"github.com/threadcount/retailops/internal/config"
	"github.com/threadcount/retailops/internal/database"
	"github.com/threadcount/retailops/internal/models"
	"github.com/threadcount/retailops/internal/services/stock"
	"github.com/threadcount/retailops/internal/utils"
	"gorm.io/datatypes"
)

func main() {
	fmt.Println("🌱 Retail Ops Demo Data Seeder")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	fmt.Println("✅ Connected to database")

	err = db.AutoMigrate(
		&models.Profile{},
		&models.Location{},
		&models.Product{},
		&models.ProductSize{},
		&models.Inventory{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	var productCount int64
	db.Model(&models.Product{}).Count(&productCount)
	if productCount > 0 {
		fmt.Printf("⚠️  Database already has %d products. Clear it first? (y/N): ", productCount)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("❌ Aborted. Database not modified.")
			return
		}
		for _, table := range []string{"order_items", "orders", "inventory", "product_sizes", "products", "profiles", "locations"} {
			db.Exec("DELETE FROM " + table)
		}
	}

	// Locations
	flagship := models.Location{Name: "Flagship Store", Type: models.LocationStore, Address: "12 Market Street"}
	warehouse := models.Location{Name: "Central Warehouse", Type: models.LocationWarehouse, Address: "4 Dock Road"}
	courier := models.Location{Name: "Courier Network", Type: models.LocationVirtualCourier, Address: ""}
	for _, loc := range []*models.Location{&flagship, &warehouse, &courier} {
		if err := db.Create(loc).Error; err != nil {
			log.Fatalf("❌ Seeding location %s: %v", loc.Name, err)
		}
	}
	fmt.Println("✅ Seeded 3 locations")

	// Staff
	seedProfile(db, "admin@demo.test", "Ada Admin", models.RoleAdmin, nil)
	seedProfile(db, "manager@demo.test", "Mona Manager", models.RoleManager, &flagship.ID)
	seedProfile(db, "driver@demo.test", "Dev Driver", models.RoleDriver, nil)
	fmt.Println("✅ Seeded 3 staff accounts (password: demo1234)")

	// Products
	shirt := models.Product{
		Name: "Oxford Shirt", SKU: "SH-001",
		Categories:   datatypes.NewJSONSlice([]string{"Shirts", "Formal"}),
		Sizes:        datatypes.NewJSONSlice([]string{"S", "M", "L"}),
		DefaultPrice: 39.90, WeightGrams: 300,
	}
	sneaker := models.Product{
		Name: "Running Sneakers", SKU: "SN-010",
		Categories:   datatypes.NewJSONSlice([]string{"Running Sneakers", "Sport"}),
		Sizes:        datatypes.NewJSONSlice([]string{"42", "43", "44"}),
		DefaultPrice: 89.00, WeightGrams: 800,
	}
	belt := models.Product{
		Name: "Leather Belt", SKU: "BL-004",
		Categories:   datatypes.NewJSONSlice([]string{"Leather Belt", "Accessories"}),
		Sizes:        datatypes.NewJSONSlice([]string{"90", "100", "110"}),
		DefaultPrice: 24.50, WeightGrams: 250,
	}
	for _, p := range []*models.Product{&shirt, &sneaker, &belt} {
		if err := db.Create(p).Error; err != nil {
			log.Fatalf("❌ Seeding product %s: %v", p.SKU, err)
		}
	}
	fmt.Println("✅ Seeded 3 products")

	chest := 96.0
	shoulder := 44.0
	db.Create(&models.ProductSize{ProductID: shirt.ID, SizeName: "M", Chest: &chest, Shoulder: &shoulder})

	// Stock (goes through the service so archive flags reconcile)
	stockSvc := stock.NewService(db)
	seeds := []stock.UpsertInput{
		{ProductID: shirt.ID, LocationID: flagship.ID, SizeName: "M", Quantity: 12},
		{ProductID: shirt.ID, LocationID: warehouse.ID, SizeName: "L", Quantity: 40},
		{ProductID: sneaker.ID, LocationID: warehouse.ID, SizeName: "43", Quantity: 8},
		{ProductID: belt.ID, LocationID: flagship.ID, SizeName: "100", Quantity: 5},
	}
	for _, in := range seeds {
		if _, err := stockSvc.Upsert(in); err != nil {
			log.Fatalf("❌ Seeding stock: %v", err)
		}
	}
	fmt.Println("✅ Seeded stock levels")

	// Orders
	orders := []models.Order{
		{
			Status: models.StatusPaid, FulfillmentType: models.FulfillmentCourier,
			DeliveryAddress: "1 High Street", TotalAmount: 39.90,
			Items: []models.OrderItem{{ProductID: shirt.ID, SizeName: "M", Quantity: 1, UnitPrice: 39.90}},
		},
		{
			Status: models.StatusPacked, FulfillmentType: models.FulfillmentPickup,
			PickupLocationID: &flagship.ID, TotalAmount: 89.00,
			Items: []models.OrderItem{{ProductID: sneaker.ID, SizeName: "43", Quantity: 1, UnitPrice: 89.00}},
		},
		{
			Status: models.StatusPOSComplete, FulfillmentType: models.FulfillmentPOS,
			PickupLocationID: &flagship.ID, TotalAmount: 24.50,
			Items: []models.OrderItem{{ProductID: belt.ID, SizeName: "100", Quantity: 1, UnitPrice: 24.50}},
		},
	}
	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			log.Fatalf("❌ Seeding order: %v", err)
		}
	}
	fmt.Println("✅ Seeded 3 orders")
	fmt.Println("🎉 Done")
}

func seedProfile(db *database.DB, email, name string, role models.Role, locationID *string) {
	hashed, err := utils.HashPassword("demo1234")
	if err != nil {
		log.Fatalf("❌ Hashing password: %v", err)
	}
	profile := models.Profile{
		Email: email, Password: hashed, FullName: name,
		Role: role, AssignedLocationID: locationID, IsActive: true,
	}
	if err := db.Create(&profile).Error; err != nil {
		log.Fatalf("❌ Seeding profile %s: %v", email, err)
	}
}
