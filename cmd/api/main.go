package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/threadcount/retailops/internal/config"
	"github.com/threadcount/retailops/internal/database"
	"github.com/threadcount/retailops/internal/handlers"
	"github.com/threadcount/retailops/internal/models"
	"github.com/threadcount/retailops/internal/realtime"
	"github.com/threadcount/retailops/internal/storage"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize database (detects embedded vs external automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 3. Auto-migrate schema
	log.Println("🚀 Synchronizing database schema...")
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
		log.Printf("⚠️ Migration warning: %v\n", err)
	} else {
		log.Println("✅ Schema synchronized successfully")
	}

	// 4. Start the realtime hub
	hub := realtime.NewHub()
	go hub.Run()

	// 5. Image upload collaborator (disabled without a bucket)
	uploader, err := storage.NewUploader(context.Background(), cfg.Uploads)
	if err != nil {
		log.Fatalf("Failed to initialize image storage: %v", err)
	}
	if uploader.Enabled() {
		log.Println("🖼️ Image uploads enabled")
	} else {
		log.Println("⚠️ Image uploads disabled (no bucket configured)")
	}

	// 6. Set up HTTP router
	router := handlers.NewRouter(db, cfg, hub, uploader)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("🌐 Retail ops portal API listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("⚠️ Forced shutdown: %v", err)
	}
	if err := db.Close(); err != nil {
		log.Printf("⚠️ Database shutdown: %v", err)
	}
	log.Println("✅ Bye")
}
