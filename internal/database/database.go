package database

import (
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/threadcount/retailops/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	embeddedDataPath = "./db_data"
	embeddedPort     = 5433
)

// DB wraps gorm.DB and includes a reference to an embedded process if active
type DB struct {
	*gorm.DB
	embedded *embeddedpostgres.EmbeddedPostgres
}

// Connect establishes a connection to a PostgreSQL database. When the host is
// localhost and no password is configured, an embedded server is started so
// the portal runs with zero external setup (development and demo mode).
func Connect(cfg config.DatabaseConfig) (*DB, error) {
	var embedded *embeddedpostgres.EmbeddedPostgres

	isEmbedded := cfg.Host == "localhost" && cfg.Password == ""

	if isEmbedded {
		log.Println("📦 Mode: [Embedded PostgreSQL] - Initializing internal database...")

		if isPortInUse(embeddedPort) {
			return nil, fmt.Errorf("embedded postgres port %d is already in use", embeddedPort)
		}

		dataPath, err := filepath.Abs(embeddedDataPath)
		if err != nil {
			return nil, err
		}

		embedded = embeddedpostgres.NewDatabase(embeddedpostgres.DefaultConfig().
			Username("postgres").
			Password("postgres").
			Database(cfg.Database).
			Port(embeddedPort).
			DataPath(dataPath).
			Logger(os.Stdout))

		if err := embedded.Start(); err != nil {
			return nil, fmt.Errorf("failed to start embedded postgres: %w", err)
		}

		cfg.Port = fmt.Sprintf("%d", embeddedPort)
		cfg.Username = "postgres"
		cfg.Password = "postgres"
	} else {
		log.Printf("🌐 Mode: [External PostgreSQL] - Connecting to %s:%s...", cfg.Host, cfg.Port)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		if embedded != nil {
			_ = embedded.Stop()
		}
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("✅ Database connection established")
	return &DB{DB: gormDB, embedded: embedded}, nil
}

// Close shuts down the database connection and the embedded server if one is
// running.
func (db *DB) Close() error {
	if sqlDB, err := db.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if db.embedded != nil {
		log.Println("🛑 Stopping embedded PostgreSQL...")
		return db.embedded.Stop()
	}
	return nil
}

// isPortInUse checks if a port is already in use
func isPortInUse(port int) bool {
	conn, err := net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", port), time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
