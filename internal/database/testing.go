package database

import (
	"fmt"
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB starts a disposable embedded PostgreSQL instance for one test,
// migrates the given models and returns a connection to it. The test is
// skipped when no server can start (offline machine without cached
// binaries).
func NewTestDB(t *testing.T, migrations ...interface{}) *DB {
	t.Helper()

	port, err := freePort()
	if err != nil {
		t.Fatalf("no free port for embedded postgres: %v", err)
	}

	epg := embeddedpostgres.NewDatabase(embeddedpostgres.DefaultConfig().
		Username("postgres").
		Password("postgres").
		Database("retailops_test").
		Port(uint32(port)).
		DataPath(filepath.Join(t.TempDir(), "pg")).
		StartTimeout(60 * time.Second).
		Logger(io.Discard))

	if err := epg.Start(); err != nil {
		t.Skipf("embedded postgres unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = epg.Stop()
	})

	dsn := fmt.Sprintf("host=localhost port=%d user=postgres password=postgres dbname=retailops_test sslmode=disable", port)
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("connecting to embedded postgres: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	db := &DB{DB: gormDB}
	if len(migrations) > 0 {
		if err := db.AutoMigrate(migrations...); err != nil {
			t.Fatalf("migrating test schema: %v", err)
		}
	}
	return db
}

func freePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}
