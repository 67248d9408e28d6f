package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Driver names registered by the blank imports in the composition roots.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Open connects to dsn using driver and verifies the connection.
func Open(driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("openDB: open %s database: %w", driver, err)
	}

	switch driver {
	case DriverSQLite:
		// A single connection keeps in-memory databases alive and serializes writers.
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("openDB: verify %s connection: %w", driver, err)
	}

	return db, nil
}
