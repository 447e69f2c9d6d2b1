package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"

// Open opens (creating if needed) the words database at path
func Open(path string) (*sqlx.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlx.Open(driverName, path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if path == ":memory:" {
		// Each connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return db, nil
}

// OpenReadOnly opens an existing database without write access
func OpenReadOnly(path string) (*sqlx.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db, err := sqlx.Open(driverName, "file:"+path+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
