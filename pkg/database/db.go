package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

type Config struct {
	Path string
}

// DefaultConfig keeps the whole catalog in memory: the tables are built
// once at startup and never written again, so there is nothing worth
// persisting. Set GEMDASH_DB_PATH to back them with a file instead.
func DefaultConfig() Config {
	if p := os.Getenv("GEMDASH_DB_PATH"); p != "" {
		return Config{Path: p}
	}
	return Config{Path: ":memory:"}
}

func Open(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// An in-memory database vanishes when its last connection closes;
	// pin the pool to one connection so every query sees the same tables.
	if cfg.Path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pragma foreign_keys: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

func MustOpen(cfg Config) *sql.DB {
	db, err := Open(cfg)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	return db
}
