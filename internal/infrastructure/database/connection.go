package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/eslsoft/deepgloss/internal/infrastructure/config"

	_ "github.com/mattn/go-sqlite3"
)

// NewConnection opens the sqlite database backing the relational store.
//
// WAL keeps readers unblocked while a single writer proceeds, and the busy
// timeout makes writers wait for an external lock holder instead of failing
// immediately.
func NewConnection(cfg *config.Config) (*sql.DB, func(), error) {
	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=30000&_foreign_keys=on", cfg.Database.Path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// One writer at a time; WAL readers go through the same pool.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, func() { _ = db.Close() }, nil
}
