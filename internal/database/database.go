package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sethvargo/go-retry"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/fundlens/backoffice/internal/config"
)

// Open opens a connection to the SQLite database.
// The initial ping is retried a fixed number of times with a fixed delay;
// once the attempts are exhausted the error is returned and the caller is
// expected to treat it as fatal.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	backoff := retry.WithMaxRetries(cfg.ConnectAttempts, retry.NewConstant(cfg.ConnectDelay))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		return retry.RetryableError(db.PingContext(ctx))
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Set timezone to UTC
	if _, err := db.Exec("PRAGMA timezone = 'UTC'"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set timezone: %w", err)
	}

	return db, nil
}

// HealthCheck performs a simple health check on the database
func HealthCheck(db *sql.DB) error {
	return db.Ping()
}
