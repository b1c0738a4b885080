// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/khata-app/khata/internal/models"
	"github.com/khata-app/khata/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// dateFormat is how calendar dates are stored (no time component).
const dateFormat = time.DateOnly

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetEnvelope retrieves the singleton budget envelope.
func (s *SQLiteStore) GetEnvelope(ctx context.Context) (*models.BudgetEnvelope, error) {
	var (
		envelope models.BudgetEnvelope
		start    string
		end      string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT total_amount, start_date, end_date FROM budget WHERE id = 1",
	).Scan(&envelope.TotalAmount, &start, &end)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get envelope: %w", err)
	}

	if envelope.StartDate, err = time.ParseInLocation(dateFormat, start, time.Local); err != nil {
		return nil, fmt.Errorf("failed to parse start date: %w", err)
	}
	if envelope.EndDate, err = time.ParseInLocation(dateFormat, end, time.Local); err != nil {
		return nil, fmt.Errorf("failed to parse end date: %w", err)
	}

	return &envelope, nil
}

// SaveEnvelope stores the singleton budget envelope, replacing any
// previous one.
func (s *SQLiteStore) SaveEnvelope(ctx context.Context, envelope *models.BudgetEnvelope) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO budget (id, total_amount, start_date, end_date) VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET total_amount = excluded.total_amount,
		                               start_date = excluded.start_date,
		                               end_date = excluded.end_date`,
		envelope.TotalAmount,
		envelope.StartDate.Format(dateFormat),
		envelope.EndDate.Format(dateFormat),
	)
	if err != nil {
		return fmt.Errorf("failed to save envelope: %w", err)
	}
	return nil
}
