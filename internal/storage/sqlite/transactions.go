package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/khata-app/khata/internal/models"
	"github.com/khata-app/khata/internal/storage"
)

// CreateTransaction persists a new transaction to the database.
// The referenced friend must exist.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	// Generate ID if not set
	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}
	if transaction.Date == 0 {
		transaction.Date = time.Now().Unix()
	}

	// Check the friend reference up front so a missing friend surfaces as
	// ErrNotFound instead of a driver-specific constraint error.
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM friends WHERE id = ?", transaction.FriendID).Scan(&exists)
	if err == sql.ErrNoRows {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check friend existence: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO transactions (id, friend_id, type, amount, date, description, is_settlement)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		transaction.ID, transaction.FriendID, string(transaction.Type),
		transaction.Amount, transaction.Date, transaction.Description,
		boolToInt(transaction.IsSettlement),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// ListTransactions retrieves all transactions, newest-first by date.
func (s *SQLiteStore) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.queryTransactions(ctx,
		`SELECT id, friend_id, type, amount, date, description, is_settlement
		 FROM transactions ORDER BY date DESC`)
}

// ListFriendTransactions retrieves one friend's transactions, newest-first
// by date.
func (s *SQLiteStore) ListFriendTransactions(ctx context.Context, friendID string) ([]models.Transaction, error) {
	return s.queryTransactions(ctx,
		`SELECT id, friend_id, type, amount, date, description, is_settlement
		 FROM transactions WHERE friend_id = ? ORDER BY date DESC`, friendID)
}

func (s *SQLiteStore) queryTransactions(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var (
			transaction  models.Transaction
			txType       string
			isSettlement int
		)
		if err := rows.Scan(&transaction.ID, &transaction.FriendID, &txType,
			&transaction.Amount, &transaction.Date, &transaction.Description,
			&isSettlement); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transaction.Type = models.TransactionType(txType)
		transaction.IsSettlement = isSettlement != 0
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}

// DeleteTransaction removes a transaction by ID. Absent IDs are a no-op.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
