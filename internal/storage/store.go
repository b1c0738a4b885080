// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/khata-app/khata/internal/models"
)

// ErrNotFound is returned when a requested entity does not exist.
// Callers are expected to check for it explicitly; lookups of absent
// entities are not fatal.
var ErrNotFound = errors.New("not found")

// Store defines the interface for persisting the raw entity collections.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer, and lets tests run against a
// throwaway database.
//
// The store holds raw entities only. Derived values (balances, allowances,
// health status) are never persisted; they are recomputed from these
// collections on every read.
type Store interface {
	// GetEnvelope returns the budget envelope, or ErrNotFound if none has
	// been stored yet.
	GetEnvelope(ctx context.Context) (*models.BudgetEnvelope, error)

	// SaveEnvelope stores the budget envelope, replacing any previous one.
	SaveEnvelope(ctx context.Context, envelope *models.BudgetEnvelope) error

	// ListExpenses returns all expenses, newest-first by date.
	ListExpenses(ctx context.Context) ([]models.Expense, error)

	// CreateExpense persists a new expense. The expense ID is populated
	// by the store if unset.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense by ID. Deleting an absent expense
	// is a no-op.
	DeleteExpense(ctx context.Context, id string) error

	// DeleteAllExpenses removes every expense.
	DeleteAllExpenses(ctx context.Context) error

	// ListFriends returns all friends, oldest-first by creation time.
	ListFriends(ctx context.Context) ([]models.Friend, error)

	// GetFriend returns a friend by ID, or ErrNotFound.
	GetFriend(ctx context.Context, id string) (*models.Friend, error)

	// CreateFriend persists a new friend. The friend ID and CreatedAt are
	// populated by the store if unset.
	CreateFriend(ctx context.Context, friend *models.Friend) error

	// UpdateFriend updates a friend's name. Returns ErrNotFound if the
	// friend does not exist.
	UpdateFriend(ctx context.Context, friend *models.Friend) error

	// DeleteFriend removes a friend and all of their transactions
	// atomically. Deleting an absent friend is a no-op.
	DeleteFriend(ctx context.Context, id string) error

	// ListTransactions returns all transactions, newest-first by date.
	ListTransactions(ctx context.Context) ([]models.Transaction, error)

	// ListFriendTransactions returns one friend's transactions,
	// newest-first by date.
	ListFriendTransactions(ctx context.Context, friendID string) ([]models.Transaction, error)

	// CreateTransaction persists a new transaction. The transaction ID is
	// populated by the store if unset. Returns ErrNotFound if the
	// referenced friend does not exist.
	CreateTransaction(ctx context.Context, transaction *models.Transaction) error

	// DeleteTransaction removes a transaction by ID. Deleting an absent
	// transaction is a no-op.
	DeleteTransaction(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
