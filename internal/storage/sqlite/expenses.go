package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/khata-app/khata/internal/models"
)

// CreateExpense persists a new expense to the database.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	// Generate ID if not set
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO expenses (id, amount, date, description, category) VALUES (?, ?, ?, ?, ?)",
		expense.ID, expense.Amount, expense.Date.Format(dateFormat),
		expense.Description, expense.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	return nil
}

// ListExpenses retrieves all expenses, newest-first by date.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, amount, date, description, category FROM expenses ORDER BY date DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var (
			expense models.Expense
			date    string
		)
		if err := rows.Scan(&expense.ID, &expense.Amount, &date,
			&expense.Description, &expense.Category); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if expense.Date, err = time.ParseInLocation(dateFormat, date, time.Local); err != nil {
			return nil, fmt.Errorf("failed to parse expense date: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// DeleteExpense removes an expense by ID. Absent IDs are a no-op.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// DeleteAllExpenses removes every expense.
func (s *SQLiteStore) DeleteAllExpenses(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM expenses"); err != nil {
		return fmt.Errorf("failed to delete expenses: %w", err)
	}
	return nil
}
