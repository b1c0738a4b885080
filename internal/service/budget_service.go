// Package service orchestrates validation, storage and the clock around the
// pure calculator engines.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/khata-app/khata/internal/calculator"
	"github.com/khata-app/khata/internal/models"
	"github.com/khata-app/khata/internal/storage"
)

// Clock supplies the current instant. Injecting it keeps every
// "now"-dependent derivation deterministic under test.
type Clock func() time.Time

// BudgetService manages the budget envelope and its expenses.
type BudgetService struct {
	store storage.Store
	now   Clock
}

// NewBudgetService creates a new BudgetService with the given storage
// backend and clock. A nil clock defaults to time.Now.
func NewBudgetService(store storage.Store, clock Clock) *BudgetService {
	if clock == nil {
		clock = time.Now
	}
	return &BudgetService{store: store, now: clock}
}

// Envelope returns the stored budget envelope, creating and persisting the
// default one on first use.
func (s *BudgetService) Envelope(ctx context.Context) (*models.BudgetEnvelope, error) {
	envelope, err := s.store.GetEnvelope(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		def := models.DefaultEnvelope(s.now())
		if err := s.store.SaveEnvelope(ctx, &def); err != nil {
			return nil, fmt.Errorf("failed to save default envelope: %w", err)
		}
		slog.Info("Initialized default budget envelope", "amount", def.TotalAmount)
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return envelope, nil
}

// SetBudget replaces the envelope's total amount.
func (s *BudgetService) SetBudget(ctx context.Context, amount float64) error {
	if amount <= 0 {
		return models.ErrInvalidAmount
	}

	envelope, err := s.Envelope(ctx)
	if err != nil {
		return err
	}
	envelope.TotalAmount = amount
	return s.store.SaveEnvelope(ctx, envelope)
}

// SetStartDate moves the start of the budget period. The end date must
// still strictly follow it.
func (s *BudgetService) SetStartDate(ctx context.Context, date time.Time) error {
	envelope, err := s.Envelope(ctx)
	if err != nil {
		return err
	}
	envelope.StartDate = models.CalendarDate(date)
	if err := envelope.Validate(); err != nil {
		return err
	}
	return s.store.SaveEnvelope(ctx, envelope)
}

// SetEndDate moves the end of the budget period. It must strictly follow
// the start date.
func (s *BudgetService) SetEndDate(ctx context.Context, date time.Time) error {
	envelope, err := s.Envelope(ctx)
	if err != nil {
		return err
	}
	envelope.EndDate = models.CalendarDate(date)
	if err := envelope.Validate(); err != nil {
		return err
	}
	return s.store.SaveEnvelope(ctx, envelope)
}

// AddExpense validates and persists a new expense. The expense date
// defaults to today when unset and is normalized to a calendar date.
func (s *BudgetService) AddExpense(ctx context.Context, expense models.Expense) (*models.Expense, error) {
	if expense.Date.IsZero() {
		expense.Date = s.now()
	}
	expense.Date = models.CalendarDate(expense.Date)
	expense.ID = ""

	if err := expense.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.CreateExpense(ctx, &expense); err != nil {
		return nil, err
	}
	slog.Info("Expense added", "expense_id", expense.ID, "amount", expense.Amount, "category", expense.Category)
	return &expense, nil
}

// DeleteExpense removes an expense. Unknown IDs are a no-op; deletion is
// idempotent.
func (s *BudgetService) DeleteExpense(ctx context.Context, id string) error {
	return s.store.DeleteExpense(ctx, id)
}

// ResetBudget clears all expenses and reinitializes the period to
// [today, today+1 month], keeping the configured amount. Destructive;
// callers should confirm with the user first.
func (s *BudgetService) ResetBudget(ctx context.Context) error {
	envelope, err := s.Envelope(ctx)
	if err != nil {
		return err
	}

	if err := s.store.DeleteAllExpenses(ctx); err != nil {
		return err
	}

	now := s.now()
	envelope.StartDate = models.CalendarDate(now)
	envelope.EndDate = envelope.StartDate.AddDate(0, 1, 0)
	if err := s.store.SaveEnvelope(ctx, envelope); err != nil {
		return err
	}

	slog.Info("Budget reset", "start_date", envelope.StartDate, "end_date", envelope.EndDate)
	return nil
}

// Expenses returns all expenses, newest-first.
func (s *BudgetService) Expenses(ctx context.Context) ([]models.Expense, error) {
	return s.store.ListExpenses(ctx)
}

// Snapshot recomputes the full derived budget view as of now.
func (s *BudgetService) Snapshot(ctx context.Context) (*calculator.BudgetSnapshot, error) {
	envelope, err := s.Envelope(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}

	snap := calculator.BudgetSnapshotAt(*envelope, expenses, s.now())
	return &snap, nil
}
