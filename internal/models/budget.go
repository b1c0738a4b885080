package models

import "time"

// DefaultBudgetAmount is the envelope amount used when no envelope has been
// stored yet.
const DefaultBudgetAmount = 3200

// BudgetEnvelope is the fixed total budget and the calendar period it must
// cover. There is exactly one envelope at a time.
type BudgetEnvelope struct {
	// TotalAmount is the positive total budget for the period.
	TotalAmount float64

	// StartDate is the first day of the budget period.
	StartDate time.Time

	// EndDate is the last day of the budget period. It must strictly
	// follow StartDate.
	EndDate time.Time
}

// Validate checks the envelope invariants before it is accepted.
func (b *BudgetEnvelope) Validate() error {
	if b.TotalAmount <= 0 {
		return ErrInvalidAmount
	}
	if !b.EndDate.After(b.StartDate) {
		return ErrInvalidPeriod
	}
	return nil
}

// DefaultEnvelope returns the envelope used when none has been stored:
// the default amount over [now, now+1 month].
func DefaultEnvelope(now time.Time) BudgetEnvelope {
	start := CalendarDate(now)
	return BudgetEnvelope{
		TotalAmount: DefaultBudgetAmount,
		StartDate:   start,
		EndDate:     start.AddDate(0, 1, 0),
	}
}
