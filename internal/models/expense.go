package models

import (
	"strings"
	"time"
)

// Expense represents a single spend against the budget envelope.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// Amount is the positive amount spent.
	Amount float64

	// Date is the calendar date of the expense. Only the year, month and
	// day are meaningful; the time component is normalized to midnight.
	Date time.Time

	// Description is a short human-readable label for the expense.
	Description string

	// Category is a free-form category label (e.g. "Food", "Transport").
	Category string
}

// Validate checks the expense fields before creation.
func (e *Expense) Validate() error {
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// CalendarDate truncates t to its calendar date (midnight, same location).
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameCalendarDate reports whether a and b fall on the same calendar day.
func SameCalendarDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
