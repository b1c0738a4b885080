package models

import "errors"

// Validation errors returned before any entity is created.
// Operations failing with one of these leave stored state untouched.
var (
	// ErrInvalidAmount indicates a monetary amount that is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrEmptyDescription indicates a missing expense description.
	ErrEmptyDescription = errors.New("description must not be empty")

	// ErrEmptyName indicates a missing friend name.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrInvalidPeriod indicates a budget period whose end date does not
	// strictly follow its start date.
	ErrInvalidPeriod = errors.New("end date must be after start date")

	// ErrInvalidTransactionType indicates a transaction type other than
	// GAVE or RECEIVED.
	ErrInvalidTransactionType = errors.New("transaction type must be GAVE or RECEIVED")
)
