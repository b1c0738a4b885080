// Package models defines the core domain models for Khata.
//
// # Models
//
// The tracker keeps two independent ledgers:
//   - BudgetEnvelope + Expense: a single-owner monthly budget envelope
//   - Friend + Transaction: an informal peer debt ledger ("who owes whom")
//
// # Design Principles
//
// 1. **Amounts are unsigned**: monetary amounts are validated positive on
// input; direction is carried by Transaction.Type, never by a negative amount.
// 2. **Avoid circular references**: Transaction references its Friend by ID
// string instead of a pointer.
// 3. **Immutable history**: expenses and transactions are never edited once
// created, only deleted. Settlements are appended as data, not applied by
// rewriting prior transactions.
package models
