package models

// TransactionType is the direction of a peer transaction, seen from the
// user's side.
type TransactionType string

const (
	// TransactionGave means the user transferred money to the friend,
	// increasing what the friend owes the user.
	TransactionGave TransactionType = "GAVE"

	// TransactionReceived means the friend transferred money to the user,
	// decreasing what the friend owes the user.
	TransactionReceived TransactionType = "RECEIVED"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionGave || t == TransactionReceived
}

// Transaction represents a single money movement between the user and a
// friend.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string

	// FriendID is the friend this transaction belongs to.
	// Deleting the friend deletes all of their transactions with them.
	FriendID string

	// Type is the direction of the transfer (GAVE or RECEIVED).
	Type TransactionType

	// Amount is the positive amount transferred.
	Amount float64

	// Date is the Unix timestamp of the transaction.
	Date int64

	// Description is an optional note for the transaction.
	Description string

	// IsSettlement marks transactions appended by the settle operation
	// to zero out a balance. Settlements are regular transactions in
	// every other respect.
	IsSettlement bool
}

// Validate checks the transaction fields before creation.
func (t *Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidTransactionType
	}
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Sign returns +1 for GAVE and -1 for RECEIVED, the contribution direction
// of this transaction to the friend's balance.
func (t *Transaction) Sign() float64 {
	if t.Type == TransactionGave {
		return 1
	}
	return -1
}
