package models

// Friend represents a person the user informally lends to or borrows from.
type Friend struct {
	// ID is the unique identifier for the friend (UUID format).
	ID string

	// Name is the display name of the friend.
	Name string

	// CreatedAt is the Unix timestamp when the friend was added.
	CreatedAt int64
}
