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

// CreateFriend persists a new friend to the database.
func (s *SQLiteStore) CreateFriend(ctx context.Context, friend *models.Friend) error {
	// Generate ID if not set
	if friend.ID == "" {
		friend.ID = uuid.New().String()
	}
	if friend.CreatedAt == 0 {
		friend.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO friends (id, name, created_at) VALUES (?, ?, ?)",
		friend.ID, friend.Name, friend.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert friend: %w", err)
	}

	return nil
}

// GetFriend retrieves a friend by ID.
func (s *SQLiteStore) GetFriend(ctx context.Context, id string) (*models.Friend, error) {
	friend := &models.Friend{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM friends WHERE id = ?", id,
	).Scan(&friend.ID, &friend.Name, &friend.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get friend: %w", err)
	}
	return friend, nil
}

// ListFriends retrieves all friends, oldest-first by creation time.
func (s *SQLiteStore) ListFriends(ctx context.Context) ([]models.Friend, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM friends ORDER BY created_at, name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	defer rows.Close()

	var friends []models.Friend
	for rows.Next() {
		var friend models.Friend
		if err := rows.Scan(&friend.ID, &friend.Name, &friend.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		friends = append(friends, friend)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friends: %w", err)
	}

	return friends, nil
}

// UpdateFriend updates a friend's name.
func (s *SQLiteStore) UpdateFriend(ctx context.Context, friend *models.Friend) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE friends SET name = ? WHERE id = ?",
		friend.Name, friend.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update friend: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteFriend removes a friend and all of their transactions in a single
// transaction, so no dangling references survive. Absent IDs are a no-op.
func (s *SQLiteStore) DeleteFriend(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM transactions WHERE friend_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete friend transactions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM friends WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete friend: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
