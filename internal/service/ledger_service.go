package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/khata-app/khata/internal/calculator"
	"github.com/khata-app/khata/internal/models"
	"github.com/khata-app/khata/internal/storage"
)

// settlementDescription labels transactions appended by SettleBalance.
const settlementDescription = "Settlement"

// LedgerService manages friends and the peer transactions between them and
// the user.
type LedgerService struct {
	store storage.Store
	now   Clock
}

// NewLedgerService creates a new LedgerService with the given storage
// backend and clock. A nil clock defaults to time.Now.
func NewLedgerService(store storage.Store, clock Clock) *LedgerService {
	if clock == nil {
		clock = time.Now
	}
	return &LedgerService{store: store, now: clock}
}

// AddFriend validates and persists a new friend.
func (s *LedgerService) AddFriend(ctx context.Context, name string) (*models.Friend, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.ErrEmptyName
	}

	friend := &models.Friend{Name: name, CreatedAt: s.now().Unix()}
	if err := s.store.CreateFriend(ctx, friend); err != nil {
		return nil, err
	}
	slog.Info("Friend added", "friend_id", friend.ID, "name", friend.Name)
	return friend, nil
}

// GetFriend returns a friend by ID, or storage.ErrNotFound.
func (s *LedgerService) GetFriend(ctx context.Context, id string) (*models.Friend, error) {
	return s.store.GetFriend(ctx, id)
}

// UpdateFriendName renames a friend. Returns storage.ErrNotFound for
// unknown IDs.
func (s *LedgerService) UpdateFriendName(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.ErrEmptyName
	}
	return s.store.UpdateFriend(ctx, &models.Friend{ID: id, Name: name})
}

// DeleteFriend removes a friend and all of their transactions atomically.
// Unknown IDs are a no-op.
func (s *LedgerService) DeleteFriend(ctx context.Context, id string) error {
	if err := s.store.DeleteFriend(ctx, id); err != nil {
		return err
	}
	slog.Info("Friend deleted", "friend_id", id)
	return nil
}

// AddTransaction validates and persists a new transaction. The transaction
// date defaults to now when unset.
func (s *LedgerService) AddTransaction(ctx context.Context, transaction models.Transaction) (*models.Transaction, error) {
	if err := transaction.Validate(); err != nil {
		return nil, err
	}
	if transaction.Date == 0 {
		transaction.Date = s.now().Unix()
	}
	transaction.ID = ""

	if err := s.store.CreateTransaction(ctx, &transaction); err != nil {
		return nil, err
	}
	slog.Info("Transaction added",
		"transaction_id", transaction.ID,
		"friend_id", transaction.FriendID,
		"type", transaction.Type,
		"amount", transaction.Amount,
	)
	return &transaction, nil
}

// DeleteTransaction removes a transaction. Unknown IDs are a no-op.
func (s *LedgerService) DeleteTransaction(ctx context.Context, id string) error {
	return s.store.DeleteTransaction(ctx, id)
}

// FriendTransactions returns one friend's transactions, newest-first.
// An unknown friend yields an empty slice, not an error.
func (s *LedgerService) FriendTransactions(ctx context.Context, friendID string) ([]models.Transaction, error) {
	return s.store.ListFriendTransactions(ctx, friendID)
}

// Balance recomputes the running balance with one friend. Positive means
// the friend owes the user.
func (s *LedgerService) Balance(ctx context.Context, friendID string) (float64, error) {
	transactions, err := s.store.ListFriendTransactions(ctx, friendID)
	if err != nil {
		return 0, err
	}
	return calculator.Balance(friendID, transactions), nil
}

// FriendBalance pairs a friend with their recomputed balance.
type FriendBalance struct {
	Friend  models.Friend
	Balance float64
}

// FriendBalances returns every friend with their current balance.
func (s *LedgerService) FriendBalances(ctx context.Context) ([]FriendBalance, error) {
	friends, err := s.store.ListFriends(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.store.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	balances := make([]FriendBalance, len(friends))
	for i, friend := range friends {
		balances[i] = FriendBalance{
			Friend:  friend,
			Balance: calculator.Balance(friend.ID, transactions),
		}
	}
	return balances, nil
}

// SettleBalance appends exactly one settlement transaction that zeroes the
// friend's balance. A balance of exactly zero is a no-op and returns nil.
// Prior transactions are left untouched; settlement is data, not deletion
// of history.
func (s *LedgerService) SettleBalance(ctx context.Context, friendID string) (*models.Transaction, error) {
	if _, err := s.store.GetFriend(ctx, friendID); err != nil {
		return nil, err
	}

	balance, err := s.Balance(ctx, friendID)
	if err != nil {
		return nil, err
	}

	plan, ok := calculator.PlanSettlement(balance)
	if !ok {
		return nil, nil
	}

	settlement := models.Transaction{
		FriendID:     friendID,
		Type:         plan.Type,
		Amount:       plan.Amount,
		Date:         s.now().Unix(),
		Description:  settlementDescription,
		IsSettlement: true,
	}
	if err := s.store.CreateTransaction(ctx, &settlement); err != nil {
		return nil, err
	}

	slog.Info("Balance settled",
		"friend_id", friendID,
		"type", settlement.Type,
		"amount", settlement.Amount,
	)
	return &settlement, nil
}
