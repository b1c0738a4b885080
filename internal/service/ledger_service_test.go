package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/khata-app/khata/internal/models"
	"github.com/khata-app/khata/internal/storage"
)

func TestAddFriendValidation(t *testing.T) {
	svc := NewLedgerService(newTestStore(t), nil)
	ctx := context.Background()

	for _, name := range []string{"", "   "} {
		if _, err := svc.AddFriend(ctx, name); !errors.Is(err, models.ErrEmptyName) {
			t.Errorf("AddFriend(%q) error = %v, want ErrEmptyName", name, err)
		}
	}

	friend, err := svc.AddFriend(ctx, "  Alice  ")
	if err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}
	if friend.Name != "Alice" {
		t.Errorf("Name = %q, want trimmed %q", friend.Name, "Alice")
	}
	if friend.ID == "" {
		t.Error("Expected friend ID to be generated")
	}
}

func TestUpdateFriendName(t *testing.T) {
	svc := NewLedgerService(newTestStore(t), nil)
	ctx := context.Background()

	friend, err := svc.AddFriend(ctx, "Alice")
	if err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}

	if err := svc.UpdateFriendName(ctx, friend.ID, "Alicia"); err != nil {
		t.Fatalf("UpdateFriendName failed: %v", err)
	}
	got, err := svc.GetFriend(ctx, friend.ID)
	if err != nil {
		t.Fatalf("GetFriend failed: %v", err)
	}
	if got.Name != "Alicia" {
		t.Errorf("Name = %q, want Alicia", got.Name)
	}

	err = svc.UpdateFriendName(ctx, "no-such-id", "Nobody")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("rename of unknown friend error = %v, want ErrNotFound", err)
	}
}

func TestAddTransactionValidation(t *testing.T) {
	svc := NewLedgerService(newTestStore(t), nil)
	ctx := context.Background()

	friend, err := svc.AddFriend(ctx, "Alice")
	if err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}

	_, err = svc.AddTransaction(ctx, models.Transaction{
		FriendID: friend.ID, Type: "LENT", Amount: 10,
	})
	if !errors.Is(err, models.ErrInvalidTransactionType) {
		t.Errorf("bad type error = %v, want ErrInvalidTransactionType", err)
	}

	_, err = svc.AddTransaction(ctx, models.Transaction{
		FriendID: friend.ID, Type: models.TransactionGave, Amount: -5,
	})
	if !errors.Is(err, models.ErrInvalidAmount) {
		t.Errorf("negative amount error = %v, want ErrInvalidAmount", err)
	}

	_, err = svc.AddTransaction(ctx, models.Transaction{
		FriendID: "no-such-id", Type: models.TransactionGave, Amount: 10,
	})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("unknown friend error = %v, want ErrNotFound", err)
	}
}

func TestSettleBalance(t *testing.T) {
	now := time.Date(2024, time.April, 2, 18, 0, 0, 0, time.Local)
	svc := NewLedgerService(newTestStore(t), fixedClock(now))
	ctx := context.Background()

	friend, err := svc.AddFriend(ctx, "Alice")
	if err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}

	// Alice owes the user 30 after these two.
	for _, tx := range []models.Transaction{
		{FriendID: friend.ID, Type: models.TransactionGave, Amount: 50, Date: 100},
		{FriendID: friend.ID, Type: models.TransactionReceived, Amount: 20, Date: 200},
	} {
		if _, err := svc.AddTransaction(ctx, tx); err != nil {
			t.Fatalf("AddTransaction failed: %v", err)
		}
	}

	balance, err := svc.Balance(ctx, friend.ID)
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if balance != 30 {
		t.Fatalf("Balance = %v, want 30", balance)
	}

	settlement, err := svc.SettleBalance(ctx, friend.ID)
	if err != nil {
		t.Fatalf("SettleBalance failed: %v", err)
	}
	if settlement == nil {
		t.Fatal("expected a settlement transaction")
	}
	if settlement.Type != models.TransactionReceived {
		t.Errorf("settlement type = %v, want RECEIVED", settlement.Type)
	}
	if settlement.Amount != 30 {
		t.Errorf("settlement amount = %v, want 30", settlement.Amount)
	}
	if !settlement.IsSettlement {
		t.Error("settlement transaction not flagged")
	}
	if settlement.Date != now.Unix() {
		t.Errorf("settlement date = %v, want %v", settlement.Date, now.Unix())
	}

	balance, err = svc.Balance(ctx, friend.ID)
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if balance != 0 {
		t.Errorf("Balance after settlement = %v, want 0", balance)
	}

	// History is preserved: the settlement is appended, nothing removed.
	transactions, err := svc.FriendTransactions(ctx, friend.ID)
	if err != nil {
		t.Fatalf("FriendTransactions failed: %v", err)
	}
	if len(transactions) != 3 {
		t.Errorf("got %d transactions, want 3", len(transactions))
	}

	// Settling an already-zero balance appends nothing.
	again, err := svc.SettleBalance(ctx, friend.ID)
	if err != nil {
		t.Fatalf("second SettleBalance failed: %v", err)
	}
	if again != nil {
		t.Error("second settlement produced a transaction")
	}
	transactions, err = svc.FriendTransactions(ctx, friend.ID)
	if err != nil {
		t.Fatalf("FriendTransactions failed: %v", err)
	}
	if len(transactions) != 3 {
		t.Errorf("got %d transactions after second settle, want 3", len(transactions))
	}
}

func TestSettleNegativeBalance(t *testing.T) {
	svc := NewLedgerService(newTestStore(t), nil)
	ctx := context.Background()

	friend, err := svc.AddFriend(ctx, "Bob")
	if err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}
	if _, err := svc.AddTransaction(ctx, models.Transaction{
		FriendID: friend.ID, Type: models.TransactionReceived, Amount: 45,
	}); err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}

	settlement, err := svc.SettleBalance(ctx, friend.ID)
	if err != nil {
		t.Fatalf("SettleBalance failed: %v", err)
	}
	if settlement.Type != models.TransactionGave {
		t.Errorf("settlement type = %v, want GAVE", settlement.Type)
	}
	if settlement.Amount != 45 {
		t.Errorf("settlement amount = %v, want 45", settlement.Amount)
	}
}

func TestSettleUnknownFriend(t *testing.T) {
	svc := NewLedgerService(newTestStore(t), nil)

	_, err := svc.SettleBalance(context.Background(), "no-such-id")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("SettleBalance error = %v, want ErrNotFound", err)
	}
}

func TestDeleteFriendCascades(t *testing.T) {
	svc := NewLedgerService(newTestStore(t), nil)
	ctx := context.Background()

	alice, err := svc.AddFriend(ctx, "Alice")
	if err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}
	bob, err := svc.AddFriend(ctx, "Bob")
	if err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}

	for _, tx := range []models.Transaction{
		{FriendID: alice.ID, Type: models.TransactionGave, Amount: 50},
		{FriendID: alice.ID, Type: models.TransactionReceived, Amount: 10},
		{FriendID: bob.ID, Type: models.TransactionGave, Amount: 99},
	} {
		if _, err := svc.AddTransaction(ctx, tx); err != nil {
			t.Fatalf("AddTransaction failed: %v", err)
		}
	}

	if err := svc.DeleteFriend(ctx, alice.ID); err != nil {
		t.Fatalf("DeleteFriend failed: %v", err)
	}

	transactions, err := svc.FriendTransactions(ctx, alice.ID)
	if err != nil {
		t.Fatalf("FriendTransactions failed: %v", err)
	}
	if len(transactions) != 0 {
		t.Errorf("got %d transactions for deleted friend, want 0", len(transactions))
	}

	// Bob's ledger is untouched.
	balance, err := svc.Balance(ctx, bob.ID)
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if balance != 99 {
		t.Errorf("Bob's balance = %v, want 99", balance)
	}
}

func TestFriendBalances(t *testing.T) {
	svc := NewLedgerService(newTestStore(t), nil)
	ctx := context.Background()

	alice, err := svc.AddFriend(ctx, "Alice")
	if err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}
	bob, err := svc.AddFriend(ctx, "Bob")
	if err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}

	for _, tx := range []models.Transaction{
		{FriendID: alice.ID, Type: models.TransactionGave, Amount: 50},
		{FriendID: bob.ID, Type: models.TransactionReceived, Amount: 25},
	} {
		if _, err := svc.AddTransaction(ctx, tx); err != nil {
			t.Fatalf("AddTransaction failed: %v", err)
		}
	}

	balances, err := svc.FriendBalances(ctx)
	if err != nil {
		t.Fatalf("FriendBalances failed: %v", err)
	}
	if len(balances) != 2 {
		t.Fatalf("got %d balances, want 2", len(balances))
	}

	byName := make(map[string]float64)
	for _, fb := range balances {
		byName[fb.Friend.Name] = fb.Balance
	}
	if byName["Alice"] != 50 {
		t.Errorf("Alice balance = %v, want 50", byName["Alice"])
	}
	if byName["Bob"] != -25 {
		t.Errorf("Bob balance = %v, want -25", byName["Bob"])
	}
}
