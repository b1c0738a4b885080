package calculator

import (
	"testing"

	"github.com/khata-app/khata/internal/models"
)

func TestBalance(t *testing.T) {
	tests := []struct {
		name         string
		transactions []models.Transaction
		friendID     string
		want         float64
	}{
		{
			name: "gave minus received",
			transactions: []models.Transaction{
				{FriendID: "alice", Type: models.TransactionGave, Amount: 50},
				{FriendID: "alice", Type: models.TransactionReceived, Amount: 20},
			},
			friendID: "alice",
			want:     30,
		},
		{
			name: "other friends do not contribute",
			transactions: []models.Transaction{
				{FriendID: "alice", Type: models.TransactionGave, Amount: 50},
				{FriendID: "bob", Type: models.TransactionGave, Amount: 500},
			},
			friendID: "alice",
			want:     50,
		},
		{
			name: "gave and received of equal amount cancel",
			transactions: []models.Transaction{
				{FriendID: "alice", Type: models.TransactionGave, Amount: 75},
				{FriendID: "alice", Type: models.TransactionReceived, Amount: 75},
			},
			friendID: "alice",
			want:     0,
		},
		{
			name: "received more than gave goes negative",
			transactions: []models.Transaction{
				{FriendID: "alice", Type: models.TransactionGave, Amount: 10},
				{FriendID: "alice", Type: models.TransactionReceived, Amount: 40},
			},
			friendID: "alice",
			want:     -30,
		},
		{
			name:     "no transactions",
			friendID: "alice",
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Balance(tt.friendID, tt.transactions); got != tt.want {
				t.Errorf("Balance(%q) = %v, want %v", tt.friendID, got, tt.want)
			}
		})
	}
}

func TestFriendTransactions(t *testing.T) {
	transactions := []models.Transaction{
		{ID: "t1", FriendID: "alice", Type: models.TransactionGave, Amount: 10, Date: 100},
		{ID: "t2", FriendID: "bob", Type: models.TransactionGave, Amount: 20, Date: 200},
		{ID: "t3", FriendID: "alice", Type: models.TransactionReceived, Amount: 5, Date: 300},
		{ID: "t4", FriendID: "alice", Type: models.TransactionGave, Amount: 7, Date: 200},
	}

	got := FriendTransactions("alice", transactions)

	wantOrder := []string{"t3", "t4", "t1"}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d transactions, want %d", len(got), len(wantOrder))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}

	// The input slice must keep its storage order.
	if transactions[0].ID != "t1" || transactions[3].ID != "t4" {
		t.Error("input slice was reordered")
	}
}

func TestFriendTransactionsUnknownFriend(t *testing.T) {
	transactions := []models.Transaction{
		{ID: "t1", FriendID: "alice", Type: models.TransactionGave, Amount: 10, Date: 100},
	}
	if got := FriendTransactions("nobody", transactions); len(got) != 0 {
		t.Errorf("got %d transactions for unknown friend, want 0", len(got))
	}
}

func TestPlanSettlement(t *testing.T) {
	tests := []struct {
		name       string
		balance    float64
		wantPlan   SettlementPlan
		wantNeeded bool
	}{
		{
			name:       "friend owes the user",
			balance:    30,
			wantPlan:   SettlementPlan{Type: models.TransactionReceived, Amount: 30},
			wantNeeded: true,
		},
		{
			name:       "user owes the friend",
			balance:    -12.5,
			wantPlan:   SettlementPlan{Type: models.TransactionGave, Amount: 12.5},
			wantNeeded: true,
		},
		{
			name:       "already settled",
			balance:    0,
			wantNeeded: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, needed := PlanSettlement(tt.balance)
			if needed != tt.wantNeeded {
				t.Fatalf("PlanSettlement(%v) needed = %v, want %v", tt.balance, needed, tt.wantNeeded)
			}
			if needed && plan != tt.wantPlan {
				t.Errorf("PlanSettlement(%v) = %+v, want %+v", tt.balance, plan, tt.wantPlan)
			}
		})
	}
}

func TestSettlementZeroesBalance(t *testing.T) {
	transactions := []models.Transaction{
		{FriendID: "alice", Type: models.TransactionGave, Amount: 50, Date: 1},
		{FriendID: "alice", Type: models.TransactionReceived, Amount: 20, Date: 2},
	}

	balance := Balance("alice", transactions)
	plan, needed := PlanSettlement(balance)
	if !needed {
		t.Fatal("expected a settlement to be needed")
	}

	transactions = append(transactions, models.Transaction{
		FriendID:     "alice",
		Type:         plan.Type,
		Amount:       plan.Amount,
		Date:         3,
		IsSettlement: true,
	})

	if got := Balance("alice", transactions); got != 0 {
		t.Errorf("balance after settlement = %v, want 0", got)
	}
	if _, needed := PlanSettlement(Balance("alice", transactions)); needed {
		t.Error("second settlement planned on a zero balance")
	}
}
