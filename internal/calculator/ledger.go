package calculator

import (
	"math"
	"sort"

	"github.com/khata-app/khata/internal/models"
)

// Balance computes the running balance with one friend: the signed sum of
// that friend's transactions, GAVE counting positive and RECEIVED negative.
// Positive means the friend owes the user, negative means the user owes the
// friend, zero means settled.
func Balance(friendID string, transactions []models.Transaction) float64 {
	var balance float64
	for i := range transactions {
		t := &transactions[i]
		if t.FriendID != friendID {
			continue
		}
		balance += t.Amount * t.Sign()
	}
	return balance
}

// FriendTransactions returns a friend's transactions ordered newest-first
// by date. The input slice is not mutated; callers get a fresh copy.
func FriendTransactions(friendID string, transactions []models.Transaction) []models.Transaction {
	var result []models.Transaction
	for _, t := range transactions {
		if t.FriendID == friendID {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result
}

// SettlementPlan describes the single transaction that would zero out a
// friend's balance.
type SettlementPlan struct {
	Type   models.TransactionType
	Amount float64
}

// PlanSettlement returns the transaction that exactly cancels the given
// balance. The second return value is false when the balance is already
// zero and no settlement is needed.
func PlanSettlement(balance float64) (SettlementPlan, bool) {
	if balance == 0 {
		return SettlementPlan{}, false
	}
	plan := SettlementPlan{
		Type:   models.TransactionGave,
		Amount: math.Abs(balance),
	}
	if balance > 0 {
		plan.Type = models.TransactionReceived
	}
	return plan, true
}
