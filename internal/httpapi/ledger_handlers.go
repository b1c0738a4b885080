package httpapi

import (
	"net/http"

	"github.com/khata-app/khata/internal/models"
)

type friendResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Balance   float64 `json:"balance"`
	CreatedAt int64   `json:"created_at"`
}

type transactionResponse struct {
	ID           string  `json:"id"`
	FriendID     string  `json:"friend_id"`
	Type         string  `json:"type"`
	Amount       float64 `json:"amount"`
	Date         int64   `json:"date"`
	Description  string  `json:"description"`
	IsSettlement bool    `json:"is_settlement"`
}

func toTransactionResponse(t models.Transaction) transactionResponse {
	return transactionResponse{
		ID:           t.ID,
		FriendID:     t.FriendID,
		Type:         string(t.Type),
		Amount:       t.Amount,
		Date:         t.Date,
		Description:  t.Description,
		IsSettlement: t.IsSettlement,
	}
}

func (s *Server) handleListFriends(w http.ResponseWriter, r *http.Request) {
	balances, err := s.ledger.FriendBalances(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]friendResponse, len(balances))
	for i, fb := range balances {
		resp[i] = friendResponse{
			ID:        fb.Friend.ID,
			Name:      fb.Friend.Name,
			Balance:   fb.Balance,
			CreatedAt: fb.Friend.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddFriend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !decode(w, r, &req) {
		return
	}

	friend, err := s.ledger.AddFriend(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, friendResponse{
		ID:        friend.ID,
		Name:      friend.Name,
		CreatedAt: friend.CreatedAt,
	})
}

func (s *Server) handleRenameFriend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !decode(w, r, &req) {
		return
	}

	if err := s.ledger.UpdateFriendName(r.Context(), r.PathValue("id"), req.Name); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteFriend(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.DeleteFriend(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFriendTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.ledger.FriendTransactions(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]transactionResponse, len(transactions))
	for i, t := range transactions {
		resp[i] = toTransactionResponse(t)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSettleBalance(w http.ResponseWriter, r *http.Request) {
	settlement, err := s.ledger.SettleBalance(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if settlement == nil {
		// Balance was already zero; nothing appended.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusCreated, toTransactionResponse(*settlement))
}

func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FriendID    string  `json:"friend_id"`
		Type        string  `json:"type"`
		Amount      float64 `json:"amount"`
		Date        int64   `json:"date"`
		Description string  `json:"description"`
	}
	if !decode(w, r, &req) {
		return
	}

	transaction, err := s.ledger.AddTransaction(r.Context(), models.Transaction{
		FriendID:    req.FriendID,
		Type:        models.TransactionType(req.Type),
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTransactionResponse(*transaction))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.DeleteTransaction(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
