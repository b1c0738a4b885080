// Package httpapi exposes the budget and ledger services over a JSON HTTP
// API. It is a thin presentation adapter: all logic lives in the services
// and the calculator.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khata-app/khata/internal/models"
	"github.com/khata-app/khata/internal/service"
	"github.com/khata-app/khata/internal/storage"
)

// Server holds the services the HTTP handlers delegate to.
type Server struct {
	budget *service.BudgetService
	ledger *service.LedgerService
}

// NewServer creates a new Server over the given services.
func NewServer(budget *service.BudgetService, ledger *service.LedgerService) *Server {
	return &Server{budget: budget, ledger: ledger}
}

// Routes returns the full API route table.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/budget", s.handleGetBudget)
	mux.HandleFunc("PUT /api/budget", s.handleSetBudget)
	mux.HandleFunc("PUT /api/budget/period", s.handleSetPeriod)
	mux.HandleFunc("POST /api/budget/reset", s.handleResetBudget)

	mux.HandleFunc("GET /api/expenses", s.handleListExpenses)
	mux.HandleFunc("POST /api/expenses", s.handleAddExpense)
	mux.HandleFunc("DELETE /api/expenses/{id}", s.handleDeleteExpense)

	mux.HandleFunc("GET /api/friends", s.handleListFriends)
	mux.HandleFunc("POST /api/friends", s.handleAddFriend)
	mux.HandleFunc("PATCH /api/friends/{id}", s.handleRenameFriend)
	mux.HandleFunc("DELETE /api/friends/{id}", s.handleDeleteFriend)
	mux.HandleFunc("GET /api/friends/{id}/transactions", s.handleFriendTransactions)
	mux.HandleFunc("POST /api/friends/{id}/settle", s.handleSettleBalance)

	mux.HandleFunc("POST /api/transactions", s.handleAddTransaction)
	mux.HandleFunc("DELETE /api/transactions/{id}", s.handleDeleteTransaction)

	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps service errors onto HTTP statuses: validation failures
// are 400, absent entities are 404, everything else is 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case isValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		slog.Error("Request handling failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, models.ErrInvalidAmount) ||
		errors.Is(err, models.ErrEmptyDescription) ||
		errors.Is(err, models.ErrEmptyName) ||
		errors.Is(err, models.ErrInvalidPeriod) ||
		errors.Is(err, models.ErrInvalidTransactionType)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
