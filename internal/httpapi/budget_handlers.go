package httpapi

import (
	"net/http"
	"time"

	"github.com/khata-app/khata/internal/calculator"
	"github.com/khata-app/khata/internal/models"
)

type envelopeResponse struct {
	TotalAmount float64 `json:"total_amount"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
}

type snapshotResponse struct {
	RemainingBudget      float64                 `json:"remaining_budget"`
	RemainingDays        int                     `json:"remaining_days"`
	DailyAllowance       float64                 `json:"daily_allowance"`
	TodaySpent           float64                 `json:"today_spent"`
	TotalDays            int                     `json:"total_days"`
	DaysPassed           int                     `json:"days_passed"`
	TotalSpent           float64                 `json:"total_spent"`
	AverageDailySpending float64                 `json:"average_daily_spending"`
	ProjectedSpending    float64                 `json:"projected_spending"`
	HealthStatus         calculator.HealthStatus `json:"health_status"`
	DaysUntilExhausted   int                     `json:"days_until_exhausted"`
	Trend                calculator.Trend        `json:"trend"`
}

type budgetResponse struct {
	Envelope envelopeResponse `json:"envelope"`
	Snapshot snapshotResponse `json:"snapshot"`
}

type expenseResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

func toExpenseResponse(e models.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		Amount:      e.Amount,
		Date:        e.Date.Format(time.DateOnly),
		Description: e.Description,
		Category:    e.Category,
	}
}

func (s *Server) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	envelope, err := s.budget.Envelope(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := s.budget.Snapshot(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, budgetResponse{
		Envelope: envelopeResponse{
			TotalAmount: envelope.TotalAmount,
			StartDate:   envelope.StartDate.Format(time.DateOnly),
			EndDate:     envelope.EndDate.Format(time.DateOnly),
		},
		Snapshot: snapshotResponse{
			RemainingBudget:      snap.RemainingBudget,
			RemainingDays:        snap.RemainingDays,
			DailyAllowance:       snap.DailyAllowance,
			TodaySpent:           snap.TodaySpent,
			TotalDays:            snap.TotalDays,
			DaysPassed:           snap.DaysPassed,
			TotalSpent:           snap.TotalSpent,
			AverageDailySpending: snap.AverageDailySpending,
			ProjectedSpending:    snap.ProjectedSpending,
			HealthStatus:         snap.HealthStatus,
			DaysUntilExhausted:   snap.DaysUntilExhausted,
			Trend:                snap.Trend,
		},
	})
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount float64 `json:"amount"`
	}
	if !decode(w, r, &req) {
		return
	}

	if err := s.budget.SetBudget(r.Context(), req.Amount); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetPeriod(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	if !decode(w, r, &req) {
		return
	}

	if req.StartDate != "" {
		date, err := time.ParseInLocation(time.DateOnly, req.StartDate, time.Local)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid start_date"})
			return
		}
		if err := s.budget.SetStartDate(r.Context(), date); err != nil {
			writeError(w, err)
			return
		}
	}
	if req.EndDate != "" {
		date, err := time.ParseInLocation(time.DateOnly, req.EndDate, time.Local)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid end_date"})
			return
		}
		if err := s.budget.SetEndDate(r.Context(), date); err != nil {
			writeError(w, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleResetBudget(w http.ResponseWriter, r *http.Request) {
	if err := s.budget.ResetBudget(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.budget.Expenses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toExpenseResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount      float64 `json:"amount"`
		Date        string  `json:"date"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
	}
	if !decode(w, r, &req) {
		return
	}

	expense := models.Expense{
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
	}
	if req.Date != "" {
		date, err := time.ParseInLocation(time.DateOnly, req.Date, time.Local)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid date"})
			return
		}
		expense.Date = date
	}

	created, err := s.budget.AddExpense(r.Context(), expense)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExpenseResponse(*created))
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.budget.DeleteExpense(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
