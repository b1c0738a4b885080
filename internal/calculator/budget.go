// Package calculator implements the pure derivation engines: it turns raw
// entity collections into the numbers the user acts on. Nothing here touches
// storage or the wall clock; "now" is always an explicit parameter, so the
// same inputs always produce the same outputs.
package calculator

import (
	"math"
	"time"

	"github.com/khata-app/khata/internal/models"
)

// HealthStatus classifies spending pace relative to elapsed-time pace.
type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthWarning   HealthStatus = "warning"
	HealthCritical  HealthStatus = "critical"
)

// Trend classifies the last 7 days of spending against the 7 days before.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// Thresholds for the trend comparison. The 10% band is a noise threshold so
// marginal day-to-day variance does not flap the trend.
const (
	trendIncreaseFactor = 1.1
	trendDecreaseFactor = 0.9
)

// BudgetSnapshot is a consistent view of budget health at one instant.
// Every field is recomputed from the raw expenses on each call; nothing is
// cached, so staleness is impossible.
type BudgetSnapshot struct {
	// RemainingBudget is the envelope amount minus all expenses. It is not
	// floored at zero: a negative value signals overspend.
	RemainingBudget float64

	// RemainingDays is the number of whole days from now to the end date,
	// floored at 1 so the allowance never divides by zero.
	RemainingDays int

	// DailyAllowance redistributes whatever budget is left over whatever
	// time is left. It shrinks after overspending and grows after
	// underspending as the period advances.
	DailyAllowance float64

	// TodaySpent is the sum of expenses dated today (calendar-date
	// equality, regardless of clock time).
	TodaySpent float64

	// TotalDays is the length of the budget period in whole days, floored
	// at 1.
	TotalDays int

	// DaysPassed is the number of whole days elapsed since the start
	// date, floored at 1 so day one never divides by zero.
	DaysPassed int

	// TotalSpent is the sum of all expenses.
	TotalSpent float64

	// AverageDailySpending is TotalSpent spread over DaysPassed.
	AverageDailySpending float64

	// ProjectedSpending extrapolates the observed daily rate linearly
	// across the full period.
	ProjectedSpending float64

	// HealthStatus compares percentage of budget consumed against
	// percentage of period elapsed.
	HealthStatus HealthStatus

	// DaysUntilExhausted is how long the remaining budget lasts at the
	// current spending rate. With no spending it equals RemainingDays.
	DaysUntilExhausted int

	// Trend compares the last 7 days of spending with the 7 days before.
	Trend Trend
}

// BudgetSnapshotAt derives the full budget snapshot from the envelope and
// expense list as of now.
func BudgetSnapshotAt(envelope models.BudgetEnvelope, expenses []models.Expense, now time.Time) BudgetSnapshot {
	var snap BudgetSnapshot

	var totalSpent float64
	for _, e := range expenses {
		totalSpent += e.Amount
		if models.SameCalendarDate(e.Date, now) {
			snap.TodaySpent += e.Amount
		}
	}

	snap.TotalSpent = totalSpent
	snap.RemainingBudget = envelope.TotalAmount - totalSpent

	snap.RemainingDays = daysBetween(now, envelope.EndDate)
	snap.DailyAllowance = snap.RemainingBudget / float64(snap.RemainingDays)

	snap.TotalDays = daysBetween(envelope.StartDate, envelope.EndDate)
	snap.DaysPassed = daysBetween(envelope.StartDate, now)

	snap.AverageDailySpending = totalSpent / float64(snap.DaysPassed)
	snap.ProjectedSpending = snap.AverageDailySpending * float64(snap.TotalDays)

	snap.HealthStatus = healthStatus(totalSpent, envelope.TotalAmount, snap.DaysPassed, snap.TotalDays)

	if snap.AverageDailySpending > 0 {
		snap.DaysUntilExhausted = int(math.Floor(snap.RemainingBudget / snap.AverageDailySpending))
	} else {
		snap.DaysUntilExhausted = snap.RemainingDays
	}

	snap.Trend = SpendingTrend(expenses, now)

	return snap
}

// daysBetween returns the number of whole days from from to to, rounded up
// and floored at 1.
func daysBetween(from, to time.Time) int {
	days := int(math.Ceil(to.Sub(from).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// healthStatus classifies by comparing spending pace with time pace.
// delta = budgetUsedPct - timePassedPct; first match wins:
// >20 critical, >10 warning, >0 good, otherwise excellent.
// A user who spent 60% of budget at 70% of elapsed time is ahead of pace
// and rates excellent even though the absolute spend is high.
func healthStatus(totalSpent, totalAmount float64, daysPassed, totalDays int) HealthStatus {
	budgetUsedPct := totalSpent / totalAmount * 100
	timePassedPct := float64(daysPassed) / float64(totalDays) * 100

	delta := budgetUsedPct - timePassedPct
	switch {
	case delta > 20:
		return HealthCritical
	case delta > 10:
		return HealthWarning
	case delta > 0:
		return HealthGood
	default:
		return HealthExcellent
	}
}

// SpendingTrend compares the sum of expenses in [now-7d, now] against the
// sum in [now-14d, now-7d). The recent window includes its lower bound and
// the prior window excludes its upper bound, so no expense is counted twice.
func SpendingTrend(expenses []models.Expense, now time.Time) Trend {
	recentStart := now.AddDate(0, 0, -7)
	priorStart := now.AddDate(0, 0, -14)

	var recent, prior float64
	for _, e := range expenses {
		switch {
		case !e.Date.Before(recentStart) && !e.Date.After(now):
			recent += e.Amount
		case !e.Date.Before(priorStart) && e.Date.Before(recentStart):
			prior += e.Amount
		}
	}

	switch {
	case recent > prior*trendIncreaseFactor:
		return TrendIncreasing
	case recent < prior*trendDecreaseFactor:
		return TrendDecreasing
	default:
		return TrendStable
	}
}
