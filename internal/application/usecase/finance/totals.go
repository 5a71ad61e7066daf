// Package finance contains the financial reporting use cases.
package finance

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/domain/valueobject"
)

// Totals holds the unrounded income/expense/profit sums for one period.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Profit  decimal.Decimal
}

// collectTotals folds the period's completed orders and expenses into totals.
// A store failure propagates; it is never reported as zero activity.
func collectTotals(ctx context.Context, repo Repository, period valueobject.Period) (Totals, error) {
	orders, err := repo.CompletedOrders(ctx, period)
	if err != nil {
		return Totals{}, fmt.Errorf("failed to load completed orders: %w", err)
	}

	expenses, err := repo.Expenses(ctx, period)
	if err != nil {
		return Totals{}, fmt.Errorf("failed to load expenses: %w", err)
	}

	income := decimal.Zero
	for _, order := range orders {
		income = income.Add(order.TotalAmount)
	}

	expense := decimal.Zero
	for _, e := range expenses {
		expense = expense.Add(e.Amount)
	}

	return Totals{
		Income:  income,
		Expense: expense,
		Profit:  income.Sub(expense),
	}, nil
}

// trendPct computes the percentage change from prev to cur. A non-positive
// previous value yields zero: "0% from a zero base" is a deliberate policy,
// not an approximation, so callers are handed the previous totals alongside
// the percentage to disambiguate.
func trendPct(cur, prev decimal.Decimal) decimal.Decimal {
	if !prev.IsPositive() {
		return decimal.Zero
	}
	return cur.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100))
}

// Monetary values are rounded half away from zero, and only at output
// boundaries: amounts to 2 places, percentages to 1. Intermediate sums stay
// unrounded.

func roundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func roundPct(d decimal.Decimal) decimal.Decimal {
	return d.Round(1)
}
