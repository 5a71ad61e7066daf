// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/application/usecase/finance"
)

func TestToTransactionsResponse(t *testing.T) {
	morning := time.Date(2024, time.March, 5, 9, 15, 0, 0, time.UTC)
	evening := time.Date(2024, time.March, 5, 18, 40, 0, 0, time.UTC)

	records := []finance.TransactionRecord{
		{
			ID:       "income-7",
			Date:     evening,
			Kind:     finance.TransactionKindIncome,
			Category: finance.IncomeCategoryLabel,
			Amount:   decimal.NewFromFloat(24.50),
			Note:     "Order #TB20240305007",
		},
		{
			ID:       "expense-3",
			Date:     morning,
			Kind:     finance.TransactionKindExpense,
			Category: "Rent",
			Amount:   decimal.NewFromFloat(50.00),
			Note:     "No note",
		},
	}

	response := ToTransactionsResponse(records)
	if len(response) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(response))
	}

	// Two records on the same day must stay distinguishable by time, so the
	// date keeps the full timestamp.
	if response[0].Date != "2024-03-05T18:40:00Z" {
		t.Errorf("expected RFC3339 date, got %q", response[0].Date)
	}
	if response[1].Date != "2024-03-05T09:15:00Z" {
		t.Errorf("expected RFC3339 date, got %q", response[1].Date)
	}

	if response[0].Type != "income" || response[1].Type != "expense" {
		t.Errorf("expected kinds income/expense, got %q/%q", response[0].Type, response[1].Type)
	}
	if response[0].Amount != 24.5 {
		t.Errorf("expected amount 24.5, got %v", response[0].Amount)
	}
	if response[1].Note != "No note" {
		t.Errorf("expected note placeholder, got %q", response[1].Note)
	}
}
