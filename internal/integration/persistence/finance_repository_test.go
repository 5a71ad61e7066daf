// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/bakehouse/backend/internal/domain/entity"
	"github.com/bakehouse/backend/internal/domain/valueobject"
)

func TestFinanceRepositoryCompletedOrders(t *testing.T) {
	db := newTestDB(t)
	orderRepo := NewOrderRepository(db)
	financeRepo := NewFinanceRepository(db)
	ctx := context.Background()

	seed := []*entity.Order{
		testOrder("TB20240305001", entity.OrderStatusCompleted,
			time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC), 100.00),
		testOrder("TB20240331001", entity.OrderStatusCompleted,
			time.Date(2024, time.March, 31, 22, 30, 0, 0, time.UTC), 50.00),
		// Wrong status, never contributes.
		testOrder("TB20240310001", entity.OrderStatusPending,
			time.Date(2024, time.March, 10, 10, 0, 0, 0, time.UTC), 999.00),
		testOrder("TB20240312001", entity.OrderStatusCancelled,
			time.Date(2024, time.March, 12, 10, 0, 0, 0, time.UTC), 999.00),
		// Outside the period.
		testOrder("TB20240401001", entity.OrderStatusCompleted,
			time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), 999.00),
	}
	for _, order := range seed {
		if err := orderRepo.Create(ctx, order); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	period := valueobject.MonthPeriod(2024, time.March)
	orders, err := financeRepo.CompletedOrders(ctx, period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(orders) != 2 {
		t.Fatalf("expected 2 completed orders in March, got %d", len(orders))
	}

	// Newest first, and a late record on the period's final day still counts.
	if orders[0].Number != "TB20240331001" {
		t.Errorf("expected TB20240331001 first, got %s", orders[0].Number)
	}
	if orders[1].Number != "TB20240305001" {
		t.Errorf("expected TB20240305001 second, got %s", orders[1].Number)
	}

	for _, order := range orders {
		if len(order.Items) == 0 {
			t.Errorf("expected items to be preloaded for %s", order.Number)
		}
	}
}

func TestFinanceRepositoryExpenses(t *testing.T) {
	db := newTestDB(t)
	expenseRepo := NewExpenseRepository(db)
	financeRepo := NewFinanceRepository(db)
	ctx := context.Background()

	seed := []*entity.Expense{
		testExpense("Labor", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), 40.00),
		testExpense("Rent", time.Date(2024, time.March, 31, 23, 0, 0, 0, time.UTC), 50.00),
		// Outside the period.
		testExpense("Labor", time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC), 999.00),
		testExpense("Labor", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), 999.00),
	}
	for _, expense := range seed {
		if err := expenseRepo.Create(ctx, expense); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	period := valueobject.MonthPeriod(2024, time.March)
	expenses, err := financeRepo.Expenses(ctx, period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(expenses) != 2 {
		t.Fatalf("expected 2 expenses in March, got %d", len(expenses))
	}
	if expenses[0].Category != "Rent" || expenses[1].Category != "Labor" {
		t.Errorf("expected newest-first ordering, got %s then %s", expenses[0].Category, expenses[1].Category)
	}
}
