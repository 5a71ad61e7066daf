// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/application/adapter"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
	"github.com/bakehouse/backend/internal/domain/valueobject"
)

func TestExpenseRepository(t *testing.T) {
	march := func(day int) time.Time {
		return time.Date(2024, time.March, day, 12, 0, 0, 0, time.UTC)
	}

	t.Run("create and find roundtrip", func(t *testing.T) {
		repo := NewExpenseRepository(newTestDB(t))
		ctx := context.Background()

		expense := testExpense("Labor", march(5), 40.00)
		expense.Note = "weekend shift"
		if err := repo.Create(ctx, expense); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expense.ID == 0 {
			t.Error("expected the expense id to be back-filled")
		}

		found, err := repo.FindByID(ctx, expense.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Category != "Labor" || found.Note != "weekend shift" {
			t.Errorf("unexpected expense: %+v", found)
		}
		if !found.Amount.Equal(decimal.NewFromFloat(40.00)) {
			t.Errorf("expected amount 40, got %s", found.Amount)
		}
	})

	t.Run("filters by period and category", func(t *testing.T) {
		repo := NewExpenseRepository(newTestDB(t))
		ctx := context.Background()

		for _, expense := range []struct {
			category string
			day      int
			amount   float64
		}{
			{"Labor", 5, 40.00},
			{"Rent", 10, 50.00},
			{"Labor", 20, 20.00},
		} {
			if err := repo.Create(ctx, testExpense(expense.category, march(expense.day), expense.amount)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		period := valueobject.Period{Start: march(1), End: march(15)}
		found, err := repo.FindAll(ctx, adapter.ExpenseFilter{Period: &period})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 2 {
			t.Fatalf("expected 2 expenses in the first half, got %d", len(found))
		}

		found, err = repo.FindAll(ctx, adapter.ExpenseFilter{Category: "Labor"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 2 {
			t.Fatalf("expected 2 labor expenses, got %d", len(found))
		}
		for _, expense := range found {
			if expense.Category != "Labor" {
				t.Errorf("expected Labor, got %s", expense.Category)
			}
		}
	})

	t.Run("distinct categories are deduplicated and sorted", func(t *testing.T) {
		repo := NewExpenseRepository(newTestDB(t))
		ctx := context.Background()

		for _, expense := range []struct {
			category string
			day      int
		}{
			{"Rent", 5},
			{"Labor", 10},
			{"Labor", 15},
			{"Flour", 20},
		} {
			if err := repo.Create(ctx, testExpense(expense.category, march(expense.day), 10.00)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		categories, err := repo.DistinctCategories(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []string{"Flour", "Labor", "Rent"}
		if len(categories) != len(expected) {
			t.Fatalf("expected %d categories, got %v", len(expected), categories)
		}
		for i, category := range expected {
			if categories[i] != category {
				t.Errorf("expected %s at %d, got %s", category, i, categories[i])
			}
		}
	})

	t.Run("no recorded expenses yields no categories", func(t *testing.T) {
		repo := NewExpenseRepository(newTestDB(t))

		categories, err := repo.DistinctCategories(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categories) != 0 {
			t.Errorf("expected no categories, got %v", categories)
		}
	})

	t.Run("update replaces fields", func(t *testing.T) {
		repo := NewExpenseRepository(newTestDB(t))
		ctx := context.Background()

		expense := testExpense("Labor", march(5), 40.00)
		if err := repo.Create(ctx, expense); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expense.Category = "Utilities"
		expense.Amount = decimal.NewFromFloat(55.50)
		if err := repo.Update(ctx, expense); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, expense.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Category != "Utilities" {
			t.Errorf("expected Utilities, got %s", found.Category)
		}
		if !found.Amount.Equal(decimal.NewFromFloat(55.50)) {
			t.Errorf("expected amount 55.5, got %s", found.Amount)
		}
	})

	t.Run("unknown expense is not found", func(t *testing.T) {
		repo := NewExpenseRepository(newTestDB(t))
		ctx := context.Background()

		if _, err := repo.FindByID(ctx, 42); !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("expected ErrExpenseNotFound, got %v", err)
		}

		expense := testExpense("Labor", march(5), 40.00)
		expense.ID = 42
		if err := repo.Update(ctx, expense); !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("expected ErrExpenseNotFound, got %v", err)
		}

		if err := repo.Delete(ctx, 42); !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("expected ErrExpenseNotFound, got %v", err)
		}
	})
}
