// Package finance contains the financial reporting use cases.
package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bakehouse/backend/internal/domain/entity"
)

func TestGetTrendsUseCase(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	newUseCase := func(repo *fakeRepository) *GetTrendsUseCase {
		uc := NewGetTrendsUseCase(repo, nil)
		uc.now = func() time.Time { return now }
		return uc
	}

	t.Run("defaults to six trailing months oldest first", func(t *testing.T) {
		repo := &fakeRepository{
			orders: []*entity.Order{
				completedOrder(1, time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC), 80.00),
				completedOrder(2, time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC), 120.00),
			},
			expenses: []*entity.Expense{
				expenseRecord(1, time.Date(2024, time.March, 3, 9, 0, 0, 0, time.UTC), "Labor", 20.00),
			},
		}
		uc := newUseCase(repo)

		output, err := uc.Execute(context.Background(), GetTrendsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expectedLabels := []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}
		if len(output.Labels) != len(expectedLabels) {
			t.Fatalf("expected %d labels, got %d", len(expectedLabels), len(output.Labels))
		}
		for i, label := range expectedLabels {
			if output.Labels[i] != label {
				t.Errorf("label %d: expected %s, got %s", i, label, output.Labels[i])
			}
		}

		if len(output.Income) != 6 || len(output.Expense) != 6 || len(output.Profit) != 6 {
			t.Fatalf("expected aligned series of 6, got %d/%d/%d",
				len(output.Income), len(output.Expense), len(output.Profit))
		}

		// January sits at position 3, March at position 5.
		assertDecimal(t, "january income", output.Income[3], "80")
		assertDecimal(t, "march income", output.Income[5], "120")
		assertDecimal(t, "march expense", output.Expense[5], "20")
		assertDecimal(t, "march profit", output.Profit[5], "100")

		// Months with no records are explicit zeros, not gaps.
		assertDecimal(t, "october income", output.Income[0], "0")
		assertDecimal(t, "october profit", output.Profit[0], "0")
	})

	t.Run("honors an explicit month count", func(t *testing.T) {
		uc := newUseCase(&fakeRepository{})

		output, err := uc.Execute(context.Background(), GetTrendsInput{Count: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expectedLabels := []string{"Jan", "Feb", "Mar"}
		if len(output.Labels) != len(expectedLabels) {
			t.Fatalf("expected %d labels, got %d", len(expectedLabels), len(output.Labels))
		}
		for i, label := range expectedLabels {
			if output.Labels[i] != label {
				t.Errorf("label %d: expected %s, got %s", i, label, output.Labels[i])
			}
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		repo := &fakeRepository{expensesErr: errors.New("connection refused")}
		uc := newUseCase(repo)

		_, err := uc.Execute(context.Background(), GetTrendsInput{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("second call is served from the cache", func(t *testing.T) {
		repo := &fakeRepository{}
		cache := newFakeViewCache()
		uc := NewGetTrendsUseCase(repo, cache)
		uc.now = func() time.Time { return now }

		if _, err := uc.Execute(context.Background(), GetTrendsInput{Count: 3}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		callsAfterFirst := repo.orderCalls

		if _, err := uc.Execute(context.Background(), GetTrendsInput{Count: 3}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.orderCalls != callsAfterFirst {
			t.Error("expected cached result, store was queried again")
		}
	})
}
