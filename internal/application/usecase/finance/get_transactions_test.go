// Package finance contains the financial reporting use cases.
package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bakehouse/backend/internal/domain/entity"
)

func TestGetTransactionsUseCase(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)

	newUseCase := func(repo *fakeRepository) *GetTransactionsUseCase {
		uc := NewGetTransactionsUseCase(repo)
		uc.now = func() time.Time { return now }
		return uc
	}

	t.Run("merges income and expenses newest first", func(t *testing.T) {
		repo := &fakeRepository{
			orders: []*entity.Order{
				completedOrder(1, time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC), 100.00),
				completedOrder(2, time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC), 50.00),
			},
			expenses: []*entity.Expense{
				expenseRecord(1, time.Date(2024, time.March, 8, 9, 0, 0, 0, time.UTC), "Labor", 30.00),
			},
		}
		uc := newUseCase(repo)

		records, err := uc.Execute(context.Background(), GetTransactionsInput{
			StartDate: "2024-03-01",
			EndDate:   "2024-03-31",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expectedIDs := []string{"income-2", "expense-1", "income-1"}
		if len(records) != len(expectedIDs) {
			t.Fatalf("expected %d records, got %d", len(expectedIDs), len(records))
		}
		for i, id := range expectedIDs {
			if records[i].ID != id {
				t.Errorf("position %d: expected %s, got %s", i, id, records[i].ID)
			}
		}

		if records[0].Kind != TransactionKindIncome {
			t.Errorf("expected income kind, got %s", records[0].Kind)
		}
		if records[0].Category != IncomeCategoryLabel {
			t.Errorf("expected category %q, got %q", IncomeCategoryLabel, records[0].Category)
		}
		if records[1].Kind != TransactionKindExpense {
			t.Errorf("expected expense kind, got %s", records[1].Kind)
		}
		if records[1].Category != "Labor" {
			t.Errorf("expected category Labor, got %q", records[1].Category)
		}
	})

	t.Run("same timestamp orders income before expense then by id", func(t *testing.T) {
		sameInstant := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
		repo := &fakeRepository{
			orders: []*entity.Order{
				completedOrder(2, sameInstant, 50.00),
				completedOrder(1, sameInstant, 100.00),
			},
			expenses: []*entity.Expense{
				expenseRecord(1, sameInstant, "Labor", 30.00),
			},
		}
		uc := newUseCase(repo)

		records, err := uc.Execute(context.Background(), GetTransactionsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expectedIDs := []string{"income-1", "income-2", "expense-1"}
		if len(records) != len(expectedIDs) {
			t.Fatalf("expected %d records, got %d", len(expectedIDs), len(records))
		}
		for i, id := range expectedIDs {
			if records[i].ID != id {
				t.Errorf("position %d: expected %s, got %s", i, id, records[i].ID)
			}
		}
	})

	t.Run("order rows carry the order number as note", func(t *testing.T) {
		order := completedOrder(7, time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC), 100.00)
		order.Number = "TB20240305007"
		repo := &fakeRepository{orders: []*entity.Order{order}}
		uc := newUseCase(repo)

		records, err := uc.Execute(context.Background(), GetTransactionsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		if records[0].Note != "Order #TB20240305007" {
			t.Errorf("expected order note, got %q", records[0].Note)
		}
	})

	t.Run("missing expense notes get the placeholder", func(t *testing.T) {
		expense := expenseRecord(1, time.Date(2024, time.March, 8, 9, 0, 0, 0, time.UTC), "Labor", 30.00)
		withNote := expenseRecord(2, time.Date(2024, time.March, 9, 9, 0, 0, 0, time.UTC), "Rent", 50.00)
		withNote.Note = "March rent"
		repo := &fakeRepository{expenses: []*entity.Expense{expense, withNote}}
		uc := newUseCase(repo)

		records, err := uc.Execute(context.Background(), GetTransactionsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if records[0].Note != "March rent" {
			t.Errorf("expected note to pass through, got %q", records[0].Note)
		}
		if records[1].Note != MissingNotePlaceholder {
			t.Errorf("expected placeholder %q, got %q", MissingNotePlaceholder, records[1].Note)
		}
	})

	t.Run("empty period yields an empty feed", func(t *testing.T) {
		uc := newUseCase(&fakeRepository{})

		records, err := uc.Execute(context.Background(), GetTransactionsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("expected no records, got %d", len(records))
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		repo := &fakeRepository{ordersErr: errors.New("connection refused")}
		uc := newUseCase(repo)

		_, err := uc.Execute(context.Background(), GetTransactionsInput{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
