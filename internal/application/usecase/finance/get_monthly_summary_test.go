// Package finance contains the financial reporting use cases.
package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/domain/entity"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
)

func TestGetMonthlySummaryUseCase(t *testing.T) {
	march := func(day int) time.Time {
		return time.Date(2024, time.March, day, 12, 0, 0, 0, time.UTC)
	}
	february := func(day int) time.Time {
		return time.Date(2024, time.February, day, 12, 0, 0, 0, time.UTC)
	}

	t.Run("computes totals and month-over-month trends", func(t *testing.T) {
		repo := &fakeRepository{
			orders: []*entity.Order{
				completedOrder(1, march(5), 100.50),
				completedOrder(2, march(20), 50.25),
				completedOrder(3, february(10), 100.00),
				// Pending orders never contribute to income.
				pendingOrder(4, march(6), 999.99),
			},
			expenses: []*entity.Expense{
				expenseRecord(1, march(3), "Labor", 30.25),
				expenseRecord(2, march(15), "Rent", 20.00),
				expenseRecord(3, february(8), "Labor", 40.00),
			},
		}
		uc := NewGetMonthlySummaryUseCase(repo, nil)

		output, err := uc.Execute(context.Background(), GetMonthlySummaryInput{Year: 2024, Month: time.March})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "income", output.Income, "150.75")
		assertDecimal(t, "expense", output.Expense, "50.25")
		assertDecimal(t, "profit", output.Profit, "100.5")
		assertDecimal(t, "prev income", output.PrevIncome, "100")
		assertDecimal(t, "prev expense", output.PrevExpense, "40")
		assertDecimal(t, "prev profit", output.PrevProfit, "60")
		assertDecimal(t, "income trend", output.IncomeTrend, "50.8")
		assertDecimal(t, "expense trend", output.ExpenseTrend, "25.6")
		assertDecimal(t, "profit trend", output.ProfitTrend, "67.5")
	})

	t.Run("trends are zero against an empty previous month", func(t *testing.T) {
		repo := &fakeRepository{
			orders: []*entity.Order{
				completedOrder(1, march(5), 200.00),
			},
		}
		uc := NewGetMonthlySummaryUseCase(repo, nil)

		output, err := uc.Execute(context.Background(), GetMonthlySummaryInput{Year: 2024, Month: time.March})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "income", output.Income, "200")
		assertDecimal(t, "income trend", output.IncomeTrend, "0")
		assertDecimal(t, "expense trend", output.ExpenseTrend, "0")
		assertDecimal(t, "profit trend", output.ProfitTrend, "0")
	})

	t.Run("sub-cent amounts round once at output", func(t *testing.T) {
		repo := &fakeRepository{
			orders: []*entity.Order{
				completedOrder(1, march(5), 10.005),
				completedOrder(2, march(12), 10.005),
				completedOrder(3, march(19), 10.005),
			},
			expenses: []*entity.Expense{
				expenseRecord(1, march(4), "Labor", 5.0025),
				expenseRecord(2, march(11), "Labor", 5.0025),
			},
		}
		uc := NewGetMonthlySummaryUseCase(repo, nil)

		output, err := uc.Execute(context.Background(), GetMonthlySummaryInput{Year: 2024, Month: time.March})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Sums round once at the output boundary. Rounding each record
		// first would report 30.03 and 10.00 here.
		assertDecimal(t, "income", output.Income, "30.02")
		assertDecimal(t, "expense", output.Expense, "10.01")
		assertDecimal(t, "profit", output.Profit, "20.01")
	})

	t.Run("empty month reports zero activity", func(t *testing.T) {
		uc := NewGetMonthlySummaryUseCase(&fakeRepository{}, nil)

		output, err := uc.Execute(context.Background(), GetMonthlySummaryInput{Year: 2024, Month: time.March})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertDecimal(t, "income", output.Income, "0")
		assertDecimal(t, "expense", output.Expense, "0")
		assertDecimal(t, "profit", output.Profit, "0")
	})

	t.Run("rejects an out-of-range month", func(t *testing.T) {
		uc := NewGetMonthlySummaryUseCase(&fakeRepository{}, nil)

		for _, month := range []time.Month{0, 13} {
			_, err := uc.Execute(context.Background(), GetMonthlySummaryInput{Year: 2024, Month: month})
			if !errors.Is(err, domainerror.ErrInvalidMonth) {
				t.Errorf("month %d: expected ErrInvalidMonth, got %v", month, err)
			}
		}
	})

	t.Run("store failure propagates instead of reporting zeros", func(t *testing.T) {
		repo := &fakeRepository{ordersErr: errors.New("connection refused")}
		uc := NewGetMonthlySummaryUseCase(repo, nil)

		_, err := uc.Execute(context.Background(), GetMonthlySummaryInput{Year: 2024, Month: time.March})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("second call is served from the cache", func(t *testing.T) {
		repo := &fakeRepository{
			orders: []*entity.Order{
				completedOrder(1, march(5), 100.00),
			},
		}
		cache := newFakeViewCache()
		uc := NewGetMonthlySummaryUseCase(repo, cache)

		input := GetMonthlySummaryInput{Year: 2024, Month: time.March}
		first, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		callsAfterFirst := repo.orderCalls

		second, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.orderCalls != callsAfterFirst {
			t.Errorf("expected cached result, store was queried again")
		}
		if !second.Income.Equal(first.Income) {
			t.Errorf("expected cached income %s, got %s", first.Income, second.Income)
		}
		if ttl := cache.ttls["finance:summary:2024-03"]; ttl != time.Minute {
			t.Errorf("expected one minute TTL, got %v", ttl)
		}
	})
}

func assertDecimal(t *testing.T, field string, got decimal.Decimal, expected string) {
	t.Helper()
	want, err := decimal.NewFromString(expected)
	if err != nil {
		t.Fatalf("bad expectation %q: %v", expected, err)
	}
	if !got.Equal(want) {
		t.Errorf("expected %s %s, got %s", field, expected, got)
	}
}
