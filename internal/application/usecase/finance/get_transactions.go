// Package finance contains the financial reporting use cases.
package finance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/domain/valueobject"
)

// TransactionKind tags a ledger record as income or expense.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// IncomeCategoryLabel is the fixed category for order-derived ledger rows.
// The ledger view does not decompose an order into its items.
const IncomeCategoryLabel = "Bread sales"

// MissingNotePlaceholder replaces an absent expense note.
const MissingNotePlaceholder = "No note"

// TransactionRecord is one row of the merged ledger. The id is prefixed by
// kind so order and expense ids cannot collide.
type TransactionRecord struct {
	ID       string          `json:"id"`
	Date     time.Time       `json:"date"`
	Kind     TransactionKind `json:"kind"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note"`
}

// GetTransactionsInput represents the raw period parameters for the ledger.
type GetTransactionsInput struct {
	StartDate string
	EndDate   string
}

// GetTransactionsUseCase merges period income and expenses into one
// chronologically ordered feed.
type GetTransactionsUseCase struct {
	repo Repository
	now  func() time.Time
}

// NewGetTransactionsUseCase creates a new GetTransactionsUseCase instance.
func NewGetTransactionsUseCase(repo Repository) *GetTransactionsUseCase {
	return &GetTransactionsUseCase{
		repo: repo,
		now:  time.Now,
	}
}

// Execute returns the merged ledger, newest first. Records sharing a
// timestamp order income before expense, then by id, so the feed is
// deterministic across runs.
func (uc *GetTransactionsUseCase) Execute(ctx context.Context, input GetTransactionsInput) ([]TransactionRecord, error) {
	period, err := valueobject.ParsePeriod(input.StartDate, input.EndDate, uc.now())
	if err != nil {
		return nil, err
	}

	orders, err := uc.repo.CompletedOrders(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed orders: %w", err)
	}

	expenses, err := uc.repo.Expenses(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	records := make([]TransactionRecord, 0, len(orders)+len(expenses))

	for _, order := range orders {
		records = append(records, TransactionRecord{
			ID:       fmt.Sprintf("income-%d", order.ID),
			Date:     order.OrderDate,
			Kind:     TransactionKindIncome,
			Category: IncomeCategoryLabel,
			Amount:   roundAmount(order.TotalAmount),
			Note:     fmt.Sprintf("Order #%s", order.Number),
		})
	}

	for _, expense := range expenses {
		note := expense.Note
		if note == "" {
			note = MissingNotePlaceholder
		}

		records = append(records, TransactionRecord{
			ID:       fmt.Sprintf("expense-%d", expense.ID),
			Date:     expense.ExpenseDate,
			Kind:     TransactionKindExpense,
			Category: expense.Category,
			Amount:   roundAmount(expense.Amount),
			Note:     note,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		if records[i].Kind != records[j].Kind {
			return records[i].Kind == TransactionKindIncome
		}
		return records[i].ID < records[j].ID
	})

	return records, nil
}
