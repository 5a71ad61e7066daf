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

// Sentinel labels returned when a composition has no matching records.
// Chart callers depend on a non-empty result.
const (
	NoIncomeLabel  = "No income"
	NoExpenseLabel = "No expense"
)

// CompositionEntry is one slice of a composition breakdown.
type CompositionEntry struct {
	Label      string          `json:"label"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// GetCompositionInput represents the raw period parameters for a composition.
type GetCompositionInput struct {
	StartDate string
	EndDate   string
}

// GetIncomeCompositionUseCase breaks period income down by bread type.
type GetIncomeCompositionUseCase struct {
	repo Repository
	now  func() time.Time
}

// NewGetIncomeCompositionUseCase creates a new GetIncomeCompositionUseCase instance.
func NewGetIncomeCompositionUseCase(repo Repository) *GetIncomeCompositionUseCase {
	return &GetIncomeCompositionUseCase{
		repo: repo,
		now:  time.Now,
	}
}

// Execute accumulates each item's line total under its bread type's display
// label and computes every label's share of the item-derived income.
func (uc *GetIncomeCompositionUseCase) Execute(ctx context.Context, input GetCompositionInput) ([]CompositionEntry, error) {
	period, err := valueobject.ParsePeriod(input.StartDate, input.EndDate, uc.now())
	if err != nil {
		return nil, err
	}

	orders, err := uc.repo.CompletedOrders(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed orders: %w", err)
	}

	acc := newCompositionAccumulator()
	for _, order := range orders {
		for _, item := range order.Items {
			label := valueobject.BreadType(item.BreadType).Label()
			acc.add(label, item.LineTotal())
		}
	}

	return acc.entries(NoIncomeLabel), nil
}

// compositionAccumulator groups amounts by label, preserving first-encounter
// order so descending-amount ties break stably.
type compositionAccumulator struct {
	labels  []string
	amounts map[string]decimal.Decimal
	total   decimal.Decimal
}

func newCompositionAccumulator() *compositionAccumulator {
	return &compositionAccumulator{
		amounts: make(map[string]decimal.Decimal),
		total:   decimal.Zero,
	}
}

func (a *compositionAccumulator) add(label string, amount decimal.Decimal) {
	if _, seen := a.amounts[label]; !seen {
		a.labels = append(a.labels, label)
		a.amounts[label] = decimal.Zero
	}
	a.amounts[label] = a.amounts[label].Add(amount)
	a.total = a.total.Add(amount)
}

// entries emits the sorted breakdown, or a single zero-valued sentinel when
// nothing accumulated. Percentages are shares of the accumulated total and
// are zero when the total is zero.
func (a *compositionAccumulator) entries(emptyLabel string) []CompositionEntry {
	if len(a.labels) == 0 {
		return []CompositionEntry{{
			Label:      emptyLabel,
			Amount:     decimal.Zero,
			Percentage: decimal.Zero,
		}}
	}

	result := make([]CompositionEntry, 0, len(a.labels))
	for _, label := range a.labels {
		amount := a.amounts[label]

		percentage := decimal.Zero
		if a.total.IsPositive() {
			percentage = amount.Div(a.total).Mul(decimal.NewFromInt(100))
		}

		result = append(result, CompositionEntry{
			Label:      label,
			Amount:     roundAmount(amount),
			Percentage: roundPct(percentage),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount.GreaterThan(result[j].Amount)
	})

	return result
}
