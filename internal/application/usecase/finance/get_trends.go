// Package finance contains the financial reporting use cases.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/application/adapter"
	"github.com/bakehouse/backend/internal/domain/valueobject"
)

// DefaultTrendMonths is the number of trailing months reported by default.
const DefaultTrendMonths = 6

const trendsCacheTTL = time.Minute

// GetTrendsInput represents the input for the trend series.
type GetTrendsInput struct {
	Count int // number of trailing months; DefaultTrendMonths when <= 0
}

// GetTrendsOutput holds positionally aligned series, oldest month first.
type GetTrendsOutput struct {
	Labels  []string          `json:"labels"`
	Income  []decimal.Decimal `json:"income"`
	Expense []decimal.Decimal `json:"expense"`
	Profit  []decimal.Decimal `json:"profit"`
}

// GetTrendsUseCase builds the month-by-month income/expense/profit series.
type GetTrendsUseCase struct {
	repo  Repository
	cache adapter.ViewCache // optional, may be nil
	now   func() time.Time
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(repo Repository, cache adapter.ViewCache) *GetTrendsUseCase {
	return &GetTrendsUseCase{
		repo:  repo,
		cache: cache,
		now:   time.Now,
	}
}

// Execute aggregates each of the trailing months and emits aligned series.
func (uc *GetTrendsUseCase) Execute(ctx context.Context, input GetTrendsInput) (*GetTrendsOutput, error) {
	count := input.Count
	if count <= 0 {
		count = DefaultTrendMonths
	}

	cacheKey := fmt.Sprintf("finance:trends:%d", count)
	if uc.cache != nil {
		var cached GetTrendsOutput
		if hit, err := uc.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	months := valueobject.TrailingMonths(count, uc.now())

	output := &GetTrendsOutput{
		Labels:  make([]string, 0, count),
		Income:  make([]decimal.Decimal, 0, count),
		Expense: make([]decimal.Decimal, 0, count),
		Profit:  make([]decimal.Decimal, 0, count),
	}

	for _, ym := range months {
		totals, err := collectTotals(ctx, uc.repo, valueobject.MonthPeriod(ym.Year, ym.Month))
		if err != nil {
			return nil, err
		}

		output.Labels = append(output.Labels, ym.Month.String()[:3])
		output.Income = append(output.Income, roundAmount(totals.Income))
		output.Expense = append(output.Expense, roundAmount(totals.Expense))
		output.Profit = append(output.Profit, roundAmount(totals.Profit))
	}

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, cacheKey, output, trendsCacheTTL)
	}

	return output, nil
}
