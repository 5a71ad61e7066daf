// Package finance contains the financial reporting use cases.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/application/adapter"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
	"github.com/bakehouse/backend/internal/domain/valueobject"
)

const summaryCacheTTL = time.Minute

// GetMonthlySummaryInput represents the input for the monthly summary.
type GetMonthlySummaryInput struct {
	Year  int
	Month time.Month
}

// GetMonthlySummaryOutput represents the monthly financial overview. The
// previous-month totals are included so callers can tell a genuine 0% trend
// from a zero-base one.
type GetMonthlySummaryOutput struct {
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	Profit       decimal.Decimal `json:"profit"`
	PrevIncome   decimal.Decimal `json:"prev_income"`
	PrevExpense  decimal.Decimal `json:"prev_expense"`
	PrevProfit   decimal.Decimal `json:"prev_profit"`
	IncomeTrend  decimal.Decimal `json:"income_trend"`
	ExpenseTrend decimal.Decimal `json:"expense_trend"`
	ProfitTrend  decimal.Decimal `json:"profit_trend"`
}

// GetMonthlySummaryUseCase derives a month's totals and month-over-month trends.
type GetMonthlySummaryUseCase struct {
	repo  Repository
	cache adapter.ViewCache // optional, may be nil
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(repo Repository, cache adapter.ViewCache) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{
		repo:  repo,
		cache: cache,
	}
}

// Execute computes totals for the requested month and the month before it,
// then the trend percentages between the two.
func (uc *GetMonthlySummaryUseCase) Execute(ctx context.Context, input GetMonthlySummaryInput) (*GetMonthlySummaryOutput, error) {
	if input.Month < time.January || input.Month > time.December {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}

	cacheKey := fmt.Sprintf("finance:summary:%04d-%02d", input.Year, input.Month)
	if uc.cache != nil {
		var cached GetMonthlySummaryOutput
		if hit, err := uc.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	current, err := collectTotals(ctx, uc.repo, valueobject.MonthPeriod(input.Year, input.Month))
	if err != nil {
		return nil, err
	}

	prevMonth := valueobject.PreviousMonth(input.Year, input.Month)
	previous, err := collectTotals(ctx, uc.repo, valueobject.MonthPeriod(prevMonth.Year, prevMonth.Month))
	if err != nil {
		return nil, err
	}

	output := &GetMonthlySummaryOutput{
		Income:       roundAmount(current.Income),
		Expense:      roundAmount(current.Expense),
		Profit:       roundAmount(current.Profit),
		PrevIncome:   roundAmount(previous.Income),
		PrevExpense:  roundAmount(previous.Expense),
		PrevProfit:   roundAmount(previous.Profit),
		IncomeTrend:  roundPct(trendPct(current.Income, previous.Income)),
		ExpenseTrend: roundPct(trendPct(current.Expense, previous.Expense)),
		ProfitTrend:  roundPct(trendPct(current.Profit, previous.Profit)),
	}

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, cacheKey, output, summaryCacheTTL)
	}

	return output, nil
}
