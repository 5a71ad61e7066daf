// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/bakehouse/backend/internal/application/usecase/finance"
)

// MonthlySummaryResponse represents the response for the monthly summary API.
type MonthlySummaryResponse struct {
	MonthlyIncome  float64 `json:"monthlyIncome"`
	MonthlyExpense float64 `json:"monthlyExpense"`
	MonthlyProfit  float64 `json:"monthlyProfit"`
	IncomeTrend    float64 `json:"incomeTrend"`
	ExpenseTrend   float64 `json:"expenseTrend"`
	ProfitTrend    float64 `json:"profitTrend"`
}

// ToMonthlySummaryResponse converts a GetMonthlySummaryOutput to its DTO.
func ToMonthlySummaryResponse(output *finance.GetMonthlySummaryOutput) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		MonthlyIncome:  output.Income.InexactFloat64(),
		MonthlyExpense: output.Expense.InexactFloat64(),
		MonthlyProfit:  output.Profit.InexactFloat64(),
		IncomeTrend:    output.IncomeTrend.InexactFloat64(),
		ExpenseTrend:   output.ExpenseTrend.InexactFloat64(),
		ProfitTrend:    output.ProfitTrend.InexactFloat64(),
	}
}

// TrendsResponse represents the response for the trends API. The four slices
// are positionally aligned, oldest month first.
type TrendsResponse struct {
	Labels  []string  `json:"labels"`
	Income  []float64 `json:"income"`
	Expense []float64 `json:"expense"`
	Profit  []float64 `json:"profit"`
}

// ToTrendsResponse converts a GetTrendsOutput to its DTO.
func ToTrendsResponse(output *finance.GetTrendsOutput) TrendsResponse {
	response := TrendsResponse{
		Labels:  output.Labels,
		Income:  make([]float64, len(output.Income)),
		Expense: make([]float64, len(output.Expense)),
		Profit:  make([]float64, len(output.Profit)),
	}
	for i := range output.Income {
		response.Income[i] = output.Income[i].InexactFloat64()
	}
	for i := range output.Expense {
		response.Expense[i] = output.Expense[i].InexactFloat64()
	}
	for i := range output.Profit {
		response.Profit[i] = output.Profit[i].InexactFloat64()
	}
	return response
}

// CompositionEntryResponse represents one slice of a composition breakdown.
type CompositionEntryResponse struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// ToCompositionResponse converts composition entries to their DTO form.
func ToCompositionResponse(entries []finance.CompositionEntry) []CompositionEntryResponse {
	response := make([]CompositionEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = CompositionEntryResponse{
			Name:       entry.Label,
			Value:      entry.Amount.InexactFloat64(),
			Percentage: entry.Percentage.InexactFloat64(),
		}
	}
	return response
}

// TransactionResponse represents one row of the merged ledger feed.
type TransactionResponse struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note"`
}

// ToTransactionsResponse converts ledger records to their DTO form. Dates
// keep the full timestamp so within-day ordering stays visible to callers.
func ToTransactionsResponse(records []finance.TransactionRecord) []TransactionResponse {
	response := make([]TransactionResponse, len(records))
	for i, record := range records {
		response[i] = TransactionResponse{
			ID:       record.ID,
			Date:     record.Date.Format(time.RFC3339),
			Type:     string(record.Kind),
			Category: record.Category,
			Amount:   record.Amount.InexactFloat64(),
			Note:     record.Note,
		}
	}
	return response
}
