// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bakehouse/backend/internal/application/usecase/finance"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
	"github.com/bakehouse/backend/internal/integration/entrypoint/dto"
)

// FinanceController handles the financial reporting endpoints.
type FinanceController struct {
	getMonthlySummaryUseCase     *finance.GetMonthlySummaryUseCase
	getTrendsUseCase             *finance.GetTrendsUseCase
	getIncomeCompositionUseCase  *finance.GetIncomeCompositionUseCase
	getExpenseCompositionUseCase *finance.GetExpenseCompositionUseCase
	getTransactionsUseCase       *finance.GetTransactionsUseCase
}

// NewFinanceController creates a new finance controller instance.
func NewFinanceController(
	getMonthlySummaryUseCase *finance.GetMonthlySummaryUseCase,
	getTrendsUseCase *finance.GetTrendsUseCase,
	getIncomeCompositionUseCase *finance.GetIncomeCompositionUseCase,
	getExpenseCompositionUseCase *finance.GetExpenseCompositionUseCase,
	getTransactionsUseCase *finance.GetTransactionsUseCase,
) *FinanceController {
	return &FinanceController{
		getMonthlySummaryUseCase:     getMonthlySummaryUseCase,
		getTrendsUseCase:             getTrendsUseCase,
		getIncomeCompositionUseCase:  getIncomeCompositionUseCase,
		getExpenseCompositionUseCase: getExpenseCompositionUseCase,
		getTransactionsUseCase:       getTransactionsUseCase,
	}
}

// GetMonthlySummary handles GET /finance/monthly-summary requests. Year and
// month default to the current calendar month.
func (c *FinanceController) GetMonthlySummary(ctx *gin.Context) {
	now := time.Now().UTC()

	year, err := parseIntQuery(ctx, "year", now.Year())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year parameter",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	month, err := parseIntQuery(ctx, "month", int(now.Month()))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month parameter",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	input := finance.GetMonthlySummaryInput{
		Year:  year,
		Month: time.Month(month),
	}

	output, err := c.getMonthlySummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output))
}

// GetTrends handles GET /finance/trends requests.
func (c *FinanceController) GetTrends(ctx *gin.Context) {
	months, err := parseIntQuery(ctx, "months", finance.DefaultTrendMonths)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid months parameter",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	output, err := c.getTrendsUseCase.Execute(ctx.Request.Context(), finance.GetTrendsInput{Count: months})
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(output))
}

// GetIncomeComposition handles GET /finance/income-composition requests.
func (c *FinanceController) GetIncomeComposition(ctx *gin.Context) {
	input := finance.GetCompositionInput{
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	}

	entries, err := c.getIncomeCompositionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompositionResponse(entries))
}

// GetExpenseComposition handles GET /finance/expense-composition requests.
func (c *FinanceController) GetExpenseComposition(ctx *gin.Context) {
	input := finance.GetCompositionInput{
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	}

	entries, err := c.getExpenseCompositionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompositionResponse(entries))
}

// GetTransactions handles GET /finance/transactions requests.
func (c *FinanceController) GetTransactions(ctx *gin.Context) {
	input := finance.GetTransactionsInput{
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	}

	records, err := c.getTransactionsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionsResponse(records))
}

// handleFinanceError maps finance errors to HTTP responses.
func (c *FinanceController) handleFinanceError(ctx *gin.Context, err error) {
	var finErr *domainerror.FinanceError
	if errors.As(err, &finErr) {
		ctx.JSON(c.statusCodeForFinanceError(finErr.Code), dto.ErrorResponse{
			Error: finErr.Message,
			Code:  string(finErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForFinanceError maps finance error codes to HTTP status codes.
func (c *FinanceController) statusCodeForFinanceError(code domainerror.FinanceErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodeInvalidMonth:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery reads an optional integer query parameter.
func parseIntQuery(ctx *gin.Context, name string, fallback int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
