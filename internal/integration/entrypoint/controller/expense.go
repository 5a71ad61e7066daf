// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/application/usecase/expense"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
	"github.com/bakehouse/backend/internal/integration/entrypoint/dto"
	"github.com/bakehouse/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createExpenseUseCase  *expense.CreateExpenseUseCase
	listExpensesUseCase   *expense.ListExpensesUseCase
	listCategoriesUseCase *expense.ListCategoriesUseCase
	updateExpenseUseCase  *expense.UpdateExpenseUseCase
	deleteExpenseUseCase  *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createExpenseUseCase *expense.CreateExpenseUseCase,
	listExpensesUseCase *expense.ListExpensesUseCase,
	listCategoriesUseCase *expense.ListCategoriesUseCase,
	updateExpenseUseCase *expense.UpdateExpenseUseCase,
	deleteExpenseUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		createExpenseUseCase:  createExpenseUseCase,
		listExpensesUseCase:   listExpensesUseCase,
		listCategoriesUseCase: listCategoriesUseCase,
		updateExpenseUseCase:  updateExpenseUseCase,
		deleteExpenseUseCase:  deleteExpenseUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := expense.CreateExpenseInput{
		Category: req.Category,
		Amount:   decimal.NewFromFloat(req.Amount),
		Note:     req.Note,
	}

	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.ExpenseDate = &date
	}

	if username, ok := middleware.GetUsernameFromContext(ctx); ok {
		input.CreatedBy = username
	}

	output, err := c.createExpenseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	input := expense.ListExpensesInput{
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
		Category:  ctx.Query("category"),
	}

	output, err := c.listExpensesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpensesResponse(output.Expenses))
}

// Categories handles GET /expenses/categories requests.
func (c *ExpenseController) Categories(ctx *gin.Context) {
	categories, err := c.listCategoriesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExpenseCategoriesResponse{
		Categories: categories,
	})
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := expense.UpdateExpenseInput{
		ID:       id,
		Category: req.Category,
		Note:     req.Note,
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.ExpenseDate = &date
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	output, err := c.updateExpenseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	if err := c.deleteExpenseUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Expense deleted"})
}

// handleExpenseError maps expense errors to HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		ctx.JSON(c.statusCodeForExpenseError(expErr.Code), dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	var finErr *domainerror.FinanceError
	if errors.As(err, &finErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: finErr.Message,
			Code:  string(finErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) statusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNegativeExpenseAmount,
		domainerror.ErrCodeMissingExpenseCategory:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
