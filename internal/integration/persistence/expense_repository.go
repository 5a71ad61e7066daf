// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bakehouse/backend/internal/application/adapter"
	"github.com/bakehouse/backend/internal/domain/entity"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
	"github.com/bakehouse/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	if expenseModel.CreatedAt.IsZero() {
		expenseModel.CreatedAt = time.Now().UTC()
	}

	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}

	expense.ID = expenseModel.ID
	return nil
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id int64) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindAll retrieves expenses matching the filter, newest first.
func (r *expenseRepository) FindAll(ctx context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	query := r.db.WithContext(ctx).Model(&model.ExpenseModel{})

	if filter.Period != nil {
		query = query.Where("expense_date >= ? AND expense_date <= ?", filter.Period.Start, filter.Period.End)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var expenseModels []model.ExpenseModel
	result := query.Order("expense_date DESC, id DESC").Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// DistinctCategories retrieves the categories recorded on expenses, sorted.
func (r *expenseRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ?", expense.ID).
		Updates(map[string]interface{}{
			"expense_date": expense.ExpenseDate,
			"category":     expense.Category,
			"amount":       expense.Amount,
			"note":         expense.Note,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	return nil
}

// Delete removes an expense from the database.
func (r *expenseRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	return nil
}
