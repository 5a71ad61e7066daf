// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/bakehouse/backend/internal/application/usecase/finance"
	"github.com/bakehouse/backend/internal/domain/entity"
	"github.com/bakehouse/backend/internal/domain/valueobject"
	"github.com/bakehouse/backend/internal/integration/persistence/model"
)

// financeRepository implements the finance.Repository read-only interface.
type financeRepository struct {
	db *gorm.DB
}

// NewFinanceRepository creates a new finance repository instance.
func NewFinanceRepository(db *gorm.DB) finance.Repository {
	return &financeRepository{
		db: db,
	}
}

// CompletedOrders returns completed orders inside the period with their items.
func (r *financeRepository) CompletedOrders(ctx context.Context, period valueobject.Period) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	result := r.db.WithContext(ctx).
		Preload("Items").
		Where("status = ?", string(entity.OrderStatusCompleted)).
		Where("order_date >= ? AND order_date <= ?", period.Start, period.End).
		Order("order_date DESC, id DESC").
		Find(&orderModels)
	if result.Error != nil {
		return nil, result.Error
	}

	orders := make([]*entity.Order, len(orderModels))
	for i, om := range orderModels {
		orders[i] = om.ToEntity()
	}
	return orders, nil
}

// Expenses returns expenses inside the period.
func (r *financeRepository) Expenses(ctx context.Context, period valueobject.Period) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("expense_date >= ? AND expense_date <= ?", period.Start, period.End).
		Order("expense_date DESC, id DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}
