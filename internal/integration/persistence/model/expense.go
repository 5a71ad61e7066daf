// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	ExpenseDate time.Time       `gorm:"not null;index"`
	Category    string          `gorm:"type:varchar(50);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Note        string          `gorm:"type:text"`
	CreatedBy   string          `gorm:"type:varchar(50)"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		ExpenseDate: m.ExpenseDate,
		Category:    m.Category,
		Amount:      m.Amount,
		Note:        m.Note,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          expense.ID,
		ExpenseDate: expense.ExpenseDate,
		Category:    expense.Category,
		Amount:      expense.Amount,
		Note:        expense.Note,
		CreatedBy:   expense.CreatedBy,
		CreatedAt:   expense.CreatedAt,
	}
}
