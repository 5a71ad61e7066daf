// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bakehouse/backend/internal/domain/entity"
	"github.com/bakehouse/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory sqlite database migrated with the order
// and expense tables. Each test gets its own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.OrderModel{},
		&model.OrderItemModel{},
		&model.ExpenseModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testOrder(number string, status entity.OrderStatus, orderDate time.Time, total float64) *entity.Order {
	return &entity.Order{
		Number:        number,
		CustomerName:  "Maria Santos",
		Phone:         "555-0101",
		OrderDate:     orderDate,
		PaymentMethod: "cash",
		Status:        status,
		Discount:      decimal.Zero,
		DeliveryFee:   decimal.Zero,
		TotalAmount:   decimal.NewFromFloat(total),
		Items: []entity.OrderItem{
			{
				Name:      "Sourdough loaf",
				BreadType: "sourdough",
				Price:     decimal.NewFromFloat(total),
				Quantity:  1,
			},
		},
	}
}

func testExpense(category string, expenseDate time.Time, amount float64) *entity.Expense {
	return &entity.Expense{
		ExpenseDate: expenseDate,
		Category:    category,
		Amount:      decimal.NewFromFloat(amount),
		CreatedBy:   "admin",
	}
}
