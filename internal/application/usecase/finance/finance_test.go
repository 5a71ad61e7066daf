// Package finance contains the financial reporting use cases.
package finance

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/domain/entity"
	"github.com/bakehouse/backend/internal/domain/valueobject"
)

// fakeRepository serves canned orders and expenses, filtered by period the
// same way the store would.
type fakeRepository struct {
	orders   []*entity.Order
	expenses []*entity.Expense

	ordersErr   error
	expensesErr error

	orderCalls   int
	expenseCalls int
}

func (r *fakeRepository) CompletedOrders(ctx context.Context, period valueobject.Period) ([]*entity.Order, error) {
	r.orderCalls++
	if r.ordersErr != nil {
		return nil, r.ordersErr
	}

	var result []*entity.Order
	for _, order := range r.orders {
		if order.Status == entity.OrderStatusCompleted && period.Contains(order.OrderDate) {
			result = append(result, order)
		}
	}
	return result, nil
}

func (r *fakeRepository) Expenses(ctx context.Context, period valueobject.Period) ([]*entity.Expense, error) {
	r.expenseCalls++
	if r.expensesErr != nil {
		return nil, r.expensesErr
	}

	var result []*entity.Expense
	for _, expense := range r.expenses {
		if period.Contains(expense.ExpenseDate) {
			result = append(result, expense)
		}
	}
	return result, nil
}

// fakeViewCache is a map-backed ViewCache. TTLs are recorded but not enforced.
type fakeViewCache struct {
	entries map[string][]byte
	ttls    map[string]time.Duration
}

func newFakeViewCache() *fakeViewCache {
	return &fakeViewCache{
		entries: make(map[string][]byte),
		ttls:    make(map[string]time.Duration),
	}
}

func (c *fakeViewCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *fakeViewCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	c.ttls[key] = ttl
	return nil
}

func completedOrder(id int64, date time.Time, total float64, items ...entity.OrderItem) *entity.Order {
	return &entity.Order{
		ID:          id,
		Number:      "TB20240305001",
		OrderDate:   date,
		Status:      entity.OrderStatusCompleted,
		TotalAmount: decimal.NewFromFloat(total),
		Items:       items,
	}
}

func pendingOrder(id int64, date time.Time, total float64) *entity.Order {
	order := completedOrder(id, date, total)
	order.Status = entity.OrderStatusPending
	return order
}

func expenseRecord(id int64, date time.Time, category string, amount float64) *entity.Expense {
	return &entity.Expense{
		ID:          id,
		ExpenseDate: date,
		Category:    category,
		Amount:      decimal.NewFromFloat(amount),
	}
}
