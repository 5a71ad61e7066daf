// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/bakehouse/backend/internal/application/adapter"
	"github.com/bakehouse/backend/internal/domain/entity"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
	"github.com/bakehouse/backend/internal/integration/persistence/model"
)

// orderRepository implements the adapter.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository instance.
func NewOrderRepository(db *gorm.DB) adapter.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create creates a new order with its items in the database. A unique-index
// violation on the order number surfaces as ErrAllocationConflict so the
// caller can re-seed the allocator and retry.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderModel := model.OrderFromEntity(order)
	now := time.Now().UTC()
	orderModel.CreatedAt = now
	orderModel.UpdatedAt = now

	result := r.db.WithContext(ctx).Create(orderModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.NewOrderError(
				domainerror.ErrCodeAllocationConflict,
				"order number already taken",
				domainerror.ErrAllocationConflict,
			)
		}
		return result.Error
	}

	order.ID = orderModel.ID
	for i := range orderModel.Items {
		order.Items[i].ID = orderModel.Items[i].ID
	}
	return nil
}

// FindByID retrieves an order with its items.
func (r *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderModel model.OrderModel
	result := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeOrderNotFound,
				"order not found",
				domainerror.ErrOrderNotFound,
			)
		}
		return nil, result.Error
	}
	return orderModel.ToEntity(), nil
}

// FindAll retrieves orders matching the filter, newest first.
func (r *orderRepository) FindAll(ctx context.Context, filter adapter.OrderFilter) ([]*entity.Order, error) {
	query := r.db.WithContext(ctx).Model(&model.OrderModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var orderModels []model.OrderModel
	result := query.
		Preload("Items").
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

// Update replaces an order's fields and, when replaceItems is set, its items.
func (r *orderRepository) Update(ctx context.Context, order *entity.Order, replaceItems bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orderModel := model.OrderFromEntity(order)
		orderModel.UpdatedAt = time.Now().UTC()

		items := orderModel.Items
		orderModel.Items = nil

		result := tx.Model(&model.OrderModel{}).
			Where("id = ?", order.ID).
			Updates(map[string]interface{}{
				"customer_name":  orderModel.CustomerName,
				"phone":          orderModel.Phone,
				"address":        orderModel.Address,
				"order_date":     orderModel.OrderDate,
				"pickup_time":    orderModel.PickupTime,
				"payment_method": orderModel.PaymentMethod,
				"status":         orderModel.Status,
				"discount":       orderModel.Discount,
				"delivery_fee":   orderModel.DeliveryFee,
				"total_amount":   orderModel.TotalAmount,
				"notes":          orderModel.Notes,
				"updated_at":     orderModel.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.NewOrderError(
				domainerror.ErrCodeOrderNotFound,
				"order not found",
				domainerror.ErrOrderNotFound,
			)
		}

		if !replaceItems {
			return nil
		}

		if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderItemModel{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateStatus changes only the status of an order.
func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewOrderError(
			domainerror.ErrCodeOrderNotFound,
			"order not found",
			domainerror.ErrOrderNotFound,
		)
	}
	return nil
}

// Delete removes an order and its items.
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&model.OrderItemModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.OrderModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.NewOrderError(
				domainerror.ErrCodeOrderNotFound,
				"order not found",
				domainerror.ErrOrderNotFound,
			)
		}
		return nil
	})
}

// MaxSequenceForPrefix returns the highest numeric suffix among order numbers
// starting with prefix, or 0 when none exist. The suffix is parsed in Go so
// the query stays portable across postgres and sqlite.
func (r *orderRepository) MaxSequenceForPrefix(ctx context.Context, prefix string) (int, error) {
	var numbers []string
	result := r.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("number LIKE ?", prefix+"%").
		Pluck("number", &numbers)
	if result.Error != nil {
		return 0, result.Error
	}

	max := 0
	for _, number := range numbers {
		suffix := strings.TrimPrefix(number, prefix)
		seq, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return max, nil
}

// isUniqueViolation reports whether err is a unique-constraint violation from
// either the postgres or the sqlite driver.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key value")
}
