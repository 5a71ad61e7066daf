// Package order contains order-related use cases.
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/application/adapter"
	"github.com/bakehouse/backend/internal/domain/entity"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
)

// CreateOrderInput represents the input for order creation.
type CreateOrderInput struct {
	CustomerName  string
	Phone         string
	Address       string
	PickupTime    *time.Time
	PaymentMethod string
	Status        entity.OrderStatus
	Discount      decimal.Decimal
	DeliveryFee   decimal.Decimal
	TotalAmount   decimal.Decimal
	Notes         string
	Items         []entity.OrderItem
}

// CreateOrderOutput represents the output of order creation.
type CreateOrderOutput struct {
	Order *entity.Order
}

// CreateOrderUseCase allocates an order number and persists the new order.
type CreateOrderUseCase struct {
	orderRepo adapter.OrderRepository
	allocator *NumberAllocator
	now       func() time.Time
}

// NewCreateOrderUseCase creates a new CreateOrderUseCase instance.
func NewCreateOrderUseCase(orderRepo adapter.OrderRepository, allocator *NumberAllocator) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		allocator: allocator,
		now:       time.Now,
	}
}

// Execute validates the order, allocates its number and persists it. A
// number collision is transient: the allocator reseeds from the store and
// the creation is retried once before surfacing the conflict.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	orderDate := uc.now().UTC()

	order, err := uc.tryCreate(ctx, input, orderDate)
	if errors.Is(err, domainerror.ErrAllocationConflict) {
		uc.allocator.Release(DayKey(orderDate))
		order, err = uc.tryCreate(ctx, input, orderDate)
	}
	if err != nil {
		return nil, err
	}

	return &CreateOrderOutput{Order: order}, nil
}

func (uc *CreateOrderUseCase) tryCreate(ctx context.Context, input CreateOrderInput, orderDate time.Time) (*entity.Order, error) {
	number, err := uc.allocator.Next(ctx, orderDate)
	if err != nil {
		return nil, err
	}

	order := entity.NewOrder(
		number,
		input.CustomerName,
		input.Phone,
		input.Address,
		orderDate,
		input.PickupTime,
		input.PaymentMethod,
		input.Status,
		input.Discount,
		input.DeliveryFee,
		input.TotalAmount,
		input.Notes,
		input.Items,
	)

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		if errors.Is(err, domainerror.ErrAllocationConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

func (uc *CreateOrderUseCase) validateInput(input CreateOrderInput) error {
	if len(input.Items) == 0 {
		return domainerror.NewOrderError(
			domainerror.ErrCodeOrderHasNoItems,
			"order must contain at least one item",
			domainerror.ErrOrderHasNoItems,
		)
	}

	if input.TotalAmount.IsNegative() || input.Discount.IsNegative() || input.DeliveryFee.IsNegative() {
		return domainerror.NewOrderError(
			domainerror.ErrCodeNegativeOrderAmount,
			"order amounts must not be negative",
			domainerror.ErrNegativeOrderAmount,
		)
	}

	if input.Status != "" && !input.Status.IsValid() {
		return domainerror.NewOrderError(
			domainerror.ErrCodeInvalidOrderStatus,
			"status must be pending, processing, completed or cancelled",
			domainerror.ErrInvalidOrderStatus,
		)
	}

	return nil
}
