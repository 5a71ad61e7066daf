// Package order contains order-related use cases.
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/application/adapter"
	"github.com/bakehouse/backend/internal/domain/entity"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
)

// UpdateOrderInput carries the mutable order fields. Nil pointers leave the
// stored value untouched; a non-nil Items slice replaces all items.
type UpdateOrderInput struct {
	ID            int64
	CustomerName  *string
	Phone         *string
	Address       *string
	PickupTime    *time.Time
	PaymentMethod *string
	Status        *entity.OrderStatus
	Discount      *decimal.Decimal
	DeliveryFee   *decimal.Decimal
	TotalAmount   *decimal.Decimal
	Notes         *string
	Items         []entity.OrderItem
}

// UpdateOrderOutput represents the output of an order update.
type UpdateOrderOutput struct {
	Order *entity.Order
}

// UpdateOrderUseCase handles order updates.
type UpdateOrderUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewUpdateOrderUseCase creates a new UpdateOrderUseCase instance.
func NewUpdateOrderUseCase(orderRepo adapter.OrderRepository) *UpdateOrderUseCase {
	return &UpdateOrderUseCase{orderRepo: orderRepo}
}

// Execute applies the provided fields to the stored order.
func (uc *UpdateOrderUseCase) Execute(ctx context.Context, input UpdateOrderInput) (*UpdateOrderOutput, error) {
	order, err := uc.orderRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.CustomerName != nil {
		order.CustomerName = *input.CustomerName
	}
	if input.Phone != nil {
		order.Phone = *input.Phone
	}
	if input.Address != nil {
		order.Address = *input.Address
	}
	if input.PickupTime != nil {
		order.PickupTime = input.PickupTime
	}
	if input.PaymentMethod != nil {
		order.PaymentMethod = *input.PaymentMethod
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeInvalidOrderStatus,
				"status must be pending, processing, completed or cancelled",
				domainerror.ErrInvalidOrderStatus,
			)
		}
		order.Status = *input.Status
	}
	if input.Discount != nil {
		order.Discount = *input.Discount
	}
	if input.DeliveryFee != nil {
		order.DeliveryFee = *input.DeliveryFee
	}
	if input.TotalAmount != nil {
		if input.TotalAmount.IsNegative() {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeNegativeOrderAmount,
				"order amounts must not be negative",
				domainerror.ErrNegativeOrderAmount,
			)
		}
		order.TotalAmount = *input.TotalAmount
	}
	if input.Notes != nil {
		order.Notes = *input.Notes
	}

	replaceItems := input.Items != nil
	if replaceItems {
		order.Items = input.Items
	}

	if err := uc.orderRepo.Update(ctx, order, replaceItems); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return &UpdateOrderOutput{Order: order}, nil
}
