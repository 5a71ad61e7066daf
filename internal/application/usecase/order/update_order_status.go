// Package order contains order-related use cases.
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/bakehouse/backend/internal/application/adapter"
	"github.com/bakehouse/backend/internal/domain/entity"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
)

// UpdateOrderStatusInput represents the input for a status transition.
type UpdateOrderStatusInput struct {
	ID     int64
	Status entity.OrderStatus
}

// UpdateOrderStatusUseCase handles order status transitions.
type UpdateOrderStatusUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewUpdateOrderStatusUseCase creates a new UpdateOrderStatusUseCase instance.
func NewUpdateOrderStatusUseCase(orderRepo adapter.OrderRepository) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{orderRepo: orderRepo}
}

// Execute transitions the order into the given status.
func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, input UpdateOrderStatusInput) error {
	if !input.Status.IsValid() {
		return domainerror.NewOrderError(
			domainerror.ErrCodeInvalidOrderStatus,
			"status must be pending, processing, completed or cancelled",
			domainerror.ErrInvalidOrderStatus,
		)
	}

	if err := uc.orderRepo.UpdateStatus(ctx, input.ID, input.Status); err != nil {
		var orderErr *domainerror.OrderError
		if errors.As(err, &orderErr) {
			return err
		}
		return fmt.Errorf("failed to update order status: %w", err)
	}

	return nil
}
