// Package order contains order-related use cases.
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/bakehouse/backend/internal/application/adapter"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
)

// DeleteOrderUseCase handles order deletion.
type DeleteOrderUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewDeleteOrderUseCase creates a new DeleteOrderUseCase instance.
func NewDeleteOrderUseCase(orderRepo adapter.OrderRepository) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{orderRepo: orderRepo}
}

// Execute removes the order and its items.
func (uc *DeleteOrderUseCase) Execute(ctx context.Context, id int64) error {
	if err := uc.orderRepo.Delete(ctx, id); err != nil {
		var orderErr *domainerror.OrderError
		if errors.As(err, &orderErr) {
			return err
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}
