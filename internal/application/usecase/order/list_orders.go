// Package order contains order-related use cases.
package order

import (
	"context"
	"fmt"

	"github.com/bakehouse/backend/internal/application/adapter"
	"github.com/bakehouse/backend/internal/domain/entity"
)

// ListOrdersInput represents the input for listing orders.
type ListOrdersInput struct {
	Status *entity.OrderStatus // optional filter
}

// ListOrdersOutput represents the output of listing orders.
type ListOrdersOutput struct {
	Orders []*entity.Order
}

// ListOrdersUseCase handles listing orders.
type ListOrdersUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewListOrdersUseCase creates a new ListOrdersUseCase instance.
func NewListOrdersUseCase(orderRepo adapter.OrderRepository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// Execute lists orders with their items.
func (uc *ListOrdersUseCase) Execute(ctx context.Context, input ListOrdersInput) (*ListOrdersOutput, error) {
	orders, err := uc.orderRepo.FindAll(ctx, adapter.OrderFilter{Status: input.Status})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return &ListOrdersOutput{Orders: orders}, nil
}
