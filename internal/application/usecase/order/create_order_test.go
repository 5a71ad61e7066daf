// Package order contains order-related use cases.
package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/domain/entity"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
)

func validCreateOrderInput() CreateOrderInput {
	return CreateOrderInput{
		CustomerName:  "Maria Santos",
		Phone:         "555-0101",
		PaymentMethod: "cash",
		TotalAmount:   decimal.NewFromFloat(24.50),
		Items: []entity.OrderItem{
			{Name: "Sourdough loaf", BreadType: "sourdough", Price: decimal.NewFromFloat(12.25), Quantity: 2},
		},
	}
}

func newCreateOrderUseCaseForTest(repo *fakeOrderRepository) *CreateOrderUseCase {
	allocator := NewNumberAllocator(repo, "TB")
	uc := NewCreateOrderUseCase(repo, allocator)
	uc.now = func() time.Time { return testDay }
	return uc
}

func TestCreateOrderUseCase(t *testing.T) {
	t.Run("creates an order with an allocated number", func(t *testing.T) {
		repo := newFakeOrderRepository()
		uc := newCreateOrderUseCaseForTest(repo)

		output, err := uc.Execute(context.Background(), validCreateOrderInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Order.Number != "TB20240305001" {
			t.Errorf("expected number TB20240305001, got %s", output.Order.Number)
		}
		if output.Order.ID == 0 {
			t.Error("expected a persisted order id")
		}
		if output.Order.Status != entity.OrderStatusPending {
			t.Errorf("expected default status pending, got %s", output.Order.Status)
		}
	})

	t.Run("retries once after a number collision", func(t *testing.T) {
		repo := newFakeOrderRepository()
		uc := newCreateOrderUseCaseForTest(repo)

		// Seed the in-memory counter, then let another process persist the
		// number the counter would hand out next. The first claim collides;
		// the reseeded retry lands past it.
		if _, err := uc.allocator.Next(context.Background(), testDay); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		repo.insert("TB20240305002")

		output, err := uc.Execute(context.Background(), validCreateOrderInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Order.Number != "TB20240305003" {
			t.Errorf("expected number TB20240305003 after retry, got %s", output.Order.Number)
		}
	})

	t.Run("persistent conflict surfaces after one retry", func(t *testing.T) {
		repo := newFakeOrderRepository()
		uc := newCreateOrderUseCaseForTest(repo)

		repo.createErr = domainerror.NewOrderError(
			domainerror.ErrCodeAllocationConflict,
			"order number already exists",
			domainerror.ErrAllocationConflict,
		)

		_, err := uc.Execute(context.Background(), validCreateOrderInput())
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !errors.Is(err, domainerror.ErrAllocationConflict) {
			t.Errorf("expected ErrAllocationConflict, got %v", err)
		}
	})

	t.Run("rejects an order without items", func(t *testing.T) {
		repo := newFakeOrderRepository()
		uc := newCreateOrderUseCaseForTest(repo)

		input := validCreateOrderInput()
		input.Items = nil

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrOrderHasNoItems) {
			t.Errorf("expected ErrOrderHasNoItems, got %v", err)
		}
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*CreateOrderInput)
		}{
			{
				name:   "negative total",
				mutate: func(in *CreateOrderInput) { in.TotalAmount = decimal.NewFromInt(-1) },
			},
			{
				name:   "negative discount",
				mutate: func(in *CreateOrderInput) { in.Discount = decimal.NewFromInt(-1) },
			},
			{
				name:   "negative delivery fee",
				mutate: func(in *CreateOrderInput) { in.DeliveryFee = decimal.NewFromInt(-1) },
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := newFakeOrderRepository()
				uc := newCreateOrderUseCaseForTest(repo)

				input := validCreateOrderInput()
				tt.mutate(&input)

				_, err := uc.Execute(context.Background(), input)
				if !errors.Is(err, domainerror.ErrNegativeOrderAmount) {
					t.Errorf("expected ErrNegativeOrderAmount, got %v", err)
				}
			})
		}
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		repo := newFakeOrderRepository()
		uc := newCreateOrderUseCaseForTest(repo)

		input := validCreateOrderInput()
		input.Status = entity.OrderStatus("shipped")

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrInvalidOrderStatus) {
			t.Errorf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})
}
