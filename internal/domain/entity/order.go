// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid reports whether the status is one of the known order states.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order represents a customer order in the bakery back-office.
// Only completed orders contribute to income computations.
type Order struct {
	ID            int64
	Number        string // allocator-assigned, e.g. TB20240305001
	CustomerName  string
	Phone         string
	Address       string
	OrderDate     time.Time
	PickupTime    *time.Time
	PaymentMethod string
	Status        OrderStatus
	Discount      decimal.Decimal
	DeliveryFee   decimal.Decimal
	TotalAmount   decimal.Decimal
	Notes         string
	Items         []OrderItem
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ID        int64
	Name      string
	BreadType string // category tag, resolved to a display label by valueobject.BreadType
	Price     decimal.Decimal
	Quantity  int
}

// LineTotal returns price multiplied by quantity, unrounded.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewOrder creates a new Order entity with a pending status unless one is given.
func NewOrder(
	number string,
	customerName, phone, address string,
	orderDate time.Time,
	pickupTime *time.Time,
	paymentMethod string,
	status OrderStatus,
	discount, deliveryFee, totalAmount decimal.Decimal,
	notes string,
	items []OrderItem,
) *Order {
	if status == "" {
		status = OrderStatusPending
	}

	return &Order{
		Number:        number,
		CustomerName:  customerName,
		Phone:         phone,
		Address:       address,
		OrderDate:     orderDate,
		PickupTime:    pickupTime,
		PaymentMethod: paymentMethod,
		Status:        status,
		Discount:      discount,
		DeliveryFee:   deliveryFee,
		TotalAmount:   totalAmount,
		Notes:         notes,
		Items:         items,
	}
}
