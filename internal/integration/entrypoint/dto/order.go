// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/domain/entity"
)

// OrderItemRequest represents one line of an order in a request body.
type OrderItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	BreadType string  `json:"breadType"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest represents the request body for order creation.
type CreateOrderRequest struct {
	CustomerName  string             `json:"customerName" binding:"required"`
	Phone         string             `json:"phone"`
	Address       string             `json:"address"`
	PickupTime    *time.Time         `json:"pickupTime"`
	PaymentMethod string             `json:"paymentMethod"`
	Status        string             `json:"status"`
	Discount      float64            `json:"discount"`
	DeliveryFee   float64            `json:"deliveryFee"`
	TotalAmount   float64            `json:"totalAmount"`
	Notes         string             `json:"notes"`
	Items         []OrderItemRequest `json:"items" binding:"required"`
}

// UpdateOrderRequest represents the request body for an order update. Absent
// fields leave the stored value untouched.
type UpdateOrderRequest struct {
	CustomerName  *string            `json:"customerName"`
	Phone         *string            `json:"phone"`
	Address       *string            `json:"address"`
	PickupTime    *time.Time         `json:"pickupTime"`
	PaymentMethod *string            `json:"paymentMethod"`
	Status        *string            `json:"status"`
	Discount      *float64           `json:"discount"`
	DeliveryFee   *float64           `json:"deliveryFee"`
	TotalAmount   *float64           `json:"totalAmount"`
	Notes         *string            `json:"notes"`
	Items         []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest represents the request body for a status change.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemResponse represents one line of an order in a response body.
type OrderItemResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	BreadType string  `json:"breadType"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// OrderResponse represents an order in a response body.
type OrderResponse struct {
	ID            int64               `json:"id"`
	OrderNumber   string              `json:"orderNumber"`
	CustomerName  string              `json:"customerName"`
	Phone         string              `json:"phone"`
	Address       string              `json:"address"`
	OrderDate     string              `json:"orderDate"`
	PickupTime    *string             `json:"pickupTime"`
	PaymentMethod string              `json:"paymentMethod"`
	Status        string              `json:"status"`
	Discount      float64             `json:"discount"`
	DeliveryFee   float64             `json:"deliveryFee"`
	TotalAmount   float64             `json:"totalAmount"`
	Notes         string              `json:"notes"`
	Items         []OrderItemResponse `json:"items"`
}

// ToOrderItems converts request items to domain order items.
func ToOrderItems(items []OrderItemRequest) []entity.OrderItem {
	result := make([]entity.OrderItem, len(items))
	for i, item := range items {
		result[i] = entity.OrderItem{
			Name:      item.Name,
			BreadType: item.BreadType,
			Price:     decimal.NewFromFloat(item.Price),
			Quantity:  item.Quantity,
		}
	}
	return result
}

// ToOrderResponse converts a domain Order to its DTO.
func ToOrderResponse(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ID:        item.ID,
			Name:      item.Name,
			BreadType: item.BreadType,
			Price:     item.Price.InexactFloat64(),
			Quantity:  item.Quantity,
		}
	}

	var pickupTime *string
	if order.PickupTime != nil {
		s := order.PickupTime.Format(time.RFC3339)
		pickupTime = &s
	}

	return OrderResponse{
		ID:            order.ID,
		OrderNumber:   order.Number,
		CustomerName:  order.CustomerName,
		Phone:         order.Phone,
		Address:       order.Address,
		OrderDate:     order.OrderDate.Format(time.RFC3339),
		PickupTime:    pickupTime,
		PaymentMethod: order.PaymentMethod,
		Status:        string(order.Status),
		Discount:      order.Discount.InexactFloat64(),
		DeliveryFee:   order.DeliveryFee.InexactFloat64(),
		TotalAmount:   order.TotalAmount.InexactFloat64(),
		Notes:         order.Notes,
		Items:         items,
	}
}

// ToOrdersResponse converts a list of domain Orders to their DTO form.
func ToOrdersResponse(orders []*entity.Order) []OrderResponse {
	result := make([]OrderResponse, len(orders))
	for i, order := range orders {
		result[i] = ToOrderResponse(order)
	}
	return result
}
