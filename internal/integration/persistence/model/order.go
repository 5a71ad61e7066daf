// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/domain/entity"
)

// OrderModel represents the orders table in the database.
type OrderModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	Number        string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerName  string          `gorm:"type:varchar(100);not null"`
	Phone         string          `gorm:"type:varchar(30)"`
	Address       string          `gorm:"type:varchar(255)"`
	OrderDate     time.Time       `gorm:"not null;index"`
	PickupTime    *time.Time      `gorm:"type:timestamp"`
	PaymentMethod string          `gorm:"type:varchar(30)"`
	Status        string          `gorm:"type:varchar(20);not null;index"`
	Discount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	DeliveryFee   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Notes         string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the OrderModel.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel represents the order_items table in the database.
type OrderItemModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	Name      string          `gorm:"type:varchar(100);not null"`
	BreadType string          `gorm:"type:varchar(50)"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Quantity  int             `gorm:"not null"`
}

// TableName returns the table name for the OrderItemModel.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToEntity converts an OrderModel to a domain Order entity.
func (m *OrderModel) ToEntity() *entity.Order {
	items := make([]entity.OrderItem, len(m.Items))
	for i, im := range m.Items {
		items[i] = entity.OrderItem{
			ID:        im.ID,
			Name:      im.Name,
			BreadType: im.BreadType,
			Price:     im.Price,
			Quantity:  im.Quantity,
		}
	}

	return &entity.Order{
		ID:            m.ID,
		Number:        m.Number,
		CustomerName:  m.CustomerName,
		Phone:         m.Phone,
		Address:       m.Address,
		OrderDate:     m.OrderDate,
		PickupTime:    m.PickupTime,
		PaymentMethod: m.PaymentMethod,
		Status:        entity.OrderStatus(m.Status),
		Discount:      m.Discount,
		DeliveryFee:   m.DeliveryFee,
		TotalAmount:   m.TotalAmount,
		Notes:         m.Notes,
		Items:         items,
	}
}

// OrderFromEntity creates an OrderModel from a domain Order entity.
func OrderFromEntity(order *entity.Order) *OrderModel {
	items := make([]OrderItemModel, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemModel{
			ID:        item.ID,
			OrderID:   order.ID,
			Name:      item.Name,
			BreadType: item.BreadType,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	return &OrderModel{
		ID:            order.ID,
		Number:        order.Number,
		CustomerName:  order.CustomerName,
		Phone:         order.Phone,
		Address:       order.Address,
		OrderDate:     order.OrderDate,
		PickupTime:    order.PickupTime,
		PaymentMethod: order.PaymentMethod,
		Status:        string(order.Status),
		Discount:      order.Discount,
		DeliveryFee:   order.DeliveryFee,
		TotalAmount:   order.TotalAmount,
		Notes:         order.Notes,
		Items:         items,
	}
}
