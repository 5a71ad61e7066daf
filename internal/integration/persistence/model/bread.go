// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/domain/entity"
)

// BreadCategoryModel represents the bread_categories table in the database.
type BreadCategoryModel struct {
	ID   string `gorm:"type:varchar(50);primaryKey"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for the BreadCategoryModel.
func (BreadCategoryModel) TableName() string {
	return "bread_categories"
}

// ToEntity converts a BreadCategoryModel to a domain BreadCategory entity.
func (m *BreadCategoryModel) ToEntity() *entity.BreadCategory {
	return &entity.BreadCategory{ID: m.ID, Name: m.Name}
}

// BreadCategoryFromEntity creates a BreadCategoryModel from a domain entity.
func BreadCategoryFromEntity(category *entity.BreadCategory) *BreadCategoryModel {
	return &BreadCategoryModel{ID: category.ID, Name: category.Name}
}

// BreadModel represents the breads table in the database.
type BreadModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Image       string          `gorm:"type:varchar(255)"`
	CategoryID  string          `gorm:"type:varchar(50);not null;index"`
	Description string          `gorm:"type:text"`
	Ingredients pq.StringArray  `gorm:"type:text[]"`
	Stock       int             `gorm:"not null;default:0"`
	InStock     bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	Category *BreadCategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the BreadModel.
func (BreadModel) TableName() string {
	return "breads"
}

// ToEntity converts a BreadModel to a domain Bread entity.
func (m *BreadModel) ToEntity() *entity.Bread {
	return &entity.Bread{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Image:       m.Image,
		CategoryID:  m.CategoryID,
		Description: m.Description,
		Ingredients: m.Ingredients,
		Stock:       m.Stock,
		InStock:     m.InStock,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// BreadFromEntity creates a BreadModel from a domain Bread entity.
func BreadFromEntity(bread *entity.Bread) *BreadModel {
	return &BreadModel{
		ID:          bread.ID,
		Name:        bread.Name,
		Price:       bread.Price,
		Image:       bread.Image,
		CategoryID:  bread.CategoryID,
		Description: bread.Description,
		Ingredients: bread.Ingredients,
		Stock:       bread.Stock,
		InStock:     bread.InStock,
		CreatedAt:   bread.CreatedAt,
		UpdatedAt:   bread.UpdatedAt,
	}
}
