// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BreadCategory groups breads in the catalog.
type BreadCategory struct {
	ID   string
	Name string
}

// Bread represents a catalog product.
type Bread struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Image       string
	CategoryID  string
	Description string
	Ingredients []string
	Stock       int
	InStock     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBread creates a new Bread entity.
func NewBread(name string, price decimal.Decimal, image, categoryID, description string, ingredients []string, stock int) *Bread {
	now := time.Now().UTC()

	return &Bread{
		Name:        name,
		Price:       price,
		Image:       image,
		CategoryID:  categoryID,
		Description: description,
		Ingredients: ingredients,
		Stock:       stock,
		InStock:     stock > 0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
