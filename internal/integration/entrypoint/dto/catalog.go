// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/bakehouse/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// CategoryResponse represents a bread category in a response body.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToCategoryResponse converts a domain BreadCategory to its DTO.
func ToCategoryResponse(category *entity.BreadCategory) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name}
}

// ToCategoriesResponse converts a list of categories to their DTO form.
func ToCategoriesResponse(categories []*entity.BreadCategory) []CategoryResponse {
	result := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		result[i] = ToCategoryResponse(category)
	}
	return result
}

// CreateBreadRequest represents the request body for adding a bread.
type CreateBreadRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	CategoryID  string   `json:"categoryId" binding:"required"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Stock       int      `json:"stock"`
}

// UpdateBreadRequest represents the request body for a bread update. Absent
// fields leave the stored value untouched.
type UpdateBreadRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	CategoryID  *string  `json:"categoryId"`
	Description *string  `json:"description"`
	Ingredients []string `json:"ingredients"`
	Stock       *int     `json:"stock"`
	InStock     *bool    `json:"inStock"`
}

// UpdateBreadStockRequest represents the request body for a stock change.
type UpdateBreadStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

// BreadResponse represents a bread in a response body.
type BreadResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	CategoryID  string   `json:"categoryId"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Stock       int      `json:"stock"`
	InStock     bool     `json:"inStock"`
}

// ToBreadResponse converts a domain Bread to its DTO.
func ToBreadResponse(bread *entity.Bread) BreadResponse {
	ingredients := bread.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}

	return BreadResponse{
		ID:          bread.ID,
		Name:        bread.Name,
		Price:       bread.Price.InexactFloat64(),
		Image:       bread.Image,
		CategoryID:  bread.CategoryID,
		Description: bread.Description,
		Ingredients: ingredients,
		Stock:       bread.Stock,
		InStock:     bread.InStock,
	}
}

// ToBreadsResponse converts a list of breads to their DTO form.
func ToBreadsResponse(breads []*entity.Bread) []BreadResponse {
	result := make([]BreadResponse, len(breads))
	for i, bread := range breads {
		result[i] = ToBreadResponse(bread)
	}
	return result
}
