// Package catalog contains bread catalog use cases.
package catalog

import (
	"context"
	"fmt"

	"github.com/bakehouse/backend/internal/application/adapter"
	"github.com/bakehouse/backend/internal/domain/entity"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
)

// ListCategoriesUseCase lists bread categories.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo}
}

// Execute returns all bread categories.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]*entity.BreadCategory, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	ID   string
	Name string
}

// CreateCategoryUseCase creates bread categories.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute persists a new bread category, rejecting duplicate IDs.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*entity.BreadCategory, error) {
	exists, err := uc.categoryRepo.ExistsByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeCategoryExists,
			"a category with this id already exists",
			domainerror.ErrCategoryExists,
		)
	}

	category := &entity.BreadCategory{ID: input.ID, Name: input.Name}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}
