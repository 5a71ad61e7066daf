// Package catalog contains bread catalog use cases.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/application/adapter"
	"github.com/bakehouse/backend/internal/domain/entity"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
)

// CreateBreadInput represents the input for adding a bread to the catalog.
type CreateBreadInput struct {
	Name        string
	Price       decimal.Decimal
	Image       string
	CategoryID  string
	Description string
	Ingredients []string
	Stock       int
}

// CreateBreadUseCase adds breads to the catalog.
type CreateBreadUseCase struct {
	breadRepo    adapter.BreadRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateBreadUseCase creates a new CreateBreadUseCase instance.
func NewCreateBreadUseCase(breadRepo adapter.BreadRepository, categoryRepo adapter.CategoryRepository) *CreateBreadUseCase {
	return &CreateBreadUseCase{
		breadRepo:    breadRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute validates and persists a new bread.
func (uc *CreateBreadUseCase) Execute(ctx context.Context, input CreateBreadInput) (*entity.Bread, error) {
	if input.Price.IsNegative() {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeNegativePrice,
			"price must not be negative",
			domainerror.ErrNegativePrice,
		)
	}
	if input.Stock < 0 {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeNegativeStock,
			"stock must not be negative",
			domainerror.ErrNegativeStock,
		)
	}

	exists, err := uc.categoryRepo.ExistsByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	bread := entity.NewBread(
		input.Name,
		input.Price,
		input.Image,
		input.CategoryID,
		input.Description,
		input.Ingredients,
		input.Stock,
	)

	if err := uc.breadRepo.Create(ctx, bread); err != nil {
		return nil, fmt.Errorf("failed to create bread: %w", err)
	}

	return bread, nil
}

// ListBreadsUseCase lists catalog breads.
type ListBreadsUseCase struct {
	breadRepo adapter.BreadRepository
}

// NewListBreadsUseCase creates a new ListBreadsUseCase instance.
func NewListBreadsUseCase(breadRepo adapter.BreadRepository) *ListBreadsUseCase {
	return &ListBreadsUseCase{breadRepo: breadRepo}
}

// Execute lists breads, optionally filtered by category.
func (uc *ListBreadsUseCase) Execute(ctx context.Context, categoryID string) ([]*entity.Bread, error) {
	breads, err := uc.breadRepo.FindAll(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list breads: %w", err)
	}
	return breads, nil
}

// UpdateBreadInput carries the mutable bread fields; nil pointers leave the
// stored value untouched.
type UpdateBreadInput struct {
	ID          int64
	Name        *string
	Price       *decimal.Decimal
	Image       *string
	CategoryID  *string
	Description *string
	Ingredients []string
	Stock       *int
	InStock     *bool
}

// UpdateBreadUseCase handles bread updates.
type UpdateBreadUseCase struct {
	breadRepo adapter.BreadRepository
}

// NewUpdateBreadUseCase creates a new UpdateBreadUseCase instance.
func NewUpdateBreadUseCase(breadRepo adapter.BreadRepository) *UpdateBreadUseCase {
	return &UpdateBreadUseCase{breadRepo: breadRepo}
}

// Execute applies the provided fields to the stored bread.
func (uc *UpdateBreadUseCase) Execute(ctx context.Context, input UpdateBreadInput) (*entity.Bread, error) {
	bread, err := uc.breadRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		bread.Name = *input.Name
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, domainerror.NewCatalogError(
				domainerror.ErrCodeNegativePrice,
				"price must not be negative",
				domainerror.ErrNegativePrice,
			)
		}
		bread.Price = *input.Price
	}
	if input.Image != nil {
		bread.Image = *input.Image
	}
	if input.CategoryID != nil {
		bread.CategoryID = *input.CategoryID
	}
	if input.Description != nil {
		bread.Description = *input.Description
	}
	if input.Ingredients != nil {
		bread.Ingredients = input.Ingredients
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, domainerror.NewCatalogError(
				domainerror.ErrCodeNegativeStock,
				"stock must not be negative",
				domainerror.ErrNegativeStock,
			)
		}
		bread.Stock = *input.Stock
		bread.InStock = *input.Stock > 0
	}
	if input.InStock != nil {
		bread.InStock = *input.InStock
	}
	bread.UpdatedAt = time.Now().UTC()

	if err := uc.breadRepo.Update(ctx, bread); err != nil {
		return nil, fmt.Errorf("failed to update bread: %w", err)
	}

	return bread, nil
}

// DeleteBreadUseCase handles bread deletion.
type DeleteBreadUseCase struct {
	breadRepo adapter.BreadRepository
}

// NewDeleteBreadUseCase creates a new DeleteBreadUseCase instance.
func NewDeleteBreadUseCase(breadRepo adapter.BreadRepository) *DeleteBreadUseCase {
	return &DeleteBreadUseCase{breadRepo: breadRepo}
}

// Execute removes the bread from the catalog.
func (uc *DeleteBreadUseCase) Execute(ctx context.Context, id int64) error {
	if err := uc.breadRepo.Delete(ctx, id); err != nil {
		var catalogErr *domainerror.CatalogError
		if errors.As(err, &catalogErr) {
			return err
		}
		return fmt.Errorf("failed to delete bread: %w", err)
	}
	return nil
}
