// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bakehouse/backend/internal/application/adapter"
	"github.com/bakehouse/backend/internal/domain/entity"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
	"github.com/bakehouse/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new bread category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new bread category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.BreadCategory) error {
	result := r.db.WithContext(ctx).Create(model.BreadCategoryFromEntity(category))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindAll retrieves all bread categories.
func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.BreadCategory, error) {
	var categoryModels []model.BreadCategoryModel
	result := r.db.WithContext(ctx).Order("id ASC").Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.BreadCategory, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// ExistsByID checks whether a category with the given ID exists.
func (r *categoryRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.BreadCategoryModel{}).
		Where("id = ?", id).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// breadRepository implements the adapter.BreadRepository interface.
type breadRepository struct {
	db *gorm.DB
}

// NewBreadRepository creates a new bread repository instance.
func NewBreadRepository(db *gorm.DB) adapter.BreadRepository {
	return &breadRepository{
		db: db,
	}
}

// Create creates a new bread in the database.
func (r *breadRepository) Create(ctx context.Context, bread *entity.Bread) error {
	breadModel := model.BreadFromEntity(bread)
	result := r.db.WithContext(ctx).Create(breadModel)
	if result.Error != nil {
		return result.Error
	}

	bread.ID = breadModel.ID
	return nil
}

// FindByID retrieves a bread by its ID.
func (r *breadRepository) FindByID(ctx context.Context, id int64) (*entity.Bread, error) {
	var breadModel model.BreadModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&breadModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewCatalogError(
				domainerror.ErrCodeBreadNotFound,
				"bread not found",
				domainerror.ErrBreadNotFound,
			)
		}
		return nil, result.Error
	}
	return breadModel.ToEntity(), nil
}

// FindAll retrieves breads, optionally filtered by category.
func (r *breadRepository) FindAll(ctx context.Context, categoryID string) ([]*entity.Bread, error) {
	query := r.db.WithContext(ctx).Model(&model.BreadModel{})
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var breadModels []model.BreadModel
	result := query.Order("id ASC").Find(&breadModels)
	if result.Error != nil {
		return nil, result.Error
	}

	breads := make([]*entity.Bread, len(breadModels))
	for i, bm := range breadModels {
		breads[i] = bm.ToEntity()
	}
	return breads, nil
}

// Update updates an existing bread in the database.
func (r *breadRepository) Update(ctx context.Context, bread *entity.Bread) error {
	result := r.db.WithContext(ctx).
		Model(&model.BreadModel{}).
		Where("id = ?", bread.ID).
		Updates(map[string]interface{}{
			"name":        bread.Name,
			"price":       bread.Price,
			"image":       bread.Image,
			"category_id": bread.CategoryID,
			"description": bread.Description,
			"ingredients": model.BreadFromEntity(bread).Ingredients,
			"stock":       bread.Stock,
			"in_stock":    bread.InStock,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewCatalogError(
			domainerror.ErrCodeBreadNotFound,
			"bread not found",
			domainerror.ErrBreadNotFound,
		)
	}
	return nil
}

// Delete removes a bread from the database.
func (r *breadRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.BreadModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewCatalogError(
			domainerror.ErrCodeBreadNotFound,
			"bread not found",
			domainerror.ErrBreadNotFound,
		)
	}
	return nil
}
