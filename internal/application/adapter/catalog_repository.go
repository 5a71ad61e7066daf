// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/bakehouse/backend/internal/domain/entity"
)

// CategoryRepository defines persistence operations for bread categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.BreadCategory) error
	FindAll(ctx context.Context) ([]*entity.BreadCategory, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// BreadRepository defines persistence operations for catalog products.
type BreadRepository interface {
	Create(ctx context.Context, bread *entity.Bread) error
	FindByID(ctx context.Context, id int64) (*entity.Bread, error)
	FindAll(ctx context.Context, categoryID string) ([]*entity.Bread, error)
	Update(ctx context.Context, bread *entity.Bread) error
	Delete(ctx context.Context, id int64) error
}
