package repository

import (
	"context"

	"gamereviews-backend/internal/domains/category/model"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, category *model.Category) error
}
