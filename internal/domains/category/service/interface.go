package service

import (
	"context"

	"gamereviews-backend/internal/domains/category/model"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, req model.CreateCategoryRequest) (*model.Category, error)
}
