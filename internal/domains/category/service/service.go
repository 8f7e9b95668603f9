package service

import (
	"context"

	"gamereviews-backend/internal/domains/category/model"
	"gamereviews-backend/internal/domains/category/repository"
)

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) CreateCategory(ctx context.Context, req model.CreateCategoryRequest) (*model.Category, error) {
	category := req.ToCategory()
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
