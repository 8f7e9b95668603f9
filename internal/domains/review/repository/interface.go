package repository

import (
	"context"

	"gamereviews-backend/internal/domains/review/model"
)

type ReviewRepository interface {
	List(ctx context.Context, req model.ListReviewsRequest) ([]model.ReviewSummary, error)
	GetByID(ctx context.Context, reviewID int) (*model.ReviewDetail, error)
	Create(ctx context.Context, review *model.Review) error
	Update(ctx context.Context, reviewID int, req model.UpdateReviewRequest) (*model.Review, error)
	Delete(ctx context.Context, reviewID int) error
}
