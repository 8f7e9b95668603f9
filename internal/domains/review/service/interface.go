package service

import (
	"context"

	"gamereviews-backend/internal/domains/review/model"
)

type ReviewService interface {
	ListReviews(ctx context.Context, req model.ListReviewsRequest) ([]model.ReviewSummary, error)
	GetReview(ctx context.Context, reviewID int) (*model.ReviewDetail, error)
	CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.ReviewDetail, error)
	UpdateReview(ctx context.Context, reviewID int, req model.UpdateReviewRequest) (*model.Review, error)
	DeleteReview(ctx context.Context, reviewID int) error
}
