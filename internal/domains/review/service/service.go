package service

import (
	"context"

	"gamereviews-backend/internal/domains/review/model"
	"gamereviews-backend/internal/domains/review/repository"
	"gamereviews-backend/internal/shared/apierr"
	"gamereviews-backend/internal/shared/existence"
)

type reviewService struct {
	repo    repository.ReviewRepository
	checker existence.Prober
}

func NewReviewService(repo repository.ReviewRepository, checker existence.Prober) ReviewService {
	return &reviewService{repo: repo, checker: checker}
}

func (s *reviewService) ListReviews(ctx context.Context, req model.ListReviewsRequest) ([]model.ReviewSummary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// A filter on a category no review uses and a filter on a category
	// that does not exist both come back empty, and both are reported
	// as a miss against the reviews table.
	if req.Category != nil {
		if err := s.checker.Exists(ctx, existence.ReviewByCategory, *req.Category); err != nil {
			return nil, err
		}
	}

	return s.repo.List(ctx, req)
}

func (s *reviewService) GetReview(ctx context.Context, reviewID int) (*model.ReviewDetail, error) {
	return s.repo.GetByID(ctx, reviewID)
}

func (s *reviewService) CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.ReviewDetail, error) {
	// Re-checked here so the service never dereferences an absent field,
	// whoever the caller is.
	if err := req.Validate(); err != nil {
		return nil, apierr.InvalidInput()
	}

	review := req.ToReview()
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	return &model.ReviewDetail{
		ReviewID:     review.ReviewID,
		Title:        review.Title,
		ReviewBody:   review.ReviewBody,
		Designer:     review.Designer,
		ReviewImgURL: review.ReviewImgURL,
		Votes:        review.Votes,
		Category:     review.Category,
		Owner:        review.Owner,
		CreatedAt:    review.CreatedAt,
		CommentCount: 0,
	}, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID int, req model.UpdateReviewRequest) (*model.Review, error) {
	return s.repo.Update(ctx, reviewID, req)
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID int) error {
	return s.repo.Delete(ctx, reviewID)
}
