package service

import (
	"context"

	"gamereviews-backend/internal/domains/comment/model"
	"gamereviews-backend/internal/domains/comment/repository"
	"gamereviews-backend/internal/shared/apierr"
	"gamereviews-backend/internal/shared/existence"
)

type commentService struct {
	repo    repository.CommentRepository
	checker existence.Prober
}

func NewCommentService(repo repository.CommentRepository, checker existence.Prober) CommentService {
	return &commentService{repo: repo, checker: checker}
}

func (s *commentService) ListComments(ctx context.Context, reviewID, page, limit int) ([]model.CommentSummary, error) {
	// A review with no comments answers an empty list, so the parent
	// has to be probed to tell that apart from a missing review.
	if err := s.checker.Exists(ctx, existence.ReviewByID, reviewID); err != nil {
		return nil, err
	}

	return s.repo.ListByReview(ctx, reviewID, limit, (page-1)*limit)
}

func (s *commentService) CreateComment(ctx context.Context, reviewID int, req model.CreateCommentRequest) (*model.Comment, error) {
	// Re-checked here so the service never dereferences an absent field,
	// whoever the caller is.
	if err := req.Validate(); err != nil {
		return nil, apierr.InvalidInput()
	}

	return s.repo.Create(ctx, reviewID, *req.Username, *req.Body)
}

func (s *commentService) UpdateComment(ctx context.Context, commentID int, req model.UpdateCommentRequest) (*model.Comment, error) {
	return s.repo.Update(ctx, commentID, req)
}

func (s *commentService) DeleteComment(ctx context.Context, commentID int) error {
	return s.repo.Delete(ctx, commentID)
}
