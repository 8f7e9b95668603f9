package repository

import (
	"context"

	"gamereviews-backend/internal/domains/comment/model"
)

type CommentRepository interface {
	ListByReview(ctx context.Context, reviewID, limit, offset int) ([]model.CommentSummary, error)
	Create(ctx context.Context, reviewID int, author, body string) (*model.Comment, error)
	Update(ctx context.Context, commentID int, req model.UpdateCommentRequest) (*model.Comment, error)
	Delete(ctx context.Context, commentID int) error
}
