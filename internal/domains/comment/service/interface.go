package service

import (
	"context"

	"gamereviews-backend/internal/domains/comment/model"
)

type CommentService interface {
	ListComments(ctx context.Context, reviewID, page, limit int) ([]model.CommentSummary, error)
	CreateComment(ctx context.Context, reviewID int, req model.CreateCommentRequest) (*model.Comment, error)
	UpdateComment(ctx context.Context, commentID int, req model.UpdateCommentRequest) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentID int) error
}
