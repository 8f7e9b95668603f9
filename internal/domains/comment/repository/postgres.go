package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gamereviews-backend/internal/domains/comment/model"
	"gamereviews-backend/internal/shared/apierr"
)

type postgresCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &postgresCommentRepository{pool: pool}
}

func (r *postgresCommentRepository) ListByReview(ctx context.Context, reviewID, limit, offset int) ([]model.CommentSummary, error) {
	query := `
		SELECT comment_id, votes, created_at, author, body
		FROM comments
		WHERE review_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, reviewID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []model.CommentSummary{}
	for rows.Next() {
		var comment model.CommentSummary
		err := rows.Scan(&comment.CommentID, &comment.Votes, &comment.CreatedAt,
			&comment.Author, &comment.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}

func (r *postgresCommentRepository) Create(ctx context.Context, reviewID int, author, body string) (*model.Comment, error) {
	query := `
		INSERT INTO comments (review_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, votes, created_at, author, body, review_id
	`

	comment := &model.Comment{}
	err := r.pool.QueryRow(ctx, query, reviewID, author, body).Scan(
		&comment.CommentID, &comment.Votes, &comment.CreatedAt,
		&comment.Author, &comment.Body, &comment.ReviewID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23503 foreign_key_violation: the missing parent names the table
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if strings.Contains(pgErr.ConstraintName, "author") {
				return nil, apierr.NotFound(author, "users")
			}
			return nil, apierr.NotFound(reviewID, "reviews")
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

func (r *postgresCommentRepository) Update(ctx context.Context, commentID int, req model.UpdateCommentRequest) (*model.Comment, error) {
	query := `
		UPDATE comments
		SET votes = votes + COALESCE($2, 0),
		    body = COALESCE($3, body)
		WHERE comment_id = $1
		RETURNING comment_id, votes, created_at, author, body, review_id
	`

	comment := &model.Comment{}
	err := r.pool.QueryRow(ctx, query, commentID, req.IncVotes, req.Body).Scan(
		&comment.CommentID, &comment.Votes, &comment.CreatedAt,
		&comment.Author, &comment.Body, &comment.ReviewID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apierr.NotFound(commentID, "comments")
		}
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

func (r *postgresCommentRepository) Delete(ctx context.Context, commentID int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1`, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierr.NotFound(commentID, "comments")
	}
	return nil
}
