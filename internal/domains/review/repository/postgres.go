package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gamereviews-backend/internal/domains/review/model"
	"gamereviews-backend/internal/shared/apierr"
	"gamereviews-backend/pkg/database"
)

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &postgresReviewRepository{pool: pool}
}

// buildListQuery assembles the listing statement. The sort column and
// order come from the validated request, never raw query input, so
// interpolating them is safe. Filter values stay parameterised.
func buildListQuery(req model.ListReviewsRequest) (string, []any) {
	var sb strings.Builder
	args := []any{}

	sb.WriteString(`
		SELECT r.owner, r.title, r.review_id, r.category, r.review_img_url,
		       r.created_at, r.votes,
		       (SELECT COUNT(*) FROM comments c WHERE c.review_id = r.review_id) AS comment_count,
		       COUNT(*) OVER() AS total_count
		FROM reviews r`)

	if req.Category != nil {
		args = append(args, *req.Category)
		sb.WriteString(fmt.Sprintf("\n\t\tWHERE r.category = $%d", len(args)))
	}

	sb.WriteString(fmt.Sprintf("\n\t\tORDER BY %s %s", req.SortBy, req.Order))

	args = append(args, req.Limit)
	sb.WriteString(fmt.Sprintf("\n\t\tLIMIT $%d", len(args)))
	args = append(args, req.Offset())
	sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))

	return sb.String(), args
}

func (r *postgresReviewRepository) List(ctx context.Context, req model.ListReviewsRequest) ([]model.ReviewSummary, error) {
	query, args := buildListQuery(req)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []model.ReviewSummary{}
	for rows.Next() {
		var review model.ReviewSummary
		err := rows.Scan(
			&review.Owner, &review.Title, &review.ReviewID, &review.Category,
			&review.ReviewImgURL, &review.CreatedAt, &review.Votes,
			&review.CommentCount, &review.TotalCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, rows.Err()
}

func (r *postgresReviewRepository) GetByID(ctx context.Context, reviewID int) (*model.ReviewDetail, error) {
	query := `
		SELECT r.review_id, r.title, r.review_body, r.designer, r.review_img_url,
		       r.votes, r.category, r.owner, r.created_at,
		       (SELECT COUNT(*) FROM comments c WHERE c.review_id = r.review_id) AS comment_count
		FROM reviews r
		WHERE r.review_id = $1
	`

	review := &model.ReviewDetail{}
	err := r.pool.QueryRow(ctx, query, reviewID).Scan(
		&review.ReviewID, &review.Title, &review.ReviewBody, &review.Designer,
		&review.ReviewImgURL, &review.Votes, &review.Category, &review.Owner,
		&review.CreatedAt, &review.CommentCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apierr.NotFound(reviewID, "reviews")
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

func (r *postgresReviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (owner, title, review_body, designer, category, review_img_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING review_id, votes, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		review.Owner, review.Title, review.ReviewBody, review.Designer,
		review.Category, review.ReviewImgURL,
	).Scan(&review.ReviewID, &review.Votes, &review.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23503 foreign_key_violation: the missing parent names the table
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if strings.Contains(pgErr.ConstraintName, "owner") {
				return apierr.NotFound(review.Owner, "users")
			}
			return apierr.NotFound(review.Category, "categories")
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *postgresReviewRepository) Update(ctx context.Context, reviewID int, req model.UpdateReviewRequest) (*model.Review, error) {
	query := `
		UPDATE reviews
		SET votes = votes + COALESCE($2, 0),
		    review_body = COALESCE($3, review_body)
		WHERE review_id = $1
		RETURNING review_id, title, review_body, designer, review_img_url,
		          votes, category, owner, created_at
	`

	review := &model.Review{}
	err := r.pool.QueryRow(ctx, query, reviewID, req.IncVotes, req.ReviewBody).Scan(
		&review.ReviewID, &review.Title, &review.ReviewBody, &review.Designer,
		&review.ReviewImgURL, &review.Votes, &review.Category, &review.Owner,
		&review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apierr.NotFound(reviewID, "reviews")
		}
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	return review, nil
}

// Delete removes a review and its comments in one transaction.
func (r *postgresReviewRepository) Delete(ctx context.Context, reviewID int) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE review_id = $1`, reviewID); err != nil {
			return fmt.Errorf("failed to delete review comments: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM reviews WHERE review_id = $1`, reviewID)
		if err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apierr.NotFound(reviewID, "reviews")
		}
		return nil
	})
}
