package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gamereviews-backend/internal/domains/category/model"
	"gamereviews-backend/internal/shared/apierr"
)

type postgresCategoryRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &postgresCategoryRepository{pool: pool}
}

func (r *postgresCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `
		SELECT slug, description
		FROM categories
		ORDER BY slug ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var category model.Category
		if err := rows.Scan(&category.Slug, &category.Description); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (r *postgresCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	query := `
		INSERT INTO categories (slug, description)
		VALUES ($1, $2)
	`

	_, err := r.pool.Exec(ctx, query, category.Slug, category.Description)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 unique_violation: duplicate slug
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apierr.InvalidInput()
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}
