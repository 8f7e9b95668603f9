package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gamereviews-backend/internal/domains/user/model"
	"gamereviews-backend/internal/shared/apierr"
)

type postgresUserRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresUserRepository(pool *pgxpool.Pool) UserRepository {
	return &postgresUserRepository{pool: pool}
}

func (r *postgresUserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT username, name, avatar_url
		FROM users
		ORDER BY username ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.Username, &user.Name, &user.AvatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *postgresUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `
		SELECT username, name, avatar_url
		FROM users
		WHERE username = $1
	`

	user := &model.User{}
	err := r.pool.QueryRow(ctx, query, username).Scan(&user.Username, &user.Name, &user.AvatarURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apierr.NotFound(username, "users")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *postgresUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (username, name, avatar_url)
		VALUES ($1, $2, $3)
	`

	_, err := r.pool.Exec(ctx, query, user.Username, user.Name, user.AvatarURL)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 unique_violation: backstop behind the service-level probe
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apierr.DuplicateUsername()
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *postgresUserRepository) Update(ctx context.Context, username string, req model.UpdateUserRequest) (*model.User, error) {
	query := `
		UPDATE users
		SET name = COALESCE($2, name),
		    avatar_url = COALESCE($3, avatar_url)
		WHERE username = $1
		RETURNING username, name, avatar_url
	`

	user := &model.User{}
	err := r.pool.QueryRow(ctx, query, username, req.Name, req.AvatarURL).
		Scan(&user.Username, &user.Name, &user.AvatarURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apierr.NotFound(username, "users")
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
