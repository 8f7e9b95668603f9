package repository

import (
	"context"

	"gamereviews-backend/internal/domains/user/model"
)

type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, username string, req model.UpdateUserRequest) (*model.User, error)
}
