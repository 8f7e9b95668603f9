package service

import (
	"context"

	"gamereviews-backend/internal/domains/user/model"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	UpdateUser(ctx context.Context, username string, req model.UpdateUserRequest) (*model.User, error)
}
