package service

import (
	"context"

	"gamereviews-backend/internal/domains/user/model"
	"gamereviews-backend/internal/domains/user/repository"
	"gamereviews-backend/internal/shared/apierr"
	"gamereviews-backend/internal/shared/existence"
)

type userService struct {
	repo    repository.UserRepository
	checker existence.Prober
}

func NewUserService(repo repository.UserRepository, checker existence.Prober) UserService {
	return &userService{repo: repo, checker: checker}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, username string) (*model.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *userService) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	// Re-checked here so the service never dereferences an absent field,
	// whoever the caller is.
	if err := req.Validate(); err != nil {
		return nil, apierr.InvalidInput()
	}

	// Uniqueness is probed up front so the duplicate answer is its own
	// message rather than a generic constraint failure.
	taken, err := s.checker.Check(ctx, existence.UserByUsername, *req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apierr.DuplicateUsername()
	}

	user := req.ToUser()
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, username string, req model.UpdateUserRequest) (*model.User, error) {
	return s.repo.Update(ctx, username, req)
}
