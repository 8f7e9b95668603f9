package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gamereviews-backend/internal/domains/comment/model"
	"gamereviews-backend/internal/shared/apierr"
	"gamereviews-backend/internal/shared/existence"
)

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) ListByReview(ctx context.Context, reviewID, limit, offset int) ([]model.CommentSummary, error) {
	args := m.Called(ctx, reviewID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CommentSummary), args.Error(1)
}

func (m *mockCommentRepo) Create(ctx context.Context, reviewID int, author, body string) (*model.Comment, error) {
	args := m.Called(ctx, reviewID, author, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *mockCommentRepo) Update(ctx context.Context, commentID int, req model.UpdateCommentRequest) (*model.Comment, error) {
	args := m.Called(ctx, commentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *mockCommentRepo) Delete(ctx context.Context, commentID int) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

type mockProber struct {
	mock.Mock
}

func (m *mockProber) Check(ctx context.Context, target existence.Target, value any) (bool, error) {
	args := m.Called(ctx, target, value)
	return args.Bool(0), args.Error(1)
}

func (m *mockProber) Exists(ctx context.Context, target existence.Target, value any) error {
	args := m.Called(ctx, target, value)
	return args.Error(0)
}

func TestListCommentsProbesReview(t *testing.T) {
	repo := new(mockCommentRepo)
	prober := new(mockProber)
	prober.On("Exists", mock.Anything, existence.ReviewByID, 2).Return(nil)
	repo.On("ListByReview", mock.Anything, 2, 5, 5).Return([]model.CommentSummary{}, nil)

	svc := NewCommentService(repo, prober)

	_, err := svc.ListComments(context.Background(), 2, 2, 5)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListCommentsMissingReview(t *testing.T) {
	repo := new(mockCommentRepo)
	prober := new(mockProber)
	prober.On("Exists", mock.Anything, existence.ReviewByID, 999).
		Return(apierr.NotFound(999, "reviews"))

	svc := NewCommentService(repo, prober)

	_, err := svc.ListComments(context.Background(), 999, 1, 10)

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.KindNotFound, apiErr.Kind)
	repo.AssertNotCalled(t, "ListByReview")
}

func TestCreateComment(t *testing.T) {
	repo := new(mockCommentRepo)
	prober := new(mockProber)
	repo.On("Create", mock.Anything, 2, "mallionaire", "Great game!").
		Return(&model.Comment{CommentID: 7, Author: "mallionaire", Body: "Great game!", ReviewID: 2}, nil)

	svc := NewCommentService(repo, prober)

	username, body := "mallionaire", "Great game!"
	comment, err := svc.CreateComment(context.Background(), 2,
		model.CreateCommentRequest{Username: &username, Body: &body})

	require.NoError(t, err)
	assert.Equal(t, 7, comment.CommentID)
}

func TestCreateCommentIncompleteRequest(t *testing.T) {
	// A request with absent fields must come back as invalid input
	// rather than blowing up on a nil dereference.
	tests := []struct {
		name string
		req  model.CreateCommentRequest
	}{
		{"empty request", model.CreateCommentRequest{}},
		{"missing body", func() model.CreateCommentRequest {
			username := "mallionaire"
			return model.CreateCommentRequest{Username: &username}
		}()},
		{"missing username", func() model.CreateCommentRequest {
			body := "Great game!"
			return model.CreateCommentRequest{Body: &body}
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockCommentRepo)
			prober := new(mockProber)

			svc := NewCommentService(repo, prober)

			_, err := svc.CreateComment(context.Background(), 2, tt.req)

			var apiErr *apierr.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, apierr.KindInvalidInput, apiErr.Kind)
			repo.AssertNotCalled(t, "Create")
		})
	}
}
