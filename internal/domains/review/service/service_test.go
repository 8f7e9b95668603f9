package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gamereviews-backend/internal/domains/review/model"
	"gamereviews-backend/internal/shared/apierr"
	"gamereviews-backend/internal/shared/existence"
)

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) List(ctx context.Context, req model.ListReviewsRequest) ([]model.ReviewSummary, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReviewSummary), args.Error(1)
}

func (m *mockReviewRepo) GetByID(ctx context.Context, reviewID int) (*model.ReviewDetail, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReviewDetail), args.Error(1)
}

func (m *mockReviewRepo) Create(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepo) Update(ctx context.Context, reviewID int, req model.UpdateReviewRequest) (*model.Review, error) {
	args := m.Called(ctx, reviewID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *mockReviewRepo) Delete(ctx context.Context, reviewID int) error {
	args := m.Called(ctx, reviewID)
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

func listRequest(category *string) model.ListReviewsRequest {
	return model.ListReviewsRequest{
		SortBy: "created_at", Order: "DESC", Category: category, Page: 1, Limit: 10,
	}
}

func TestListReviewsSkipsProbeWithoutFilter(t *testing.T) {
	repo := new(mockReviewRepo)
	prober := new(mockProber)
	repo.On("List", mock.Anything, listRequest(nil)).Return([]model.ReviewSummary{}, nil)

	svc := NewReviewService(repo, prober)

	_, err := svc.ListReviews(context.Background(), listRequest(nil))

	require.NoError(t, err)
	prober.AssertNotCalled(t, "Exists")
}

func TestListReviewsProbesCategoryFilter(t *testing.T) {
	repo := new(mockReviewRepo)
	prober := new(mockProber)
	category := "dexterity"
	prober.On("Exists", mock.Anything, existence.ReviewByCategory, "dexterity").Return(nil)
	repo.On("List", mock.Anything, listRequest(&category)).Return([]model.ReviewSummary{}, nil)

	svc := NewReviewService(repo, prober)

	_, err := svc.ListReviews(context.Background(), listRequest(&category))

	require.NoError(t, err)
	prober.AssertExpectations(t)
}

func TestListReviewsUnknownCategory(t *testing.T) {
	repo := new(mockReviewRepo)
	prober := new(mockProber)
	category := "bananas"
	prober.On("Exists", mock.Anything, existence.ReviewByCategory, "bananas").
		Return(apierr.NotFound("bananas", "reviews"))

	svc := NewReviewService(repo, prober)

	_, err := svc.ListReviews(context.Background(), listRequest(&category))

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.KindNotFound, apiErr.Kind)
	repo.AssertNotCalled(t, "List")
}

func TestListReviewsRejectsBadSort(t *testing.T) {
	repo := new(mockReviewRepo)
	prober := new(mockProber)

	svc := NewReviewService(repo, prober)

	req := listRequest(nil)
	req.SortBy = "designer"
	_, err := svc.ListReviews(context.Background(), req)

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.KindInvalidQuery, apiErr.Kind)
	repo.AssertNotCalled(t, "List")
}

func TestCreateReviewIncompleteRequest(t *testing.T) {
	// Absent fields must come back as invalid input rather than blowing
	// up on a nil dereference.
	repo := new(mockReviewRepo)
	prober := new(mockProber)

	svc := NewReviewService(repo, prober)

	owner := "haz"
	_, err := svc.CreateReview(context.Background(), model.CreateReviewRequest{Owner: &owner})

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.KindInvalidInput, apiErr.Kind)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateReviewStartsWithZeroComments(t *testing.T) {
	repo := new(mockReviewRepo)
	prober := new(mockProber)
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		review := args.Get(1).(*model.Review)
		review.ReviewID = 14
	}).Return(nil)

	svc := NewReviewService(repo, prober)

	owner, title, body, designer, category := "haz", "Wingspan", "Birds!", "Elizabeth Hargrave", "euro game"
	detail, err := svc.CreateReview(context.Background(), model.CreateReviewRequest{
		Owner: &owner, Title: &title, ReviewBody: &body, Designer: &designer, Category: &category,
	})

	require.NoError(t, err)
	assert.Equal(t, 14, detail.ReviewID)
	assert.Equal(t, 0, detail.CommentCount)
	assert.Equal(t, model.DefaultReviewImgURL, detail.ReviewImgURL)
}
