package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamereviews-backend/internal/shared/apierr"
)

func TestListReviewsRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		sortBy  string
		order   string
		wantErr bool
	}{
		{"defaults pass", "created_at", "DESC", false},
		{"every listed column sorts", "comment_count", "ASC", false},
		{"votes ascending", "votes", "ASC", false},
		{"unknown column rejected", "review_body", "DESC", true},
		{"sql in sort_by rejected", "votes; DROP TABLE reviews", "DESC", true},
		{"lowercase order rejected", "created_at", "desc", true},
		{"arbitrary order rejected", "created_at", "sideways", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ListReviewsRequest{SortBy: tt.sortBy, Order: tt.order, Page: 1, Limit: 10}

			err := req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var apiErr *apierr.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, apierr.KindInvalidQuery, apiErr.Kind)
		})
	}
}

func TestListReviewsRequestOffset(t *testing.T) {
	assert.Equal(t, 0, ListReviewsRequest{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, ListReviewsRequest{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 12, ListReviewsRequest{Page: 5, Limit: 3}.Offset())
}

func TestCreateReviewRequestValidate(t *testing.T) {
	owner, title, body, designer, category := "haz", "Agricola", "Farmyard fun", "Uwe", "euro game"

	full := CreateReviewRequest{
		Owner: &owner, Title: &title, ReviewBody: &body,
		Designer: &designer, Category: &category,
	}
	assert.NoError(t, full.Validate())

	missingDesigner := full
	missingDesigner.Designer = nil
	assert.Error(t, missingDesigner.Validate())

	assert.Error(t, CreateReviewRequest{}.Validate())
}

func TestCreateReviewRequestToReview(t *testing.T) {
	owner, title, body, designer, category := "haz", "Agricola", "Farmyard fun", "Uwe", "euro game"
	req := CreateReviewRequest{
		Owner: &owner, Title: &title, ReviewBody: &body,
		Designer: &designer, Category: &category,
	}

	review := req.ToReview()
	assert.Equal(t, DefaultReviewImgURL, review.ReviewImgURL)

	img := "https://example.com/box-art.png"
	req.ReviewImgURL = &img
	assert.Equal(t, img, req.ToReview().ReviewImgURL)
}
