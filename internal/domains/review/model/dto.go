package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"gamereviews-backend/internal/shared/apierr"
)

// ListReviewsRequest holds the parsed query string for the listing
// endpoint. Category is nil when no filter was given.
type ListReviewsRequest struct {
	SortBy   string
	Order    string
	Category *string
	Page     int
	Limit    int
}

// Validate rejects unknown sort columns and malformed order values.
func (r ListReviewsRequest) Validate() error {
	if !ValidSortColumn(r.SortBy) || !ValidOrder(r.Order) {
		return apierr.InvalidQuery()
	}
	return nil
}

// Offset converts the 1-based page to a row offset.
func (r ListReviewsRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// CreateReviewRequest carries the POST /api/reviews body. The image URL
// is the only optional key.
type CreateReviewRequest struct {
	Owner        *string `json:"owner"`
	Title        *string `json:"title"`
	ReviewBody   *string `json:"review_body"`
	Designer     *string `json:"designer"`
	Category     *string `json:"category"`
	ReviewImgURL *string `json:"review_img_url"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Owner, validation.NotNil),
		validation.Field(&r.Title, validation.NotNil),
		validation.Field(&r.ReviewBody, validation.NotNil),
		validation.Field(&r.Designer, validation.NotNil),
		validation.Field(&r.Category, validation.NotNil),
	)
}

func (r CreateReviewRequest) ToReview() *Review {
	review := &Review{
		Owner:        *r.Owner,
		Title:        *r.Title,
		ReviewBody:   *r.ReviewBody,
		Designer:     *r.Designer,
		Category:     *r.Category,
		ReviewImgURL: DefaultReviewImgURL,
	}
	if r.ReviewImgURL != nil {
		review.ReviewImgURL = *r.ReviewImgURL
	}
	return review
}

// UpdateReviewRequest carries the PATCH body; both fields are optional
// and an empty body leaves the review untouched.
type UpdateReviewRequest struct {
	IncVotes   *int    `json:"inc_votes"`
	ReviewBody *string `json:"review_body"`
}
