package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateCommentRequest carries the POST body for a review's comments.
type CreateCommentRequest struct {
	Username *string `json:"username"`
	Body     *string `json:"body"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.NotNil),
		validation.Field(&r.Body, validation.NotNil),
	)
}

// UpdateCommentRequest carries the PATCH body; an empty body leaves the
// comment untouched.
type UpdateCommentRequest struct {
	IncVotes *int    `json:"inc_votes"`
	Body     *string `json:"body"`
}
