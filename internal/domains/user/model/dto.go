package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateUserRequest carries the POST /api/users body. All three keys are
// required; extras are dropped by the decoder.
type CreateUserRequest struct {
	Username  *string `json:"username"`
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.NotNil),
		validation.Field(&r.Name, validation.NotNil),
		validation.Field(&r.AvatarURL, validation.NotNil),
	)
}

func (r CreateUserRequest) ToUser() *User {
	return &User{
		Username:  *r.Username,
		Name:      *r.Name,
		AvatarURL: *r.AvatarURL,
	}
}

// UpdateUserRequest carries the PATCH body; nil fields keep the stored
// value.
type UpdateUserRequest struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}
