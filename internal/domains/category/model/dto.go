package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateCategoryRequest carries the POST /api/categories body. Fields are
// pointers so an absent key is distinguishable from an empty value; keys
// outside the schema are dropped by the JSON decoder.
type CreateCategoryRequest struct {
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Slug, validation.NotNil),
		validation.Field(&r.Description, validation.NotNil),
	)
}

func (r CreateCategoryRequest) ToCategory() *Category {
	return &Category{
		Slug:        *r.Slug,
		Description: *r.Description,
	}
}
