// Package dto provides data transfer objects for image endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/imagevault/internal/validation"
)

// CreateImageRequest contains the parameters for creating an image record.
type CreateImageRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Validate checks if the create image request is valid.
func (r *CreateImageRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.URL,
			validation.Required,
			customValidation.URL,
			validation.Length(1, 2000),
		),
	)
}
