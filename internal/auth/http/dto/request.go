// Package dto provides data transfer objects for authentication endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/imagevault/internal/validation"
)

// SignUpRequest contains the parameters for creating a new user account.
type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// Validate checks if the signup request is valid. The use case applies the
// full field rules; this catches structurally broken requests early.
func (r *SignUpRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Username,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(1, 128),
		),
		validation.Field(&r.Email,
			customValidation.Email,
			validation.Length(5, 255),
		),
	)
}
