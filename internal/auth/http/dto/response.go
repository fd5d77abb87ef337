package dto

import (
	"time"

	authDomain "github.com/allisson/imagevault/internal/auth/domain"
	userDomain "github.com/allisson/imagevault/internal/user/domain"
)

// UserResponse represents a user in API responses. The password hash is
// never exposed.
type UserResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	Capabilities []string  `json:"capabilities"`
	CreatedAt    time.Time `json:"created_at"`
}

// MapUserToResponse converts a domain user to an API response.
func MapUserToResponse(user *userDomain.User) UserResponse {
	capabilities := user.Capabilities
	if capabilities == nil {
		capabilities = []string{}
	}
	return UserResponse{
		ID:           user.ID.String(),
		Username:     user.Username,
		Email:        user.Email,
		Capabilities: capabilities,
		CreatedAt:    user.CreatedAt,
	}
}

// AuthResponse contains the result of a signup or signin.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MapAuthResultToResponse converts an auth result to an API response.
func MapAuthResultToResponse(result *authDomain.AuthResult) AuthResponse {
	return AuthResponse{
		Token: result.Token,
		User:  MapUserToResponse(result.User),
	}
}
