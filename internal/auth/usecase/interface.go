package usecase

import (
	"context"

	authDomain "github.com/allisson/imagevault/internal/auth/domain"
	userUseCase "github.com/allisson/imagevault/internal/user/usecase"
)

// AuthUseCase defines the authentication gate consumed by the HTTP layer.
type AuthUseCase interface {
	// Authenticate verifies a raw Authorization header value (Basic or
	// Bearer) and returns the identity plus a freshly minted token, or a
	// typed rejection.
	Authenticate(ctx context.Context, authorization string) (*authDomain.AuthResult, error)

	// SignUp registers a new identity and mints its first token.
	SignUp(ctx context.Context, input userUseCase.RegisterUserInput) (*authDomain.AuthResult, error)
}
