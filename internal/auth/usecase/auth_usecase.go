// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	authDomain "github.com/allisson/imagevault/internal/auth/domain"
	authService "github.com/allisson/imagevault/internal/auth/service"
	userDomain "github.com/allisson/imagevault/internal/user/domain"
	userUseCase "github.com/allisson/imagevault/internal/user/usecase"
)

// authUseCase implements AuthUseCase. It is the single gate protected routes
// rely on: it parses a raw authorization value, dispatches on the credential
// scheme and yields either an authenticated identity with a fresh token or a
// typed rejection. It holds no mutable state between invocations.
type authUseCase struct {
	userUseCase     userUseCase.UseCase
	passwordService authService.PasswordService
	tokenService    authService.TokenService
}

// Authenticate verifies the raw Authorization header value and, on success,
// mints a fresh token for the resolved identity (Bearer flow included), so
// every authenticated request refreshes the token the client holds.
//
// Rejections:
//   - empty value → ErrMissingCredential
//   - unknown scheme tag → ErrUnsupportedScheme
//   - Basic with unknown username OR wrong password → ErrInvalidCredentials
//     (identical reason, so callers cannot enumerate usernames)
//   - Bearer with a bad token, or a valid token whose subject was deleted →
//     ErrInvalidToken
//
// Infrastructure failures (store unreachable, signing failure) propagate
// unchanged and are never folded into the rejection taxonomy.
func (a *authUseCase) Authenticate(ctx context.Context, authorization string) (*authDomain.AuthResult, error) {
	if strings.TrimSpace(authorization) == "" {
		return nil, authDomain.ErrMissingCredential
	}

	scheme, payload, _ := strings.Cut(authorization, " ")

	var user *userDomain.User
	var err error

	switch authDomain.Scheme(strings.ToLower(scheme)) {
	case authDomain.SchemeBasic:
		user, err = a.authenticateBasic(ctx, payload)
	case authDomain.SchemeBearer:
		user, err = a.authenticateBearer(ctx, payload)
	default:
		return nil, authDomain.ErrUnsupportedScheme
	}
	if err != nil {
		return nil, err
	}

	token, err := a.tokenService.Mint(user)
	if err != nil {
		return nil, err
	}

	return &authDomain.AuthResult{User: user, Token: token}, nil
}

// authenticateBasic decodes a base64 "username:password" payload and checks
// the password against the stored hash. The decoded text is split on the
// FIRST colon only, since passwords may themselves contain colons.
func (a *authUseCase) authenticateBasic(ctx context.Context, payload string) (*userDomain.User, error) {
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, authDomain.ErrInvalidCredentials
	}

	username, password, found := strings.Cut(string(decoded), ":")
	if !found || username == "" {
		return nil, authDomain.ErrInvalidCredentials
	}

	user, err := a.userUseCase.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			// Same rejection as a wrong password.
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.passwordService.VerifyPassword(password, user.PasswordHash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	return user, nil
}

// authenticateBearer verifies the token and resolves the subject to a full
// identity. A structurally valid token whose subject no longer exists is an
// ErrInvalidToken, not ErrInvalidCredentials.
func (a *authUseCase) authenticateBearer(ctx context.Context, payload string) (*userDomain.User, error) {
	claims, err := a.tokenService.Verify(strings.TrimSpace(payload))
	if err != nil {
		return nil, err
	}

	user, err := a.userUseCase.GetByID(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}

// SignUp registers a new identity and mints its first token. Duplicate
// username/email surface as conflict errors from the user module.
func (a *authUseCase) SignUp(
	ctx context.Context,
	input userUseCase.RegisterUserInput,
) (*authDomain.AuthResult, error) {
	user, err := a.userUseCase.Register(ctx, input)
	if err != nil {
		return nil, err
	}

	token, err := a.tokenService.Mint(user)
	if err != nil {
		return nil, err
	}

	return &authDomain.AuthResult{User: user, Token: token}, nil
}

// NewAuthUseCase creates a new AuthUseCase with the provided dependencies.
func NewAuthUseCase(
	userUC userUseCase.UseCase,
	passwordService authService.PasswordService,
	tokenService authService.TokenService,
) AuthUseCase {
	return &authUseCase{
		userUseCase:     userUC,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}
