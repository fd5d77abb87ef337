// Package service provides technical services for authentication operations.
//
// This package implements password hashing and stateless token signing using
// industry-standard cryptographic practices (Argon2id and HS256 JWTs).
package service

import (
	authDomain "github.com/allisson/imagevault/internal/auth/domain"
	userDomain "github.com/allisson/imagevault/internal/user/domain"
)

// PasswordService defines operations for password hashing and verification.
// Implementations must salt hashes (the same plaintext hashes to different
// stored values) and verify in constant time to prevent timing attacks.
type PasswordService interface {
	// HashPassword hashes a plaintext password using a salted, computationally
	// expensive algorithm. Empty plaintext is rejected as invalid input.
	// Called only from explicit registration/password-change entrypoints,
	// never implicitly on save, and never on an already-hashed value.
	HashPassword(plainPassword string) (hashedPassword string, err error)

	// VerifyPassword compares a plaintext password against a stored hash.
	// Returns false for mismatches and malformed hashes; it never errors
	// toward the caller on a mismatch.
	VerifyPassword(plainPassword string, hashedPassword string) bool
}

// TokenService defines operations for minting and verifying stateless signed
// tokens. Tokens are self-contained: validity is determined solely by the
// signature (and expiry when configured), never by server-side state.
type TokenService interface {
	// Mint signs a new token carrying the user's ID as subject and a snapshot
	// of the user's capabilities at mint time.
	Mint(user *userDomain.User) (token string, err error)

	// Verify validates the token signature (and expiry when enabled) and
	// returns the embedded claims. It does not resolve the full identity;
	// callers look up the subject against the user registry when needed.
	// Any failure yields domain.ErrInvalidToken.
	Verify(token string) (*authDomain.TokenClaims, error)
}
