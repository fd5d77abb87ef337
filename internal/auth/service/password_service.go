package service

import (
	"fmt"

	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/imagevault/internal/errors"
)

// passwordService implements PasswordService using Argon2id.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// HashPassword hashes a plaintext password using Argon2id. The output embeds a
// random salt, so hashing the same password twice yields different strings.
func (s *passwordService) HashPassword(plainPassword string) (string, error) {
	if plainPassword == "" {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "password must not be empty")
	}

	hashedPassword, err := s.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashedPassword, nil
}

// VerifyPassword performs a constant-time comparison between a plaintext
// password and its stored hash. Malformed hashes verify as false.
func (s *passwordService) VerifyPassword(plainPassword string, hashedPassword string) bool {
	ok, err := s.hasher.Verify([]byte(plainPassword), hashedPassword)
	if err != nil {
		return false
	}
	return ok
}

// NewPasswordService creates a PasswordService using Argon2id hashing with the
// given policy name (interactive, moderate or sensitive). The work factor is
// process-wide configuration, fixed at startup.
func NewPasswordService(policy string) (PasswordService, error) {
	p := pwdhash.PolicyInteractive
	switch policy {
	case "interactive", "":
	case "moderate":
		p = pwdhash.PolicyModerate
	case "sensitive":
		p = pwdhash.PolicySensitive
	default:
		return nil, fmt.Errorf("unknown password hash policy: %q", policy)
	}

	hasher, err := pwdhash.New(pwdhash.WithPolicy(p))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &passwordService{hasher: hasher}, nil
}
