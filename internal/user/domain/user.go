// Package domain defines the core user domain entities and types.
package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/imagevault/internal/errors"
)

// User represents a registered identity. PasswordHash is always the Argon2id
// hash of the password, never the plaintext. Capabilities is an opaque list of
// granted permissions carried into issued tokens; interpretation belongs to
// downstream consumers.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string // optional, unique when set
	PasswordHash string
	Capabilities []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasCapability reports whether the user was granted the given capability.
func (u *User) HasCapability(capability string) bool {
	return slices.Contains(u.Capabilities, capability)
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = apperrors.Wrap(apperrors.ErrNotFound, "user not found")

	// ErrUsernameTaken indicates a user with the same username already exists.
	ErrUsernameTaken = apperrors.Wrap(apperrors.ErrConflict, "username already taken")

	// ErrEmailTaken indicates a user with the same email already exists.
	ErrEmailTaken = apperrors.Wrap(apperrors.ErrConflict, "email already taken")
)
