// Package domain defines authentication domain models and the rejection taxonomy.
//
// Authentication supports two credential schemes: Basic (username and password)
// and Bearer (signed token). Rejection reasons are typed errors so callers can
// map them to transport-level responses without string matching.
package domain

import (
	"github.com/google/uuid"

	apperrors "github.com/allisson/imagevault/internal/errors"
	userDomain "github.com/allisson/imagevault/internal/user/domain"
)

// Scheme is the authentication method tag prefixing a credential payload.
type Scheme string

const (
	// SchemeBasic authenticates with a base64-encoded username:password pair.
	SchemeBasic Scheme = "basic"

	// SchemeBearer authenticates with a signed token.
	SchemeBearer Scheme = "bearer"
)

// TokenClaims is the verified content of a bearer token: the subject identity
// reference and the capability list snapshotted at mint time. Capability
// changes after minting do not propagate to already-issued tokens.
type TokenClaims struct {
	SubjectID    uuid.UUID
	Capabilities []string
}

// AuthResult is the outcome of a successful authentication: the resolved
// identity and a freshly minted token. A new token is minted on every
// authenticated request so clients can refresh the one they hold.
type AuthResult struct {
	User  *userDomain.User
	Token string
}

// Authentication rejection reasons. All wrap apperrors.ErrUnauthorized so the
// HTTP layer maps every one of them to 401.
var (
	// ErrMissingCredential indicates no authorization value was supplied.
	ErrMissingCredential = apperrors.Wrap(apperrors.ErrUnauthorized, "missing credential")

	// ErrUnsupportedScheme indicates an authorization scheme other than Basic or Bearer.
	ErrUnsupportedScheme = apperrors.Wrap(apperrors.ErrUnauthorized, "unsupported authentication scheme")

	// ErrInvalidCredentials indicates a failed Basic authentication. Unknown
	// username and wrong password intentionally share this reason so callers
	// cannot enumerate registered usernames.
	ErrInvalidCredentials = apperrors.Wrap(apperrors.ErrUnauthorized, "invalid credentials")

	// ErrInvalidToken indicates a malformed, tampered or expired bearer token,
	// or a structurally valid token whose subject no longer exists.
	ErrInvalidToken = apperrors.Wrap(apperrors.ErrUnauthorized, "invalid token")
)
