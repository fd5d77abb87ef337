package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/imagevault/internal/auth/domain"
	apperrors "github.com/allisson/imagevault/internal/errors"
	userDomain "github.com/allisson/imagevault/internal/user/domain"
)

// tokenClaims is the JWT claim set carried by issued tokens. Capabilities are
// snapshotted at mint time under the "cap" claim.
type tokenClaims struct {
	Capabilities []string `json:"cap"`
	jwt.RegisteredClaims
}

// tokenService implements TokenService using HS256 signed JWTs.
// The signing secret is injected at construction; the service reads no
// ambient environment state, which keeps it testable with injected secrets.
type tokenService struct {
	secret     []byte
	expiration time.Duration
}

// Mint signs a new token for the user. Claims: "sub" is the user ID, "cap" is
// the capability snapshot, "iat" the mint time. "exp" is set only when an
// expiration was configured; by default tokens do not expire.
func (t *tokenService) Mint(user *userDomain.User) (string, error) {
	now := time.Now().UTC()

	capabilities := user.Capabilities
	if capabilities == nil {
		capabilities = []string{}
	}

	claims := tokenClaims{
		Capabilities: capabilities,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.ID.String(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if t.expiration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(t.expiration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// Verify validates the token signature and expiry and returns the embedded
// claims. Verification is a pure function of the token string, the configured
// secret and the current time; every failure mode collapses into ErrInvalidToken.
func (t *tokenService) Verify(token string) (*authDomain.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(token *jwt.Token) (any, error) {
		// Only HMAC signed tokens are accepted
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, authDomain.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok {
		return nil, authDomain.ErrInvalidToken
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, authDomain.ErrInvalidToken
	}

	return &authDomain.TokenClaims{
		SubjectID:    subjectID,
		Capabilities: claims.Capabilities,
	}, nil
}

// NewTokenService creates a TokenService signing HS256 JWTs with the given
// secret. A zero expiration disables the "exp" claim.
func NewTokenService(secret string, expiration time.Duration) TokenService {
	return &tokenService{
		secret:     []byte(secret),
		expiration: expiration,
	}
}
