package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/imagevault/internal/auth/domain"
	userDomain "github.com/allisson/imagevault/internal/user/domain"
)

const testSecret = "test-signing-secret"

func testUser() *userDomain.User {
	return &userDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     "jacob",
		Capabilities: []string{"read", "update"},
	}
}

func TestTokenService_MintAndVerify(t *testing.T) {
	svc := NewTokenService(testSecret, 0)
	user := testUser()

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := svc.Mint(user)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.SubjectID)
		assert.Equal(t, []string{"read", "update"}, claims.Capabilities)
	})

	t.Run("NilCapabilitiesMintAsEmpty", func(t *testing.T) {
		bare := &userDomain.User{ID: uuid.Must(uuid.NewV7())}

		token, err := svc.Mint(bare)
		require.NoError(t, err)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.NotNil(t, claims.Capabilities)
		assert.Empty(t, claims.Capabilities)
	})

	t.Run("CapabilitiesAreSnapshotted", func(t *testing.T) {
		snapshotted := testUser()
		token, err := svc.Mint(snapshotted)
		require.NoError(t, err)

		// Capability changes after minting must not propagate to issued tokens.
		snapshotted.Capabilities = append(snapshotted.Capabilities, "delete")

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, []string{"read", "update"}, claims.Capabilities)
	})

	t.Run("TamperedTokenRejected", func(t *testing.T) {
		token, err := svc.Mint(user)
		require.NoError(t, err)

		// Flip one byte in the payload segment.
		tampered := []byte(token)
		pos := strings.Index(token, ".") + 1
		if tampered[pos] == 'A' {
			tampered[pos] = 'B'
		} else {
			tampered[pos] = 'A'
		}

		claims, err := svc.Verify(string(tampered))
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("WrongSecretRejected", func(t *testing.T) {
		token, err := svc.Mint(user)
		require.NoError(t, err)

		other := NewTokenService("another-secret", 0)
		claims, err := other.Verify(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("MalformedTokenRejected", func(t *testing.T) {
		for _, token := range []string{"", "garbage", "a.b.c"} {
			claims, err := svc.Verify(token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
		}
	})

	t.Run("UnsignedAlgorithmRejected", func(t *testing.T) {
		// alg=none token with a valid-looking payload.
		noneToken := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." +
			"eyJzdWIiOiIwMTkyMDAwMC0wMDAwLTcwMDAtODAwMC0wMDAwMDAwMDAwMDAifQ."

		claims, err := svc.Verify(noneToken)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})
}

func TestTokenService_Expiration(t *testing.T) {
	user := testUser()

	t.Run("UnexpiredTokenVerifies", func(t *testing.T) {
		svc := NewTokenService(testSecret, time.Hour)

		token, err := svc.Mint(user)
		require.NoError(t, err)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.SubjectID)
	})

	t.Run("ExpiredTokenRejected", func(t *testing.T) {
		svc := NewTokenService(testSecret, -time.Minute)

		token, err := svc.Mint(user)
		require.NoError(t, err)

		claims, err := svc.Verify(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
	})

	t.Run("ZeroExpirationNeverExpires", func(t *testing.T) {
		svc := NewTokenService(testSecret, 0)

		token, err := svc.Mint(user)
		require.NoError(t, err)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.SubjectID)
	})
}
