package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/imagevault/internal/auth/domain"
	userDomain "github.com/allisson/imagevault/internal/user/domain"
)

func TestMapUserToResponse(t *testing.T) {
	now := time.Now()
	user := &userDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     "jacob",
		Email:        "jacob@example.com",
		PasswordHash: "must-not-leak",
		Capabilities: []string{"read", "write"},
		CreatedAt:    now,
	}

	response := MapUserToResponse(user)
	assert.Equal(t, user.ID.String(), response.ID)
	assert.Equal(t, "jacob", response.Username)
	assert.Equal(t, "jacob@example.com", response.Email)
	assert.Equal(t, []string{"read", "write"}, response.Capabilities)
	assert.Equal(t, now, response.CreatedAt)

	// The serialized form must never carry the password hash.
	payload, err := json.Marshal(response)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "must-not-leak")
}

func TestMapUserToResponse_NilCapabilities(t *testing.T) {
	user := &userDomain.User{ID: uuid.Must(uuid.NewV7()), Username: "jacob"}

	response := MapUserToResponse(user)
	assert.NotNil(t, response.Capabilities)
	assert.Empty(t, response.Capabilities)
}

func TestMapAuthResultToResponse(t *testing.T) {
	user := &userDomain.User{ID: uuid.Must(uuid.NewV7()), Username: "jacob"}
	result := &authDomain.AuthResult{User: user, Token: "fresh-token"}

	response := MapAuthResultToResponse(result)
	assert.Equal(t, "fresh-token", response.Token)
	assert.Equal(t, "jacob", response.User.Username)
}
