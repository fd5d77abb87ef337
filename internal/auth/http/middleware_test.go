package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/imagevault/internal/auth/domain"
	userDomain "github.com/allisson/imagevault/internal/user/domain"
	userUseCase "github.com/allisson/imagevault/internal/user/usecase"
)

// mockAuthUseCase is a mock implementation of AuthUseCase for testing.
type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Authenticate(ctx context.Context, authorization string) (*authDomain.AuthResult, error) {
	args := m.Called(ctx, authorization)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.AuthResult), args.Error(1)
}

func (m *mockAuthUseCase) SignUp(
	ctx context.Context,
	input userUseCase.RegisterUserInput,
) (*authDomain.AuthResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.AuthResult), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testUser() *userDomain.User {
	return &userDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     "jacob",
		Capabilities: []string{"read"},
	}
}

func TestAuthenticationMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		user := testUser()
		auth := &mockAuthUseCase{}
		auth.On("Authenticate", mock.Anything, "Bearer held-token").
			Return(&authDomain.AuthResult{User: user, Token: "refreshed-token"}, nil).
			Once()

		var gotUser *userDomain.User
		var gotToken string

		router := gin.New()
		router.Use(AuthenticationMiddleware(auth, testLogger()))
		router.GET("/images", func(c *gin.Context) {
			gotUser, _ = GetUser(c.Request.Context())
			gotToken, _ = GetToken(c.Request.Context())
			c.Status(http.StatusOK)
		})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest("GET", "/images", nil)
		request.Header.Set("Authorization", "Bearer held-token")
		router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, user, gotUser)
		assert.Equal(t, "refreshed-token", gotToken)
		assert.Equal(t, "refreshed-token", recorder.Header().Get("Token"))

		cookies := recorder.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "auth", cookies[0].Name)
		assert.Equal(t, "refreshed-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("RejectionReturns401", func(t *testing.T) {
		auth := &mockAuthUseCase{}
		auth.On("Authenticate", mock.Anything, "").
			Return(nil, authDomain.ErrMissingCredential).
			Once()

		handlerCalled := false
		router := gin.New()
		router.Use(AuthenticationMiddleware(auth, testLogger()))
		router.GET("/images", func(c *gin.Context) {
			handlerCalled = true
		})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("GET", "/images", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, handlerCalled)
		assert.Empty(t, recorder.Header().Get("Token"))
	})

	t.Run("InfrastructureErrorReturns500", func(t *testing.T) {
		auth := &mockAuthUseCase{}
		auth.On("Authenticate", mock.Anything, mock.Anything).
			Return(nil, assert.AnError).
			Once()

		router := gin.New()
		router.Use(AuthenticationMiddleware(auth, testLogger()))
		router.GET("/images", func(c *gin.Context) {})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest("GET", "/images", nil)
		request.Header.Set("Authorization", "Basic abc")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()

	user, ok := GetUser(ctx)
	assert.Nil(t, user)
	assert.False(t, ok)

	token, ok := GetToken(ctx)
	assert.Empty(t, token)
	assert.False(t, ok)

	stored := testUser()
	ctx = WithUser(ctx, stored)
	ctx = WithToken(ctx, "some-token")

	user, ok = GetUser(ctx)
	assert.True(t, ok)
	assert.Equal(t, stored, user)

	token, ok = GetToken(ctx)
	assert.True(t, ok)
	assert.Equal(t, "some-token", token)
}
