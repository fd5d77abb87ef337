package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/imagevault/internal/auth/domain"
	authHTTP "github.com/allisson/imagevault/internal/auth/http"
	"github.com/allisson/imagevault/internal/config"
	imageDomain "github.com/allisson/imagevault/internal/image/domain"
	imageHTTP "github.com/allisson/imagevault/internal/image/http"
	imageUseCase "github.com/allisson/imagevault/internal/image/usecase"
	userDomain "github.com/allisson/imagevault/internal/user/domain"
	userUseCase "github.com/allisson/imagevault/internal/user/usecase"
)

// mockAuthUseCase is a mock implementation of AuthUseCase for routing tests.
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

// mockImageUseCase is a mock implementation of the image use case for routing tests.
type mockImageUseCase struct {
	mock.Mock
}

func (m *mockImageUseCase) Create(
	ctx context.Context,
	userID uuid.UUID,
	input imageUseCase.CreateImageInput,
) (*imageDomain.Image, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*imageDomain.Image), args.Error(1)
}

func (m *mockImageUseCase) GetByID(ctx context.Context, id uuid.UUID) (*imageDomain.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*imageDomain.Image), args.Error(1)
}

func (m *mockImageUseCase) List(ctx context.Context, offset, limit int) ([]*imageDomain.Image, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*imageDomain.Image), args.Error(1)
}

func setupTestRouter(auth *mockAuthUseCase, images *mockImageUseCase) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Environment:             config.EnvironmentTest,
		LogLevel:                "info",
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 100,
		RateLimitBurst:          100,
	}

	return SetupRouter(RouterConfig{
		Config:       cfg,
		Logger:       logger,
		AuthUseCase:  auth,
		AuthHandler:  authHTTP.NewAuthHandler(auth, logger),
		ImageHandler: imageHTTP.NewImageHandler(images, logger),
	})
}

func TestSetupRouter_Probes(t *testing.T) {
	router := setupTestRouter(&mockAuthUseCase{}, &mockImageUseCase{})

	for _, path := range []string{"/health", "/ready"} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusOK, recorder.Code, path)
	}
}

func TestSetupRouter_ImagesRequireAuthentication(t *testing.T) {
	auth := &mockAuthUseCase{}
	auth.On("Authenticate", mock.Anything, "").
		Return(nil, authDomain.ErrMissingCredential)

	router := setupTestRouter(auth, &mockImageUseCase{})

	for _, route := range []struct{ method, path string }{
		{"GET", "/images"},
		{"GET", "/images/" + uuid.Must(uuid.NewV7()).String()},
		{"POST", "/images"},
	} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(route.method, route.path, nil))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, route.method+" "+route.path)
	}
}

func TestSetupRouter_AuthenticatedImageList(t *testing.T) {
	user := &userDomain.User{ID: uuid.Must(uuid.NewV7()), Username: "jacob"}

	auth := &mockAuthUseCase{}
	auth.On("Authenticate", mock.Anything, "Bearer held-token").
		Return(&authDomain.AuthResult{User: user, Token: "refreshed-token"}, nil).
		Once()

	images := &mockImageUseCase{}
	images.On("List", mock.Anything, 0, 50).
		Return([]*imageDomain.Image{}, nil).
		Once()

	router := setupTestRouter(auth, images)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/images", nil)
	request.Header.Set("Authorization", "Bearer held-token")
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "refreshed-token", recorder.Header().Get("Token"))

	var response map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Empty(t, response["data"])
}

func TestSetupRouter_RequestIDHeader(t *testing.T) {
	router := setupTestRouter(&mockAuthUseCase{}, &mockImageUseCase{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/health", nil))
	assert.NotEmpty(t, recorder.Header().Get("X-Request-Id"))
}

func TestMetricsServer_GetHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := NewMetricsServer("127.0.0.1", 0, logger, nil)

	recorder := httptest.NewRecorder()
	server.GetHandler().ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))

	// No provider wired means the route is absent.
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
