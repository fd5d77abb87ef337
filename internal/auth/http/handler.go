package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/imagevault/internal/auth/http/dto"
	authUseCase "github.com/allisson/imagevault/internal/auth/usecase"
	"github.com/allisson/imagevault/internal/httputil"
	userUseCase "github.com/allisson/imagevault/internal/user/usecase"
	customValidation "github.com/allisson/imagevault/internal/validation"
)

// AuthHandler handles signup and signin requests.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(authUseCase authUseCase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// SignUpHandler creates a new user account and returns its first token.
// POST /signup - Returns 201 Created with {token, user}; the token is also
// set on the Token header and the auth cookie.
func (h *AuthHandler) SignUpHandler(c *gin.Context) {
	var req dto.SignUpRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := userUseCase.RegisterUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}

	result, err := h.authUseCase.SignUp(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	setRefreshedToken(c, result.Token)
	c.JSON(http.StatusCreated, dto.MapAuthResultToResponse(result))
}

// SignInHandler authenticates Basic credentials from the Authorization
// header and returns a fresh token.
// POST /signin - Returns 200 OK with {token, user}; the token is also set
// on the Token header and the auth cookie.
func (h *AuthHandler) SignInHandler(c *gin.Context) {
	result, err := h.authUseCase.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	setRefreshedToken(c, result.Token)
	c.JSON(http.StatusOK, dto.MapAuthResultToResponse(result))
}
