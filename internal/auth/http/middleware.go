package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/allisson/imagevault/internal/auth/usecase"
	"github.com/allisson/imagevault/internal/httputil"
)

// authCookieName is the cookie carrying the refreshed token.
const authCookieName = "auth"

// setRefreshedToken exposes the token minted for this request on the
// response: the Token header plus a session-scoped auth cookie.
func setRefreshedToken(c *gin.Context, token string) {
	c.Header("Token", token)
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
}

// AuthenticationMiddleware authenticates requests via the Authorization
// header. Both Basic and Bearer schemes are accepted; scheme parsing and
// credential checks are delegated to the auth use case.
//
// On success the authenticated user and a freshly minted token are stored
// in the request context, and the token is set on the response via the
// Token header and the auth cookie. On failure the request is rejected
// with 401 without revealing which part of the credential was wrong.
func AuthenticationMiddleware(
	auth authUseCase.AuthUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := auth.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithUser(c.Request.Context(), result.User)
		ctx = WithToken(ctx, result.Token)
		c.Request = c.Request.WithContext(ctx)

		setRefreshedToken(c, result.Token)

		logger.Debug("authentication successful",
			slog.String("user_id", result.User.ID.String()),
			slog.String("username", result.User.Username))

		c.Next()
	}
}
