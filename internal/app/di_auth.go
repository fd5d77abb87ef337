package app

import (
	"fmt"

	authService "github.com/allisson/imagevault/internal/auth/service"
	authUsecase "github.com/allisson/imagevault/internal/auth/usecase"
)

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() (authService.PasswordService, error) {
	c.passwordServiceInit.Do(func() {
		service, err := authService.NewPasswordService(c.config.PasswordHashPolicy)
		if err != nil {
			c.initErrors["passwordService"] = fmt.Errorf("failed to create password service: %w", err)
			return
		}
		c.passwordService = service
	})
	if storedErr, exists := c.initErrors["passwordService"]; exists {
		return nil, storedErr
	}
	return c.passwordService, nil
}

// TokenService returns the token signing and verification service.
func (c *Container) TokenService() (authService.TokenService, error) {
	c.tokenServiceInit.Do(func() {
		c.tokenService = authService.NewTokenService(
			c.config.AuthSecret,
			c.config.AuthTokenExpiration,
		)
	})
	return c.tokenService, nil
}

// AuthUseCase returns the authentication gate, decorated with metrics when enabled.
func (c *Container) AuthUseCase() (authUsecase.AuthUseCase, error) {
	c.authUseCaseInit.Do(func() {
		useCase, err := c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
			return
		}
		c.authUseCase = useCase
	})
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

func (c *Container) initAuthUseCase() (authUsecase.AuthUseCase, error) {
	userUC, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for auth use case: %w", err)
	}

	passwordService, err := c.PasswordService()
	if err != nil {
		return nil, fmt.Errorf("failed to get password service for auth use case: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for auth use case: %w", err)
	}

	useCase := authUsecase.NewAuthUseCase(userUC, passwordService, tokenService)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
	}

	return authUsecase.NewAuthUseCaseWithMetrics(useCase, businessMetrics), nil
}
