package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/imagevault/internal/auth/domain"
	"github.com/allisson/imagevault/internal/metrics"
	userUseCase "github.com/allisson/imagevault/internal/user/usecase"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Authenticate records metrics for authentication attempts. Only the outcome
// is labeled; credential content never reaches the metrics pipeline.
func (a *authUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	authorization string,
) (*authDomain.AuthResult, error) {
	start := time.Now()
	result, err := a.next.Authenticate(ctx, authorization)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "authenticate", status)
	a.metrics.RecordDuration(ctx, "auth", "authenticate", time.Since(start), status)

	return result, err
}

// SignUp records metrics for signup operations.
func (a *authUseCaseWithMetrics) SignUp(
	ctx context.Context,
	input userUseCase.RegisterUserInput,
) (*authDomain.AuthResult, error) {
	start := time.Now()
	result, err := a.next.SignUp(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "signup", status)
	a.metrics.RecordDuration(ctx, "auth", "signup", time.Since(start), status)

	return result, err
}
