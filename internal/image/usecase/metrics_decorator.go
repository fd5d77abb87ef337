package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/imagevault/internal/image/domain"
	"github.com/allisson/imagevault/internal/metrics"
)

// imageUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type imageUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewImageUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewImageUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &imageUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (i *imageUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	i.metrics.RecordOperation(ctx, "image", operation, status)
	i.metrics.RecordDuration(ctx, "image", operation, time.Since(start), status)
}

func (i *imageUseCaseWithMetrics) Create(
	ctx context.Context,
	userID uuid.UUID,
	input CreateImageInput,
) (*domain.Image, error) {
	start := time.Now()
	image, err := i.next.Create(ctx, userID, input)
	i.record(ctx, "image_create", start, err)
	return image, err
}

func (i *imageUseCaseWithMetrics) GetByID(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	start := time.Now()
	image, err := i.next.GetByID(ctx, id)
	i.record(ctx, "image_get", start, err)
	return image, err
}

func (i *imageUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*domain.Image, error) {
	start := time.Now()
	images, err := i.next.List(ctx, offset, limit)
	i.record(ctx, "image_list", start, err)
	return images, err
}
