// Package usecase implements the image business logic.
package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/allisson/imagevault/internal/database"
	"github.com/allisson/imagevault/internal/image/domain"
	appValidation "github.com/allisson/imagevault/internal/validation"
)

// CreateImageInput contains the input data for creating an image record.
// The owning user is taken from the authenticated request, never from the
// input payload.
type CreateImageInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// UseCase defines the interface for image business logic operations.
type UseCase interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateImageInput) (*domain.Image, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Image, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Image, error)
}

// ImageRepository defines image repository operations.
type ImageRepository interface {
	Create(ctx context.Context, image *domain.Image) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Image, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Image, error)
}

// ImageUseCase handles image-related business logic.
type ImageUseCase struct {
	txManager database.TxManager
	imageRepo ImageRepository
}

// NewImageUseCase creates a new ImageUseCase.
func NewImageUseCase(txManager database.TxManager, imageRepo ImageRepository) *ImageUseCase {
	return &ImageUseCase{
		txManager: txManager,
		imageRepo: imageRepo,
	}
}

// validateCreateImageInput validates the creation input.
// Description is optional; title and url are required.
func (uc *ImageUseCase) validateCreateImageInput(input CreateImageInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&input.Description,
			validation.Length(0, 1000).Error("description must be at most 1000 characters"),
		),
		validation.Field(&input.URL,
			validation.Required.Error("url is required"),
			appValidation.URL,
			validation.Length(1, 2000).Error("url must be between 1 and 2000 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Create stores a new image record owned by the given user.
func (uc *ImageUseCase) Create(
	ctx context.Context,
	userID uuid.UUID,
	input CreateImageInput,
) (*domain.Image, error) {
	if err := uc.validateCreateImageInput(input); err != nil {
		return nil, err
	}

	image := &domain.Image{
		ID:          uuid.Must(uuid.NewV7()),
		Title:       strings.TrimSpace(input.Title),
		UserID:      userID,
		Description: strings.TrimSpace(input.Description),
		URL:         strings.TrimSpace(input.URL),
		CreatedAt:   time.Now().UTC(),
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.imageRepo.Create(ctx, image)
	})
	if err != nil {
		return nil, err
	}

	return image, nil
}

// GetByID retrieves an image record by ID.
func (uc *ImageUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	return uc.imageRepo.GetByID(ctx, id)
}

// List retrieves image records with pagination.
func (uc *ImageUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Image, error) {
	return uc.imageRepo.List(ctx, offset, limit)
}
