package dto

import (
	"time"

	"github.com/allisson/imagevault/internal/image/domain"
)

// ImageResponse represents an image record in API responses.
type ImageResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}

// MapImageToResponse converts a domain image to an API response.
func MapImageToResponse(image *domain.Image) ImageResponse {
	return ImageResponse{
		ID:          image.ID.String(),
		Title:       image.Title,
		UserID:      image.UserID.String(),
		Description: image.Description,
		URL:         image.URL,
		CreatedAt:   image.CreatedAt,
	}
}

// ListImagesResponse represents a paginated list of image records.
type ListImagesResponse struct {
	Data []ImageResponse `json:"data"`
}

// MapImagesToListResponse converts a slice of domain images to a list API response.
func MapImagesToListResponse(images []*domain.Image) ListImagesResponse {
	imageResponses := make([]ImageResponse, 0, len(images))
	for _, image := range images {
		imageResponses = append(imageResponses, MapImageToResponse(image))
	}
	return ListImagesResponse{
		Data: imageResponses,
	}
}
