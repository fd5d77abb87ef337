// Package http provides HTTP handlers for image record operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/imagevault/internal/auth/http"
	apperrors "github.com/allisson/imagevault/internal/errors"
	"github.com/allisson/imagevault/internal/httputil"
	"github.com/allisson/imagevault/internal/image/http/dto"
	imageUseCase "github.com/allisson/imagevault/internal/image/usecase"
	customValidation "github.com/allisson/imagevault/internal/validation"
)

// ImageHandler handles HTTP requests for image record operations.
// All routes require an authenticated user in the request context.
type ImageHandler struct {
	imageUseCase imageUseCase.UseCase
	logger       *slog.Logger
}

// NewImageHandler creates a new image handler with required dependencies.
func NewImageHandler(imageUseCase imageUseCase.UseCase, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{
		imageUseCase: imageUseCase,
		logger:       logger,
	}
}

// CreateHandler stores a new image record owned by the authenticated user.
// POST /images - Returns 201 Created with the stored record.
func (h *ImageHandler) CreateHandler(c *gin.Context) {
	user, ok := authHTTP.GetUser(c.Request.Context())
	if !ok || user == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateImageRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := imageUseCase.CreateImageInput{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
	}

	image, err := h.imageUseCase.Create(c.Request.Context(), user.ID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapImageToResponse(image))
}

// GetHandler retrieves an image record by ID.
// GET /images/:id - Returns 200 OK, or 404 when absent.
func (h *ImageHandler) GetHandler(c *gin.Context) {
	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid image ID format: must be a valid UUID"),
			h.logger)
		return
	}

	image, err := h.imageUseCase.GetByID(c.Request.Context(), imageID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapImageToResponse(image))
}

// ListHandler retrieves image records with pagination support.
// GET /images?offset=0&limit=50 - Returns 200 OK with the record list.
func (h *ImageHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	images, err := h.imageUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapImagesToListResponse(images))
}
