// Package domain defines the core image domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/imagevault/internal/errors"
)

// Image is a stored image record. UserID references the user that created
// the record; the URL points at the externally hosted image content.
type Image struct {
	ID          uuid.UUID
	Title       string
	UserID      uuid.UUID
	Description string // optional
	URL         string
	CreatedAt   time.Time
}

// ErrImageNotFound indicates the requested image record does not exist.
var ErrImageNotFound = apperrors.Wrap(apperrors.ErrNotFound, "image not found")
