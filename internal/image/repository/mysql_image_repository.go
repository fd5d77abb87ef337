package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/imagevault/internal/database"
	apperrors "github.com/allisson/imagevault/internal/errors"
	"github.com/allisson/imagevault/internal/image/domain"
)

// MySQLImageRepository handles image persistence for MySQL.
// Uses CHAR(36) for UUID columns.
type MySQLImageRepository struct {
	db *sql.DB
}

// NewMySQLImageRepository creates a new MySQLImageRepository.
func NewMySQLImageRepository(db *sql.DB) *MySQLImageRepository {
	return &MySQLImageRepository{db: db}
}

// Create inserts a new image record.
func (r *MySQLImageRepository) Create(ctx context.Context, image *domain.Image) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO images (id, title, user_id, description, url, created_at)
			  VALUES (?, ?, ?, NULLIF(?, ''), ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		image.ID.String(), image.Title, image.UserID.String(), image.Description, image.URL, image.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create image")
	}
	return nil
}

// GetByID retrieves an image record by ID.
func (r *MySQLImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, user_id, COALESCE(description, ''), url, created_at
			  FROM images WHERE id = ?`

	var image domain.Image
	var rawID, rawUserID string
	err := querier.QueryRowContext(ctx, query, id.String()).Scan(
		&rawID,
		&image.Title,
		&rawUserID,
		&image.Description,
		&image.URL,
		&image.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrImageNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get image by id")
	}

	if image.ID, err = uuid.Parse(rawID); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse image id")
	}
	if image.UserID, err = uuid.Parse(rawUserID); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse image user id")
	}
	return &image, nil
}

// List retrieves image records ordered by creation time, newest first.
func (r *MySQLImageRepository) List(ctx context.Context, offset, limit int) ([]*domain.Image, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, user_id, COALESCE(description, ''), url, created_at
			  FROM images ORDER BY created_at DESC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list images")
	}
	defer func() { _ = rows.Close() }()

	images := []*domain.Image{}
	for rows.Next() {
		var image domain.Image
		var rawID, rawUserID string
		err := rows.Scan(
			&rawID,
			&image.Title,
			&rawUserID,
			&image.Description,
			&image.URL,
			&image.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan image")
		}

		if image.ID, err = uuid.Parse(rawID); err != nil {
			return nil, apperrors.Wrap(err, "failed to parse image id")
		}
		if image.UserID, err = uuid.Parse(rawUserID); err != nil {
			return nil, apperrors.Wrap(err, "failed to parse image user id")
		}
		images = append(images, &image)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate images")
	}
	return images, nil
}
