// Package repository provides data persistence implementations for image records.
//
// Provides PostgreSQL and MySQL implementations with transaction support via
// database.GetTx().
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

// PostgreSQLImageRepository handles image persistence for PostgreSQL.
type PostgreSQLImageRepository struct {
	db *sql.DB
}

// NewPostgreSQLImageRepository creates a new PostgreSQLImageRepository.
func NewPostgreSQLImageRepository(db *sql.DB) *PostgreSQLImageRepository {
	return &PostgreSQLImageRepository{db: db}
}

// Create inserts a new image record.
func (r *PostgreSQLImageRepository) Create(ctx context.Context, image *domain.Image) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO images (id, title, user_id, description, url, created_at)
			  VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)`

	_, err := querier.ExecContext(ctx, query,
		image.ID, image.Title, image.UserID, image.Description, image.URL, image.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create image")
	}
	return nil
}

// GetByID retrieves an image record by ID.
func (r *PostgreSQLImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, user_id, COALESCE(description, ''), url, created_at
			  FROM images WHERE id = $1`

	var image domain.Image
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&image.ID,
		&image.Title,
		&image.UserID,
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
	return &image, nil
}

// List retrieves image records ordered by creation time, newest first.
func (r *PostgreSQLImageRepository) List(ctx context.Context, offset, limit int) ([]*domain.Image, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, user_id, COALESCE(description, ''), url, created_at
			  FROM images ORDER BY created_at DESC OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list images")
	}
	defer func() { _ = rows.Close() }()

	images := []*domain.Image{}
	for rows.Next() {
		var image domain.Image
		err := rows.Scan(
			&image.ID,
			&image.Title,
			&image.UserID,
			&image.Description,
			&image.URL,
			&image.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan image")
		}
		images = append(images, &image)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate images")
	}
	return images, nil
}
