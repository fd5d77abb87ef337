// Package repository provides data persistence implementations for user entities.
//
// Provides PostgreSQL and MySQL implementations with transaction support via
// database.GetTx(). Username and email uniqueness is enforced by database
// constraints, not application-level checks, so concurrent creates cannot both
// succeed.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/allisson/imagevault/internal/database"
	apperrors "github.com/allisson/imagevault/internal/errors"
	"github.com/allisson/imagevault/internal/user/domain"
)

// pqUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pqUniqueViolation = "23505"

// PostgreSQLUserRepository handles user persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}

// Create inserts a new user. Uniqueness violations are mapped to
// domain.ErrUsernameTaken or domain.ErrEmailTaken based on the violated constraint.
func (r *PostgreSQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	capabilities, err := json.Marshal(user.Capabilities)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode capabilities")
	}

	query := `INSERT INTO users (id, username, email, password_hash, capabilities, created_at, updated_at)
			  VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)`

	_, err = querier.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, capabilities,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			if strings.Contains(pqErr.Constraint, "email") {
				return domain.ErrEmailTaken
			}
			return domain.ErrUsernameTaken
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by ID.
func (r *PostgreSQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, COALESCE(email, ''), password_hash, capabilities, created_at, updated_at
			  FROM users WHERE id = $1`

	return scanUser(querier.QueryRowContext(ctx, query, id), "failed to get user by id")
}

// GetByUsername retrieves a user by username.
func (r *PostgreSQLUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, COALESCE(email, ''), password_hash, capabilities, created_at, updated_at
			  FROM users WHERE username = $1`

	return scanUser(querier.QueryRowContext(ctx, query, username), "failed to get user by username")
}

// scanUser reads a single user row, decoding the capabilities JSON column.
func scanUser(row *sql.Row, wrapMsg string) (*domain.User, error) {
	var user domain.User
	var capabilities []byte

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&capabilities,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, wrapMsg)
	}

	if err := json.Unmarshal(capabilities, &user.Capabilities); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode capabilities")
	}

	return &user, nil
}
