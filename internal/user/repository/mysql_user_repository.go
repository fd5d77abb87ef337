package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/allisson/imagevault/internal/database"
	apperrors "github.com/allisson/imagevault/internal/errors"
	"github.com/allisson/imagevault/internal/user/domain"
)

// mysqlDuplicateEntry is the MySQL error number for duplicate key violations.
const mysqlDuplicateEntry = 1062

// MySQLUserRepository handles user persistence for MySQL.
// Uses CHAR(36) for UUID columns and a JSON column for capabilities.
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

// Create inserts a new user. Uniqueness violations are mapped to
// domain.ErrUsernameTaken or domain.ErrEmailTaken based on the violated index.
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	capabilities, err := json.Marshal(user.Capabilities)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode capabilities")
	}

	query := `INSERT INTO users (id, username, email, password_hash, capabilities, created_at, updated_at)
			  VALUES (?, ?, NULLIF(?, ''), ?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query,
		user.ID.String(), user.Username, user.Email, user.PasswordHash, capabilities,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			if strings.Contains(mysqlErr.Message, "email") {
				return domain.ErrEmailTaken
			}
			return domain.ErrUsernameTaken
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by ID.
func (r *MySQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, COALESCE(email, ''), password_hash, capabilities, created_at, updated_at
			  FROM users WHERE id = ?`

	return r.scanUser(querier.QueryRowContext(ctx, query, id.String()), "failed to get user by id")
}

// GetByUsername retrieves a user by username.
func (r *MySQLUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, COALESCE(email, ''), password_hash, capabilities, created_at, updated_at
			  FROM users WHERE username = ?`

	return r.scanUser(querier.QueryRowContext(ctx, query, username), "failed to get user by username")
}

// scanUser reads a single user row. The id column is CHAR(36), parsed into a UUID.
func (r *MySQLUserRepository) scanUser(row *sql.Row, wrapMsg string) (*domain.User, error) {
	var user domain.User
	var id string
	var capabilities []byte

	err := row.Scan(
		&id,
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

	user.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to parse user id")
	}

	if err := json.Unmarshal(capabilities, &user.Capabilities); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode capabilities")
	}

	return &user, nil
}
