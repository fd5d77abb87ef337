package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/imagevault/internal/user/domain"
)

func TestMySQLUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     "jacob",
		Email:        "jacob@example.com",
		PasswordHash: "hash",
		Capabilities: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLUserRepository(db)

		mock.ExpectExec(`INSERT INTO users`).
			WithArgs(user.ID.String(), user.Username, user.Email, user.PasswordHash, []byte(`[]`), now, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, user)
		assert.NoError(t, err)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLUserRepository(db)

		mock.ExpectExec(`INSERT INTO users`).
			WillReturnError(&mysql.MySQLError{
				Number:  1062,
				Message: "Duplicate entry 'jacob' for key 'users.username'",
			})

		err := repo.Create(ctx, user)
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLUserRepository(db)

		mock.ExpectExec(`INSERT INTO users`).
			WillReturnError(&mysql.MySQLError{
				Number:  1062,
				Message: "Duplicate entry 'jacob@example.com' for key 'users.email'",
			})

		err := repo.Create(ctx, user)
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})
}

func TestMySQLUserRepository_GetByUsername(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	now := time.Now().UTC()

	t.Run("Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLUserRepository(db)

		rows := sqlmock.NewRows(userColumns()).
			AddRow(userID.String(), "jacob", "jacob@example.com", "hash", []byte(`["admin"]`), now, now)

		mock.ExpectQuery(`SELECT .+ FROM users WHERE username`).
			WithArgs("jacob").
			WillReturnRows(rows)

		user, err := repo.GetByUsername(ctx, "jacob")
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, []string{"admin"}, user.Capabilities)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMySQLUserRepository(db)

		mock.ExpectQuery(`SELECT .+ FROM users WHERE username`).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByUsername(ctx, "ghost")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
