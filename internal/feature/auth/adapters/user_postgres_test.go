package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"classifieds_backend/internal/feature/auth/domain/entity"
	"classifieds_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError matches the production gorm.Config, so unique violations
// surface as gorm.ErrDuplicatedKey on both drivers.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{}, &SessionModel{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestUserPostgres_Create(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewUserPostgres(db)

	t.Run("creates a user and fills the ID", func(t *testing.T) {
		u := &entity.User{Email: "a@x.com", Password: "hash-1"}
		require.NoError(t, repo.Create(ctx, u))
		assert.NotZero(t, u.ID)
	})

	t.Run("duplicate email is rejected by the unique index", func(t *testing.T) {
		u := &entity.User{Email: "a@x.com", Password: "hash-2"}
		err := repo.Create(ctx, u)
		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})

	t.Run("email match is case-sensitive", func(t *testing.T) {
		u := &entity.User{Email: "A@x.com", Password: "hash-3"}
		assert.NoError(t, repo.Create(ctx, u))
	})
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewUserPostgres(db)

	seeded := &entity.User{Email: "a@x.com", Password: "hash-1"}
	require.NoError(t, repo.Create(ctx, seeded))

	t.Run("finds an existing user", func(t *testing.T) {
		u, err := repo.FindByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, u.ID)
		assert.Equal(t, "hash-1", u.Password)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@x.com")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserPostgres_FindByID(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewUserPostgres(db)

	seeded := &entity.User{Email: "a@x.com", Password: "hash-1"}
	require.NoError(t, repo.Create(ctx, seeded))

	t.Run("finds an existing user", func(t *testing.T) {
		u, err := repo.FindByID(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", u.Email)
	})

	t.Run("unknown ID", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
