package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"classifieds_backend/internal/feature/listings/domain/entity"
	"classifieds_backend/internal/feature/listings/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Listing{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// seedListing inserts a listing row for the given owner and returns it.
func seedListing(t *testing.T, repo *listingPostgres, ownerID uint, category, ctype string) *entity.Listing {
	t.Helper()

	listing := &entity.Listing{
		Category:            category,
		CategoryType:        ctype,
		CategoryDescription: "description of " + ctype,
		UserID:              ownerID,
		ImageUploaded:       "1000-photo.jpg",
		DateAdded:           "8/28/2026, 6:07:09 PM",
	}
	require.NoError(t, repo.Create(context.Background(), listing))
	return listing
}

func TestListingPostgres_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewListingPostgres(setupTestDB(t))

	listing := &entity.Listing{
		Category:            "housing",
		CategoryType:        "Apartment",
		CategoryDescription: "Two rooms near the park",
		UserID:              7,
		ImageUploaded:       "1000-flat.jpg",
		DateAdded:           "8/28/2026, 6:07:09 PM",
	}
	require.NoError(t, repo.Create(ctx, listing))
	assert.NotZero(t, listing.ID)
	assert.Nil(t, listing.DateUpdated, "a fresh row has no update timestamp")
}

func TestListingPostgres_ListByCategory(t *testing.T) {
	ctx := context.Background()
	repo := NewListingPostgres(setupTestDB(t))

	first := seedListing(t, repo, 7, "housing", "Apartment")
	second := seedListing(t, repo, 8, "housing", "House")
	seedListing(t, repo, 7, "jobs", "Plumber")

	listings, err := repo.ListByCategory(ctx, "housing")
	require.NoError(t, err)
	require.Len(t, listings, 2)

	// Newest first.
	assert.Equal(t, second.ID, listings[0].ID)
	assert.Equal(t, first.ID, listings[1].ID)
}

func TestListingPostgres_ListByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewListingPostgres(setupTestDB(t))

	first := seedListing(t, repo, 7, "housing", "Apartment")
	second := seedListing(t, repo, 7, "jobs", "Plumber")
	seedListing(t, repo, 8, "housing", "House")

	listings, err := repo.ListByOwner(ctx, 7)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, second.ID, listings[0].ID)
	assert.Equal(t, first.ID, listings[1].ID)
}

func TestListingPostgres_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates the column and refreshes date_updated", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewListingPostgres(db)
		listing := seedListing(t, repo, 7, "housing", "Apartment")

		err := repo.UpdateType(ctx, listing.ID, 7, "House", "8/29/2026, 9:00:00 AM")
		require.NoError(t, err)

		var got entity.Listing
		require.NoError(t, db.First(&got, listing.ID).Error)
		assert.Equal(t, "House", got.CategoryType)
		require.NotNil(t, got.DateUpdated)
		assert.Equal(t, "8/29/2026, 9:00:00 AM", *got.DateUpdated)
	})

	t.Run("another owner's listing is out of reach", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewListingPostgres(db)
		listing := seedListing(t, repo, 7, "housing", "Apartment")

		err := repo.UpdateCategory(ctx, listing.ID, 99, "jobs", "8/29/2026, 9:00:00 AM")
		assert.ErrorIs(t, err, usecase.ErrListingNotFound)

		var got entity.Listing
		require.NoError(t, db.First(&got, listing.ID).Error)
		assert.Equal(t, "housing", got.Category, "row must be untouched")
		assert.Nil(t, got.DateUpdated)
	})

	t.Run("unknown ID", func(t *testing.T) {
		repo := NewListingPostgres(setupTestDB(t))
		err := repo.UpdateDescription(ctx, 12345, 7, "new text", "8/29/2026, 9:00:00 AM")
		assert.ErrorIs(t, err, usecase.ErrListingNotFound)
	})
}

func TestListingPostgres_DeleteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the owner's row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewListingPostgres(db)
		listing := seedListing(t, repo, 7, "housing", "Apartment")

		require.NoError(t, repo.DeleteByID(ctx, listing.ID, 7))

		var count int64
		require.NoError(t, db.Model(&entity.Listing{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("another owner's listing is out of reach", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewListingPostgres(db)
		listing := seedListing(t, repo, 7, "housing", "Apartment")

		err := repo.DeleteByID(ctx, listing.ID, 99)
		assert.ErrorIs(t, err, usecase.ErrListingNotFound)

		var count int64
		require.NoError(t, db.Model(&entity.Listing{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}
