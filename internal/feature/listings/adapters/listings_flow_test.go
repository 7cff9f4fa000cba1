package adapters

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classifieds_backend/internal/feature/listings/usecase"
	"classifieds_backend/internal/platform/storage"
)

// TestListingLifecycle_EndToEnd exercises the full listing lifecycle with a
// real repository, a real on-disk image store and the real usecase: publish a
// listing at the type cap, reject an over-cap edit without touching the stored
// value, then delete the listing in both phases.
func TestListingLifecycle_EndToEnd(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewListingPostgres(db)
	uploadRoot := t.TempDir()
	images := storage.NewLocalStore(uploadRoot)
	uc := usecase.NewListingsUsecase(repo, images)

	atCap := strings.Repeat("x", 50)

	// Publish with a type label exactly at the cap.
	id, err := uc.Create(ctx, 7, "forSale", atCap, "A bike in good shape", "bike.jpg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	require.NotZero(t, id)

	listings, err := uc.ListByOwner(ctx, 7)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, atCap, listings[0].CategoryType)

	// The image landed in the owner's directory under the stored name.
	stored := listings[0].ImageUploaded
	_, err = os.Stat(filepath.Join(uploadRoot, "7", stored))
	require.NoError(t, err, "stored image file is missing")

	// An over-cap edit is rejected outright, never truncated.
	err = uc.UpdateType(ctx, id, 7, strings.Repeat("x", 51))
	assert.ErrorIs(t, err, usecase.ErrValueTooLong)

	listings, err = uc.ListByOwner(ctx, 7)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, atCap, listings[0].CategoryType, "stored value must be untouched")
	assert.Nil(t, listings[0].DateUpdated)

	// The listing is visible on the public category page.
	public, err := uc.ListByCategory(ctx, "forSale")
	require.NoError(t, err)
	require.Len(t, public, 1)

	// Delete removes the file and then the row.
	outcome, err := uc.Delete(ctx, id, 7, stored)
	require.NoError(t, err)
	assert.Equal(t, usecase.DeleteDone, outcome)

	_, err = os.Stat(filepath.Join(uploadRoot, "7", stored))
	assert.True(t, os.IsNotExist(err), "image file must be gone")

	listings, err = uc.ListByOwner(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, listings)
}

// TestListingLifecycle_DeleteMissingFile covers the fail-open path: when the
// backing image is already gone the delete becomes a no-op and the row stays.
func TestListingLifecycle_DeleteMissingFile(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewListingPostgres(db)
	uc := usecase.NewListingsUsecase(repo, storage.NewLocalStore(t.TempDir()))

	id, err := uc.Create(ctx, 7, "other", "Lamp", "Desk lamp, works fine", "lamp.png", strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	outcome, err := uc.Delete(ctx, id, 7, "never-existed.png")
	require.NoError(t, err, "fail-open delete must not surface an error")
	assert.Equal(t, usecase.DeleteFileKeptRowKept, outcome)

	listings, err := uc.ListByOwner(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, listings, 1, "row must survive the failed file removal")
}
