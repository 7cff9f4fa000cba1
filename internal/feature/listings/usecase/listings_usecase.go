package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"classifieds_backend/internal/feature/listings/domain/entity"
	"classifieds_backend/internal/shared/localtime"
)

const (
	// maxTypeLen is the cap on the type label, in characters.
	maxTypeLen = 50
	// maxDescriptionLen is the cap on the description, in characters.
	maxDescriptionLen = 500
)

// ListingRepository abstracts the persistence layer for listing entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ListingRepository interface {
	// Create persists a new listing and fills in its generated ID.
	Create(ctx context.Context, listing *entity.Listing) error

	// ListByCategory retrieves all listings filed under the given category.
	ListByCategory(ctx context.Context, category string) ([]entity.Listing, error)

	// ListByOwner retrieves all listings owned by the given user,
	// newest first (ID descending).
	ListByOwner(ctx context.Context, ownerID uint) ([]entity.Listing, error)

	// UpdateCategory moves the owner's listing to another category and
	// refreshes date_updated. Returns ErrListingNotFound when the owner has
	// no listing with that ID.
	UpdateCategory(ctx context.Context, id, ownerID uint, value, updatedAt string) error

	// UpdateType replaces the type label of the owner's listing and refreshes
	// date_updated. Returns ErrListingNotFound when the owner has no listing
	// with that ID.
	UpdateType(ctx context.Context, id, ownerID uint, value, updatedAt string) error

	// UpdateDescription replaces the description of the owner's listing and
	// refreshes date_updated. Returns ErrListingNotFound when the owner has
	// no listing with that ID.
	UpdateDescription(ctx context.Context, id, ownerID uint, value, updatedAt string) error

	// DeleteByID removes the owner's listing row. Returns ErrListingNotFound
	// when the owner has no listing with that ID.
	DeleteByID(ctx context.Context, id, ownerID uint) error
}

// ImageStore abstracts the per-user image file storage.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/storage).
type ImageStore interface {
	// Save writes the image into the owner's directory, creating the
	// directory on first use, and returns the stored filename.
	Save(ownerID uint, originalName string, r io.Reader) (string, error)

	// Remove deletes the named image from the owner's directory.
	Remove(ownerID uint, filename string) error
}

// DeleteOutcome tags the result of the two-phase listing delete, so callers
// can tell a full delete from the fail-open paths apart.
type DeleteOutcome int

const (
	// DeleteDone means both the image file and the row are gone.
	DeleteDone DeleteOutcome = iota
	// DeleteFileKeptRowKept means the image could not be removed, so the row
	// was left intact as well.
	DeleteFileKeptRowKept
	// DeleteFileGoneRowKept means the image was removed but the row delete
	// failed afterwards.
	DeleteFileGoneRowKept
)

// listingsUsecase implements the listing lifecycle business logic.
type listingsUsecase struct {
	listings ListingRepository
	images   ImageStore

	// now produces the display timestamp written to date_added/date_updated.
	now func() string
}

// NewListingsUsecase creates a new instance of listingsUsecase.
func NewListingsUsecase(listings ListingRepository, images ImageStore) *listingsUsecase {
	return &listingsUsecase{
		listings: listings,
		images:   images,
		now:      localtime.DisplayNow,
	}
}

// Create stores the listing image under the owner's directory and then
// inserts the listing row referencing the stored filename.
//
// The file write and the row insert are not covered by one transaction: a
// crash between the two leaves an orphaned file on disk, never a row pointing
// at a missing file. That ordering is deliberate and matches how the site has
// always behaved.
func (u *listingsUsecase) Create(ctx context.Context, ownerID uint, category, ctype, description, imageName string, image io.Reader) (uint, error) {
	if ctype == "" || description == "" {
		return 0, ErrMissingFields
	}
	if !entity.ValidCategory(category) {
		return 0, ErrInvalidCategory
	}
	if utf8.RuneCountInString(ctype) > maxTypeLen {
		return 0, ErrTypeTooLong
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return 0, ErrDescriptionTooLong
	}

	stored, err := u.images.Save(ownerID, imageName, image)
	if err != nil {
		return 0, fmt.Errorf("failed to store image: %w", err)
	}

	listing := &entity.Listing{
		Category:            category,
		CategoryType:        ctype,
		CategoryDescription: description,
		UserID:              ownerID,
		ImageUploaded:       stored,
		DateAdded:           u.now(),
	}
	if err := u.listings.Create(ctx, listing); err != nil {
		return 0, fmt.Errorf("failed to insert listing: %w", err)
	}
	return listing.ID, nil
}

// ListByCategory returns the listings filed under the given category.
// This is the public browse path and needs no authentication.
func (u *listingsUsecase) ListByCategory(ctx context.Context, category string) ([]entity.Listing, error) {
	if !entity.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	return u.listings.ListByCategory(ctx, category)
}

// ListByOwner returns the user's own listings, newest first.
func (u *listingsUsecase) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Listing, error) {
	return u.listings.ListByOwner(ctx, ownerID)
}

// UpdateCategory moves the owner's listing to another category.
func (u *listingsUsecase) UpdateCategory(ctx context.Context, id, ownerID uint, value string) error {
	if !entity.ValidCategory(value) {
		return ErrInvalidCategory
	}
	return u.listings.UpdateCategory(ctx, id, ownerID, value, u.now())
}

// UpdateType replaces the type label of the owner's listing. Values longer
// than 50 characters are rejected outright, never truncated. The cap counts
// characters, not bytes; a 50-rune multibyte label is within it.
func (u *listingsUsecase) UpdateType(ctx context.Context, id, ownerID uint, value string) error {
	if utf8.RuneCountInString(value) > maxTypeLen {
		return ErrTypeTooLong
	}
	return u.listings.UpdateType(ctx, id, ownerID, value, u.now())
}

// UpdateDescription replaces the description of the owner's listing. Values
// longer than 500 characters are rejected outright, never truncated.
func (u *listingsUsecase) UpdateDescription(ctx context.Context, id, ownerID uint, value string) error {
	if utf8.RuneCountInString(value) > maxDescriptionLen {
		return ErrDescriptionTooLong
	}
	return u.listings.UpdateDescription(ctx, id, ownerID, value, u.now())
}

// Delete removes a listing in two phases: the backing image first, the row
// second. If the image cannot be removed the row is kept and the outcome is
// DeleteFileKeptRowKept with a nil error, so the caller sees a no-op rather
// than a failure. Fail-open on the file phase is long-standing behavior;
// rows must never point at a file that was only half deleted.
func (u *listingsUsecase) Delete(ctx context.Context, id, ownerID uint, imageFilename string) (DeleteOutcome, error) {
	if err := u.images.Remove(ownerID, imageFilename); err != nil {
		slog.Warn("listing image removal failed, keeping row",
			"listing_id", id, "owner_id", ownerID, "image", imageFilename, "error", err)
		return DeleteFileKeptRowKept, nil
	}
	if err := u.listings.DeleteByID(ctx, id, ownerID); err != nil {
		return DeleteFileGoneRowKept, fmt.Errorf("failed to delete listing row: %w", err)
	}
	return DeleteDone, nil
}
