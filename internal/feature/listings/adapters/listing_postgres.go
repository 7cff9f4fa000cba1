// Package adapters provides repository implementations for the listings feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"classifieds_backend/internal/feature/listings/domain/entity"
	"classifieds_backend/internal/feature/listings/usecase"
)

// listingPostgres is a Postgres implementation of the ListingRepository
// interface. Database operations go through GORM.
type listingPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure listingPostgres implements ListingRepository.
var _ usecase.ListingRepository = (*listingPostgres)(nil)

// NewListingPostgres creates a new instance of listingPostgres with the given
// gorm.DB connection.
func NewListingPostgres(db *gorm.DB) *listingPostgres {
	return &listingPostgres{db: db}
}

// Create inserts a listing row and fills in the generated ID.
func (r *listingPostgres) Create(ctx context.Context, listing *entity.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

// ListByCategory retrieves all listings filed under the given category,
// newest first.
func (r *listingPostgres) ListByCategory(ctx context.Context, category string) ([]entity.Listing, error) {
	var listings []entity.Listing
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id DESC").
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// ListByOwner retrieves all listings owned by the given user, newest first.
func (r *listingPostgres) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Listing, error) {
	var listings []entity.Listing
	if err := r.db.WithContext(ctx).
		Where("users_id = ?", ownerID).
		Order("id DESC").
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// updateColumn updates a single column of the owner's listing together with
// date_updated. The users_id condition scopes every update to the owner.
func (r *listingPostgres) updateColumn(ctx context.Context, id, ownerID uint, column, value, updatedAt string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Listing{}).
		Where("id = ? AND users_id = ?", id, ownerID).
		Updates(map[string]any{column: value, "date_updated": updatedAt})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrListingNotFound
	}
	return nil
}

// UpdateCategory moves the owner's listing to another category.
func (r *listingPostgres) UpdateCategory(ctx context.Context, id, ownerID uint, value, updatedAt string) error {
	return r.updateColumn(ctx, id, ownerID, "category", value, updatedAt)
}

// UpdateType replaces the type label of the owner's listing.
func (r *listingPostgres) UpdateType(ctx context.Context, id, ownerID uint, value, updatedAt string) error {
	return r.updateColumn(ctx, id, ownerID, "category_type", value, updatedAt)
}

// UpdateDescription replaces the description of the owner's listing.
func (r *listingPostgres) UpdateDescription(ctx context.Context, id, ownerID uint, value, updatedAt string) error {
	return r.updateColumn(ctx, id, ownerID, "category_description", value, updatedAt)
}

// DeleteByID removes the owner's listing row.
func (r *listingPostgres) DeleteByID(ctx context.Context, id, ownerID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND users_id = ?", id, ownerID).
		Delete(&entity.Listing{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrListingNotFound
	}
	return nil
}
