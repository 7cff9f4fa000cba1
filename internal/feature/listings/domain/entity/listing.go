// Package entity defines the domain entities for the listings feature.
package entity

// Categories are the classified-ad sections of the site. Every listing
// belongs to exactly one of them and each has its own browse page.
var Categories = []string{"housing", "jobs", "services", "forSale", "other"}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Listing represents a classified ad uploaded by a user.
//
// DateAdded and DateUpdated hold display-formatted timestamps produced by the
// localtime package, not machine timestamps. The table keeps the column names
// of the original deployment.
type Listing struct {
	// ID is the unique identifier for the listing.
	ID uint `gorm:"primaryKey"`

	// Category is the section the listing is filed under
	// (housing/jobs/services/forSale/other).
	Category string `gorm:"size:50;not null;index"`

	// CategoryType is a short label for the listing, at most 50 characters.
	CategoryType string `gorm:"column:category_type;size:50;not null"`

	// CategoryDescription is the listing body, at most 500 characters.
	CategoryDescription string `gorm:"column:category_description;size:500;not null"`

	// UserID is the owning user. Every listing must reference an existing user.
	UserID uint `gorm:"column:users_id;not null;index"`

	// ImageUploaded is the image filename, relative to the owner's upload
	// directory.
	ImageUploaded string `gorm:"column:image_uploaded;size:255;not null"`

	// DateAdded is the display timestamp recorded at creation.
	DateAdded string `gorm:"column:date_added;size:64;not null"`

	// DateUpdated is the display timestamp of the last field update,
	// nil until the listing is first updated.
	DateUpdated *string `gorm:"column:date_updated;size:64"`
}

// TableName returns the table name for GORM.
func (Listing) TableName() string {
	return "user_uploads"
}
