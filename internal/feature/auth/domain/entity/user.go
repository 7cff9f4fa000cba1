// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account on the classifieds site.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the address the user registers and logs in with.
	// It must be unique across all users; comparison is case-sensitive,
	// exactly as stored.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user registered.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user row was last updated.
	UpdatedAt time.Time
}
