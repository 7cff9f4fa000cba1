// Package usecase implements the business logic for the listings feature.
package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFields is returned when a listing is created without a type
	// label or a description.
	ErrMissingFields = errors.New("type and description are required")

	// ErrInvalidCategory is returned when a listing names an unknown category.
	ErrInvalidCategory = errors.New("unknown category")

	// ErrValueTooLong is returned when a field value exceeds its cap
	// (50 characters for the type label, 500 for the description).
	// The stored value is left untouched; values are never truncated.
	ErrValueTooLong = errors.New("value exceeds the maximum length")

	// ErrTypeTooLong is the ErrValueTooLong case for the type label.
	ErrTypeTooLong = fmt.Errorf("type: %w", ErrValueTooLong)

	// ErrDescriptionTooLong is the ErrValueTooLong case for the description.
	ErrDescriptionTooLong = fmt.Errorf("description: %w", ErrValueTooLong)

	// ErrListingNotFound is returned when no listing matches the given ID for
	// the given owner.
	ErrListingNotFound = errors.New("listing not found")
)
