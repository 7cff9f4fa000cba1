// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrMissingCredentials is returned when the registration form is submitted
	// without an email address or a password.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrPasswordMismatch is returned when the password and its confirmation
	// do not match during registration.
	ErrPasswordMismatch = errors.New("password confirmation does not match")

	// ErrEmailAlreadyExists is returned when attempting to register an email that
	// already has an account.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword is returned when the submitted password does not verify
	// against the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrSessionNotFound is returned when a session cannot be found by ID,
	// including sessions that have already expired.
	ErrSessionNotFound = errors.New("session not found")
)
