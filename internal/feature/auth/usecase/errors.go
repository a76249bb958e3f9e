// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login fails for any reason.
	// The cause (unknown email or wrong password) is deliberately not exposed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidResetToken is returned when a password-reset token is unknown or expired.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)
