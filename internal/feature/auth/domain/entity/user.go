// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and the password-reset state.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Nickname is the user's optional display name.
	Nickname string `gorm:"size:64"`

	// ResetToken is the outstanding password-reset token, if any.
	// It is set on a reset request and cleared once consumed.
	ResetToken *string `gorm:"size:64;index"`

	// ResetTokenExpiry is the expiry timestamp of ResetToken.
	ResetTokenExpiry *time.Time

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
