// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// Email is the identity key; parking lots and spots reference their
// creating user by ID.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Name is the user's display name.
	Name string `gorm:"size:255"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext.
	Password string `gorm:"size:255;not null"`

	// IsActive marks whether the account may log in.
	IsActive bool `gorm:"not null;default:true"`

	// IsStaff marks staff accounts.
	IsStaff bool `gorm:"not null;default:false"`

	// IsSuperuser grants the privilege to create parking lots.
	IsSuperuser bool `gorm:"not null;default:false"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
