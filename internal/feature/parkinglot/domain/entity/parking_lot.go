// Package entity defines the domain entities for the parkinglot feature.
package entity

import "time"

// ParkingLot represents a parking facility in the system.
// Each lot is owned by the superuser who created it; ownership is never
// exposed in the public representation.
type ParkingLot struct {
	// ID is the unique identifier for the parking lot.
	ID uint `gorm:"primaryKey"`

	// Name is the display name of the facility.
	Name string `gorm:"size:250;not null"`

	// Address is the street address of the facility.
	Address string `gorm:"size:250;not null"`

	// UserID references the user that created the lot. Deleting that user
	// deletes the lot and its spots.
	UserID uint `gorm:"not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
