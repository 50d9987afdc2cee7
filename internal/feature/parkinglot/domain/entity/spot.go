package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpotType enumerates the kinds of parking spots.
type SpotType string

// Supported spot types. SpotTypeCar is the default.
const (
	SpotTypeBike   SpotType = "BIKE"
	SpotTypeCar    SpotType = "CAR"
	SpotTypeOthers SpotType = "OTHERS"
)

// Valid reports whether t is one of the supported spot types.
func (t SpotType) Valid() bool {
	switch t {
	case SpotTypeBike, SpotTypeCar, SpotTypeOthers:
		return true
	}
	return false
}

// Spot represents a single parking spot inside a parking lot.
// Occupancy is a plain flag with last-writer-wins semantics; there is no
// reservation or transition logic.
type Spot struct {
	// ID is the unique identifier for the spot.
	ID uint `gorm:"primaryKey"`

	// SpotType is the kind of vehicle the spot is meant for.
	SpotType SpotType `gorm:"size:50;not null;default:CAR"`

	// PricePerHour is the hourly price, stored as decimal(8,2).
	PricePerHour decimal.Decimal `gorm:"type:decimal(8,2);not null"`

	// ParkingLotID references the lot the spot belongs to. Deleting the lot
	// deletes its spots.
	ParkingLotID uint `gorm:"not null;index"`

	// Occupied marks whether the spot is currently taken.
	Occupied bool `gorm:"not null;default:false"`

	// UserID references the user associated with the spot.
	UserID uint `gorm:"not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
