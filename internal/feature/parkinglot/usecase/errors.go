package usecase

import "errors"

// Sentinel errors for parking lot and spot operations. Handlers map these
// to HTTP statuses; no mapping happens below the transport layer.
var (
	// ErrNotSuperuser is returned when a non-superuser attempts to create a
	// parking lot. This is the single authorization check for lot creation;
	// the repositories assume their caller has already been authorized.
	ErrNotSuperuser = errors.New("only admin users can create parking lots")

	// ErrLotNotFound indicates that no parking lot exists with the given ID.
	ErrLotNotFound = errors.New("parking lot not found")

	// ErrSpotNotFound indicates that no spot exists with the given ID.
	ErrSpotNotFound = errors.New("spot not found")

	// ErrInvalidSpotType is returned for a spot type outside BIKE, CAR, OTHERS.
	ErrInvalidSpotType = errors.New("invalid spot type")

	// ErrInvalidPrice is returned when a price does not fit decimal(8,2)
	// or is negative.
	ErrInvalidPrice = errors.New("price must be a non-negative amount with at most 2 decimal places and 8 digits")
)
