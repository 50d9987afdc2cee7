package usecase

import "errors"

// Sentinel errors for user operations. Handlers and CLI commands map these
// to their transport-level representation.
var (
	// ErrEmailRequired is returned when signup is attempted without an email address.
	ErrEmailRequired = errors.New("user must have an email address")

	// ErrEmailAlreadyExists indicates that a user with the given email already exists.
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// ErrUserNotFound indicates that no user was found with the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that the provided credentials are incorrect.
	// It is also returned for inactive accounts so the two cases are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
