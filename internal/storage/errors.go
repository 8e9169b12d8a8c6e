package storage

import "errors"

// Sentinel errors the service layer maps onto the API error taxonomy.
var (
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned when a lookup or a foreign reference does
	// not match any user.
	ErrUserNotFound = errors.New("user not found")
)
