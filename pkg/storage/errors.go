package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrNotExist is returned by Load when no address book has been saved yet.
	ErrNotExist = errors.New("address book does not exist")
)
