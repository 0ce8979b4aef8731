package repository

import "errors"

var (
	// ErrNotFound means no document matched the identifier or filter.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey means the store rejected a write that would violate
	// a uniqueness index, such as services.name.
	ErrDuplicateKey = errors.New("duplicate key")
)
