package listing

import "errors"

var (
	// ErrListingNotFound indicates the listing doesn't exist.
	ErrListingNotFound = errors.New("listing not found")
	// ErrNotOwner indicates the caller doesn't own the listing.
	ErrNotOwner = errors.New("listing not owned by caller")
	// ErrInvalidStatus indicates an unknown listing status value.
	ErrInvalidStatus = errors.New("invalid listing status")
	// ErrInvalidInput indicates invalid input for listing operations.
	ErrInvalidInput = errors.New("invalid listing input")
)
