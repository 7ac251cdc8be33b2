package content

import "errors"

var (
	// ErrNotFound is returned by Lookup when no item has the requested id.
	ErrNotFound = errors.New("content: item not found")

	// ErrDuplicateID is returned when two seed records define the same id.
	ErrDuplicateID = errors.New("content: duplicate item id")

	// ErrInvalidSeed is returned for seed documents that decode but are unusable.
	ErrInvalidSeed = errors.New("content: invalid seed")
)
