package types

import "errors"

// Store is the persistence port the model depends on. Implementations hold a
// single serialized copy of the whole collection under a fixed location; the
// model rewrites it after every mutation.
type Store interface {
	// Load returns the persisted collection in stored order.
	// Absent or unreadable storage loads as an empty collection, not an error.
	Load() ([]Product, error)

	// Save replaces the persisted collection with the given one.
	Save(products []Product) error
}

// Store and backend errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrNotFound    = errors.New("product not found")
)
