// Package memstore provides an in-memory Store used by tests. It records
// every Save so tests can assert on persistence behavior, and can be primed
// with a collection or forced to fail.
package memstore

import "github.com/shelfd/shelf/pkg/types"

// Store keeps the collection in memory.
type Store struct {
	products []types.Product

	// SaveCount is incremented on every Save.
	SaveCount int
	// SaveErr, when set, is returned by Save.
	SaveErr error
	// LoadErr, when set, is returned by Load.
	LoadErr error
}

// New returns a Store primed with the given collection.
func New(products ...types.Product) *Store {
	return &Store{products: products}
}

// Load returns the current in-memory collection.
func (s *Store) Load() ([]types.Product, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	out := make([]types.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// Save replaces the in-memory collection.
func (s *Store) Save(products []types.Product) error {
	s.SaveCount++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.products = make([]types.Product, len(products))
	copy(s.products, products)
	return nil
}

// Products returns the last saved collection.
func (s *Store) Products() []types.Product {
	return s.products
}
