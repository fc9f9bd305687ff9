// Package inventory implements the data-owning product model. The model is
// the sole owner of the in-memory collection and the active search term, and
// the sole writer to the storage port: every mutation rewrites the persisted
// collection before returning.
//
// The model performs no validation; that is the view's contract. Raw numeric
// strings that do not parse are coerced to zero and stored as-is rather than
// rejected (see DESIGN.md).
package inventory

import (
	"strconv"
	"strings"
	"time"

	"github.com/shelfd/shelf/internal/journal"
	"github.com/shelfd/shelf/pkg/types"
)

// Model owns the product collection and the transient search term.
type Model struct {
	store    types.Store
	journal  *journal.Journal
	products []types.Product
	term     string
	lastID   int64

	// now is the clock, overridable in tests.
	now func() time.Time
}

// Option customizes Model construction.
type Option func(*Model)

// WithJournal attaches an activity journal. A nil journal is allowed.
func WithJournal(j *journal.Journal) Option {
	return func(m *Model) { m.journal = j }
}

// WithClock overrides the creation clock. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// New constructs a Model rehydrated from the store. Storage that cannot be
// read loads as an empty collection; New never fails on store contents.
func New(store types.Store, opts ...Option) *Model {
	m := &Model{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	products, err := store.Load()
	if err != nil || products == nil {
		products = []types.Product{}
	}
	m.products = products
	for _, p := range products {
		if p.ID > m.lastID {
			m.lastID = p.ID
		}
	}
	return m
}

// AddProduct constructs a product from raw form values, inserts it at the
// head of the collection, persists, and returns the created record. The name
// is trimmed; price and stock are parsed from their raw strings with
// unparseable values coerced to zero.
func (m *Model) AddProduct(in types.ProductInput) types.Product {
	now := m.now()
	p := types.Product{
		ID:        m.nextID(now),
		Name:      strings.TrimSpace(in.Name),
		Price:     parseDecimal(in.Price),
		Category:  in.Category,
		Stock:     parseInteger(in.Stock),
		CreatedAt: now.Format(types.CreatedAtLayout),
	}

	m.products = append([]types.Product{p}, m.products...)
	m.persist()
	m.journal.Record("product added: %s (id %d)", p.Name, p.ID)
	return p
}

// RemoveProduct removes the first product with the given id, persists, and
// reports whether a match was found. An absent id is a no-op with no side
// effects.
func (m *Model) RemoveProduct(id int64) bool {
	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			m.persist()
			m.journal.Record("product removed: %s (id %d)", p.Name, p.ID)
			return true
		}
	}
	return false
}

// SetSearchTerm replaces the active search term verbatim. The term is
// process-lifetime state and is never persisted.
func (m *Model) SetSearchTerm(term string) {
	m.term = term
}

// FilteredProducts returns the collection filtered by the active search term:
// all products when the term is empty, otherwise the subsequence whose name
// or category contains the term as a case-insensitive substring. The returned
// slice is a view; callers must not mutate it in place.
func (m *Model) FilteredProducts() []types.Product {
	if m.term == "" {
		return m.products
	}
	needle := strings.ToLower(m.term)
	var matched []types.Product
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}

// AllProducts returns the full collection, unfiltered.
func (m *Model) AllProducts() []types.Product {
	return m.products
}

// Stats summarizes the full collection independent of the search term:
// product count and the sum of price×stock formatted to two decimal places.
func (m *Model) Stats() types.Stats {
	var value float64
	for _, p := range m.products {
		value += p.Price * float64(p.Stock)
	}
	return types.Stats{
		Total:      len(m.products),
		TotalValue: strconv.FormatFloat(value, 'f', 2, 64),
	}
}

// nextID derives an id from the creation timestamp, bumped past the previous
// id so ids stay unique and increasing even for same-millisecond adds.
func (m *Model) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= m.lastID {
		id = m.lastID + 1
	}
	m.lastID = id
	return id
}

// persist rewrites the whole collection through the store. A failed save is
// deliberately not surfaced: the in-memory state stays authoritative for the
// rest of the process, matching the silent-storage error policy.
func (m *Model) persist() {
	_ = m.store.Save(m.products)
}

// parseDecimal parses a raw price string. Unparseable input coerces to zero.
func parseDecimal(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseInteger parses a raw stock string. Unparseable input coerces to zero.
func parseInteger(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return v
}
