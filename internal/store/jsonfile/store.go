// Package jsonfile implements the default Store backend: the whole product
// collection serialized as one JSON array in a single file under the data
// directory. Writes use the temp-file, fsync, rename pattern so a crashed
// write never corrupts the previous collection.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shelfd/shelf/pkg/types"
)

// FileName is the fixed storage key inside the data directory.
const FileName = "products.json"

// Store persists the collection to a JSON file.
type Store struct {
	path string
}

// Open creates the data directory if needed and returns a Store backed by
// dataDir/products.json.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Store{path: filepath.Join(dataDir, FileName)}, nil
}

// Path returns the file backing this store.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted collection. An absent or unparseable file loads as
// an empty collection: local storage that cannot be read is treated as fresh
// state, never as a fatal condition.
func (s *Store) Load() ([]types.Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil
	}
	var products []types.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, nil
	}
	return products, nil
}

// Save atomically replaces the persisted collection.
func (s *Store) Save(products []types.Product) error {
	if products == nil {
		products = []types.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal products: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".products-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing collection: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
