// Package sqlite implements the Store backend on SQLite. The port semantics
// are the same as the JSON file backend: Save rewrites the whole collection
// in one transaction, Load returns it in stored order.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/shelfd/shelf/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// DBFileName is the fixed database file name inside the data directory.
const DBFileName = "shelf.db"

// Store persists the collection to a SQLite database.
type Store struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens dataDir/shelf.db, and
// initializes the schema.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle. Operations after Close return
// ErrStoreClosed.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Load reads the persisted collection in stored order. A query failure loads
// as an empty collection, matching the port contract for unreadable storage.
func (s *Store) Load() ([]types.Product, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}

	rows, err := s.db.Query(`SELECT id, name, price, category, stock, created_at
		FROM products ORDER BY position`)
	if err != nil {
		return nil, nil
	}
	defer rows.Close()

	var products []types.Product
	for rows.Next() {
		var p types.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Stock, &p.CreatedAt); err != nil {
			return nil, nil
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, nil
	}
	return products, nil
}

// Save replaces the persisted collection inside a single transaction.
func (s *Store) Save(products []types.Product) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM products`); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear products: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO products
		(position, id, name, price, category, stock, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range products {
		if _, err := stmt.Exec(i, p.ID, p.Name, p.Price, p.Category, p.Stock, p.CreatedAt); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert product %d: %w", p.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
