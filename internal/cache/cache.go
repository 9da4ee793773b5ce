// Package cache stores serialized bundles keyed by source hash so
// repeated builds of unchanged sources skip compilation.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Cache is a SQLite-backed build cache. The database handle is safe
// for concurrent use; each entry maps one source hash to one bundle.
type Cache struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS bundles (
	source_hash TEXT PRIMARY KEY,
	bundle      BLOB NOT NULL,
	created_at  TEXT NOT NULL
);
`

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("cache: creating directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: initializing schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// HashSource returns the cache key for source text.
func HashSource(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached bundle for hash, or found=false on a miss.
func (c *Cache) Get(hash string) (data []byte, found bool, err error) {
	row := c.db.QueryRow(`SELECT bundle FROM bundles WHERE source_hash = ?`, hash)
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: reading entry: %w", err)
	}
	return data, true, nil
}

// Put stores (or replaces) the bundle for hash.
func (c *Cache) Put(hash string, data []byte) error {
	_, err := c.db.Exec(
		`INSERT INTO bundles (source_hash, bundle, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(source_hash) DO UPDATE SET bundle = excluded.bundle, created_at = excluded.created_at`,
		hash, data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("cache: writing entry: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}
