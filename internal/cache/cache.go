// Package cache stores fetched record payloads in a local SQLite
// database so repeat conversions skip the network.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Payload kinds stored in the cache.
const (
	KindPubMedXML = "pubmed-xml"
	KindBibTeX    = "doi-bibtex"
)

const (
	cacheDirName  = "pid2bib"
	cacheFileName = "cache.db"
)

// DB wraps the SQLite cache connection.
type DB struct {
	db *sql.DB
}

// DefaultPath returns the cache database path under the user cache
// directory.
func DefaultPath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolving user cache dir: %w", err)
	}
	return filepath.Join(base, cacheDirName, cacheFileName), nil
}

// Open opens or creates the cache database at the given path, creating
// parent directories as needed.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the cache connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS payloads (
			id TEXT NOT NULL,
			kind TEXT NOT NULL,
			body TEXT NOT NULL,
			fetched_at INTEGER NOT NULL,
			PRIMARY KEY (id, kind)
		);
	`
	_, err := db.Exec(schema)
	return err
}

// Get returns the cached body for an identifier, or ok=false on a miss.
func (d *DB) Get(id, kind string) (body string, ok bool, err error) {
	row := d.db.QueryRow(`SELECT body FROM payloads WHERE id = ? AND kind = ?`, id, kind)
	switch err := row.Scan(&body); err {
	case nil:
		return body, true, nil
	case sql.ErrNoRows:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("reading cache: %w", err)
	}
}

// Put stores or replaces the body for an identifier.
func (d *DB) Put(id, kind, body string) error {
	_, err := d.db.Exec(
		`INSERT OR REPLACE INTO payloads (id, kind, body, fetched_at) VALUES (?, ?, ?, ?)`,
		id, kind, body, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}
