package fingerprint

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Cache persists (path, size, mtime) -> digest so unchanged files are not
// re-hashed across runs. A file whose size or mtime differs from the cached
// row is re-hashed and the row replaced.
type Cache struct {
	db   *sql.DB
	path string
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS fingerprints (
    path     TEXT PRIMARY KEY,
    size     INTEGER NOT NULL,
    mtime_ns INTEGER NOT NULL,
    digest   TEXT NOT NULL
);`

// OpenCache initializes or connects to the fingerprint database.
func OpenCache(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(cacheSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply cache schema: %w", err)
	}

	return &Cache{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Lookup returns the cached digest for path when the stored size and mtime
// still match. The second return reports whether a usable row existed.
func (c *Cache) Lookup(path string, size, mtimeNS int64) (string, bool, error) {
	var (
		storedSize  int64
		storedMtime int64
		digest      string
	)
	err := c.db.QueryRow(
		`SELECT size, mtime_ns, digest FROM fingerprints WHERE path = ?`, path,
	).Scan(&storedSize, &storedMtime, &digest)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query fingerprint: %w", err)
	}
	if storedSize != size || storedMtime != mtimeNS {
		return "", false, nil
	}
	return digest, true, nil
}

// Store upserts the digest for path.
func (c *Cache) Store(path string, size, mtimeNS int64, digest string) error {
	_, err := c.db.Exec(
		`INSERT INTO fingerprints (path, size, mtime_ns, digest) VALUES (?, ?, ?, ?)
         ON CONFLICT(path) DO UPDATE SET size = excluded.size, mtime_ns = excluded.mtime_ns, digest = excluded.digest`,
		path, size, mtimeNS, digest,
	)
	if err != nil {
		return fmt.Errorf("store fingerprint: %w", err)
	}
	return nil
}

// ComputeCached hashes path, consulting the cache first. A nil receiver is
// valid and degrades to a plain Compute, so callers never branch on whether
// caching is configured.
func (c *Cache) ComputeCached(path string) (string, error) {
	if c == nil || c.db == nil {
		return Compute(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	size := info.Size()
	mtimeNS := info.ModTime().UnixNano()

	if digest, ok, err := c.Lookup(path, size, mtimeNS); err == nil && ok {
		return digest, nil
	}

	digest, err := Compute(path)
	if err != nil {
		return "", err
	}
	// Cache write failures are not worth failing the hash for.
	_ = c.Store(path, size, mtimeNS, digest)
	return digest, nil
}
