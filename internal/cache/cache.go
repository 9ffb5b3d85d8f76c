// Package cache implements the persistent incremental-compile cache
// (SPEC_FULL's "DOMAIN STACK — new components"): a sqlite-backed,
// content-hash-keyed store of prior compile results, generalizing the
// teacher's in-process `moduleCache map[string]evaluator.Object`
// (cmd/funxy/main.go) into a cross-invocation cache via
// modernc.org/sqlite, the pure-Go sqlite driver already in the
// teacher's go.mod.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/funvibe/minic/internal/diagnostics"
)

// Entry is one cached compile result.
type Entry struct {
	Diagnostics []*diagnostics.DiagnosticError
	Emitted     string
	CompiledAt  time.Time
}

// Cache wraps a sqlite database holding one row per source-content hash.
type Cache struct {
	db *sql.DB
}

// Hash returns the hex-encoded SHA-256 digest of source, the cache key
// (spec_full — "a SHA-256 of the entry file's contents").
func Hash(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Open creates (if needed) dir/minic.db and its compiles table, and
// returns a Cache backed by it.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir %s: %w", dir, err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, "minic.db"))
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS compiles (
	hash        TEXT PRIMARY KEY,
	diagnostics TEXT NOT NULL,
	emitted     TEXT NOT NULL,
	compiled_at TEXT NOT NULL
)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating compiles table: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Lookup returns the cached entry for hash, if any.
func (c *Cache) Lookup(hash string) (*Entry, bool, error) {
	row := c.db.QueryRow(`SELECT diagnostics, emitted, compiled_at FROM compiles WHERE hash = ?`, hash)

	var diagJSON, emitted, compiledAt string
	switch err := row.Scan(&diagJSON, &emitted, &compiledAt); err {
	case sql.ErrNoRows:
		return nil, false, nil
	case nil:
		// fall through
	default:
		return nil, false, fmt.Errorf("reading cache entry %s: %w", hash, err)
	}

	var diags []*diagnostics.DiagnosticError
	if err := json.Unmarshal([]byte(diagJSON), &diags); err != nil {
		return nil, false, fmt.Errorf("decoding cached diagnostics for %s: %w", hash, err)
	}
	ts, err := time.Parse(time.RFC3339, compiledAt)
	if err != nil {
		return nil, false, fmt.Errorf("decoding cached timestamp for %s: %w", hash, err)
	}
	return &Entry{Diagnostics: diags, Emitted: emitted, CompiledAt: ts}, true, nil
}

// Store records entry under hash, overwriting any prior result.
func (c *Cache) Store(hash string, entry *Entry) error {
	diagJSON, err := json.Marshal(entry.Diagnostics)
	if err != nil {
		return fmt.Errorf("encoding diagnostics for %s: %w", hash, err)
	}
	_, err = c.db.Exec(
		`INSERT INTO compiles (hash, diagnostics, emitted, compiled_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(hash) DO UPDATE SET diagnostics = excluded.diagnostics, emitted = excluded.emitted, compiled_at = excluded.compiled_at`,
		hash, string(diagJSON), entry.Emitted, entry.CompiledAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("storing cache entry %s: %w", hash, err)
	}
	return nil
}
