// Package imagestore persists named binary blobs in a relational table.
//
// A Store wraps an existing *sql.DB and issues single parameterized
// statements against a two-column table (a name and the raw bytes). It makes
// no assumptions about pooling or transactions beyond the driver's defaults,
// and it never mutates or deletes rows: the only operations are insert,
// select by name, and an existence probe.
//
// Basic usage:
//
//	db, err := mysql.Connect(dsn, 10*time.Second)
//	if err != nil { ... }
//	defer db.Close()
//
//	store := imagestore.New(db)
//	if err := store.PutFile(ctx, "example.jpg", "path/to/example.jpg"); err != nil { ... }
//	data, err := store.Get(ctx, "example.jpg")
package imagestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultTable is the table name used when none is configured.
const DefaultTable = "image_store"

// Dialect selects placeholder style and column types for the backing database.
type Dialect int

const (
	// DialectMySQL uses '?' placeholders and LONGBLOB columns. The default.
	DialectMySQL Dialect = iota

	// DialectSQLite uses '?' placeholders and BLOB columns.
	DialectSQLite

	// DialectPostgres uses '$n' placeholders and BYTEA columns.
	DialectPostgres
)

// ParseDialect maps a driver name from config ("mysql", "sqlite", "postgres")
// to its Dialect. Unknown names fall back to DialectMySQL.
func ParseDialect(name string) Dialect {
	switch strings.ToLower(name) {
	case "sqlite", "sqlite3":
		return DialectSQLite
	case "postgres", "postgresql", "pgx":
		return DialectPostgres
	default:
		return DialectMySQL
	}
}

// Store reads and writes blob records in a single table.
// It is safe for concurrent use; *sql.DB handles connection sharing.
type Store struct {
	db      *sql.DB
	table   string
	dialect Dialect
}

// Option configures a Store.
type Option func(*Store)

// WithTable overrides the table name. The name is interpolated into SQL
// text, so it must be a plain identifier from trusted configuration, never
// user input.
func WithTable(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.table = name
		}
	}
}

// WithDialect sets the SQL dialect. Defaults to DialectMySQL.
func WithDialect(d Dialect) Option {
	return func(s *Store) {
		s.dialect = d
	}
}

// New creates a Store on top of an open database handle.
// The caller retains ownership of db and is responsible for closing it.
func New(db *sql.DB, opts ...Option) *Store {
	s := &Store{
		db:      db,
		table:   DefaultTable,
		dialect: DialectMySQL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureSchema creates the blob table if it does not already exist.
// No uniqueness constraint is placed on the name column; the store treats
// the name as a lookup key on the happy path only.
func (s *Store) EnsureSchema(ctx context.Context) error {
	var ddl string
	switch s.dialect {
	case DialectPostgres:
		ddl = fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (image_name TEXT NOT NULL, image_data BYTEA NOT NULL)", s.table)
	case DialectSQLite:
		ddl = fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (image_name TEXT NOT NULL, image_data BLOB NOT NULL)", s.table)
	default:
		ddl = fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (image_name VARCHAR(255) NOT NULL, image_data LONGBLOB NOT NULL)", s.table)
	}

	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("%w: create table %s: %v", ErrQuery, s.table, err)
	}
	return nil
}

// Put inserts one record associating name with data.
// It issues a single parameterized insert; constraint violations surface
// as ErrQuery.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return ErrEmptyName
	}

	q := s.rebind("INSERT INTO " + s.table + " (image_name, image_data) VALUES (?, ?)")
	if _, err := s.db.ExecContext(ctx, q, name, data); err != nil {
		return fmt.Errorf("%w: insert %q: %v", ErrQuery, name, err)
	}
	return nil
}

// PutFile reads the entire file at path into memory and stores its bytes
// under name. A missing or unreadable file surfaces as ErrIO.
func (s *Store) PutFile(ctx context.Context, name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrIO, path, err)
	}
	return s.Put(ctx, name, data)
}

// Get fetches the bytes stored under name. If multiple rows share the name,
// the first row the database returns wins. A zero-row result returns
// ErrNotFound rather than an empty slice.
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	q := s.rebind("SELECT image_data FROM " + s.table + " WHERE image_name = ?")
	var data []byte
	err := s.db.QueryRowContext(ctx, q, name).Scan(&data)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	case err != nil:
		return nil, fmt.Errorf("%w: select %q: %v", ErrQuery, name, err)
	}
	return data, nil
}

// GetToFile fetches the bytes stored under name and writes them verbatim to
// path. A write failure surfaces as ErrIO; the record lookup itself follows
// Get's semantics.
func (s *Store) GetToFile(ctx context.Context, name, path string) error {
	data, err := s.Get(ctx, name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrIO, path, err)
	}
	return nil
}

// Exists reports whether at least one record is stored under name.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, ErrEmptyName
	}

	q := s.rebind("SELECT 1 FROM " + s.table + " WHERE image_name = ? LIMIT 1")
	var one int
	err := s.db.QueryRowContext(ctx, q, name).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("%w: exists %q: %v", ErrQuery, name, err)
	}
	return true, nil
}

// rebind rewrites '?' placeholders to '$n' for the postgres dialect.
// Queries here never contain literal question marks, so a byte scan is enough.
func (s *Store) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
