// db/sqlite/sqlite.go
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Connect opens a SQLite database at path with a busy timeout and foreign
// keys enabled. It performs a Ping to ensure the file is usable before
// returning.
//
// The caller is responsible for calling db.Close() when done.
//
// Path can be:
//   - A file path: "./data.db", "/var/lib/studylink/data.db"
//   - ":memory:" for an in-memory database (data lost on close)
//   - "file::memory:?cache=shared" for a shared in-memory database
func Connect(path string, timeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", buildDSN(path))
	if err != nil {
		return nil, err
	}

	// SQLite performs best with limited connections due to file locking.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// InMemory opens a shared in-memory SQLite database. Data is lost when all
// connections close. Intended for tests and local experimentation.
//
// The caller is responsible for calling db.Close() when done.
func InMemory(timeout time.Duration) (*sql.DB, error) {
	return Connect("file::memory:?cache=shared", timeout)
}

// buildDSN appends the pragmas we always want to the path.
func buildDSN(path string) string {
	sep := "?"
	for i := 0; i < len(path); i++ {
		if path[i] == '?' {
			sep = "&"
			break
		}
	}
	return fmt.Sprintf("%s%s_busy_timeout=%d&_foreign_keys=on", path, sep, 5000)
}
