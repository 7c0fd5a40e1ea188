// db/mysql/mysql.go
package mysql

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Connect opens a MySQL database handle using the given DSN and timeout.
// It performs a Ping to ensure the connection is usable before returning,
// so an unreachable server or rejected credentials fail here rather than
// on the first statement.
//
// The caller is responsible for calling db.Close() when done.
//
// DSN format:
//
//	user:password@tcp(host:port)/dbname
//	user:password@tcp(host:port)/dbname?parseTime=true
func Connect(dsn string, timeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
