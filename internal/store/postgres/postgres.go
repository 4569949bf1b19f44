// Package postgres implements the store.Store interface backed by
// PostgreSQL via lib/pq.
package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/groblegark/initval/internal/store"
)

// ConnectError reports a failure to establish the database connection.
// The driver error is preserved and reachable through errors.Unwrap.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string {
	return "database connection failed: " + e.Err.Error()
}

func (e *ConnectError) Unwrap() error { return e.Err }

// PostgresStore implements store.Store over a single *sql.DB handle.
type PostgresStore struct {
	db *sql.DB
}

// Compile-time check that PostgresStore implements store.Store.
var _ store.Store = (*PostgresStore)(nil)

// Open connects to PostgreSQL using a libpq key=value connection string
// and verifies the connection with a ping.
func Open(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, &ConnectError{Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &ConnectError{Err: err}
	}
	return &PostgresStore{db: db}, nil
}

// NewWithDB wraps an existing handle. The caller keeps ownership of the
// handle's lifecycle except that Close closes it.
func NewWithDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) AppNames(ctx context.Context) ([]string, error) {
	return queryAppNames(ctx, s.db)
}

func (s *PostgresStore) Rows(ctx context.Context, app string, debug bool) ([]map[string]any, error) {
	return queryAppRows(ctx, s.db, app, debug)
}

// Close closes the underlying database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
