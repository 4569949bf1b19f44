// Package store defines the read-only persistence interface for the
// backing parameter table.
package store

import "context"

// Store is the interface to the table holding application parameters.
// Implementations do not cache; every call is a fresh read.
type Store interface {
	// AppNames returns the distinct application names present in the
	// table, sorted ascending.
	AppNames(ctx context.Context) ([]string, error)

	// Rows returns every parameter row for one application and debug
	// partition, as ordered column-name to value mappings.
	Rows(ctx context.Context, app string, debug bool) ([]map[string]any, error)

	// Close releases the underlying connection.
	Close() error
}
