// Package repository provides read access to the dashboard datasets: a
// SQLite-backed loader and a TTL cache that wraps any loader.
package repository

import (
	"context"

	"github.com/kselvam/pulseboard/internal/domain/frame"
)

// Loader reads the full result of a query into a frame.
type Loader interface {
	// Load executes query and materializes every row. The returned frame
	// must be treated as read-only: cached loaders hand out the same
	// instance to every caller.
	Load(ctx context.Context, query string) (*frame.Frame, error)
}
