package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/kselvam/pulseboard/internal/domain/frame"
	"github.com/kselvam/pulseboard/internal/domain/geo"
)

// Column names treated as period dimensions rather than labels or measures.
const (
	yearColumn    = "year"
	quarterColumn = "quarter"
	stateColumn   = "state"
)

// SQLiteStore loads frames from a SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the database at path. The file is created if absent,
// so a bad path surfaces as an empty catalog rather than an open error.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenDatabase, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpenDatabase, err)
	}
	return &SQLiteStore{db: db}, nil
}

// DB exposes the underlying handle for seeding and health checks.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load executes query and materializes every row into a frame. Columns are
// classified by scanned value: integers named year/quarter become period
// dimensions, other numerics become measures, text becomes labels. State
// labels are normalized from dataset slugs to display names at this
// boundary so nothing downstream ever sees a raw slug.
func (s *SQLiteStore) Load(ctx context.Context, query string) (*frame.Frame, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	f := &frame.Frame{}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
		}
		r := frame.Row{
			Labels: make(map[string]string),
			Values: make(map[string]float64),
		}
		for i, col := range cols {
			assign(&r, strings.ToLower(col), values[i])
		}
		f.Rows = append(f.Rows, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	return f, nil
}

func assign(r *frame.Row, col string, v any) {
	switch val := v.(type) {
	case int64:
		switch col {
		case yearColumn:
			r.Year = int(val)
		case quarterColumn:
			r.Quarter = int(val)
		default:
			r.Values[col] = float64(val)
		}
	case float64:
		r.Values[col] = val
	case string:
		r.Labels[col] = labelValue(col, val)
	case []byte:
		r.Labels[col] = labelValue(col, string(val))
	case nil:
		// absent measure or label; accessors default to zero values
	}
}

func labelValue(col, raw string) string {
	if col == stateColumn {
		return geo.NormalizeState(raw)
	}
	return raw
}
