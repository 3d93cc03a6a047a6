// Package tabular implements the record store: named collections of
// homogeneous rows whose first row is a header defining column order. All
// domain repositories sit on top of this package; nothing above it touches
// the backing workbook, database or map directly.
package tabular

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable wraps any backend failure (unreachable store, broken
	// workbook, missing collection). Domain services convert it at their
	// boundary instead of letting it cross the public surface.
	ErrUnavailable = errors.New("record store unavailable")

	// ErrRowNotFound is returned by keyed lookups when no row matches.
	ErrRowNotFound = errors.New("row not found")

	// ErrUnknownCollection is returned for operations against a collection
	// that was never created.
	ErrUnknownCollection = errors.New("unknown collection")
)

// Record is one data row keyed by header name. Values are the canonical
// string forms persisted in the store; repositories parse them into typed
// models.
type Record map[string]string

// Store is the generic record store. Row indexes are 0-based over data rows,
// i.e. index 0 is the first row after the header. There is no row-level
// locking across calls: a caller doing FindRowByKey followed by UpdateFields
// can still race another writer, which is why keyed mutations exist —
// UpdateByKey and DeleteByKey hold the store's own lock (or transaction) for
// the whole find-then-mutate sequence.
type Store interface {
	// EnsureCollections creates any missing collections with their header
	// rows. Existing collections are left untouched.
	EnsureCollections(ctx context.Context, schemas []Schema) error

	// Append adds one row at the end of the collection. Visible to
	// subsequent reads immediately; uniqueness is the caller's concern.
	Append(ctx context.Context, collection string, row []string) error

	// FindRowByKey scans data rows in order and returns the index of the
	// first row whose keyCol column equals value, or ErrRowNotFound.
	FindRowByKey(ctx context.Context, collection string, keyCol int, value string) (int, error)

	// ReadAll materializes every data row as a header-keyed Record.
	ReadAll(ctx context.Context, collection string) ([]Record, error)

	// UpdateFields patches the named columns of one row in place. Field
	// names not present in the header are silently ignored.
	UpdateFields(ctx context.Context, collection string, index int, fields map[string]string) error

	// UpdateByKey is FindRowByKey + UpdateFields under a single lock.
	UpdateByKey(ctx context.Context, collection string, keyCol int, value string, fields map[string]string) error

	// DeleteRow removes one row, shifting subsequent rows up by one.
	DeleteRow(ctx context.Context, collection string, index int) error

	// DeleteByKey is FindRowByKey + DeleteRow under a single lock.
	DeleteByKey(ctx context.Context, collection string, keyCol int, value string) error

	Close() error
}

// resolveFields maps field names to column indexes via the header, dropping
// names the header does not know. This is the single place the
// unknown-field-is-a-no-op policy lives.
func resolveFields(headers []string, fields map[string]string) map[int]string {
	resolved := make(map[int]string, len(fields))
	for name, value := range fields {
		for i, h := range headers {
			if h == name {
				resolved[i] = value
				break
			}
		}
	}
	return resolved
}

// rowToRecord converts a positional row to a header-keyed Record. Short rows
// yield empty strings for the trailing columns.
func rowToRecord(headers, row []string) Record {
	rec := make(Record, len(headers))
	for i, h := range headers {
		if i < len(row) {
			rec[h] = row[i]
		} else {
			rec[h] = ""
		}
	}
	return rec
}
