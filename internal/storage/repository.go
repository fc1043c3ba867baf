// Package storage is the key-value persistence layer of xshare.
//
// A Repository stores opaque byte values under string keys. Two backends are
// provided: SQLite (a single kv table, migrated with goose) and an in-memory
// map used for tests and throwaway sessions. Store layers JSON encoding,
// transactions and change notifications on top of a Backend.
package storage

import (
	"context"
	"database/sql"
)

// Repository is a byte-level key-value store.
//
// Get returns (nil, nil) when the key is absent. Delete of a missing key is
// not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// DBTX is the subset of database/sql used by SQLiteRepository.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
