package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/xshare/internal/filex"
	"github.com/dmitrijs2005/xshare/internal/storage/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// MemoryDSN selects the in-memory backend in OpenBackend.
const MemoryDSN = "memory://"

// Backend provides a Repository for plain reads and writes and runs functions
// atomically against a transactional Repository.
type Backend interface {
	Repo() Repository
	WithTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error
	Close() error
}

// OpenBackend opens the backend named by dsn. MemoryDSN gives a fresh
// in-memory store; anything else is treated as a SQLite data source and is
// migrated before use.
func OpenBackend(ctx context.Context, dsn string) (Backend, error) {
	if strings.TrimSpace(dsn) == MemoryDSN {
		return NewMemoryBackend(), nil
	}
	return OpenSQLite(ctx, dsn)
}

// RunMigrations applies the embedded goose migrations. It is safe to call on
// an already migrated database.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the SQLite database at dsn and
// migrates it. A single connection is used so that ":memory:" databases keep
// their contents and writers never contend.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteBackend, error) {
	if path := filex.SQLitePath(dsn); path != "" {
		if err := filex.EnsureParentDir(path); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteBackend{db: db}, nil
}

func (b *SQLiteBackend) Repo() Repository {
	return NewSQLiteRepository(b.db)
}

// WithTx begins a transaction, runs fn with a repository bound to it, and then
// commits on success or rolls back on error or panic. Panics are rethrown.
// fn must not use Repo() while the transaction is open.
func (b *SQLiteBackend) WithTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) (err error) {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("commit tx: %w", cerr)
		}
	}()

	err = fn(ctx, NewSQLiteRepository(tx))
	return err
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// DB exposes the underlying handle for maintenance and tests.
func (b *SQLiteBackend) DB() *sql.DB {
	return b.db
}

type MemoryBackend struct {
	txMu sync.Mutex
	repo *MemoryRepository
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{repo: NewMemoryRepository()}
}

func (b *MemoryBackend) Repo() Repository {
	return b.repo
}

// WithTx runs fn against a snapshot and publishes the snapshot only if fn
// succeeds. Transactions are serialized.
func (b *MemoryBackend) WithTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error {
	b.txMu.Lock()
	defer b.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	work := b.repo.snapshot()
	if err := fn(ctx, work); err != nil {
		return err
	}
	b.repo.replace(work)
	return nil
}

func (b *MemoryBackend) Close() error {
	return nil
}
