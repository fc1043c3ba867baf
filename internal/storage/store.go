package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/xshare/internal/common"
)

// Store persists JSON documents under keys and tells subscribers which keys
// changed after each successful write.
type Store struct {
	backend Backend

	mu     sync.Mutex
	nextID int
	subs   map[int]func(keys []string)
}

func NewStore(b Backend) *Store {
	return &Store{backend: b, subs: make(map[int]func(keys []string))}
}

// Load decodes the value stored under key into dst. It reports false, and
// leaves dst untouched, when the key is absent.
func (s *Store) Load(ctx context.Context, key string, dst any) (bool, error) {
	return load(ctx, s.backend.Repo(), key, dst)
}

// Save encodes v and stores it under key. Like every write it runs as a
// transaction, so it is serialized with concurrent Updates.
func (s *Store) Save(ctx context.Context, key string, v any) error {
	return s.Update(ctx, func(ctx context.Context, tx *Tx) error {
		return tx.Save(ctx, key, v)
	})
}

// Remove deletes key. Removing an absent key succeeds.
func (s *Store) Remove(ctx context.Context, key string) error {
	return s.Update(ctx, func(ctx context.Context, tx *Tx) error {
		return tx.Remove(ctx, key)
	})
}

// Update runs fn in a single transaction. Writes made through tx become
// visible together, or not at all if fn returns an error.
func (s *Store) Update(ctx context.Context, fn func(ctx context.Context, tx *Tx) error) error {
	var tx *Tx
	err := s.backend.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		tx = &Tx{repo: repo}
		return fn(ctx, tx)
	})
	if err != nil {
		return err
	}
	if len(tx.written) > 0 {
		s.notify(tx.written)
	}
	return nil
}

// Subscribe registers fn to be called with the keys written by every
// committed Save, Remove or Update. The returned function unregisters it.
func (s *Store) Subscribe(fn func(keys []string)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) notify(keys []string) {
	s.mu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func([]string), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(slices.Clone(keys))
	}
}

// Tx is the typed view of a repository inside Store.Update.
type Tx struct {
	repo    Repository
	written []string
}

func (t *Tx) Load(ctx context.Context, key string, dst any) (bool, error) {
	return load(ctx, t.repo, key, dst)
}

func (t *Tx) Save(ctx context.Context, key string, v any) error {
	if err := save(ctx, t.repo, key, v); err != nil {
		return err
	}
	t.touch(key)
	return nil
}

func (t *Tx) Remove(ctx context.Context, key string) error {
	if err := t.repo.Delete(ctx, key); err != nil {
		return err
	}
	t.touch(key)
	return nil
}

func (t *Tx) touch(key string) {
	if !slices.Contains(t.written, key) {
		t.written = append(t.written, key)
	}
}

func load(ctx context.Context, repo Repository, key string, dst any) (bool, error) {
	raw, err := repo.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", common.ErrCorruptValue, key, err)
	}
	return true, nil
}

func save(ctx context.Context, repo Repository, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return repo.Set(ctx, key, raw)
}
