package storage

import (
	"context"
	"maps"
	"sync"
)

// MemoryRepository keeps values in a map. Values are copied on the way in and
// out so callers cannot alias stored bytes.
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (r *MemoryRepository) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = append([]byte(nil), value...)
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)
	return nil
}

func (r *MemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.data)
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) (map[string][]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]byte, len(r.data))
	for k, v := range r.data {
		out[k] = append([]byte(nil), v...)
	}
	return out, nil
}

// snapshot returns an independent copy used as a transaction workspace.
func (r *MemoryRepository) snapshot() *MemoryRepository {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &MemoryRepository{data: maps.Clone(r.data)}
}

// replace swaps in the contents of a committed snapshot.
func (r *MemoryRepository) replace(from *MemoryRepository) {
	from.mu.RLock()
	data := from.data
	from.mu.RUnlock()

	r.mu.Lock()
	r.data = data
	r.mu.Unlock()
}
