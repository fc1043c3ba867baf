// Package services implements the xshare core: the account directory, the
// experience catalog and the question moderation pipeline. Services only
// read and write the key-value store and return data; they never render.
package services

import (
	"context"
	"time"
)

// now is a test seam for timestamps.
var now = func() time.Time { return time.Now().UTC() }

// loader is satisfied by both *storage.Store and *storage.Tx.
type loader interface {
	Load(ctx context.Context, key string, dst any) (bool, error)
}

// loadList reads a JSON array stored under key. A missing key yields an empty,
// non-nil slice.
func loadList[T any](ctx context.Context, r loader, key string) ([]T, error) {
	out := []T{}
	if _, err := r.Load(ctx, key, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
