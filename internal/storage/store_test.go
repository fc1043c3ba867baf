package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/xshare/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
}

func TestStore_LoadMissingLeavesDst(t *testing.T) {
	s := NewStore(NewMemoryBackend())

	dst := []item{{Name: "keep"}}
	found, err := s.Load(context.Background(), "absent", &dst)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, []item{{Name: "keep"}}, dst)
}

func TestStore_SaveLoadRemove(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := NewStore(b)
			ctx := context.Background()

			require.NoError(t, s.Save(ctx, "items", []item{{Name: "a"}, {Name: "b"}}))

			var got []item
			found, err := s.Load(ctx, "items", &got)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, []item{{Name: "a"}, {Name: "b"}}, got)

			require.NoError(t, s.Remove(ctx, "items"))
			found, err = s.Load(ctx, "items", &got)
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestStore_CorruptValue(t *testing.T) {
	b := NewMemoryBackend()
	s := NewStore(b)
	ctx := context.Background()
	require.NoError(t, b.Repo().Set(ctx, "items", []byte("{not json")))

	var got []item
	_, err := s.Load(ctx, "items", &got)
	require.ErrorIs(t, err, common.ErrCorruptValue)
	assert.Contains(t, err.Error(), "items")
}

func TestStore_UpdateIsAtomic(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := NewStore(b)
			ctx := context.Background()
			require.NoError(t, s.Save(ctx, "a", []item{{Name: "x"}}))

			boom := errors.New("boom")
			err := s.Update(ctx, func(ctx context.Context, tx *Tx) error {
				require.NoError(t, tx.Save(ctx, "b", []item{{Name: "y"}}))
				require.NoError(t, tx.Remove(ctx, "a"))
				return boom
			})
			require.ErrorIs(t, err, boom)

			var a, bb []item
			found, err := s.Load(ctx, "a", &a)
			require.NoError(t, err)
			assert.True(t, found)
			found, err = s.Load(ctx, "b", &bb)
			require.NoError(t, err)
			assert.False(t, found)

			err = s.Update(ctx, func(ctx context.Context, tx *Tx) error {
				var cur []item
				if _, err := tx.Load(ctx, "a", &cur); err != nil {
					return err
				}
				if err := tx.Save(ctx, "b", cur); err != nil {
					return err
				}
				return tx.Remove(ctx, "a")
			})
			require.NoError(t, err)

			found, err = s.Load(ctx, "a", &a)
			require.NoError(t, err)
			assert.False(t, found)
			found, err = s.Load(ctx, "b", &bb)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, []item{{Name: "x"}}, bb)
		})
	}
}

func TestStore_SubscribeReceivesCommittedKeys(t *testing.T) {
	s := NewStore(NewMemoryBackend())
	ctx := context.Background()

	var got [][]string
	unsubscribe := s.Subscribe(func(keys []string) { got = append(got, keys) })

	require.NoError(t, s.Save(ctx, "a", 1))
	require.NoError(t, s.Remove(ctx, "a"))
	require.NoError(t, s.Update(ctx, func(ctx context.Context, tx *Tx) error {
		if err := tx.Save(ctx, "p", 1); err != nil {
			return err
		}
		if err := tx.Save(ctx, "q", 2); err != nil {
			return err
		}
		return tx.Save(ctx, "p", 3)
	}))
	_ = s.Update(ctx, func(ctx context.Context, tx *Tx) error {
		_ = tx.Save(ctx, "never", 1)
		return errors.New("rollback")
	})
	require.NoError(t, s.Update(ctx, func(ctx context.Context, tx *Tx) error { return nil }))

	assert.Equal(t, [][]string{{"a"}, {"a"}, {"p", "q"}}, got)

	unsubscribe()
	require.NoError(t, s.Save(ctx, "b", 1))
	assert.Len(t, got, 3)
}

func TestStore_ConcurrentWritesAreNotLost(t *testing.T) {
	s := NewStore(NewMemoryBackend())
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Save(ctx, fmt.Sprintf("k%d", i), i))
		}(i)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Update(ctx, func(ctx context.Context, tx *Tx) error {
				var list []int
				if _, err := tx.Load(ctx, "list", &list); err != nil {
					return err
				}
				return tx.Save(ctx, "list", append(list, 1))
			}))
		}()
	}
	wg.Wait()

	var list []int
	_, err := s.Load(ctx, "list", &list)
	require.NoError(t, err)
	assert.Len(t, list, n)

	for i := 0; i < n; i++ {
		var v int
		found, err := s.Load(ctx, fmt.Sprintf("k%d", i), &v)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, i, v)
	}
}
