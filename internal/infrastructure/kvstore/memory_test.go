package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.Put(ctx, "k", record{Name: "tea", Count: 3}))

	var got record
	require.NoError(t, store.Get(ctx, "k", &got))
	assert.Equal(t, record{Name: "tea", Count: 3}, got)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemory()

	var got map[string]string
	err := store.Get(context.Background(), "absent", &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", []int{1, 2}))
	require.NoError(t, store.Put(ctx, "k", []int{3}))

	var got []int
	require.NoError(t, store.Get(ctx, "k", &got))
	assert.Equal(t, []int{3}, got)
}
