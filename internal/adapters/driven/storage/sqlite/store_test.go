package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/teampulse/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_ReadAbsent(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Read(context.Background(), "data.csv")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_WriteAndRead(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	v1, err := store.Write(ctx, "data.csv", "header\n", "", "create")
	require.NoError(t, err)
	assert.Equal(t, "1", v1)

	file, err := store.Read(ctx, "data.csv")
	require.NoError(t, err)
	assert.Equal(t, "header\n", file.Content)
	assert.Equal(t, "1", file.Version)

	v2, err := store.Write(ctx, "data.csv", "header\nrow\n", file.Version, "append")
	require.NoError(t, err)
	assert.Equal(t, "2", v2)
}

func TestStore_CompareAndSwap(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Write(ctx, "data.csv", "a\n", "", "create")
	require.NoError(t, err)

	file, err := store.Read(ctx, "data.csv")
	require.NoError(t, err)

	// First writer wins.
	_, err = store.Write(ctx, "data.csv", "b\n", file.Version, "first")
	require.NoError(t, err)

	// Second writer presents the stale version.
	_, err = store.Write(ctx, "data.csv", "c\n", file.Version, "second")
	assert.ErrorIs(t, err, domain.ErrVersionConflict)

	current, err := store.Read(ctx, "data.csv")
	require.NoError(t, err)
	assert.Equal(t, "b\n", current.Content, "losing write must not change content")
}

func TestStore_CreateRace(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Write(ctx, "data.csv", "a\n", "", "create")
	require.NoError(t, err)

	_, err = store.Write(ctx, "data.csv", "b\n", "", "create again")
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
}

func TestStore_EnsureInitialized(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first, err := store.EnsureInitialized(ctx, "data.csv", "header\n")
	require.NoError(t, err)
	assert.Equal(t, "header\n", first.Content)

	second, err := store.EnsureInitialized(ctx, "data.csv", "other\n")
	require.NoError(t, err)
	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.Version, second.Version)
}
