package readstatus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/contentcards/internal/content"
)

func TestStoreNewStartsEmpty(t *testing.T) {
	t.Parallel()

	store, err := NewStore(filepath.Join(t.TempDir(), "nested", "read.json"))
	require.NoError(t, err)

	_, ok := store.Get("any")
	assert.False(t, ok)
}

func TestStorePersistsReadAndDismissed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "read.json")
	store, err := NewStore(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.SetReadStatus(ctx, "card-1", true))
	require.NoError(t, store.RecordDismissal(ctx, "card-2"))

	reloaded, err := NewStore(path)
	require.NoError(t, err)

	rec, ok := reloaded.Get("card-1")
	require.True(t, ok)
	assert.True(t, rec.Read)
	assert.False(t, rec.Dismissed)
	assert.False(t, rec.UpdatedAt.IsZero())

	rec, ok = reloaded.Get("card-2")
	require.True(t, ok)
	assert.True(t, rec.Dismissed)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file cleaned up")
}

func TestStoreRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "read.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path)
	assert.Error(t, err)
}

func TestStoreInMemory(t *testing.T) {
	t.Parallel()

	store, err := NewStore("")
	require.NoError(t, err)
	require.NoError(t, store.SetReadStatus(context.Background(), "c", true))

	rec, ok := store.Get("c")
	require.True(t, ok)
	assert.True(t, rec.Read)

	require.NoError(t, store.Forget("c"))
	_, ok = store.Get("c")
	assert.False(t, ok)
}

func TestStoreUpdateValidation(t *testing.T) {
	t.Parallel()

	store, err := NewStore("")
	require.NoError(t, err)

	assert.Error(t, store.SetReadStatus(context.Background(), "", true))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, store.RecordDismissal(ctx, "c"), context.Canceled)
}

func TestStoreHydrate(t *testing.T) {
	t.Parallel()

	store, err := NewStore("")
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, store.SetReadStatus(ctx, "tracked", true))
	require.NoError(t, store.SetReadStatus(ctx, "untracked", true))
	require.NoError(t, store.RecordDismissal(ctx, "gone"))

	tracked := content.NewCard("tracked", content.ImageOnlyTemplate{}, true)
	untracked := content.NewCard("untracked", content.ImageOnlyTemplate{}, false)
	gone := content.NewCard("gone", content.ImageOnlyTemplate{}, true)
	fresh := content.NewCard("fresh", content.ImageOnlyTemplate{}, true)

	store.Hydrate([]*content.Card{tracked, untracked, gone, fresh, nil})

	assert.True(t, tracked.State.IsRead())
	assert.Nil(t, untracked.State.Read)
	assert.True(t, gone.Dismissed())
	assert.False(t, gone.State.IsRead())
	assert.False(t, fresh.State.IsRead())
	assert.False(t, fresh.Dismissed())
}

func TestStoreIDsAndClear(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "status.json")
	store, err := NewStore(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.RecordDismissal(ctx, "b"))
	require.NoError(t, store.SetReadStatus(ctx, "a", true))
	assert.Equal(t, []string{"a", "b"}, store.IDs())

	require.NoError(t, store.Clear())
	assert.Empty(t, store.IDs())

	reloaded, err := NewStore(path)
	require.NoError(t, err)
	assert.Empty(t, reloaded.IDs())
}
