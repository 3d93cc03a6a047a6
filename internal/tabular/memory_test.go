package tabular

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = Schema{
	Name:    "Creatures",
	Headers: []string{"ID", "Name", "Element"},
}

func newTestStore(t *testing.T) *MemoryStore {
	t.Helper()
	store := NewMemoryStore()
	require.NoError(t, store.EnsureCollections(context.Background(), []Schema{testSchema}))
	return store
}

func TestMemoryStoreAppendAndReadAll(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Append(ctx, "Creatures", []string{"C1", "Salamander", "Fire"}))
	require.NoError(t, store.Append(ctx, "Creatures", []string{"C2", "Undine", "Water"}))

	records, err := store.ReadAll(ctx, "Creatures")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Salamander", records[0]["Name"])
	assert.Equal(t, "Water", records[1]["Element"])
}

func TestMemoryStoreUnknownCollection(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.ReadAll(ctx, "Familiars")
	assert.ErrorIs(t, err, ErrUnknownCollection)

	err = store.Append(ctx, "Familiars", []string{"X"})
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestMemoryStoreUpdateByKey(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Append(ctx, "Creatures", []string{"C1", "Salamander", "Fire"}))

	err := store.UpdateByKey(ctx, "Creatures", 0, "C1", map[string]string{"Element": "Aether"})
	require.NoError(t, err)

	records, err := store.ReadAll(ctx, "Creatures")
	require.NoError(t, err)
	assert.Equal(t, "Aether", records[0]["Element"])
	assert.Equal(t, "Salamander", records[0]["Name"])
}

func TestMemoryStoreUpdateByKeyMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	err := store.UpdateByKey(ctx, "Creatures", 0, "C9", map[string]string{"Name": "Ghost"})
	assert.ErrorIs(t, err, ErrRowNotFound)
}

func TestMemoryStoreUnknownFieldIgnored(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Append(ctx, "Creatures", []string{"C1", "Salamander", "Fire"}))

	err := store.UpdateByKey(ctx, "Creatures", 0, "C1", map[string]string{
		"Name":      "Phoenix",
		"Alignment": "Chaotic",
	})
	require.NoError(t, err)

	records, err := store.ReadAll(ctx, "Creatures")
	require.NoError(t, err)
	assert.Equal(t, "Phoenix", records[0]["Name"])
	_, present := records[0]["Alignment"]
	assert.False(t, present)
}

func TestMemoryStoreDeleteByKey(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Append(ctx, "Creatures", []string{"C1", "Salamander", "Fire"}))
	require.NoError(t, store.Append(ctx, "Creatures", []string{"C2", "Undine", "Water"}))
	require.NoError(t, store.Append(ctx, "Creatures", []string{"C3", "Sylph", "Air"}))

	require.NoError(t, store.DeleteByKey(ctx, "Creatures", 0, "C2"))

	records, err := store.ReadAll(ctx, "Creatures")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "C1", records[0]["ID"])
	assert.Equal(t, "C3", records[1]["ID"])

	// Remaining rows are still addressable after the shift.
	idx, err := store.FindRowByKey(ctx, "Creatures", 0, "C3")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestMemoryStoreFindRowByKey(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Append(ctx, "Creatures", []string{"C1", "Salamander", "Fire"}))

	idx, err := store.FindRowByKey(ctx, "Creatures", 0, "C1")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = store.FindRowByKey(ctx, "Creatures", 0, "C2")
	assert.ErrorIs(t, err, ErrRowNotFound)
}

func TestMemoryStoreEnsureCollectionsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Append(ctx, "Creatures", []string{"C1", "Salamander", "Fire"}))

	// Re-ensuring must not wipe existing rows.
	require.NoError(t, store.EnsureCollections(ctx, []Schema{testSchema}))

	records, err := store.ReadAll(ctx, "Creatures")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
