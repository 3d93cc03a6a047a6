package tabular

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExcelTestStore(t *testing.T) (*ExcelStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.xlsx")
	store, err := NewExcelStore(path)
	require.NoError(t, err)
	require.NoError(t, store.EnsureCollections(context.Background(), []Schema{testSchema}))
	return store, path
}

func TestExcelStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newExcelTestStore(t)
	defer store.Close()

	require.NoError(t, store.Append(ctx, "Creatures", []string{"C1", "Salamander", "Fire"}))
	require.NoError(t, store.Append(ctx, "Creatures", []string{"C2", "Undine", "Water"}))

	records, err := store.ReadAll(ctx, "Creatures")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Salamander", records[0]["Name"])
	assert.Equal(t, "C2", records[1]["ID"])
}

func TestExcelStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	store, path := newExcelTestStore(t)

	require.NoError(t, store.Append(ctx, "Creatures", []string{"C1", "Salamander", "Fire"}))
	require.NoError(t, store.Close())

	reopened, err := NewExcelStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.ReadAll(ctx, "Creatures")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Fire", records[0]["Element"])
}

func TestExcelStoreUpdateByKey(t *testing.T) {
	ctx := context.Background()
	store, _ := newExcelTestStore(t)
	defer store.Close()

	require.NoError(t, store.Append(ctx, "Creatures", []string{"C1", "Salamander", "Fire"}))

	require.NoError(t, store.UpdateByKey(ctx, "Creatures", 0, "C1", map[string]string{"Name": "Phoenix"}))

	records, err := store.ReadAll(ctx, "Creatures")
	require.NoError(t, err)
	assert.Equal(t, "Phoenix", records[0]["Name"])
	assert.Equal(t, "Fire", records[0]["Element"])
}

func TestExcelStoreDeleteShiftsRows(t *testing.T) {
	ctx := context.Background()
	store, _ := newExcelTestStore(t)
	defer store.Close()

	require.NoError(t, store.Append(ctx, "Creatures", []string{"C1", "Salamander", "Fire"}))
	require.NoError(t, store.Append(ctx, "Creatures", []string{"C2", "Undine", "Water"}))
	require.NoError(t, store.Append(ctx, "Creatures", []string{"C3", "Sylph", "Air"}))

	require.NoError(t, store.DeleteByKey(ctx, "Creatures", 0, "C1"))

	records, err := store.ReadAll(ctx, "Creatures")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "C2", records[0]["ID"])
	assert.Equal(t, "C3", records[1]["ID"])

	// Appends after deletion land after the surviving rows.
	require.NoError(t, store.Append(ctx, "Creatures", []string{"C4", "Gnome", "Earth"}))
	records, err = store.ReadAll(ctx, "Creatures")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "C4", records[2]["ID"])
}

func TestExcelStoreUnknownCollection(t *testing.T) {
	ctx := context.Background()
	store, _ := newExcelTestStore(t)
	defer store.Close()

	_, err := store.ReadAll(ctx, "Familiars")
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestExcelStoreEnsureCollectionsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, _ := newExcelTestStore(t)
	defer store.Close()

	require.NoError(t, store.Append(ctx, "Creatures", []string{"C1", "Salamander", "Fire"}))
	require.NoError(t, store.EnsureCollections(ctx, []Schema{testSchema}))

	records, err := store.ReadAll(ctx, "Creatures")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
