package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antoniohuaman/FacturaFacil-sub001/core"
	"github.com/Antoniohuaman/FacturaFacil-sub001/storage"
)

func newTestRepository(t *testing.T) storage.ItemRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestPutAndGetItem(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item := &core.Item{
		ID:        "PRD-001",
		Label:     "Producto Alpha",
		Secondary: "ALP-01",
		Amount:    &core.Amount{Value: 3.50, Label: "Precio", Currency: "PEN"},
	}
	require.NoError(t, repo.PutItems(ctx, "productos", item))

	got, err := repo.GetItem(ctx, "productos", "PRD-001")
	require.NoError(t, err)
	assert.Equal(t, item, got)
}

func TestGetItem_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetItem(context.Background(), "productos", "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPutItems_Validation(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	t.Run("empty collection", func(t *testing.T) {
		err := repo.PutItems(ctx, "", &core.Item{ID: "1", Label: "x"})
		assert.ErrorIs(t, err, storage.ErrEmptyCollection)
	})

	t.Run("item without ID", func(t *testing.T) {
		err := repo.PutItems(ctx, "productos", &core.Item{Label: "sin id"})
		assert.ErrorIs(t, err, storage.ErrEmptyItemID)
	})
}

func TestPutItems_ReplacesExisting(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.PutItems(ctx, "productos", &core.Item{ID: "1", Label: "Viejo"}))
	require.NoError(t, repo.PutItems(ctx, "productos", &core.Item{ID: "1", Label: "Nuevo"}))

	got, err := repo.GetItem(ctx, "productos", "1")
	require.NoError(t, err)
	assert.Equal(t, "Nuevo", got.Label)

	items, err := repo.ListItems(ctx, "productos")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestListItems(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.PutItems(ctx, "productos",
		&core.Item{ID: "b", Label: "Beta"},
		&core.Item{ID: "a", Label: "Alpha"},
	))
	require.NoError(t, repo.PutItems(ctx, "clientes",
		&core.Item{ID: "c", Label: "Cliente"},
	))

	items, err := repo.ListItems(ctx, "productos")
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Key order, not insertion order.
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)

	empty, err := repo.ListItems(ctx, "almacenes")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDeleteItems(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.PutItems(ctx, "productos",
		&core.Item{ID: "1", Label: "Alpha"},
		&core.Item{ID: "2", Label: "Beta"},
	))

	require.NoError(t, repo.DeleteItems(ctx, "productos", "1"))

	_, err := repo.GetItem(ctx, "productos", "1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	items, err := repo.ListItems(ctx, "productos")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	err = repo.DeleteItems(ctx, "productos", "1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCollections(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	names, err := repo.Collections(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, repo.PutItems(ctx, "productos", &core.Item{ID: "1", Label: "Alpha"}))
	require.NoError(t, repo.PutItems(ctx, "clientes", &core.Item{ID: "2", Label: "Ana"}))

	names, err = repo.Collections(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"productos", "clientes"}, names)
}
