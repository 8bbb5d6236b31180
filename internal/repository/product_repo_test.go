package repository

import (
	"context"
	"testing"

	"technomaster/internal/kv"
	"technomaster/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Title
	}
	return out
}

func TestProductRepository_SeedsOnFirstRead(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewProductRepository(store)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Windows O'rnatish", "Kompyuter Tozalash", "SSD O'rnatish"}, titles(products))
	assert.Equal(t, []float64{150000, 100000, 350000}, []float64{products[0].Price, products[1].Price, products[2].Price})

	raw, ok, err := store.Get(ctx, ProductsKey)
	require.NoError(t, err)
	assert.True(t, ok, "seed must be persisted")
	assert.Contains(t, raw, "Kompyuter Tozalash")
}

func TestProductRepository_SeedNotReappliedAfterDeletingAll(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(kv.NewMemoryStore())

	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, repo.Delete(ctx, id))
	}

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductRepository_AddPrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(kv.NewMemoryStore())

	require.NoError(t, repo.Add(ctx, &model.Product{ID: "a", Title: "A", Category: model.CategoryRepair}))
	require.NoError(t, repo.Add(ctx, &model.Product{ID: "b", Title: "B", Category: model.CategoryConsulting}))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "Windows O'rnatish", "Kompyuter Tozalash", "SSD O'rnatish"}, titles(products))
}

func TestProductRepository_DeleteRemovesExactlyOne(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(kv.NewMemoryStore())

	require.NoError(t, repo.Delete(ctx, "2"))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Windows O'rnatish", "SSD O'rnatish"}, titles(products))
}

func TestProductRepository_DeleteUnknownLeavesTable(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(kv.NewMemoryStore())

	before, err := repo.List(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, "does-not-exist"))
	after, err := repo.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestProductRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(kv.NewMemoryStore())

	p, err := repo.FindByID(ctx, "3")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "SSD O'rnatish", p.Title)

	p, err = repo.FindByID(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductRepository_CorruptTable(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, ProductsKey, "{not json"))

	_, err := NewProductRepository(store).List(ctx)
	assert.ErrorIs(t, err, ErrCorruptTable)
	assert.Contains(t, err.Error(), ProductsKey)
}

func TestProductRepository_SeedPersistFailure(t *testing.T) {
	repo := NewProductRepository(&failingStore{Store: kv.NewMemoryStore()})

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, errStoreDown)
}
