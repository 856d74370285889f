package repositories

import (
	"context"
	"testing"

	"github.com/naiastudio/storefront/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCategoryCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := store.Categories()

	category := &models.Category{ID: "cat-1", Name: "Amigurumi", Slug: "amigurumi"}
	require.NoError(t, repo.Create(ctx, category))

	got, err := repo.GetBySlug(ctx, "amigurumi")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Amigurumi", got.Name)

	missing, err := repo.GetBySlug(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	got.Name = "Amigurumi Friends"
	require.NoError(t, repo.Update(ctx, got))
	updated, err := repo.GetByID(ctx, "cat-1")
	require.NoError(t, err)
	assert.Equal(t, "Amigurumi Friends", updated.Name)

	deleted, err := repo.Delete(ctx, "cat-1")
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "cat-1", deleted.ID)

	gone, err := repo.Delete(ctx, "cat-1")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestMemoryCategoryProductCountIsComputed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	// Seeded count is stale on purpose; reads must override it.
	category := &models.Category{ID: "cat-1", Name: "Blankets", Slug: "blankets", ProductCount: 99}
	require.NoError(t, store.Categories().Create(ctx, category))

	catID := "cat-1"
	require.NoError(t, store.Products().Create(ctx, &models.Product{ID: "p1", Name: "Throw", Slug: "throw", CategoryID: &catID}))
	require.NoError(t, store.Products().Create(ctx, &models.Product{ID: "p2", Name: "Quilt", Slug: "quilt", CategoryID: &catID}))

	got, err := store.Categories().GetBySlug(ctx, "blankets")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ProductCount)

	all, err := store.Categories().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(2), all[0].ProductCount)
}

func TestMemoryProductSearchIsCaseInsensitiveSubstring(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := store.Products()

	require.NoError(t, repo.Create(ctx, &models.Product{ID: "p1", Name: "Cozy Bunny Amigurumi", Slug: "bunny"}))
	require.NoError(t, repo.Create(ctx, &models.Product{ID: "p2", Name: "Chunky Knit Throw", Slug: "throw"}))

	found, err := repo.Search(ctx, "BUNNY")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "p1", found[0].ID)

	none, err := repo.Search(ctx, "pottery")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryCategoryDeleteLeavesDanglingProducts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Categories().Create(ctx, &models.Category{ID: "cat-1", Name: "Wearables", Slug: "wearables"}))
	catID := "cat-1"
	require.NoError(t, store.Products().Create(ctx, &models.Product{ID: "p1", Name: "Beanie", Slug: "beanie", CategoryID: &catID}))

	_, err := store.Categories().Delete(ctx, "cat-1")
	require.NoError(t, err)

	// The product keeps its now-dangling reference.
	p, err := store.Products().GetByID(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, p.CategoryID)
	assert.Equal(t, "cat-1", *p.CategoryID)
}

func TestMemoryBlogGetByCategoryIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := store.Blog()

	require.NoError(t, repo.Create(ctx, &models.BlogPost{ID: "b1", Title: "One", Slug: "one", Category: "Tutorials"}))
	require.NoError(t, repo.Create(ctx, &models.BlogPost{ID: "b2", Title: "Two", Slug: "two", Category: "Tips"}))

	found, err := repo.GetByCategory(ctx, "tutorials")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "b1", found[0].ID)
}

func TestMemoryBlogCreateDefaultsPublishedAt(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Blog().Create(ctx, &models.BlogPost{ID: "b1", Title: "One", Slug: "one", Category: "Tips"}))

	got, err := store.Blog().GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.False(t, got.PublishedAt.IsZero())
}

func TestMemoryArtistSingleton(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := store.Artist()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Upsert(ctx, &models.ArtistProfile{ID: "a1", Name: "Geraldin", Bio: "maker"}))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Geraldin", got.Name)

	require.NoError(t, repo.Upsert(ctx, &models.ArtistProfile{ID: "a1", Name: "Geraldin", Bio: "updated"}))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Bio)
}

func TestMemoryProductPricesSurvive(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	price := decimal.RequireFromString("120.00")
	original := decimal.RequireFromString("150.00")
	require.NoError(t, store.Products().Create(ctx, &models.Product{
		ID: "p1", Name: "Throw", Slug: "throw", Price: price, OriginalPrice: &original,
	}))

	got, err := store.Products().GetBySlug(ctx, "throw")
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(price))
	require.NotNil(t, got.OriginalPrice)
	assert.True(t, got.OriginalPrice.Equal(original))
}
