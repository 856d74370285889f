package handlers_test

import (
	"net/http"
	"testing"

	"github.com/naiastudio/storefront/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductListFiltersByCategory(t *testing.T) {
	router, store := newTestRouter(t)
	amigurumi := seedCategory(t, store, "cat-1", "Amigurumi", "amigurumi")
	blankets := seedCategory(t, store, "cat-2", "Blankets", "blankets")
	seedProduct(t, store, "p1", "Cozy Bunny", "cozy-bunny", "45.00", &amigurumi.ID)
	seedProduct(t, store, "p2", "Chunky Throw", "chunky-throw", "120.00", &blankets.ID)

	rec := doJSON(t, router, "GET", "/api/products?category=amigurumi", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	decodeInto(t, rec, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestProductListUnknownCategoryFallsBackToAll(t *testing.T) {
	router, store := newTestRouter(t)
	amigurumi := seedCategory(t, store, "cat-1", "Amigurumi", "amigurumi")
	seedProduct(t, store, "p1", "Cozy Bunny", "cozy-bunny", "45.00", &amigurumi.ID)
	seedProduct(t, store, "p2", "Chunky Throw", "chunky-throw", "120.00", nil)

	rec := doJSON(t, router, "GET", "/api/products?category=pottery", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	decodeInto(t, rec, &products)
	assert.Len(t, products, 2)
}

func TestProductListSearchWinsOverCategory(t *testing.T) {
	router, store := newTestRouter(t)
	amigurumi := seedCategory(t, store, "cat-1", "Amigurumi", "amigurumi")
	blankets := seedCategory(t, store, "cat-2", "Blankets", "blankets")
	seedProduct(t, store, "p1", "Cozy Bunny", "cozy-bunny", "45.00", &amigurumi.ID)
	seedProduct(t, store, "p2", "Chunky Throw", "chunky-throw", "120.00", &blankets.ID)

	rec := doJSON(t, router, "GET", "/api/products?category=amigurumi&search=throw", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	decodeInto(t, rec, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "p2", products[0].ID)
}

func TestProductListEmptySearchEqualsNoSearch(t *testing.T) {
	router, store := newTestRouter(t)
	seedProduct(t, store, "p1", "Cozy Bunny", "cozy-bunny", "45.00", nil)
	seedProduct(t, store, "p2", "Chunky Throw", "chunky-throw", "120.00", nil)

	plain := doJSON(t, router, "GET", "/api/products", nil, nil)
	empty := doJSON(t, router, "GET", "/api/products?search=", nil, nil)
	require.Equal(t, http.StatusOK, plain.Code)
	require.Equal(t, http.StatusOK, empty.Code)
	assert.JSONEq(t, plain.Body.String(), empty.Body.String())
}

func TestProductListSortByPrice(t *testing.T) {
	router, store := newTestRouter(t)
	seedProduct(t, store, "p1", "Mid", "mid", "52.00", nil)
	seedProduct(t, store, "p2", "Cheap", "cheap", "18.00", nil)
	seedProduct(t, store, "p3", "Pricey", "pricey", "120.00", nil)

	rec := doJSON(t, router, "GET", "/api/products?sort=price-low", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	decodeInto(t, rec, &products)
	require.Len(t, products, 3)
	assert.Equal(t, []string{"p2", "p1", "p3"}, []string{products[0].ID, products[1].ID, products[2].ID})

	rec = doJSON(t, router, "GET", "/api/products?sort=price-high", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &products)
	assert.Equal(t, []string{"p3", "p1", "p2"}, []string{products[0].ID, products[1].ID, products[2].ID})
}

func TestProductCreateRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/products", map[string]interface{}{
		"name":  "Cozy Bunny Amigurumi",
		"price": "45.00",
		"image": "/images/products/bunny.jpg",
		"isNew": true,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var created models.Product
	decodeInto(t, rec, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "cozy-bunny-amigurumi", created.Slug)
	assert.True(t, created.IsNew)

	rec = doJSON(t, router, "GET", "/api/products/cozy-bunny-amigurumi", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched models.Product
	decodeInto(t, rec, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "45.00", fetched.Price.StringFixed(2))
}

func TestProductCreateRejectsNegativePrice(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/products", map[string]interface{}{
		"name":  "Broken",
		"price": "-1.00",
		"image": "/images/x.jpg",
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decodeInto(t, rec, &body)
	assert.Contains(t, body["error"], "price")
}

func TestProductUpdatePartialKeepsOtherFields(t *testing.T) {
	router, store := newTestRouter(t)
	seedProduct(t, store, "p1", "Cozy Bunny", "cozy-bunny", "45.00", nil)

	rec := doJSON(t, router, "PATCH", "/api/products/p1", map[string]interface{}{
		"isSoldOut": true,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Product
	decodeInto(t, rec, &updated)
	assert.True(t, updated.IsSoldOut)
	assert.Equal(t, "Cozy Bunny", updated.Name)
	assert.Equal(t, "45.00", updated.Price.StringFixed(2))
}

func TestProductDeleteReturnsRemovedRow(t *testing.T) {
	router, store := newTestRouter(t)
	seedProduct(t, store, "p1", "Cozy Bunny", "cozy-bunny", "45.00", nil)

	rec := doJSON(t, router, "DELETE", "/api/products/p1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var deleted models.Product
	decodeInto(t, rec, &deleted)
	assert.Equal(t, "Cozy Bunny", deleted.Name)

	rec = doJSON(t, router, "GET", "/api/products/cozy-bunny", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
