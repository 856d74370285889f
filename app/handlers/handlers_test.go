package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/naiastudio/storefront/app/models"
	"github.com/naiastudio/storefront/app/repositories"
	"github.com/naiastudio/storefront/app/routes"
	"github.com/naiastudio/storefront/app/utils/sessions"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*mux.Router, *repositories.MemoryStore) {
	t.Helper()

	store := repositories.NewMemoryStore()
	router := routes.NewRouter(routes.Deps{
		CategoryRepo: store.Categories(),
		ProductRepo:  store.Products(),
		BlogRepo:     store.Blog(),
		ArtistRepo:   store.Artist(),
		Sessions:     sessions.NewStore("test-session-key"),
	})
	return router, store
}

// doJSON issues a request against the router, optionally carrying cookies
// from a previous response (the cart session).
func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func seedCategory(t *testing.T, store *repositories.MemoryStore, id, name, slug string) *models.Category {
	t.Helper()
	category := &models.Category{ID: id, Name: name, Slug: slug}
	require.NoError(t, store.Categories().Create(context.Background(), category))
	return category
}

func seedProduct(t *testing.T, store *repositories.MemoryStore, id, name, slug, price string, categoryID *string) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:         id,
		Name:       name,
		Slug:       slug,
		Price:      decimal.RequireFromString(price),
		Image:      "/images/products/" + slug + ".jpg",
		CategoryID: categoryID,
	}
	require.NoError(t, store.Products().Create(context.Background(), product))
	return product
}

func seedPost(t *testing.T, store *repositories.MemoryStore, id, title, slug, category string) *models.BlogPost {
	t.Helper()
	post := &models.BlogPost{
		ID:       id,
		Title:    title,
		Slug:     slug,
		Excerpt:  title + " excerpt",
		Image:    "/images/blog/" + slug + ".jpg",
		Category: category,
		Author:   "Geraldin",
		ReadTime: "5 min read",
	}
	require.NoError(t, store.Blog().Create(context.Background(), post))
	return post
}
