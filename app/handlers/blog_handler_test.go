package handlers_test

import (
	"net/http"
	"testing"

	"github.com/naiastudio/storefront/app/handlers"
	"github.com/naiastudio/storefront/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogListCategoryFilterIsCaseInsensitive(t *testing.T) {
	router, store := newTestRouter(t)
	seedPost(t, store, "b1", "Yarn Guide", "yarn-guide", "Tutorials")
	seedPost(t, store, "b2", "Studio Notes", "studio-notes", "Behind the Scenes")

	rec := doJSON(t, router, "GET", "/api/blog?category=tutorials", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var posts []models.BlogPost
	decodeInto(t, rec, &posts)
	require.Len(t, posts, 1)
	assert.Equal(t, "b1", posts[0].ID)
}

func TestBlogListAllSentinelBypassesFilter(t *testing.T) {
	router, store := newTestRouter(t)
	seedPost(t, store, "b1", "Yarn Guide", "yarn-guide", "Tutorials")
	seedPost(t, store, "b2", "Studio Notes", "studio-notes", "Behind the Scenes")

	rec := doJSON(t, router, "GET", "/api/blog?category=all", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var posts []models.BlogPost
	decodeInto(t, rec, &posts)
	assert.Len(t, posts, 2)
}

func TestBlogFeaturedPromotesFirstPost(t *testing.T) {
	router, store := newTestRouter(t)
	seedPost(t, store, "b1", "Yarn Guide", "yarn-guide", "Tutorials")
	seedPost(t, store, "b2", "Studio Notes", "studio-notes", "Behind the Scenes")
	seedPost(t, store, "b3", "Care Tips", "care-tips", "Tips")

	rec := doJSON(t, router, "GET", "/api/blog?featured=1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var feed handlers.FeaturedFeed
	decodeInto(t, rec, &feed)
	require.NotNil(t, feed.Featured)
	assert.Equal(t, "b1", feed.Featured.ID)
	require.Len(t, feed.Posts, 2)
	assert.Equal(t, "b2", feed.Posts[0].ID)
}

func TestBlogFeaturedSuppressedByFilterOrSearch(t *testing.T) {
	router, store := newTestRouter(t)
	seedPost(t, store, "b1", "Yarn Guide", "yarn-guide", "Tutorials")
	seedPost(t, store, "b2", "More Yarn", "more-yarn", "Tutorials")

	rec := doJSON(t, router, "GET", "/api/blog?featured=1&category=tutorials", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var feed handlers.FeaturedFeed
	decodeInto(t, rec, &feed)
	assert.Nil(t, feed.Featured)
	assert.Len(t, feed.Posts, 2)

	rec = doJSON(t, router, "GET", "/api/blog?featured=1&search=yarn", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &feed)
	assert.Nil(t, feed.Featured)
	assert.Len(t, feed.Posts, 2)
}

func TestBlogSearchMatchesTitleAndExcerpt(t *testing.T) {
	router, store := newTestRouter(t)
	seedPost(t, store, "b1", "Yarn Guide", "yarn-guide", "Tutorials")
	seedPost(t, store, "b2", "Studio Notes", "studio-notes", "Behind the Scenes")

	rec := doJSON(t, router, "GET", "/api/blog?search=YARN", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var posts []models.BlogPost
	decodeInto(t, rec, &posts)
	require.Len(t, posts, 1)
	assert.Equal(t, "b1", posts[0].ID)
}

func TestBlogCreateRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/blog", map[string]interface{}{
		"title":    "Crochet & Knit Basics!",
		"excerpt":  "Getting started with hooks and needles.",
		"image":    "/images/blog/basics.jpg",
		"category": "Tutorials",
		"author":   "Geraldin",
		"readTime": "7 min read",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var created models.BlogPost
	decodeInto(t, rec, &created)
	assert.Equal(t, "crochet-and-knit-basics", created.Slug)
	assert.False(t, created.PublishedAt.IsZero())

	rec = doJSON(t, router, "GET", "/api/blog/crochet-and-knit-basics", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched models.BlogPost
	decodeInto(t, rec, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestBlogDeleteReturnsRemovedPost(t *testing.T) {
	router, store := newTestRouter(t)
	seedPost(t, store, "b1", "Yarn Guide", "yarn-guide", "Tutorials")

	rec := doJSON(t, router, "DELETE", "/api/blog/b1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var deleted models.BlogPost
	decodeInto(t, rec, &deleted)
	assert.Equal(t, "Yarn Guide", deleted.Title)

	rec = doJSON(t, router, "DELETE", "/api/blog/b1", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
