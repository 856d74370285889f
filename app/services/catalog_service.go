package services

import (
	"sort"
	"strings"

	"github.com/naiastudio/storefront/app/models"
)

// Sort keys accepted by the shop listing.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNewest    = "newest"
)

// CategoryBypass skips category filtering on the blog listing.
const CategoryBypass = "all"

// SearchProducts keeps products whose name or category display name contains
// the query, case-insensitively. An empty query matches everything.
// categoryNames maps category id to display name.
func SearchProducts(products []models.Product, categoryNames map[string]string, query string) []models.Product {
	if query == "" {
		return products
	}
	needle := strings.ToLower(query)
	var out []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
			continue
		}
		if p.CategoryID != nil {
			if name, ok := categoryNames[*p.CategoryID]; ok && strings.Contains(strings.ToLower(name), needle) {
				out = append(out, p)
			}
		}
	}
	return out
}

// SearchPosts keeps posts whose title or excerpt contains the query,
// case-insensitively. An empty query matches everything.
func SearchPosts(posts []models.BlogPost, query string) []models.BlogPost {
	if query == "" {
		return posts
	}
	needle := strings.ToLower(query)
	var out []models.BlogPost
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Excerpt), needle) {
			out = append(out, p)
		}
	}
	return out
}

// FilterPostsByCategory matches the free-text post category exactly but
// case-insensitively. The "all" sentinel (or an empty value) bypasses
// filtering.
func FilterPostsByCategory(posts []models.BlogPost, category string) []models.BlogPost {
	if category == "" || strings.EqualFold(category, CategoryBypass) {
		return posts
	}
	var out []models.BlogPost
	for _, p := range posts {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// SortProducts orders a copy of products by the given key. All orders are
// stable: ties keep their fetch order. "featured" and unknown keys preserve
// the input order unchanged. "newest" is a stable partition on the isNew
// flag, flagged products first, not a date sort.
func SortProducts(products []models.Product, key string) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.LessThan(out[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.GreaterThan(out[j].Price)
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].IsNew && !out[j].IsNew
		})
	}
	return out
}

// SplitFeatured promotes the first post to the featured slot, excluding it
// from the regular grid. Any active category filter or search suppresses the
// slot entirely and the grid shows the full list.
func SplitFeatured(posts []models.BlogPost, categoryActive, searchActive bool) (*models.BlogPost, []models.BlogPost) {
	if categoryActive || searchActive || len(posts) == 0 {
		return nil, posts
	}
	featured := posts[0]
	return &featured, posts[1:]
}
