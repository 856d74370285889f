package repositories

import (
	"sync"

	"github.com/naiastudio/storefront/app/models"
)

// MemoryStore backs the repository interfaces with plain in-memory rows. It
// serves the test suite and the STORE=memory mode; rows keep insertion order
// so list results match the relational adapter's fetch order.
type MemoryStore struct {
	mu         sync.Mutex
	categories []models.Category
	products   []models.Product
	posts      []models.BlogPost
	artist     *models.ArtistProfile
	users      []models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Categories() CategoryRepositoryImpl {
	return &memoryCategoryRepository{store: s}
}

func (s *MemoryStore) Products() ProductRepositoryImpl {
	return &memoryProductRepository{store: s}
}

func (s *MemoryStore) Blog() BlogRepositoryImpl {
	return &memoryBlogRepository{store: s}
}

func (s *MemoryStore) Artist() ArtistRepositoryImpl {
	return &memoryArtistRepository{store: s}
}

func (s *MemoryStore) Users() UserRepositoryImpl {
	return &memoryUserRepository{store: s}
}

// countProductsLocked returns the live reference count for a category.
// Callers must hold s.mu.
func (s *MemoryStore) countProductsLocked(categoryID string) int64 {
	var n int64
	for _, p := range s.products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			n++
		}
	}
	return n
}
