package repositories

import (
	"context"
	"strings"

	"github.com/naiastudio/storefront/app/models"
)

type memoryProductRepository struct {
	store *MemoryStore
}

func (r *memoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]models.Product, len(r.store.products))
	copy(out, r.store.products)
	return out, nil
}

func (r *memoryProductRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.products {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memoryProductRepository) GetByCategoryID(ctx context.Context, categoryID string) ([]models.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []models.Product
	for _, p := range r.store.products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryProductRepository) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	needle := strings.ToLower(keyword)
	var out []models.Product
	for _, p := range r.store.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryProductRepository) Create(ctx context.Context, product *models.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.products = append(r.store.products, *product)
	return nil
}

func (r *memoryProductRepository) Update(ctx context.Context, product *models.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, p := range r.store.products {
		if p.ID == product.ID {
			r.store.products[i] = *product
			return nil
		}
	}
	return nil
}

func (r *memoryProductRepository) Delete(ctx context.Context, id string) (*models.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, p := range r.store.products {
		if p.ID == id {
			r.store.products = append(r.store.products[:i], r.store.products[i+1:]...)
			return &p, nil
		}
	}
	return nil, nil
}
