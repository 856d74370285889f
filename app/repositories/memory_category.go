package repositories

import (
	"context"

	"github.com/naiastudio/storefront/app/models"
)

type memoryCategoryRepository struct {
	store *MemoryStore
}

func (r *memoryCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]models.Category, len(r.store.categories))
	for i, c := range r.store.categories {
		c.ProductCount = r.store.countProductsLocked(c.ID)
		out[i] = c
	}
	return out, nil
}

func (r *memoryCategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.categories {
		if c.Slug == slug {
			c.ProductCount = r.store.countProductsLocked(c.ID)
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memoryCategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.categories {
		if c.ID == id {
			c.ProductCount = r.store.countProductsLocked(c.ID)
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memoryCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.categories = append(r.store.categories, *category)
	return nil
}

func (r *memoryCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, c := range r.store.categories {
		if c.ID == category.ID {
			r.store.categories[i] = *category
			return nil
		}
	}
	return nil
}

func (r *memoryCategoryRepository) Delete(ctx context.Context, id string) (*models.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, c := range r.store.categories {
		if c.ID == id {
			r.store.categories = append(r.store.categories[:i], r.store.categories[i+1:]...)
			return &c, nil
		}
	}
	return nil, nil
}
