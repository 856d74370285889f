package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/naiastudio/storefront/app/models"
)

type memoryBlogRepository struct {
	store *MemoryStore
}

func (r *memoryBlogRepository) GetAll(ctx context.Context) ([]models.BlogPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]models.BlogPost, len(r.store.posts))
	copy(out, r.store.posts)
	return out, nil
}

func (r *memoryBlogRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.posts {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memoryBlogRepository) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.posts {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memoryBlogRepository) GetByCategory(ctx context.Context, category string) ([]models.BlogPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []models.BlogPost
	for _, p := range r.store.posts {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryBlogRepository) Create(ctx context.Context, post *models.BlogPost) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if post.PublishedAt.IsZero() {
		post.PublishedAt = time.Now()
	}
	r.store.posts = append(r.store.posts, *post)
	return nil
}

func (r *memoryBlogRepository) Update(ctx context.Context, post *models.BlogPost) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, p := range r.store.posts {
		if p.ID == post.ID {
			r.store.posts[i] = *post
			return nil
		}
	}
	return nil
}

func (r *memoryBlogRepository) Delete(ctx context.Context, id string) (*models.BlogPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, p := range r.store.posts {
		if p.ID == id {
			r.store.posts = append(r.store.posts[:i], r.store.posts[i+1:]...)
			return &p, nil
		}
	}
	return nil, nil
}
