package repositories

import (
	"context"

	"github.com/naiastudio/storefront/app/models"
)

type memoryUserRepository struct {
	store *MemoryStore
}

func (r *memoryUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.users = append(r.store.users, *user)
	return nil
}
