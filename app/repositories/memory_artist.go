package repositories

import (
	"context"

	"github.com/naiastudio/storefront/app/models"
)

type memoryArtistRepository struct {
	store *MemoryStore
}

func (r *memoryArtistRepository) Get(ctx context.Context) (*models.ArtistProfile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.artist == nil {
		return nil, nil
	}
	profile := *r.store.artist
	return &profile, nil
}

func (r *memoryArtistRepository) Upsert(ctx context.Context, profile *models.ArtistProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *profile
	r.store.artist = &stored
	return nil
}
