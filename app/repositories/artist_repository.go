package repositories

import (
	"context"

	"github.com/naiastudio/storefront/app/models"
	"gorm.io/gorm"
)

type ArtistRepositoryImpl interface {
	Get(ctx context.Context) (*models.ArtistProfile, error)
	Upsert(ctx context.Context, profile *models.ArtistProfile) error
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepositoryImpl {
	return &artistRepository{db: db}
}

// Get returns the first profile row; the table is expected to hold one.
func (r *artistRepository) Get(ctx context.Context) (*models.ArtistProfile, error) {
	var profile models.ArtistProfile
	err := r.db.WithContext(ctx).First(&profile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *artistRepository) Upsert(ctx context.Context, profile *models.ArtistProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
