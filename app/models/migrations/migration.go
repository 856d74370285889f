package migrations

import (
	"github.com/naiastudio/storefront/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}, &models.BlogPost{}, &models.ArtistProfile{})
}
