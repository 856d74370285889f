package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Slug        string          `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	// OriginalPrice is the pre-discount price shown struck through on the
	// storefront; nil when the product has never been discounted.
	OriginalPrice *decimal.Decimal `gorm:"type:decimal(10,2)" json:"originalPrice,omitempty"`

	Image string `gorm:"size:255;not null" json:"image"`

	// CategoryID may dangle after its category is deleted; there is no
	// cascade and no referential check on category removal.
	CategoryID *string   `gorm:"size:36;index" json:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"-"`

	IsNew       bool `gorm:"default:false" json:"isNew"`
	IsSoldOut   bool `gorm:"default:false" json:"isSoldOut"`
	MadeToOrder bool `gorm:"default:false" json:"madeToOrder"`

	Materials        string `gorm:"size:255" json:"materials"`
	CareInstructions string `gorm:"size:255" json:"careInstructions"`
	Dimensions       string `gorm:"size:255" json:"dimensions"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
