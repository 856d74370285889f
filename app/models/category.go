package models

import "time"

type Category struct {
	ID    string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name  string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Slug  string `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Image string `gorm:"size:255" json:"image"`

	// ProductCount is recomputed from live product references on read; the
	// stored value is display-only, never authoritative.
	ProductCount int64 `gorm:"default:0" json:"productCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
