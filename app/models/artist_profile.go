package models

// ArtistProfile is a singleton: the API only ever reads the first row.
type ArtistProfile struct {
	ID           string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Bio          string `gorm:"type:text;not null" json:"bio"`
	Story        string `gorm:"type:text" json:"story"`
	Image        string `gorm:"size:255" json:"image"`
	InstagramURL string `gorm:"size:255" json:"instagramUrl"`
	PinterestURL string `gorm:"size:255" json:"pinterestUrl"`
	EtsyURL      string `gorm:"size:255" json:"etsyUrl"`
}
