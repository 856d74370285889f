package models

import "time"

type BlogPost struct {
	ID      string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title   string `gorm:"size:255;not null" json:"title"`
	Slug    string `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Excerpt string `gorm:"type:text;not null" json:"excerpt"`
	Content string `gorm:"type:text" json:"content,omitempty"`
	Image   string `gorm:"size:255;not null" json:"image"`

	// Category is free text, not a foreign key into categories.
	Category string `gorm:"size:100;not null" json:"category"`

	Author      string    `gorm:"size:100;not null" json:"author"`
	ReadTime    string    `gorm:"size:50;not null" json:"readTime"`
	PublishedAt time.Time `json:"publishedAt"`
}
