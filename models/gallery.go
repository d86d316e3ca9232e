package models

import "time"

// GalleryItem is a showcase entry on the public gallery page.
type GalleryItem struct {
	ID           string    `bson:"id" json:"id"`
	Title        string    `bson:"title,omitempty" json:"title,omitempty"`
	Category     string    `bson:"category" json:"category"`
	ImageURL     string    `bson:"image_url" json:"image_url"`
	Type         string    `bson:"type" json:"type"` // "image" or "video"
	DisplayOrder int       `bson:"display_order" json:"display_order"`
	Active       bool      `bson:"active" json:"active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// GalleryItemInput is the request body for adding a gallery item.
type GalleryItemInput struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
	Type     string `json:"type"`
}
