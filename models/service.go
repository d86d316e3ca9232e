package models

import "time"

// Service is a salon service offered for booking. Duration is in minutes.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Duration    int       `bson:"duration" json:"duration"`
	Price       float64   `bson:"price" json:"price"`
	ImageURL    string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// ServiceInput is the request body for creating or updating a service.
type ServiceInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}
