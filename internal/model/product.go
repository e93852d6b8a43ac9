package model

import "time"

// Product represents an item in the storefront catalogue.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProductFilter narrows a catalogue listing.
type ProductFilter struct {
	Category string
	Limit    int
	Offset   int
}
