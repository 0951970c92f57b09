package model

import "time"

// Meteorite represents a single specimen in the catalog.
// Weight is in grams, price in the store's base currency.
type Meteorite struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	Weight      *float64  `json:"weight"`
	Price       *float64  `json:"price"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}
