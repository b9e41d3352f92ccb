package domain

import "time"

type MenuItem struct {
	ID          string    `json:"id"`
	VendorID    string    `json:"vendorId"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CartItem is a menu item plus a quantity. Carts live in the customer's
// browsing session only and are never persisted.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}
