package models

// CartEntry represents one product held in a visitor's cart.
// The product data is a snapshot taken at add time, not a live reference:
// a catalog delete while the entry sits in the cart does not affect it.
type CartEntry struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"` // always 1 for digital goods
}

// CartView is the response shape returned for cart reads
type CartView struct {
	Items []CartEntry `json:"items"`
	Count int         `json:"count"`
	Total float64     `json:"total"`
}
