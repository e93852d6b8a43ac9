package model

// CartItem is one product line in a user's cart.
type CartItem struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// Cart is the server-side cart of a single user.
type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// Wishlist lists the products a user has saved.
type Wishlist struct {
	ProductIDs []string  `json:"productIds"`
	Products   []Product `json:"products"`
}

// WishlistRequest is the payload for adding a product to the wishlist.
type WishlistRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// CartItemRequest is the payload for setting the quantity of a cart line.
type CartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=1"`
}
