package service

import (
	"context"

	"storefront/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for the product catalogue.
type ProductService interface {
	// List retrieves products with pagination and an optional category filter.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)
}

// OrderService defines operations for checkout and order management.
type OrderService interface {
	// PlaceOrder validates, prices and persists a checkout submission.
	PlaceOrder(ctx context.Context, user *model.User, req *model.OrderRequest) (*model.OrderConfirmation, error)

	// GetByID retrieves an order visible to user.
	GetByID(ctx context.Context, user *model.User, id uuid.UUID) (*model.Order, error)

	// ListForUser retrieves the user's own orders, newest first.
	ListForUser(ctx context.Context, user *model.User, limit, offset int) ([]model.Order, error)

	// UpdateStatus moves an order along its fulfilment lifecycle.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error)
}

// CartService defines operations on a user's server-side cart.
type CartService interface {
	Get(ctx context.Context, userID string) (*model.Cart, error)

	// PutItem sets the quantity of a product, priced from the catalogue.
	PutItem(ctx context.Context, userID, productID string, quantity int) (*model.Cart, error)

	RemoveItem(ctx context.Context, userID, productID string) (*model.Cart, error)
	Clear(ctx context.Context, userID string) error
}

// WishlistService defines operations on a user's wishlist.
type WishlistService interface {
	Get(ctx context.Context, userID string) (*model.Wishlist, error)
	Add(ctx context.Context, userID, productID string) (*model.Wishlist, error)
	Remove(ctx context.Context, userID, productID string) (*model.Wishlist, error)
}

func clampPage(limit, offset, defaultLimit int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
