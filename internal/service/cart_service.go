package service

import (
	"context"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// cartService implements CartService. Prices always come from the catalogue.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, logger zerolog.Logger) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

func (s *cartService) Get(ctx context.Context, userID string) (*model.Cart, error) {
	items, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return newCart(items), nil
}

func (s *cartService) PutItem(ctx context.Context, userID, productID string, quantity int) (*model.Cart, error) {
	if quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		s.logger.Debug().Str("product_id", productID).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	item := model.CartItem{
		ProductID: product.ID,
		Quantity:  quantity,
		Price:     product.Price,
	}
	if err := s.cartRepo.SetItem(ctx, userID, item); err != nil {
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}

	s.logger.Debug().
		Str("user_id", userID).
		Str("product_id", productID).
		Int("quantity", quantity).
		Msg("cart item set")

	return s.Get(ctx, userID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, productID string) (*model.Cart, error) {
	removed, err := s.cartRepo.RemoveItem(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}

	s.logger.Debug().
		Str("user_id", userID).
		Str("product_id", productID).
		Bool("removed", removed).
		Msg("cart item removed")

	return s.Get(ctx, userID)
}

func (s *cartService) Clear(ctx context.Context, userID string) error {
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func newCart(items []model.CartItem) *model.Cart {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return &model.Cart{
		Items: items,
		Total: total.Round(2).InexactFloat64(),
	}
}
