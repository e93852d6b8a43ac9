package service

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
)

// wishlistService implements WishlistService.
type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	logger       zerolog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository, logger zerolog.Logger) WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		logger:       logger.With().Str("service", "wishlist").Logger(),
	}
}

// Get returns the saved product IDs together with the products still in the catalogue.
func (s *wishlistService) Get(ctx context.Context, userID string) (*model.Wishlist, error) {
	ids, err := s.wishlistRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist products: %w", err)
	}

	if ids == nil {
		ids = []string{}
	}
	if products == nil {
		products = []model.Product{}
	}

	return &model.Wishlist{ProductIDs: ids, Products: products}, nil
}

func (s *wishlistService) Add(ctx context.Context, userID, productID string) (*model.Wishlist, error) {
	if err := s.productRepo.ValidateProductsExist(ctx, []string{productID}); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to check product: %w", err)
	}

	if err := s.wishlistRepo.Add(ctx, userID, productID); err != nil {
		return nil, fmt.Errorf("failed to update wishlist: %w", err)
	}

	s.logger.Debug().Str("user_id", userID).Str("product_id", productID).Msg("wishlist item added")

	return s.Get(ctx, userID)
}

func (s *wishlistService) Remove(ctx context.Context, userID, productID string) (*model.Wishlist, error) {
	if _, err := s.wishlistRepo.Remove(ctx, userID, productID); err != nil {
		return nil, fmt.Errorf("failed to update wishlist: %w", err)
	}
	return s.Get(ctx, userID)
}
