package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const wishlistKeyPrefix = "wishlist:"

// WishlistRepository stores per-user wishlists in Redis.
type WishlistRepository interface {
	// List returns the saved product IDs in ascending order.
	List(ctx context.Context, userID string) ([]string, error)
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) (bool, error)
}

type wishlistRepository struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewWishlistRepository creates a Redis-backed wishlist repository.
func NewWishlistRepository(client *redis.Client, logger zerolog.Logger) WishlistRepository {
	return &wishlistRepository{
		client: client,
		logger: logger.With().Str("repository", "wishlist").Logger(),
	}
}

func (r *wishlistRepository) List(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, wishlistKeyPrefix+userID).Result()
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to read wishlist")
		return nil, fmt.Errorf("failed to read wishlist: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *wishlistRepository) Add(ctx context.Context, userID, productID string) error {
	if err := r.client.SAdd(ctx, wishlistKeyPrefix+userID, productID).Err(); err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID).
			Str("product_id", productID).
			Msg("failed to add wishlist item")
		return fmt.Errorf("failed to add wishlist item: %w", err)
	}
	return nil
}

func (r *wishlistRepository) Remove(ctx context.Context, userID, productID string) (bool, error) {
	removed, err := r.client.SRem(ctx, wishlistKeyPrefix+userID, productID).Result()
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID).
			Str("product_id", productID).
			Msg("failed to remove wishlist item")
		return false, fmt.Errorf("failed to remove wishlist item: %w", err)
	}
	return removed > 0, nil
}
