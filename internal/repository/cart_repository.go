package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"storefront/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const cartKeyPrefix = "cart:"

// CartRepository stores per-user carts in Redis.
type CartRepository interface {
	// Get returns the cart lines ordered by product ID.
	Get(ctx context.Context, userID string) ([]model.CartItem, error)

	// SetItem creates or replaces a cart line and refreshes the cart TTL.
	SetItem(ctx context.Context, userID string, item model.CartItem) error

	// RemoveItem deletes a cart line. It reports whether the line existed.
	RemoveItem(ctx context.Context, userID, productID string) (bool, error)

	// Clear deletes the whole cart.
	Clear(ctx context.Context, userID string) error
}

type cartRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewCartRepository creates a Redis-backed cart repository. Carts expire
// after ttl of inactivity; zero disables expiry.
func NewCartRepository(client *redis.Client, ttl time.Duration, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

func (r *cartRepository) Get(ctx context.Context, userID string) ([]model.CartItem, error) {
	fields, err := r.client.HGetAll(ctx, cartKeyPrefix+userID).Result()
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to read cart")
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	items := make([]model.CartItem, 0, len(fields))
	for productID, raw := range fields {
		var item model.CartItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			r.logger.Warn().Err(err).
				Str("user_id", userID).
				Str("product_id", productID).
				Msg("dropping unreadable cart line")
			continue
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

	return items, nil
}

func (r *cartRepository) SetItem(ctx context.Context, userID string, item model.CartItem) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to encode cart item: %w", err)
	}

	key := cartKeyPrefix + userID
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, item.ProductID, raw)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID).
			Str("product_id", item.ProductID).
			Msg("failed to write cart item")
		return fmt.Errorf("failed to write cart item: %w", err)
	}

	return nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, userID, productID string) (bool, error) {
	removed, err := r.client.HDel(ctx, cartKeyPrefix+userID, productID).Result()
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID).
			Str("product_id", productID).
			Msg("failed to remove cart item")
		return false, fmt.Errorf("failed to remove cart item: %w", err)
	}
	return removed > 0, nil
}

func (r *cartRepository) Clear(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, cartKeyPrefix+userID).Err(); err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
