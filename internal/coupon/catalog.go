package coupon

import (
	"context"
	"fmt"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// catalog implements Catalog over a fixed list of coupon sets.
// The sets are read-only after construction.
type catalog struct {
	couponSets []CouponSet
	logger     zerolog.Logger
}

// CatalogConfig holds configuration for the coupon catalog.
type CatalogConfig struct {
	// FilePaths is the list of coupon files to load. Empty means no coupons.
	FilePaths []string
}

// NewCatalog loads every configured coupon file concurrently.
// Any load failure aborts construction.
func NewCatalog(ctx context.Context, config *CatalogConfig, loader Loader, logger zerolog.Logger) (Catalog, error) {
	if config == nil {
		config = &CatalogConfig{}
	}

	logger = logger.With().Str("component", "coupon-catalog").Logger()

	logger.Info().
		Int("file_count", len(config.FilePaths)).
		Msg("initialising coupon catalog")

	sets := make([]CouponSet, len(config.FilePaths))
	g, gctx := errgroup.WithContext(ctx)

	for i, filePath := range config.FilePaths {
		i, filePath := i, filePath
		g.Go(func() error {
			set, err := loader.Load(gctx, filePath)
			if err != nil {
				logger.Error().
					Err(err).
					Str("file", filePath).
					Msg("failed to load coupon file")
				return fmt.Errorf("failed to load coupon file %s: %w", filePath, err)
			}
			sets[i] = set
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	totalCoupons := 0
	for _, set := range sets {
		totalCoupons += set.Size()
	}

	logger.Info().
		Int("total_coupons", totalCoupons).
		Msg("coupon catalog initialised successfully")

	return &catalog{
		couponSets: sets,
		logger:     logger,
	}, nil
}

// NewStaticCatalog builds a catalog from coupons already in memory.
func NewStaticCatalog(logger zerolog.Logger, coupons ...Coupon) Catalog {
	set := NewMapCouponSet(len(coupons)).(*mapCouponSet)
	for _, c := range coupons {
		c.Code = normaliseCode(c.Code)
		set.Add(c)
	}
	return &catalog{
		couponSets: []CouponSet{set},
		logger:     logger.With().Str("component", "coupon-catalog").Logger(),
	}
}

// Lookup finds code across all coupon sets. When several sets carry the
// same code, the highest percentage wins.
func (c *catalog) Lookup(ctx context.Context, code string) (*Coupon, error) {
	code = normaliseCode(code)
	if !validCodeLength(code) {
		c.logger.Debug().
			Str("coupon_code", code).
			Int("length", len(code)).
			Msg("coupon code length invalid")
		return nil, model.ErrInvalidCoupon
	}

	var best *Coupon
	for _, set := range c.couponSets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		found, ok := set.Get(code)
		if !ok {
			continue
		}
		if best == nil || found.Percent > best.Percent {
			best = &found
		}
	}

	if best == nil {
		c.logger.Debug().Str("coupon_code", code).Msg("coupon code not found")
		return nil, model.ErrInvalidCoupon
	}

	return best, nil
}

// Close releases resources held by the catalog.
func (c *catalog) Close() error {
	c.couponSets = nil

	c.logger.Info().Msg("coupon catalog closed")

	return nil
}
