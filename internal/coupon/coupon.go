package coupon

import (
	"context"
)

// Coupon is a discount code and the percentage it takes off the subtotal.
type Coupon struct {
	Code    string
	Percent float64
}

// Catalog resolves coupon codes submitted at checkout.
type Catalog interface {
	// Lookup returns the coupon for code, or model.ErrInvalidCoupon.
	// Codes are matched case-insensitively.
	Lookup(ctx context.Context, code string) (*Coupon, error)

	// Close releases resources held by the catalog.
	Close() error
}

// CouponSet is an in-memory set of coupons keyed by upper-case code.
type CouponSet interface {
	// Get returns the coupon stored under code.
	Get(code string) (Coupon, bool)

	// Size returns the number of coupons in the set.
	Size() int
}

// Loader defines the interface for loading coupon files.
type Loader interface {
	// Load reads a gzipped coupon file and returns a CouponSet.
	Load(ctx context.Context, filePath string) (CouponSet, error)
}
