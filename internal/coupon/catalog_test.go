package coupon

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T, files ...[]string) Catalog {
	t.Helper()
	paths := make([]string, 0, len(files))
	for _, lines := range files {
		paths = append(paths, createTestCouponFile(t, "coupons.gz", lines))
	}

	c, err := NewCatalog(context.Background(), &CatalogConfig{FilePaths: paths}, NewFileLoader(zerolog.Nop()), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCatalog_Lookup(t *testing.T) {
	c := newTestCatalog(t,
		[]string{"SAVE10,10", "EID25,25"},
		[]string{"EID25,30", "WINTER15,15"},
	)

	tests := []struct {
		name            string
		code            string
		expectedPercent float64
		expectedErr     error
	}{
		{name: "Found in first file", code: "SAVE10", expectedPercent: 10},
		{name: "Lower case matches", code: "save10", expectedPercent: 10},
		{name: "Surrounding whitespace ignored", code: "  winter15 ", expectedPercent: 15},
		{name: "Highest percent wins across files", code: "EID25", expectedPercent: 30},
		{name: "Unknown code", code: "NOPE1234", expectedErr: model.ErrInvalidCoupon},
		{name: "Too short", code: "ABC", expectedErr: model.ErrInvalidCoupon},
		{name: "Too long", code: "ABCDEFGHIJKLMNOPQRSTU", expectedErr: model.ErrInvalidCoupon},
		{name: "Empty", code: "", expectedErr: model.ErrInvalidCoupon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coupon, err := c.Lookup(context.Background(), tt.code)

			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				assert.Nil(t, coupon)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedPercent, coupon.Percent)
		})
	}
}

func TestNewCatalog_NoFiles(t *testing.T) {
	c, err := NewCatalog(context.Background(), nil, NewFileLoader(zerolog.Nop()), zerolog.Nop())
	require.NoError(t, err)

	_, err = c.Lookup(context.Background(), "SAVE10")

	assert.Equal(t, model.ErrInvalidCoupon, err)
}

func TestNewCatalog_LoadFailure(t *testing.T) {
	loader := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) (CouponSet, error) {
			if filePath == "broken.gz" {
				return nil, errors.New("corrupt file")
			}
			return setWith(Coupon{Code: "SAVE10", Percent: 10}), nil
		},
	}

	c, err := NewCatalog(context.Background(), &CatalogConfig{FilePaths: []string{"ok.gz", "broken.gz"}}, loader, zerolog.Nop())

	assert.Nil(t, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.gz")
}

func TestNewStaticCatalog(t *testing.T) {
	c := NewStaticCatalog(zerolog.Nop(), Coupon{Code: "welcome5", Percent: 5})

	coupon, err := c.Lookup(context.Background(), "WELCOME5")

	require.NoError(t, err)
	assert.Equal(t, "WELCOME5", coupon.Code)
	assert.Equal(t, 5.0, coupon.Percent)
}

func TestCatalog_Lookup_ContextCancelled(t *testing.T) {
	c := NewStaticCatalog(zerolog.Nop(), Coupon{Code: "SAVE10", Percent: 10})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Lookup(ctx, "SAVE10")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCatalog_ConcurrentLookups(t *testing.T) {
	c := NewStaticCatalog(zerolog.Nop(), Coupon{Code: "SAVE10", Percent: 10})

	done := make(chan struct{})
	for i := 0; i < 16; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 200; j++ {
				coupon, err := c.Lookup(context.Background(), "save10")
				assert.NoError(t, err)
				assert.Equal(t, 10.0, coupon.Percent)
			}
		}()
	}
	for i := 0; i < 16; i++ {
		<-done
	}
}
