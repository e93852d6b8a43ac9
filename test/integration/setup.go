package integration

import (
	"compress/gzip"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"storefront/internal/auth"
	"storefront/internal/checkout"
	"storefront/internal/coupon"
	"storefront/internal/database/dbtest"
	"storefront/internal/handler"
	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/router"
	"storefront/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testSecret = "integration-test-secret"

// testServer is the fully wired API backed by real PostgreSQL and Redis containers.
type testServer struct {
	Handler   http.Handler
	DB        *dbtest.TestDB
	Redis     *redis.Client
	Orders    service.OrderService
	OrderRepo repository.OrderRepository
	Tokens    *auth.JWTService
}

// setupTestServer wires every layer the way cmd/api does, with coupons
// loaded from a temporary gzipped file.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := zerolog.Nop()
	ctx := context.Background()

	testDB := dbtest.Setup(t)
	rdb := dbtest.SetupRedis(t)

	couponFile := writeCouponFile(t, "SAVE10,10", "EID25,25", "broken line")
	coupons, err := coupon.NewCatalog(ctx, &coupon.CatalogConfig{FilePaths: []string{couponFile}}, coupon.NewFileLoader(logger), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = coupons.Close() })

	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)
	cartRepo := repository.NewCartRepository(rdb, time.Hour, logger)
	wishlistRepo := repository.NewWishlistRepository(rdb, logger)

	orderService := service.NewOrderService(orderRepo, coupons, checkout.DefaultPolicy(), nil, logger)
	tokens := auth.NewJWTService(testSecret, time.Hour)

	h := router.New(router.Handlers{
		Product:  handler.NewProductHandler(service.NewProductService(productRepo, logger), logger),
		Order:    handler.NewOrderHandler(orderService, logger),
		Cart:     handler.NewCartHandler(service.NewCartService(cartRepo, productRepo, logger), logger),
		Wishlist: handler.NewWishlistHandler(service.NewWishlistService(wishlistRepo, productRepo, logger), logger),
	}, tokens, logger)

	return &testServer{
		Handler:   h,
		DB:        testDB,
		Redis:     rdb,
		Orders:    orderService,
		OrderRepo: orderRepo,
		Tokens:    tokens,
	}
}

// bearer returns an Authorization header value for user.
func (s *testServer) bearer(t *testing.T, user *model.User) string {
	t.Helper()
	token, err := s.Tokens.Issue(user)
	require.NoError(t, err)
	return "Bearer " + token
}

func writeCouponFile(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "coupons.gz")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	gz := gzip.NewWriter(file)
	_, err = gz.Write([]byte(strings.Join(lines, "\n") + "\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	return path
}
