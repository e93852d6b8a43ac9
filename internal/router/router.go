package router

import (
	"net/http"

	"storefront/internal/auth"
	"storefront/internal/handler"
	"storefront/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Product  *handler.ProductHandler
	Order    *handler.OrderHandler
	Cart     *handler.CartHandler
	Wishlist *handler.WishlistHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, verifier auth.Verifier, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// RequestID -> Recovery -> Logging -> CORS
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.Product.List)
		r.Get("/products/{id}", h.Product.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(verifier, logger))

			r.Post("/orders", h.Order.Create)
			r.Get("/orders", h.Order.List)
			r.Get("/orders/{id}", h.Order.GetByID)

			r.Get("/cart", h.Cart.Get)
			r.Delete("/cart", h.Cart.Clear)
			r.Put("/cart/items/{productId}", h.Cart.PutItem)
			r.Delete("/cart/items/{productId}", h.Cart.RemoveItem)

			r.Get("/wishlist", h.Wishlist.Get)
			r.Post("/wishlist", h.Wishlist.Add)
			r.Delete("/wishlist/{productId}", h.Wishlist.Remove)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(logger))
				r.Patch("/admin/orders/{id}/status", h.Order.UpdateStatus)
			})
		})
	})

	return r
}
