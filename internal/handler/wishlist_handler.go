package handler

import (
	"net/http"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// WishlistHandler handles the authenticated user's wishlist.
type WishlistHandler struct {
	service service.WishlistService
	logger  zerolog.Logger
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(service service.WishlistService, logger zerolog.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		logger:  logger.With().Str("handler", "wishlist").Logger(),
	}
}

// Get handles GET /api/wishlist.
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	wishlist, err := h.service.Get(r.Context(), user.ID)
	if err != nil {
		respondError(w, err, "failed to retrieve wishlist", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, wishlist)
}

// Add handles POST /api/wishlist.
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	var req model.WishlistRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, err, "", h.logger)
		return
	}

	wishlist, err := h.service.Add(r.Context(), user.ID, req.ProductID)
	if err != nil {
		respondError(w, err, "failed to update wishlist", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, wishlist)
}

// Remove handles DELETE /api/wishlist/{productId}.
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	wishlist, err := h.service.Remove(r.Context(), user.ID, chi.URLParam(r, "productId"))
	if err != nil {
		respondError(w, err, "failed to update wishlist", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, wishlist)
}
