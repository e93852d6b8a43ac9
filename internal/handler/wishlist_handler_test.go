package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"storefront/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func wishlistRouter(h *WishlistHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/wishlist", h.Get)
	r.Post("/api/wishlist", h.Add)
	r.Delete("/api/wishlist/{productId}", h.Remove)
	return r
}

func TestWishlistHandler_Get(t *testing.T) {
	mockService := new(MockWishlistService)
	h := NewWishlistHandler(mockService, zerolog.Nop())
	wishlist := &model.Wishlist{
		ProductIDs: []string{"P001"},
		Products:   []model.Product{{ID: "P001", Name: "Jamdani Saree", Price: 4500}},
	}

	mockService.On("Get", mock.Anything, testUser.ID).Return(wishlist, nil)

	w := serve(wishlistRouter(h), http.MethodGet, "/api/wishlist", "", testUser)

	assert.Equal(t, http.StatusOK, w.Code)
	var got model.Wishlist
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, wishlist.ProductIDs, got.ProductIDs)
	mockService.AssertExpectations(t)
}

func TestWishlistHandler_Add(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			body:           `{"productId":"P002"}`,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Unknown product",
			body:           `{"productId":"P002"}`,
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Missing product ID",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockWishlistService)
			h := NewWishlistHandler(mockService, zerolog.Nop())

			if tt.expectService {
				var wishlist *model.Wishlist
				if tt.mockError == nil {
					wishlist = &model.Wishlist{ProductIDs: []string{"P002"}, Products: []model.Product{}}
				}
				mockService.On("Add", mock.Anything, testUser.ID, "P002").Return(wishlist, tt.mockError)
			}

			w := serve(wishlistRouter(h), http.MethodPost, "/api/wishlist", tt.body, testUser)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestWishlistHandler_Remove(t *testing.T) {
	mockService := new(MockWishlistService)
	h := NewWishlistHandler(mockService, zerolog.Nop())

	mockService.On("Remove", mock.Anything, testUser.ID, "P001").
		Return(&model.Wishlist{ProductIDs: []string{}, Products: []model.Product{}}, nil)

	w := serve(wishlistRouter(h), http.MethodDelete, "/api/wishlist/P001", "", testUser)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
