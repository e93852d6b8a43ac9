package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/auth"
	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	logger := zerolog.Nop()
	tokens := auth.NewJWTService("middleware-test-secret", time.Hour)
	user := &model.User{ID: "user-1", Email: "rahim@example.com", Role: model.RoleCustomer}
	validToken, err := tokens.Issue(user)
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectHandler  bool
	}{
		{
			name:           "Valid token",
			header:         "Bearer " + validToken,
			expectedStatus: http.StatusOK,
			expectHandler:  true,
		},
		{
			name:           "Missing header",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong scheme",
			header:         "Basic " + validToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Empty bearer",
			header:         "Bearer   ",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Garbage token",
			header:         "Bearer not-a-jwt",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen *model.User
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = UserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := Authenticate(tokens, logger)(testHandler)

			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectHandler {
				require.NotNil(t, seen)
				assert.Equal(t, user.ID, seen.ID)
				assert.Equal(t, user.Role, seen.Role)
			} else {
				assert.Nil(t, seen)
				assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String())
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		user           *model.User
		expectedStatus int
		expectHandler  bool
	}{
		{
			name:           "Admin passes",
			user:           &model.User{ID: "admin-1", Role: model.RoleAdmin},
			expectedStatus: http.StatusOK,
			expectHandler:  true,
		},
		{
			name:           "Customer forbidden",
			user:           &model.User{ID: "user-1", Role: model.RoleCustomer},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Anonymous unauthorised",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := RequireAdmin(logger)(testHandler)

			req := httptest.NewRequest(http.MethodPatch, "/api/admin/orders/x/status", nil)
			if tt.user != nil {
				req = req.WithContext(WithUser(req.Context(), tt.user))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectHandler, handlerCalled)
		})
	}
}

func TestUserFromContext_Empty(t *testing.T) {
	assert.Nil(t, UserFromContext(context.Background()))
}
