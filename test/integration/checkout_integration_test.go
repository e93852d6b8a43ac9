package integration

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"storefront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrder_ConcurrentCheckouts(t *testing.T) {
	srv := setupTestServer(t)
	srv.DB.Truncate(t)
	ctx := context.Background()

	const n = 20
	numbers := make([]string, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := &model.OrderRequest{
				Items: []model.OrderItemRequest{
					{ProductID: "P006", Name: "Sylhet Tea 500g", Quantity: i + 1, Price: 480},
				},
				PaymentMethod:  model.PaymentMethodNagad,
				PaymentDetails: json.RawMessage(`{"mobileNumber":"01812345678"}`),
				ShippingAddress: model.ShippingAddress{
					FullName: "Rahim Uddin",
					Phone:    "01712345678",
					Line1:    "House 12, Road 5",
					City:     "Sylhet",
				},
			}
			confirmation, err := srv.Orders.PlaceOrder(ctx, rahim, req)
			errs[i] = err
			if err == nil {
				numbers[i] = confirmation.Order.OrderNumber
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		seen[numbers[i]] = struct{}{}
	}
	assert.Len(t, seen, n)

	orders, err := srv.OrderRepo.ListByUser(ctx, rahim.ID, 100, 0)
	require.NoError(t, err)
	require.Len(t, orders, n)
	for _, o := range orders {
		assert.InDelta(t, o.Subtotal-o.Discount+o.ShippingCost+o.Tax, o.Total, 1e-9, o.OrderNumber)
		require.Len(t, o.Items, 1)
		assert.InDelta(t, o.Items[0].UnitPrice*float64(o.Items[0].Quantity), o.Subtotal, 1e-9)
		assert.Equal(t, "nagad", o.Payment.Details.Provider)
	}
}
