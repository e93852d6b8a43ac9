package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid reports whether s is a known order status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// CanTransitionTo reports whether an order in status s may move to next.
// Delivered and cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentMethod identifies how an order is paid.
type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodBkash        PaymentMethod = "bkash"
	PaymentMethodNagad        PaymentMethod = "nagad"
)

// IsValid reports whether m is a supported payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodBkash, PaymentMethodNagad:
		return true
	default:
		return false
	}
}

// PaymentStatus is the settlement state of an order's payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Order represents one checkout transaction. Monetary fields are frozen at creation.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	UserID          string          `json:"userId"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Payment         Payment         `json:"payment"`
	CouponCode      *string         `json:"couponCode,omitempty"`
	Subtotal        float64         `json:"subtotal"`
	Discount        float64         `json:"discount"`
	ShippingCost    float64         `json:"shippingCost"`
	Tax             float64         `json:"tax"`
	Total           float64         `json:"total"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderItem is a line item captured at order time.
type OrderItem struct {
	ID        uuid.UUID `json:"-"`
	OrderID   uuid.UUID `json:"-"`
	ProductID string    `json:"productId"`
	Name      string    `json:"name,omitempty"`
	UnitPrice float64   `json:"unitPrice"`
	Quantity  int       `json:"quantity"`
	LineTotal float64   `json:"lineTotal"`
}

// ShippingAddress is a snapshot of the delivery address, not a reference.
type ShippingAddress struct {
	FullName   string `json:"fullName" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Payment holds the method, status and masked details of an order's payment.
type Payment struct {
	Method  PaymentMethod `json:"method"`
	Status  PaymentStatus `json:"status"`
	Details MaskedPayment `json:"details"`
}

// MaskedPayment keeps only non-sensitive payment data for display.
type MaskedPayment struct {
	Last4          string `json:"last4,omitempty"`
	CardholderName string `json:"cardholderName,omitempty"`
	Bank           string `json:"bank,omitempty"`
	Provider       string `json:"provider,omitempty"`
}

// OrderRequest is the checkout submission. PaymentDetails is decoded per method.
type OrderRequest struct {
	Items           []OrderItemRequest `json:"items"`
	PaymentMethod   PaymentMethod      `json:"paymentMethod"`
	PaymentDetails  json.RawMessage    `json:"paymentDetails"`
	ShippingAddress ShippingAddress    `json:"shippingAddress"`
	TotalAmount     float64            `json:"totalAmount"`
	CouponCode      *string            `json:"couponCode,omitempty"`
	Discount        float64            `json:"discount,omitempty"`
}

// OrderItemRequest represents a single item in an order request.
type OrderItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// OrderSummary is the confirmation returned after checkout.
type OrderSummary struct {
	ID          uuid.UUID   `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	Total       float64     `json:"total"`
	Status      OrderStatus `json:"status"`
}

// OrderConfirmation is the success payload of POST /api/orders.
type OrderConfirmation struct {
	Success bool         `json:"success"`
	Order   OrderSummary `json:"order"`
}

// StatusUpdateRequest is the admin payload for changing an order status.
type StatusUpdateRequest struct {
	Status OrderStatus `json:"status" validate:"required"`
}
