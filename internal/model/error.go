package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON            = "INVALID_JSON"
	ErrCodeBodyTooLarge           = "BODY_TOO_LARGE"
	ErrCodeEmptyCart              = "EMPTY_CART"
	ErrCodeInvalidItem            = "INVALID_ITEM"
	ErrCodeInvalidPaymentMethod   = "INVALID_PAYMENT_METHOD"
	ErrCodeInvalidPaymentDetails  = "INVALID_PAYMENT_DETAILS"
	ErrCodeInvalidShippingAddress = "INVALID_SHIPPING_ADDRESS"
	ErrCodeInvalidAmount          = "INVALID_AMOUNT"
	ErrCodeInvalidCoupon          = "INVALID_COUPON"
	ErrCodeInvalidQuantity        = "INVALID_QUANTITY"
	ErrCodeInvalidStatus          = "INVALID_STATUS"
	ErrCodeStatusTransition       = "INVALID_STATUS_TRANSITION"
	ErrCodeProductNotFound        = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound          = "ORDER_NOT_FOUND"
	ErrCodeUnauthorised           = "UNAUTHORIZED"
	ErrCodeForbidden              = "FORBIDDEN"
	ErrCodeInternalError          = "INTERNAL_ERROR"
)

// DomainError is a business rule violation that is safe to show to the caller.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmptyCart            = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrInvalidPaymentMethod = NewDomainError(ErrCodeInvalidPaymentMethod, "Invalid payment method")
	ErrInvalidCoupon        = NewDomainError(ErrCodeInvalidCoupon, "Invalid or expired coupon code")
	ErrInvalidQuantity      = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidStatus        = NewDomainError(ErrCodeInvalidStatus, "Unknown order status")
	ErrStatusTransition     = NewDomainError(ErrCodeStatusTransition, "Order status transition is not allowed")
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrOrderNotFound        = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrUnauthorised         = NewDomainError(ErrCodeUnauthorised, "Authentication required")
	ErrForbidden            = NewDomainError(ErrCodeForbidden, "Insufficient permissions")
)
