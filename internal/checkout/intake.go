package checkout

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/model"

	"github.com/go-playground/validator/v10"
)

// Submission is a checkout request that passed every intake rule.
type Submission struct {
	Items           []model.OrderItemRequest
	Payment         PaymentDetails
	ShippingAddress model.ShippingAddress
	TotalAmount     float64
	Discount        float64
	// CouponCode is normalised to upper case; empty when none was given.
	CouponCode string
}

// Intake validates checkout submissions before anything is persisted.
type Intake struct {
	validate *validator.Validate
}

// NewIntake creates a new intake validator.
func NewIntake() *Intake {
	return &Intake{validate: validator.New()}
}

// Validate checks req in a fixed order and returns the first failing rule:
// items, payment method, payment details, shipping address, amounts.
func (in *Intake) Validate(req *model.OrderRequest) (*Submission, error) {
	if req == nil || len(req.Items) == 0 {
		return nil, model.ErrEmptyCart
	}

	for i := range req.Items {
		if err := in.validateItem(i, &req.Items[i]); err != nil {
			return nil, err
		}
	}

	if !req.PaymentMethod.IsValid() {
		return nil, model.ErrInvalidPaymentMethod
	}

	payment, err := ParsePaymentDetails(req.PaymentMethod, req.PaymentDetails)
	if err != nil {
		return nil, err
	}

	address := normaliseAddress(req.ShippingAddress)
	if err := in.validateAddress(&address); err != nil {
		return nil, err
	}

	if req.TotalAmount < 0 {
		return nil, model.NewDomainError(model.ErrCodeInvalidAmount, "Total amount must not be negative")
	}
	if req.Discount < 0 {
		return nil, model.NewDomainError(model.ErrCodeInvalidAmount, "Discount must not be negative")
	}

	var coupon string
	if req.CouponCode != nil {
		coupon = strings.ToUpper(strings.TrimSpace(*req.CouponCode))
	}

	return &Submission{
		Items:           req.Items,
		Payment:         payment,
		ShippingAddress: address,
		TotalAmount:     req.TotalAmount,
		Discount:        req.Discount,
		CouponCode:      coupon,
	}, nil
}

func (in *Intake) validateItem(index int, item *model.OrderItemRequest) error {
	err := in.validate.Struct(item)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return model.NewDomainError(model.ErrCodeInvalidItem, fmt.Sprintf("item %d is invalid", index))
	}

	switch fieldErrs[0].Field() {
	case "Quantity":
		return model.ErrInvalidQuantity
	case "ProductID":
		return model.NewDomainError(model.ErrCodeInvalidItem, fmt.Sprintf("item %d: product ID is required", index))
	case "Price":
		return model.NewDomainError(model.ErrCodeInvalidItem, fmt.Sprintf("item %d: price must not be negative", index))
	default:
		return model.NewDomainError(model.ErrCodeInvalidItem, fmt.Sprintf("item %d is invalid", index))
	}
}

func (in *Intake) validateAddress(address *model.ShippingAddress) error {
	err := in.validate.Struct(address)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return model.NewDomainError(
			model.ErrCodeInvalidShippingAddress,
			fmt.Sprintf("Shipping address: %s is required", addressFieldNames[fieldErrs[0].Field()]),
		)
	}
	return model.NewDomainError(model.ErrCodeInvalidShippingAddress, "Shipping address is invalid")
}

var addressFieldNames = map[string]string{
	"FullName": "full name",
	"Phone":    "phone",
	"Line1":    "address line",
	"City":     "city",
}

func normaliseAddress(a model.ShippingAddress) model.ShippingAddress {
	return model.ShippingAddress{
		FullName:   strings.TrimSpace(a.FullName),
		Phone:      strings.TrimSpace(a.Phone),
		Line1:      strings.TrimSpace(a.Line1),
		Line2:      strings.TrimSpace(a.Line2),
		City:       strings.TrimSpace(a.City),
		PostalCode: strings.TrimSpace(a.PostalCode),
		Country:    strings.TrimSpace(a.Country),
	}
}
