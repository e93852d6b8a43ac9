package checkout

import (
	"storefront/internal/model"

	"github.com/shopspring/decimal"
)

// Policy holds the shipping and tax constants applied at checkout.
type Policy struct {
	// FreeShippingThreshold is exclusive: shipping is free only above it.
	FreeShippingThreshold decimal.Decimal
	ShippingFee           decimal.Decimal
	TaxRate               decimal.Decimal
}

// DefaultPolicy returns the storefront's canonical policy: free shipping above 1000, otherwise 60, and 5% VAT.
func DefaultPolicy() Policy {
	return NewPolicy(1000, 60, 0.05)
}

// NewPolicy builds a policy from plain numbers.
func NewPolicy(threshold, fee, taxRate float64) Policy {
	return Policy{
		FreeShippingThreshold: decimal.NewFromFloat(threshold),
		ShippingFee:           decimal.NewFromFloat(fee),
		TaxRate:               decimal.NewFromFloat(taxRate),
	}
}

// QuoteInput is what the composer needs to price an order.
type QuoteInput struct {
	Items []model.OrderItemRequest
	// TotalAmount is the caller's subtotal; when zero the line totals are summed instead.
	TotalAmount float64
	// Discount is an absolute amount and takes precedence over CouponPercent.
	Discount      float64
	CouponPercent float64
}

// Quote is the frozen monetary breakdown of an order.
type Quote struct {
	Lines        []model.OrderItem
	Subtotal     float64
	Discount     float64
	ShippingCost float64
	Tax          float64
	Total        float64
}

// Quote prices an order. Every component is rounded to two decimals before the total
// is derived, so total == subtotal - discount + shipping + tax holds on the stored values.
func (p Policy) Quote(in QuoteInput) Quote {
	lines := make([]model.OrderItem, len(in.Items))
	sum := decimal.Zero
	for i, item := range in.Items {
		// Unit prices are stored to the cent; the line total derives from the stored value.
		price := decimal.NewFromFloat(item.Price).Round(2)
		lineTotal := price.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		sum = sum.Add(lineTotal)
		lines[i] = model.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: price.InexactFloat64(),
			Quantity:  item.Quantity,
			LineTotal: lineTotal.InexactFloat64(),
		}
	}

	subtotal := sum
	if in.TotalAmount > 0 {
		subtotal = decimal.NewFromFloat(in.TotalAmount)
	}
	subtotal = subtotal.Round(2)

	discount := decimal.Zero
	switch {
	case in.Discount > 0:
		discount = decimal.NewFromFloat(in.Discount)
	case in.CouponPercent > 0:
		discount = subtotal.Mul(decimal.NewFromFloat(in.CouponPercent)).Div(decimal.NewFromInt(100))
	}
	discount = decimal.Min(discount, subtotal).Round(2)

	shipping := p.ShippingFee
	if subtotal.GreaterThan(p.FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	shipping = shipping.Round(2)

	tax := subtotal.Mul(p.TaxRate).Round(2)
	total := subtotal.Add(shipping).Add(tax).Sub(discount)

	return Quote{
		Lines:        lines,
		Subtotal:     subtotal.InexactFloat64(),
		Discount:     discount.InexactFloat64(),
		ShippingCost: shipping.InexactFloat64(),
		Tax:          tax.InexactFloat64(),
		Total:        total.InexactFloat64(),
	}
}
