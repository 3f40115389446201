// Package pricing computes cart totals. Everything here is a pure function
// of its inputs and is re-run at the end of every cart mutation.
package pricing

import (
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Rules struct {
	TaxRate               decimal.Decimal
	ShippingFee           int64
	FreeShippingThreshold int64
	// ChargeShippingWhenEmpty applies ShippingFee to a cart without lines.
	ChargeShippingWhenEmpty bool
	// LineTTL expires lines older than the TTL. Zero disables expiry.
	LineTTL time.Duration
}

// Recompute refreshes line expiry, coupon discounts and totals in place.
// Expired lines stay in the cart but count nowhere in the totals.
func Recompute(c *entities.Cart, r Rules, now time.Time) {
	var subtotal int64
	itemCount, uniqueItems := 0, 0
	for i := range c.Items {
		it := &c.Items[i]
		it.Expired = r.LineTTL > 0 && now.Sub(it.AddedAt) > r.LineTTL
		if it.Expired {
			continue
		}
		subtotal += it.LineTotal()
		itemCount += it.Quantity
		uniqueItems++
	}

	shipping := Shipping(subtotal, uniqueItems == 0, r)
	tax := Tax(subtotal, r.TaxRate)

	var discount int64
	for i := range c.Coupons {
		c.Coupons[i].Discount = Discount(c.Coupons[i].Coupon, subtotal, shipping)
		discount += c.Coupons[i].Discount
	}

	total := subtotal - discount + tax + shipping
	if total < 0 {
		total = 0
	}

	c.Totals = entities.Totals{
		Subtotal:    subtotal,
		Discount:    discount,
		Tax:         tax,
		Shipping:    shipping,
		Total:       total,
		ItemCount:   itemCount,
		UniqueItems: uniqueItems,
	}
}

func Shipping(subtotal int64, empty bool, r Rules) int64 {
	if empty {
		if r.ChargeShippingWhenEmpty {
			return r.ShippingFee
		}
		return 0
	}
	if subtotal > r.FreeShippingThreshold {
		return 0
	}
	return r.ShippingFee
}

func Tax(subtotal int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(subtotal).Mul(rate).Round(0).IntPart()
}

// Discount maps a coupon definition to an amount for the given subtotal
// and shipping fee.
func Discount(c entities.Coupon, subtotal, shipping int64) int64 {
	switch c.Type {
	case entities.CouponPercentage:
		return decimal.NewFromInt(subtotal).
			Mul(decimal.NewFromInt(c.Value)).
			Div(decimal.NewFromInt(100)).
			Round(0).
			IntPart()
	case entities.CouponFixedAmount:
		return c.Value
	case entities.CouponFreeShipping:
		return shipping
	default:
		return 0
	}
}
