package pricing_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var rules = pricing.Rules{
	TaxRate:               decimal.RequireFromString("0.16"),
	ShippingFee:           300,
	FreeShippingThreshold: 5000,
}

func cartWith(items ...entities.LineItem) entities.Cart {
	c := entities.NewCart("cart-1", "owner-1", time.Now())
	c.Items = append(c.Items, items...)
	return c
}

func TestRecompute(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name    string
		rules   pricing.Rules
		items   []entities.LineItem
		coupons []entities.AppliedCoupon
		want    entities.Totals
	}{
		{
			name:  "below free shipping threshold",
			rules: rules,
			items: []entities.LineItem{{ProductID: "p", Price: 1000, Quantity: 2, AddedAt: now}},
			want: entities.Totals{
				Subtotal: 2000, Tax: 320, Shipping: 300, Total: 2620,
				ItemCount: 2, UniqueItems: 1,
			},
		},
		{
			name:    "percentage coupon",
			rules:   rules,
			items:   []entities.LineItem{{ProductID: "p", Price: 1000, Quantity: 2, AddedAt: now}},
			coupons: []entities.AppliedCoupon{{Coupon: entities.Coupon{Code: "SAVE10", Type: entities.CouponPercentage, Value: 10}}},
			want: entities.Totals{
				Subtotal: 2000, Discount: 200, Tax: 320, Shipping: 300, Total: 2420,
				ItemCount: 2, UniqueItems: 1,
			},
		},
		{
			name:  "above threshold ships free",
			rules: rules,
			items: []entities.LineItem{
				{ProductID: "a", Price: 2500, Quantity: 2, AddedAt: now},
				{ProductID: "b", Price: 100, Quantity: 1, AddedAt: now},
			},
			want: entities.Totals{
				Subtotal: 5100, Tax: 816, Shipping: 0, Total: 5916,
				ItemCount: 3, UniqueItems: 2,
			},
		},
		{
			name:  "exactly at threshold still pays shipping",
			rules: rules,
			items: []entities.LineItem{{ProductID: "a", Price: 5000, Quantity: 1, AddedAt: now}},
			want: entities.Totals{
				Subtotal: 5000, Tax: 800, Shipping: 300, Total: 6100,
				ItemCount: 1, UniqueItems: 1,
			},
		},
		{
			name:  "variant price adjustment",
			rules: rules,
			items: []entities.LineItem{{
				ProductID: "p", Price: 1000, Quantity: 3, AddedAt: now,
				Variant: &entities.Variant{Name: "size", Value: "XL", PriceAdjustment: 250},
			}},
			want: entities.Totals{
				Subtotal: 3750, Tax: 600, Shipping: 300, Total: 4650,
				ItemCount: 3, UniqueItems: 1,
			},
		},
		{
			name:    "free shipping coupon cancels the fee",
			rules:   rules,
			items:   []entities.LineItem{{ProductID: "p", Price: 1000, Quantity: 1, AddedAt: now}},
			coupons: []entities.AppliedCoupon{{Coupon: entities.Coupon{Code: "SHIP", Type: entities.CouponFreeShipping}}},
			want: entities.Totals{
				Subtotal: 1000, Discount: 300, Tax: 160, Shipping: 300, Total: 1160,
				ItemCount: 1, UniqueItems: 1,
			},
		},
		{
			name:    "oversized fixed coupon clamps total at zero",
			rules:   rules,
			items:   []entities.LineItem{{ProductID: "p", Price: 100, Quantity: 1, AddedAt: now}},
			coupons: []entities.AppliedCoupon{{Coupon: entities.Coupon{Code: "BIG", Type: entities.CouponFixedAmount, Value: 100000}}},
			want: entities.Totals{
				Subtotal: 100, Discount: 100000, Tax: 16, Shipping: 300, Total: 0,
				ItemCount: 1, UniqueItems: 1,
			},
		},
		{
			name:  "empty cart without shipping baseline",
			rules: rules,
			want:  entities.Totals{},
		},
		{
			name: "empty cart with shipping baseline",
			rules: pricing.Rules{
				TaxRate:                 rules.TaxRate,
				ShippingFee:             300,
				FreeShippingThreshold:   5000,
				ChargeShippingWhenEmpty: true,
			},
			want: entities.Totals{Shipping: 300, Total: 300},
		},
		{
			name: "expired lines are excluded from subtotal",
			rules: pricing.Rules{
				TaxRate:               rules.TaxRate,
				ShippingFee:           300,
				FreeShippingThreshold: 5000,
				LineTTL:               time.Hour,
			},
			items: []entities.LineItem{
				{ProductID: "old", Price: 4000, Quantity: 1, AddedAt: now.Add(-2 * time.Hour)},
				{ProductID: "new", Price: 1000, Quantity: 1, AddedAt: now},
			},
			want: entities.Totals{
				Subtotal: 1000, Tax: 160, Shipping: 300, Total: 1460,
				ItemCount: 1, UniqueItems: 1,
			},
		},
		{
			name: "only expired lines is an empty cart",
			rules: pricing.Rules{
				TaxRate:               rules.TaxRate,
				ShippingFee:           300,
				FreeShippingThreshold: 5000,
				LineTTL:               time.Hour,
			},
			items: []entities.LineItem{
				{ProductID: "old", Price: 4000, Quantity: 2, AddedAt: now.Add(-2 * time.Hour)},
			},
			want: entities.Totals{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := cartWith(tc.items...)
			c.Coupons = append(c.Coupons, tc.coupons...)

			pricing.Recompute(&c, tc.rules, now)

			assert.Equal(t, tc.want, c.Totals)
			assert.Equal(t, tc.want.Total, max(0, c.Totals.Subtotal-c.Totals.Discount+c.Totals.Tax+c.Totals.Shipping))
		})
	}
}

func TestRecompute_RefreshesCouponDiscounts(t *testing.T) {
	now := time.Now()
	c := cartWith(entities.LineItem{ProductID: "p", Price: 1000, Quantity: 1, AddedAt: now})
	c.Coupons = []entities.AppliedCoupon{{Coupon: entities.Coupon{Code: "SAVE10", Type: entities.CouponPercentage, Value: 10}}}

	pricing.Recompute(&c, rules, now)
	assert.Equal(t, int64(100), c.Coupons[0].Discount)

	c.Items[0].Quantity = 3
	pricing.Recompute(&c, rules, now)
	assert.Equal(t, int64(300), c.Coupons[0].Discount)
	assert.Equal(t, int64(300), c.Totals.Discount)
}

func TestDiscount(t *testing.T) {
	testCases := []struct {
		name     string
		coupon   entities.Coupon
		subtotal int64
		shipping int64
		want     int64
	}{
		{"percentage rounds half up", entities.Coupon{Type: entities.CouponPercentage, Value: 15}, 333, 300, 50},
		{"fixed amount", entities.Coupon{Type: entities.CouponFixedAmount, Value: 500}, 2000, 300, 500},
		{"free shipping", entities.Coupon{Type: entities.CouponFreeShipping}, 2000, 300, 300},
		{"free shipping when already free", entities.Coupon{Type: entities.CouponFreeShipping}, 9000, 0, 0},
		{"unknown type", entities.Coupon{Type: "bogus", Value: 10}, 2000, 300, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pricing.Discount(tc.coupon, tc.subtotal, tc.shipping))
		})
	}
}
