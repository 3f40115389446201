package entities

import (
	"time"
)

type Variant struct {
	Name            string `json:"name"`
	Value           string `json:"value"`
	PriceAdjustment int64  `json:"price_adjustment"`
}

func (v Variant) Key() string {
	return v.Name + "=" + v.Value
}

func sameVariant(a, b *Variant) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Name == b.Name && a.Value == b.Value
}

type Availability struct {
	InStock   bool      `json:"in_stock"`
	Sellable  int       `json:"sellable"`
	CheckedAt time.Time `json:"checked_at"`
}

type LineItem struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	SKU       string   `json:"sku"`
	Price     int64    `json:"price"`
	Quantity  int      `json:"quantity"`
	Variant   *Variant `json:"variant,omitempty"`

	Availability Availability `json:"availability"`
	AddedAt      time.Time    `json:"added_at"`
	Expired      bool         `json:"expired"`
}

// UnitPrice is the captured price plus the variant adjustment.
func (l LineItem) UnitPrice() int64 {
	if l.Variant != nil {
		return l.Price + l.Variant.PriceAdjustment
	}
	return l.Price
}

func (l LineItem) LineTotal() int64 {
	return l.UnitPrice() * int64(l.Quantity)
}

func (l LineItem) Matches(productID string, variant *Variant) bool {
	return l.ProductID == productID && sameVariant(l.Variant, variant)
}

type CouponType string

const (
	CouponPercentage   CouponType = "percentage"
	CouponFixedAmount  CouponType = "fixed_amount"
	CouponFreeShipping CouponType = "free_shipping"
)

func (t CouponType) Valid() bool {
	switch t {
	case CouponPercentage, CouponFixedAmount, CouponFreeShipping:
		return true
	}
	return false
}

// Coupon is a coupon definition. Value is percent points for percentage
// coupons and minor currency units for fixed-amount coupons.
type Coupon struct {
	Code  string     `json:"code"`
	Type  CouponType `json:"type"`
	Value int64      `json:"value"`
}

type AppliedCoupon struct {
	Coupon
	Discount int64 `json:"discount"`
}

type Totals struct {
	Subtotal    int64 `json:"subtotal"`
	Discount    int64 `json:"discount"`
	Tax         int64 `json:"tax"`
	Shipping    int64 `json:"shipping"`
	Total       int64 `json:"total"`
	ItemCount   int   `json:"item_count"`
	UniqueItems int   `json:"unique_items"`
}

type Cart struct {
	ID      string
	OwnerID string
	Items   []LineItem
	Coupons []AppliedCoupon
	Totals  Totals

	LastActivity time.Time
	Abandoned    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewCart(id, ownerID string, now time.Time) Cart {
	return Cart{
		ID:           id,
		OwnerID:      ownerID,
		Items:        []LineItem{},
		Coupons:      []AppliedCoupon{},
		LastActivity: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (c *Cart) FindItem(productID string, variant *Variant) int {
	for i, it := range c.Items {
		if it.Matches(productID, variant) {
			return i
		}
	}
	return -1
}

// RemoveItems drops every line matching the product and variant. A nil
// variant with anyVariant set removes all variants of the product.
func (c *Cart) RemoveItems(productID string, variant *Variant, anyVariant bool) int {
	kept := make([]LineItem, 0, len(c.Items))
	removed := 0
	for _, it := range c.Items {
		if it.ProductID == productID && (anyVariant || sameVariant(it.Variant, variant)) {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	c.Items = kept
	return removed
}

func (c *Cart) Clear() {
	c.Items = []LineItem{}
	c.Coupons = []AppliedCoupon{}
}

// ActiveItems returns lines that have not expired.
func (c *Cart) ActiveItems() []LineItem {
	items := make([]LineItem, 0, len(c.Items))
	for _, it := range c.Items {
		if !it.Expired {
			items = append(items, it)
		}
	}
	return items
}

// PutCoupon replaces a coupon with the same code or appends it.
func (c *Cart) PutCoupon(ac AppliedCoupon) {
	for i, existing := range c.Coupons {
		if existing.Code == ac.Code {
			c.Coupons[i] = ac
			return
		}
	}
	c.Coupons = append(c.Coupons, ac)
}

func (c *Cart) RemoveCoupon(code string) bool {
	for i, existing := range c.Coupons {
		if existing.Code == code {
			c.Coupons = append(append([]AppliedCoupon{}, c.Coupons[:i]...), c.Coupons[i+1:]...)
			return true
		}
	}
	return false
}

// Touch records activity. The abandoned flag is derived from the gap
// between now and the previous activity.
func (c *Cart) Touch(now time.Time, abandonAfter time.Duration) {
	if abandonAfter > 0 && !c.LastActivity.IsZero() {
		c.Abandoned = now.Sub(c.LastActivity) > abandonAfter
	}
	c.LastActivity = now
	c.UpdatedAt = now
}
