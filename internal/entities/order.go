package entities

import (
	"time"
)

type Address struct {
	Name       string
	Phone      string
	Line1      string
	Line2      string
	City       string
	Region     string
	PostalCode string
	Country    string
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Payment struct {
	Method string
	Amount int64
	Status PaymentStatus
	PaidAt *time.Time
}

type OrderItem struct {
	ProductID string
	Name      string
	SKU       string
	Variant   *Variant
	Price     int64
	Quantity  int
	LineTotal int64
}

type Summary struct {
	Subtotal int64
	Shipping int64
	Tax      int64
	Discount int64
	Total    int64
	Coupons  []string
}

type StatusHistoryEntry struct {
	Status    Status
	Note      string
	Actor     string
	CreatedAt time.Time
}

type Tracking struct {
	Carrier        string
	TrackingNumber string
	URL            string
	ShippedAt      time.Time
}

type Cancellation struct {
	Reason      string
	CancelledBy string
	CancelledAt time.Time
}

// Order is a purchase snapshot. Items and Summary are fixed at creation;
// only status related fields change afterwards.
type Order struct {
	ID         string
	CustomerID string
	Items      []OrderItem
	Summary    Summary

	ShippingAddress Address
	BillingAddress  Address
	Payment         Payment

	Status       Status
	History      []StatusHistoryEntry
	Tracking     *Tracking
	Cancellation *Cancellation

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o *Order) appendHistory(status Status, note, actor string, at time.Time) {
	o.History = append(o.History, StatusHistoryEntry{
		Status:    status,
		Note:      note,
		Actor:     actor,
		CreatedAt: at,
	})
}

// NewOrder builds a pending order from cart lines and totals.
func NewOrder(id, customerID string, items []LineItem, totals Totals, coupons []AppliedCoupon, now time.Time) Order {
	orderItems := make([]OrderItem, 0, len(items))
	for _, it := range items {
		var variant *Variant
		if it.Variant != nil {
			v := *it.Variant
			variant = &v
		}
		orderItems = append(orderItems, OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			SKU:       it.SKU,
			Variant:   variant,
			Price:     it.UnitPrice(),
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal(),
		})
	}

	var codes []string
	for _, c := range coupons {
		codes = append(codes, c.Code)
	}

	o := Order{
		ID:         id,
		CustomerID: customerID,
		Items:      orderItems,
		Summary: Summary{
			Subtotal: totals.Subtotal,
			Shipping: totals.Shipping,
			Tax:      totals.Tax,
			Discount: totals.Discount,
			Total:    totals.Total,
			Coupons:  codes,
		},
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	o.appendHistory(StatusPending, "order placed", customerID, now)
	return o
}

// CheckoutRequest carries what the shopper supplies at checkout. A nil
// BillingAddress means billing to the shipping address.
type CheckoutRequest struct {
	ShippingAddress Address
	BillingAddress  *Address
	PaymentMethod   string
}

// StatusChange is a requested lifecycle move made by Actor.
type StatusChange struct {
	To       Status
	Note     string
	Reason   string
	Actor    Actor
	Tracking *Tracking
}

type Transition struct {
	To       Status
	Note     string
	Actor    string
	Tracking *Tracking
	Reason   string
	At       time.Time
}

// Apply moves the order to t.To and records the side effects that belong
// to the order itself. Inventory effects are the caller's responsibility.
func (o *Order) Apply(t Transition) error {
	if err := CheckTransition(o.Status, t.To); err != nil {
		return err
	}

	switch t.To {
	case StatusConfirmed:
		o.Payment.Status = PaymentPaid
		paidAt := t.At
		o.Payment.PaidAt = &paidAt
	case StatusShipped:
		if t.Tracking == nil || t.Tracking.TrackingNumber == "" {
			return Invalid("tracking", "tracking number is required to ship an order")
		}
		tracking := *t.Tracking
		if tracking.ShippedAt.IsZero() {
			tracking.ShippedAt = t.At
		}
		o.Tracking = &tracking
	case StatusCancelled:
		reason := t.Reason
		if reason == "" {
			reason = t.Note
		}
		o.Cancellation = &Cancellation{
			Reason:      reason,
			CancelledBy: t.Actor,
			CancelledAt: t.At,
		}
	case StatusRefunded:
		o.Payment.Status = PaymentRefunded
	}

	o.Status = t.To
	o.UpdatedAt = t.At
	o.appendHistory(t.To, t.Note, t.Actor, t.At)
	return nil
}
