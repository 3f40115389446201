package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"

	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
)

type Product struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	SKU       string `db:"sku"`
	Price     int64  `db:"price"`
	Status    string         `db:"status"`
	Variants  types.JSONText `db:"variants"`
	Available int            `db:"available"`
	Reserved  int            `db:"reserved"`
	SoldCount int64          `db:"sold_count"`
	Revenue   int64          `db:"revenue"`
}

type Coupon struct {
	Code  string `db:"code"`
	Type  string `db:"type"`
	Value int64  `db:"value"`
}

type Cart struct {
	ID           string         `db:"id"`
	OwnerID      string         `db:"owner_id"`
	Items        types.JSONText `db:"items"`
	Coupons      types.JSONText `db:"coupons"`
	Totals       types.JSONText `db:"totals"`
	LastActivity time.Time      `db:"last_activity"`
	Abandoned    bool           `db:"abandoned"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type Order struct {
	ID              string             `db:"id"`
	CustomerID      string             `db:"customer_id"`
	Status          string             `db:"status"`
	Subtotal        int64              `db:"subtotal"`
	Shipping        int64              `db:"shipping"`
	Tax             int64              `db:"tax"`
	Discount        int64              `db:"discount"`
	Total           int64              `db:"total"`
	Coupons         pq.StringArray     `db:"coupons"`
	ShippingAddress types.JSONText     `db:"shipping_address"`
	BillingAddress  types.JSONText     `db:"billing_address"`
	PaymentMethod   string             `db:"payment_method"`
	PaymentAmount   int64              `db:"payment_amount"`
	PaymentStatus   string             `db:"payment_status"`
	PaidAt          sql.NullTime       `db:"paid_at"`
	Tracking        types.NullJSONText `db:"tracking"`
	Cancellation    types.NullJSONText `db:"cancellation"`
	CreatedAt       time.Time          `db:"created_at"`
	UpdatedAt       time.Time          `db:"updated_at"`
}

type OrderItem struct {
	OrderID   string             `db:"order_id"`
	Position  int                `db:"position"`
	ProductID string             `db:"product_id"`
	Name      string             `db:"name"`
	SKU       string             `db:"sku"`
	Variant   types.NullJSONText `db:"variant"`
	Price     int64              `db:"price"`
	Quantity  int                `db:"quantity"`
	LineTotal int64              `db:"line_total"`
}

type StatusHistory struct {
	OrderID   string    `db:"order_id"`
	Status    string    `db:"status"`
	Note      string    `db:"note"`
	Actor     string    `db:"actor"`
	CreatedAt time.Time `db:"created_at"`
}

type address struct {
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type tracking struct {
	Carrier        string    `json:"carrier"`
	TrackingNumber string    `json:"tracking_number"`
	URL            string    `json:"url,omitempty"`
	ShippedAt      time.Time `json:"shipped_at"`
}

type cancellation struct {
	Reason      string    `json:"reason"`
	CancelledBy string    `json:"cancelled_by"`
	CancelledAt time.Time `json:"cancelled_at"`
}

func ProductToEntity(p Product) (entities.Product, error) {
	var variants []entities.Variant
	if len(p.Variants) > 0 {
		if err := json.Unmarshal(p.Variants, &variants); err != nil {
			return entities.Product{}, fmt.Errorf("failed to unmarshal variants: %w", err)
		}
	}
	return entities.Product{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Price:     p.Price,
		Status:    entities.ProductStatus(p.Status),
		Variants:  variants,
		Available: p.Available,
		Reserved:  p.Reserved,
		SoldCount: p.SoldCount,
		Revenue:   p.Revenue,
	}, nil
}

func CouponToEntity(c Coupon) entities.Coupon {
	return entities.Coupon{
		Code:  c.Code,
		Type:  entities.CouponType(c.Type),
		Value: c.Value,
	}
}

func CartToEntity(c Cart) (entities.Cart, error) {
	cart := entities.Cart{
		ID:           c.ID,
		OwnerID:      c.OwnerID,
		Items:        []entities.LineItem{},
		Coupons:      []entities.AppliedCoupon{},
		LastActivity: c.LastActivity,
		Abandoned:    c.Abandoned,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if err := c.Items.Unmarshal(&cart.Items); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to decode cart items: %w", err)
	}
	if err := c.Coupons.Unmarshal(&cart.Coupons); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to decode cart coupons: %w", err)
	}
	if err := c.Totals.Unmarshal(&cart.Totals); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to decode cart totals: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []entities.LineItem{}
	}
	if cart.Coupons == nil {
		cart.Coupons = []entities.AppliedCoupon{}
	}
	return cart, nil
}

func CartFromEntity(c entities.Cart) (Cart, error) {
	items, err := json.Marshal(nonNil(c.Items))
	if err != nil {
		return Cart{}, fmt.Errorf("failed to encode cart items: %w", err)
	}
	coupons, err := json.Marshal(nonNil(c.Coupons))
	if err != nil {
		return Cart{}, fmt.Errorf("failed to encode cart coupons: %w", err)
	}
	totals, err := json.Marshal(c.Totals)
	if err != nil {
		return Cart{}, fmt.Errorf("failed to encode cart totals: %w", err)
	}
	return Cart{
		ID:           c.ID,
		OwnerID:      c.OwnerID,
		Items:        items,
		Coupons:      coupons,
		Totals:       totals,
		LastActivity: c.LastActivity,
		Abandoned:    c.Abandoned,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func addressToJSON(a entities.Address) (types.JSONText, error) {
	return json.Marshal(address(a))
}

func addressToEntity(data types.JSONText) (entities.Address, error) {
	var a address
	if err := data.Unmarshal(&a); err != nil {
		return entities.Address{}, err
	}
	return entities.Address(a), nil
}

func trackingToJSON(t *entities.Tracking) (types.NullJSONText, error) {
	if t == nil {
		return types.NullJSONText{}, nil
	}
	data, err := json.Marshal(tracking(*t))
	if err != nil {
		return types.NullJSONText{}, err
	}
	return types.NullJSONText{JSONText: data, Valid: true}, nil
}

func cancellationToJSON(c *entities.Cancellation) (types.NullJSONText, error) {
	if c == nil {
		return types.NullJSONText{}, nil
	}
	data, err := json.Marshal(cancellation(*c))
	if err != nil {
		return types.NullJSONText{}, err
	}
	return types.NullJSONText{JSONText: data, Valid: true}, nil
}

func variantToJSON(v *entities.Variant) (types.NullJSONText, error) {
	if v == nil {
		return types.NullJSONText{}, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return types.NullJSONText{}, err
	}
	return types.NullJSONText{JSONText: data, Valid: true}, nil
}

func OrderItemToEntity(i OrderItem) (entities.OrderItem, error) {
	item := entities.OrderItem{
		ProductID: i.ProductID,
		Name:      i.Name,
		SKU:       i.SKU,
		Price:     i.Price,
		Quantity:  i.Quantity,
		LineTotal: i.LineTotal,
	}
	if i.Variant.Valid {
		var v entities.Variant
		if err := i.Variant.Unmarshal(&v); err != nil {
			return entities.OrderItem{}, fmt.Errorf("failed to decode variant: %w", err)
		}
		item.Variant = &v
	}
	return item, nil
}

func HistoryToEntity(h StatusHistory) entities.StatusHistoryEntry {
	return entities.StatusHistoryEntry{
		Status:    entities.Status(h.Status),
		Note:      h.Note,
		Actor:     h.Actor,
		CreatedAt: h.CreatedAt,
	}
}

func OrderToEntity(o Order, items []OrderItem, history []StatusHistory) (entities.Order, error) {
	order := entities.Order{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Summary: entities.Summary{
			Subtotal: o.Subtotal,
			Shipping: o.Shipping,
			Tax:      o.Tax,
			Discount: o.Discount,
			Total:    o.Total,
		},
		Payment: entities.Payment{
			Method: o.PaymentMethod,
			Amount: o.PaymentAmount,
			Status: entities.PaymentStatus(o.PaymentStatus),
		},
		Status:    entities.Status(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	if len(o.Coupons) > 0 {
		order.Summary.Coupons = []string(o.Coupons)
	}
	if o.PaidAt.Valid {
		paidAt := o.PaidAt.Time
		order.Payment.PaidAt = &paidAt
	}

	var err error
	if order.ShippingAddress, err = addressToEntity(o.ShippingAddress); err != nil {
		return entities.Order{}, fmt.Errorf("failed to decode shipping address: %w", err)
	}
	if order.BillingAddress, err = addressToEntity(o.BillingAddress); err != nil {
		return entities.Order{}, fmt.Errorf("failed to decode billing address: %w", err)
	}
	if o.Tracking.Valid {
		var t tracking
		if err := o.Tracking.Unmarshal(&t); err != nil {
			return entities.Order{}, fmt.Errorf("failed to decode tracking: %w", err)
		}
		et := entities.Tracking(t)
		order.Tracking = &et
	}
	if o.Cancellation.Valid {
		var c cancellation
		if err := o.Cancellation.Unmarshal(&c); err != nil {
			return entities.Order{}, fmt.Errorf("failed to decode cancellation: %w", err)
		}
		ec := entities.Cancellation(c)
		order.Cancellation = &ec
	}

	order.Items = make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		item, err := OrderItemToEntity(it)
		if err != nil {
			return entities.Order{}, err
		}
		order.Items = append(order.Items, item)
	}

	order.History = make([]entities.StatusHistoryEntry, 0, len(history))
	for _, h := range history {
		order.History = append(order.History, HistoryToEntity(h))
	}

	return order, nil
}
