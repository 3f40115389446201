package handler

import (
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
)

// VariantSelection выбор варианта покупателем. Надбавка к цене берется из каталога
type VariantSelection struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// Variant вариант товара с надбавкой из каталога
type Variant struct {
	Name            string `json:"name"`
	Value           string `json:"value"`
	PriceAdjustment int64  `json:"price_adjustment"`
}

type AddItemRequest struct {
	ProductID string            `json:"product_id" validate:"required"`
	Quantity  int               `json:"quantity"`
	Variant   *VariantSelection `json:"variant,omitempty" validate:"omitempty"`
}

type UpdateQuantityRequest struct {
	Quantity int               `json:"quantity" validate:"gte=0"`
	Variant  *VariantSelection `json:"variant,omitempty" validate:"omitempty"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

// Address адрес доставки или плательщика
type Address struct {
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone,omitempty" validate:"omitempty,e164"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city" validate:"required"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required,iso3166_1_alpha2"`
}

type CheckoutRequest struct {
	ShippingAddress Address  `json:"shipping_address" validate:"required"`
	BillingAddress  *Address `json:"billing_address,omitempty" validate:"omitempty"`
	PaymentMethod   string   `json:"payment_method" validate:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

// Tracking данные отправления
type Tracking struct {
	Carrier        string    `json:"carrier" validate:"required"`
	TrackingNumber string    `json:"tracking_number" validate:"required"`
	URL            string    `json:"url,omitempty" validate:"omitempty,url"`
	ShippedAt      time.Time `json:"shipped_at,omitzero"`
}

type StatusUpdateRequest struct {
	Status   string    `json:"status" validate:"required,oneof=pending confirmed processing shipped delivered cancelled refunded"`
	Note     string    `json:"note,omitempty"`
	Reason   string    `json:"reason,omitempty"`
	Tracking *Tracking `json:"tracking,omitempty" validate:"omitempty"`
}

// FulfillmentEvent сообщение склада об изменении статуса заказа
type FulfillmentEvent struct {
	OrderID  string    `json:"order_id" validate:"required"`
	Status   string    `json:"status" validate:"required,oneof=processing shipped delivered"`
	Note     string    `json:"note,omitempty"`
	Tracking *Tracking `json:"tracking,omitempty" validate:"required_if=Status shipped"`
}

type Availability struct {
	InStock   bool      `json:"in_stock"`
	Sellable  int       `json:"sellable"`
	CheckedAt time.Time `json:"checked_at"`
}

type LineItem struct {
	ProductID    string       `json:"product_id"`
	Name         string       `json:"name"`
	SKU          string       `json:"sku"`
	Price        int64        `json:"price"`
	Quantity     int          `json:"quantity"`
	Variant      *Variant     `json:"variant,omitempty"`
	LineTotal    int64        `json:"line_total"`
	Availability Availability `json:"availability"`
	AddedAt      time.Time    `json:"added_at"`
	Expired      bool         `json:"expired"`
}

type AppliedCoupon struct {
	Code     string `json:"code"`
	Type     string `json:"type"`
	Value    int64  `json:"value"`
	Discount int64  `json:"discount"`
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

// Cart корзина покупателя
type Cart struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"owner_id"`
	Items        []LineItem      `json:"items"`
	Coupons      []AppliedCoupon `json:"coupons"`
	Totals       Totals          `json:"totals"`
	LastActivity time.Time       `json:"last_activity"`
	Abandoned    bool            `json:"abandoned"`
}

type OrderItem struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	SKU       string   `json:"sku"`
	Variant   *Variant `json:"variant,omitempty"`
	Price     int64    `json:"price"`
	Quantity  int      `json:"quantity"`
	LineTotal int64    `json:"line_total"`
}

type Summary struct {
	Subtotal int64    `json:"subtotal"`
	Shipping int64    `json:"shipping"`
	Tax      int64    `json:"tax"`
	Discount int64    `json:"discount"`
	Total    int64    `json:"total"`
	Coupons  []string `json:"coupons"`
}

type Payment struct {
	Method string     `json:"method"`
	Amount int64      `json:"amount"`
	Status string     `json:"status"`
	PaidAt *time.Time `json:"paid_at,omitempty"`
}

type HistoryEntry struct {
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}

type Cancellation struct {
	Reason      string    `json:"reason,omitempty"`
	CancelledBy string    `json:"cancelled_by"`
	CancelledAt time.Time `json:"cancelled_at"`
}

// Order заказ
type Order struct {
	ID              string         `json:"id"`
	CustomerID      string         `json:"customer_id"`
	Status          string         `json:"status"`
	Items           []OrderItem    `json:"items"`
	Summary         Summary        `json:"summary"`
	ShippingAddress Address        `json:"shipping_address"`
	BillingAddress  Address        `json:"billing_address"`
	Payment         Payment        `json:"payment"`
	History         []HistoryEntry `json:"history"`
	Tracking        *Tracking      `json:"tracking,omitempty"`
	Cancellation    *Cancellation  `json:"cancellation,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Product складские остатки товара
type Product struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Price     int64  `json:"price"`
	Status    string `json:"status"`
	Available int    `json:"available"`
	Reserved  int    `json:"reserved"`
	Sellable  int    `json:"sellable"`
	SoldCount int64  `json:"sold_count"`
	Revenue   int64  `json:"revenue"`
}

// UnavailableResponse names the cart line that could not be sold.
type UnavailableResponse struct {
	Message   string   `json:"message"`
	ProductID string   `json:"product_id"`
	Variant   *Variant `json:"variant,omitempty"`
	Requested int      `json:"requested"`
	Sellable  int      `json:"sellable"`
}

func VariantJSONToEntity(v *VariantSelection) *entities.Variant {
	if v == nil {
		return nil
	}
	return &entities.Variant{Name: v.Name, Value: v.Value}
}

func VariantEntityToJSON(v *entities.Variant) *Variant {
	if v == nil {
		return nil
	}
	return &Variant{Name: v.Name, Value: v.Value, PriceAdjustment: v.PriceAdjustment}
}

func AddressJSONToEntity(a Address) entities.Address {
	return entities.Address{
		Name:       a.Name,
		Phone:      a.Phone,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		Name:       a.Name,
		Phone:      a.Phone,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func TrackingJSONToEntity(t *Tracking) *entities.Tracking {
	if t == nil {
		return nil
	}
	return &entities.Tracking{
		Carrier:        t.Carrier,
		TrackingNumber: t.TrackingNumber,
		URL:            t.URL,
		ShippedAt:      t.ShippedAt,
	}
}

func TrackingEntityToJSON(t *entities.Tracking) *Tracking {
	if t == nil {
		return nil
	}
	return &Tracking{
		Carrier:        t.Carrier,
		TrackingNumber: t.TrackingNumber,
		URL:            t.URL,
		ShippedAt:      t.ShippedAt,
	}
}

func CheckoutJSONToEntity(r CheckoutRequest) entities.CheckoutRequest {
	req := entities.CheckoutRequest{
		ShippingAddress: AddressJSONToEntity(r.ShippingAddress),
		PaymentMethod:   r.PaymentMethod,
	}
	if r.BillingAddress != nil {
		billing := AddressJSONToEntity(*r.BillingAddress)
		req.BillingAddress = &billing
	}
	return req
}

func CartEntityToJSON(c entities.Cart) Cart {
	items := make([]LineItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, LineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			SKU:       it.SKU,
			Price:     it.UnitPrice(),
			Quantity:  it.Quantity,
			Variant:   VariantEntityToJSON(it.Variant),
			LineTotal: it.LineTotal(),
			Availability: Availability{
				InStock:   it.Availability.InStock,
				Sellable:  it.Availability.Sellable,
				CheckedAt: it.Availability.CheckedAt,
			},
			AddedAt: it.AddedAt,
			Expired: it.Expired,
		})
	}

	coupons := make([]AppliedCoupon, 0, len(c.Coupons))
	for _, ac := range c.Coupons {
		coupons = append(coupons, AppliedCoupon{
			Code:     ac.Code,
			Type:     string(ac.Type),
			Value:    ac.Value,
			Discount: ac.Discount,
		})
	}

	return Cart{
		ID:      c.ID,
		OwnerID: c.OwnerID,
		Items:   items,
		Coupons: coupons,
		Totals: Totals{
			Subtotal:    c.Totals.Subtotal,
			Discount:    c.Totals.Discount,
			Tax:         c.Totals.Tax,
			Shipping:    c.Totals.Shipping,
			Total:       c.Totals.Total,
			ItemCount:   c.Totals.ItemCount,
			UniqueItems: c.Totals.UniqueItems,
		},
		LastActivity: c.LastActivity,
		Abandoned:    c.Abandoned,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			SKU:       it.SKU,
			Variant:   VariantEntityToJSON(it.Variant),
			Price:     it.Price,
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal,
		})
	}

	history := make([]HistoryEntry, 0, len(o.History))
	for _, h := range o.History {
		history = append(history, HistoryEntry{
			Status:    string(h.Status),
			Note:      h.Note,
			Actor:     h.Actor,
			CreatedAt: h.CreatedAt,
		})
	}

	var cancellation *Cancellation
	if o.Cancellation != nil {
		cancellation = &Cancellation{
			Reason:      o.Cancellation.Reason,
			CancelledBy: o.Cancellation.CancelledBy,
			CancelledAt: o.Cancellation.CancelledAt,
		}
	}

	coupons := o.Summary.Coupons
	if coupons == nil {
		coupons = []string{}
	}

	return Order{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Status:     string(o.Status),
		Items:      items,
		Summary: Summary{
			Subtotal: o.Summary.Subtotal,
			Shipping: o.Summary.Shipping,
			Tax:      o.Summary.Tax,
			Discount: o.Summary.Discount,
			Total:    o.Summary.Total,
			Coupons:  coupons,
		},
		ShippingAddress: AddressEntityToJSON(o.ShippingAddress),
		BillingAddress:  AddressEntityToJSON(o.BillingAddress),
		Payment: Payment{
			Method: o.Payment.Method,
			Amount: o.Payment.Amount,
			Status: string(o.Payment.Status),
			PaidAt: o.Payment.PaidAt,
		},
		History:      history,
		Tracking:     TrackingEntityToJSON(o.Tracking),
		Cancellation: cancellation,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Price:     p.Price,
		Status:    string(p.Status),
		Available: p.Available,
		Reserved:  p.Reserved,
		Sellable:  p.Sellable(),
		SoldCount: p.SoldCount,
		Revenue:   p.Revenue,
	}
}
