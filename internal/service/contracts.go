package service

import (
	"context"
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
)

// Catalog is a point-in-time product read.
type Catalog interface {
	GetProduct(ctx context.Context, productID string) (entities.Product, error)
}

// Ledger mutates reservation counters. Each call is atomic per product.
type Ledger interface {
	Reserve(ctx context.Context, productID string, qty int) error
	Release(ctx context.Context, productID string, qty int) error
	Commit(ctx context.Context, productID string, qty int) error
	// Uncommit puts committed units back on the shelf as still reserved.
	Uncommit(ctx context.Context, productID string, qty int) error
}

type SalesRecorder interface {
	RecordSale(ctx context.Context, productID string, qty int, revenue int64) error
}

type CartRepo interface {
	GetCart(ctx context.Context, ownerID string) (entities.Cart, error)
	// CreateCart is idempotent per owner and returns the stored cart.
	CreateCart(ctx context.Context, c entities.Cart) (entities.Cart, error)
	SaveCart(ctx context.Context, c entities.Cart) error
	MarkAbandonedCarts(ctx context.Context, idleSince time.Time) (int64, error)
}

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, customerID string) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, o entities.Order, entry entities.StatusHistoryEntry) error
}

type CouponEvaluator interface {
	Evaluate(ctx context.Context, code string, subtotal, shipping int64) (entities.AppliedCoupon, error)
}

// Notifier hands order events to email/SMS dispatchers. Delivery is best
// effort.
type Notifier interface {
	Notify(ctx context.Context, event entities.OrderEvent) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}
