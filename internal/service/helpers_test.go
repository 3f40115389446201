package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/coupon"
	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/internal/pricing"
	"github.com/SergeyBogomolovv/storefront-service/internal/repo"
	"github.com/SergeyBogomolovv/storefront-service/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/storefront-service/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-service/pkg/keylock"
	"github.com/SergeyBogomolovv/storefront-service/pkg/trm"
	"github.com/SergeyBogomolovv/storefront-service/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var (
	customer = entities.Actor{ID: "u1", Role: entities.RoleCustomer}
	stranger = entities.Actor{ID: "u2", Role: entities.RoleCustomer}
	admin    = entities.Actor{ID: "admin", Role: entities.RoleAdmin}

	address = entities.Address{Name: "Ann", Line1: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US"}

	fastRetry = utils.RetryConfig{MaxAttempts: 2, InitialDelay: time.Millisecond}
)

type cartAPI interface {
	GetOrCreate(ctx context.Context, ownerID string) (entities.Cart, error)
	AddItem(ctx context.Context, ownerID, productID string, qty int, variant *entities.Variant) (entities.Cart, error)
	UpdateQuantity(ctx context.Context, ownerID, productID string, qty int, variant *entities.Variant) (entities.Cart, error)
	RemoveItem(ctx context.Context, ownerID, productID string, variant *entities.Variant) (entities.Cart, error)
	Clear(ctx context.Context, ownerID string) (entities.Cart, error)
	ApplyCoupon(ctx context.Context, ownerID, code string) (entities.Cart, error)
	RemoveCoupon(ctx context.Context, ownerID, code string) (entities.Cart, error)
	MarkAbandoned(ctx context.Context) (int64, error)
}

type checkoutAPI interface {
	PlaceOrder(ctx context.Context, ownerID string, req entities.CheckoutRequest) (entities.Order, error)
}

type orderAPI interface {
	SetStatus(ctx context.Context, orderID string, change entities.StatusChange) (entities.Order, error)
	Cancel(ctx context.Context, orderID string, actor entities.Actor, reason string) (entities.Order, error)
	GetOrder(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error)
	ListOrders(ctx context.Context, customerID string) ([]entities.Order, error)
}

// clock is a manually advanced time source. It is only touched from the
// test goroutine.
type clock struct {
	t time.Time
}

func newClock() *clock {
	return &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time { return c.t }

func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func product(id string, price int64, available int) entities.Product {
	return entities.Product{
		ID:        id,
		Name:      "Product " + id,
		SKU:       "SKU-" + id,
		Price:     price,
		Status:    entities.ProductActive,
		Available: available,
	}
}

type env struct {
	store    *repo.MemoryStore
	clock    *clock
	notifier *mocks.MockNotifier
	cfg      service.CartConfig
	locks    *keylock.Locker
}

func newEnv(t *testing.T) *env {
	c := newClock()
	return &env{
		store:    repo.NewMemoryStore(),
		clock:    c,
		notifier: mocks.NewMockNotifier(t),
		locks:    keylock.New(),
		cfg: service.CartConfig{
			Rules: pricing.Rules{
				TaxRate:               decimal.RequireFromString("0.16"),
				ShippingFee:           300,
				FreeShippingThreshold: 5000,
			},
			AbandonAfter:  24 * time.Hour,
			SweepInterval: time.Hour,
			Now:           c.Now,
		},
	}
}

func (e *env) carts() cartAPI {
	return service.NewCartService(discardLogger(), trm.NewNopManager(), e.store, e.store,
		coupon.NewEvaluator(coupon.DefaultTable()), e.locks, e.cfg)
}

func (e *env) checkout() checkoutAPI {
	return service.NewCheckoutService(discardLogger(), trm.NewNopManager(), e.store, e.store, e.store, e.store,
		e.notifier, e.locks, e.cfg)
}

func (e *env) orders(opts ...service.OrderOption) orderAPI {
	opts = append([]service.OrderOption{service.WithRetry(fastRetry), service.WithOrderClock(e.clock.Now)}, opts...)
	return service.NewOrderService(discardLogger(), trm.NewNopManager(), e.store, e.store, e.store,
		e.notifier, cache.NewLRUCache[[]byte](100, time.Minute), opts...)
}

func (e *env) sellable(t *testing.T, productID string) int {
	t.Helper()
	p, err := e.store.GetProduct(t.Context(), productID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	return p.Sellable()
}

func assertTotalsConsistent(t *testing.T, c entities.Cart) {
	t.Helper()
	want := max(0, c.Totals.Subtotal-c.Totals.Discount+c.Totals.Tax+c.Totals.Shipping)
	assert.Equal(t, want, c.Totals.Total)
	assert.Equal(t, len(c.ActiveItems()), c.Totals.UniqueItems)
}
