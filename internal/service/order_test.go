package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/storefront-service/pkg/trm"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var tracking = &entities.Tracking{Carrier: "UPS", TrackingNumber: "1Z999"}

// placeOrder checks out qty units of productID for owner through the real
// cart and checkout services.
func placeOrder(t *testing.T, e *env, owner, productID string, qty int) entities.Order {
	t.Helper()
	ctx := context.Background()
	e.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Maybe()

	_, err := e.carts().AddItem(ctx, owner, productID, qty, nil)
	require.NoError(t, err)
	order, err := e.checkout().PlaceOrder(ctx, owner, checkoutReq())
	require.NoError(t, err)
	return order
}

func invalidatingCache(t *testing.T) *mocks.MockCache {
	c := mocks.NewMockCache(t)
	c.EXPECT().Delete(mock.Anything).Return().Maybe()
	return c
}

func change(to entities.Status) entities.StatusChange {
	c := entities.StatusChange{To: to, Actor: admin}
	if to == entities.StatusShipped {
		c.Tracking = tracking
	}
	return c
}

func advance(t *testing.T, orders orderAPI, id string, path ...entities.Status) entities.Order {
	t.Helper()
	var order entities.Order
	for _, to := range path {
		var err error
		order, err = orders.SetStatus(context.Background(), id, change(to))
		require.NoError(t, err, "transition to %s", to)
	}
	return order
}

func TestOrderService_TransitionTable(t *testing.T) {
	legal := map[[2]entities.Status]bool{
		{entities.StatusPending, entities.StatusConfirmed}:    true,
		{entities.StatusPending, entities.StatusCancelled}:    true,
		{entities.StatusConfirmed, entities.StatusProcessing}: true,
		{entities.StatusConfirmed, entities.StatusCancelled}:  true,
		{entities.StatusProcessing, entities.StatusShipped}:   true,
		{entities.StatusProcessing, entities.StatusCancelled}: true,
		{entities.StatusShipped, entities.StatusDelivered}:    true,
		{entities.StatusDelivered, entities.StatusRefunded}:   true,
	}

	for _, from := range entities.Statuses {
		for _, to := range entities.Statuses {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				ctx := context.Background()
				e := newEnv(t)
				p := product("p1", 1000, 10)
				p.Reserved = 3
				e.store.PutProduct(p)
				e.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Maybe()

				o := entities.NewOrder("order-1", "u1",
					[]entities.LineItem{{ProductID: "p1", Price: 1000, Quantity: 3}},
					entities.Totals{Subtotal: 3000, Total: 3000}, nil, e.clock.Now())
				o.Status = from
				require.NoError(t, e.store.CreateOrder(ctx, o))

				got, err := e.orders().SetStatus(ctx, "order-1", change(to))
				stored, getErr := e.store.GetOrder(ctx, "order-1")
				require.NoError(t, getErr)

				if !legal[[2]entities.Status{from, to}] {
					assert.ErrorIs(t, err, entities.ErrIllegalTransition)
					var te *entities.TransitionError
					require.ErrorAs(t, err, &te)
					assert.Equal(t, from, te.From)
					assert.Equal(t, to, te.To)
					assert.Equal(t, from, stored.Status)
					assert.Len(t, stored.History, 1)
					assert.Equal(t, 7, e.sellable(t, "p1"))
					return
				}

				require.NoError(t, err)
				assert.Equal(t, to, got.Status)
				assert.Equal(t, to, stored.Status)
				require.Len(t, stored.History, 2)
				assert.Equal(t, to, stored.History[1].Status)
				assert.Equal(t, admin.ID, stored.History[1].Actor)
			})
		}
	}
}

func TestOrderService_CancelRestoresStock(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.store.PutProduct(product("p1", 1000, 10))
	order := placeOrder(t, e, "u1", "p1", 3)
	require.Equal(t, 7, e.sellable(t, "p1"))

	e.clock.Advance(time.Hour)
	cancelled, err := e.orders().Cancel(ctx, order.ID, customer, "changed my mind")
	require.NoError(t, err)

	assert.Equal(t, entities.StatusCancelled, cancelled.Status)
	assert.Equal(t, &entities.Cancellation{
		Reason:      "changed my mind",
		CancelledBy: "u1",
		CancelledAt: e.clock.Now(),
	}, cancelled.Cancellation)
	assert.Equal(t, entities.PaymentPending, cancelled.Payment.Status)
	assert.Equal(t, e.clock.Now(), cancelled.UpdatedAt)
	assert.Equal(t, 10, e.sellable(t, "p1"))

	p, err := e.store.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Zero(t, p.Reserved)
	assert.Equal(t, 10, p.Available)

	_, err = e.orders().Cancel(ctx, order.ID, admin, "again")
	assert.ErrorIs(t, err, entities.ErrIllegalTransition)
	assert.Equal(t, 10, e.sellable(t, "p1"), "a second cancel releases nothing")
}

func TestOrderService_FulfillmentPath(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.store.PutProduct(product("p1", 1000, 10))
	order := placeOrder(t, e, "u1", "p1", 3)
	orders := e.orders()

	confirmed := advance(t, orders, order.ID, entities.StatusConfirmed)
	assert.Equal(t, entities.PaymentPaid, confirmed.Payment.Status)
	require.NotNil(t, confirmed.Payment.PaidAt)
	assert.Equal(t, e.clock.Now(), *confirmed.Payment.PaidAt)

	_, err := orders.SetStatus(ctx, order.ID, entities.StatusChange{To: entities.StatusShipped, Actor: admin})
	assert.ErrorIs(t, err, entities.ErrIllegalTransition, "processing comes first")

	advance(t, orders, order.ID, entities.StatusProcessing)

	_, err = orders.SetStatus(ctx, order.ID, entities.StatusChange{To: entities.StatusShipped, Actor: admin})
	assert.ErrorIs(t, err, entities.ErrValidation)
	stored, err := orders.GetOrder(ctx, order.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusProcessing, stored.Status)

	e.clock.Advance(24 * time.Hour)
	shipped := advance(t, orders, order.ID, entities.StatusShipped)
	require.NotNil(t, shipped.Tracking)
	assert.Equal(t, "1Z999", shipped.Tracking.TrackingNumber)
	assert.Equal(t, e.clock.Now(), shipped.Tracking.ShippedAt)
	assert.Equal(t, 7, e.sellable(t, "p1"), "shipping does not touch stock")

	delivered := advance(t, orders, order.ID, entities.StatusDelivered)
	assert.Equal(t, entities.StatusDelivered, delivered.Status)

	p, err := e.store.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 7, p.Available)
	assert.Zero(t, p.Reserved)
	assert.Equal(t, int64(3), p.SoldCount)
	assert.Equal(t, int64(3000), p.Revenue)

	refunded := advance(t, orders, order.ID, entities.StatusRefunded)
	assert.Equal(t, entities.PaymentRefunded, refunded.Payment.Status)
	assert.Equal(t, 7, e.sellable(t, "p1"), "refunds do not restock")

	statuses := make([]entities.Status, 0, len(refunded.History))
	for _, h := range refunded.History {
		statuses = append(statuses, h.Status)
	}
	assert.Equal(t, []entities.Status{
		entities.StatusPending,
		entities.StatusConfirmed,
		entities.StatusProcessing,
		entities.StatusShipped,
		entities.StatusDelivered,
		entities.StatusRefunded,
	}, statuses)
}

func TestOrderService_CancelPermissions(t *testing.T) {
	testCases := []struct {
		name    string
		actor   entities.Actor
		wantErr error
	}{
		{name: "owner", actor: customer},
		{name: "admin", actor: admin},
		{name: "system", actor: entities.Actor{ID: "fulfillment", Role: entities.RoleSystem}},
		{name: "another customer", actor: stranger, wantErr: entities.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			e := newEnv(t)
			e.store.PutProduct(product("p1", 1000, 10))
			order := placeOrder(t, e, "u1", "p1", 2)

			got, err := e.orders().Cancel(ctx, order.ID, tc.actor, "")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, 8, e.sellable(t, "p1"))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusCancelled, got.Status)
			assert.Equal(t, tc.actor.ID, got.Cancellation.CancelledBy)
			assert.Equal(t, 10, e.sellable(t, "p1"))
		})
	}
}

func TestOrderService_Errors(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	orders := e.orders()

	_, err := orders.SetStatus(ctx, "missing", change(entities.StatusConfirmed))
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)

	_, err = orders.SetStatus(ctx, "missing", change("lost"))
	assert.ErrorIs(t, err, entities.ErrValidation)

	_, err = orders.GetOrder(ctx, "missing", admin)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)

	_, err = orders.Cancel(ctx, "missing", customer, "")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)

	list, err := orders.ListOrders(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOrderService_ReleaseFailureKeepsOrder(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.store.PutProduct(product("a", 1000, 10))
	e.store.PutProduct(product("b", 1000, 10))
	e.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Maybe()

	carts := e.carts()
	_, err := carts.AddItem(ctx, "u1", "a", 1, nil)
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, "u1", "b", 2, nil)
	require.NoError(t, err)
	order, err := e.checkout().PlaceOrder(ctx, "u1", checkoutReq())
	require.NoError(t, err)

	dbErr := errors.New("connection reset")
	ledger := mocks.NewMockLedger(t)
	ledger.EXPECT().Release(mock.Anything, "a", 1).Return(nil).Once()
	ledger.EXPECT().Release(mock.Anything, "b", 2).Return(dbErr).Times(fastRetry.MaxAttempts)
	ledger.EXPECT().Reserve(mock.Anything, "a", 1).Return(nil).Once()

	orders := service.NewOrderService(discardLogger(), trm.NewNopManager(), e.store, ledger, e.store,
		e.notifier, mocks.NewMockCache(t), service.WithRetry(fastRetry), service.WithOrderClock(e.clock.Now))

	_, err = orders.Cancel(ctx, order.ID, admin, "out of stock")
	assert.ErrorIs(t, err, dbErr)

	stored, err := e.store.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPending, stored.Status)
	assert.Nil(t, stored.Cancellation)
	assert.Len(t, stored.History, 1)
}

func TestOrderService_CommitRetries(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.store.PutProduct(product("p1", 1000, 10))
	order := placeOrder(t, e, "u1", "p1", 2)
	advance(t, e.orders(), order.ID, entities.StatusConfirmed, entities.StatusProcessing, entities.StatusShipped)

	ledger := mocks.NewMockLedger(t)
	mock.InOrder(
		ledger.EXPECT().Commit(mock.Anything, "p1", 2).Return(errors.New("timeout")).Once(),
		ledger.EXPECT().Commit(mock.Anything, "p1", 2).Return(nil).Once(),
	)

	orders := service.NewOrderService(discardLogger(), trm.NewNopManager(), e.store, ledger, e.store,
		e.notifier, invalidatingCache(t), service.WithRetry(fastRetry), service.WithOrderClock(e.clock.Now))

	delivered, err := orders.SetStatus(ctx, order.ID, change(entities.StatusDelivered))
	require.NoError(t, err)
	assert.Equal(t, entities.StatusDelivered, delivered.Status)

	p, err := e.store.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.SoldCount)
	assert.Equal(t, int64(2000), p.Revenue)
}

func TestOrderService_DeliverFailureRestoresCommittedLines(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.store.PutProduct(product("p1", 1000, 10))
	e.store.PutProduct(product("p2", 500, 10))
	e.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Maybe()

	carts := e.carts()
	_, err := carts.AddItem(ctx, "u1", "p1", 3, nil)
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, "u1", "p2", 3, nil)
	require.NoError(t, err)
	order, err := e.checkout().PlaceOrder(ctx, "u1", checkoutReq())
	require.NoError(t, err)

	orders := e.orders()
	advance(t, orders, order.ID, entities.StatusConfirmed, entities.StatusProcessing, entities.StatusShipped)

	p2, err := e.store.GetProduct(ctx, "p2")
	require.NoError(t, err)
	p2.Reserved = 0
	e.store.PutProduct(p2)

	_, err = orders.SetStatus(ctx, order.ID, change(entities.StatusDelivered))
	assert.ErrorIs(t, err, entities.ErrNothingReserved)

	p1, err := e.store.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 10, p1.Available)
	assert.Equal(t, 3, p1.Reserved)
	assert.Zero(t, p1.SoldCount)
	assert.Zero(t, p1.Revenue)

	stored, err := e.store.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusShipped, stored.Status)

	p2.Reserved = 3
	e.store.PutProduct(p2)
	delivered, err := orders.SetStatus(ctx, order.ID, change(entities.StatusDelivered))
	require.NoError(t, err)
	assert.Equal(t, entities.StatusDelivered, delivered.Status)

	for _, want := range []struct {
		id      string
		revenue int64
	}{{"p1", 3000}, {"p2", 1500}} {
		p, err := e.store.GetProduct(ctx, want.id)
		require.NoError(t, err)
		assert.Equal(t, 7, p.Available, want.id)
		assert.Zero(t, p.Reserved, want.id)
		assert.Equal(t, int64(3), p.SoldCount, want.id)
		assert.Equal(t, want.revenue, p.Revenue, want.id)
	}
}

func TestOrderService_CommitFailureUncommitsInReverse(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	for _, id := range []string{"a", "b", "c"} {
		e.store.PutProduct(product(id, 1000, 10))
	}
	e.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Maybe()

	carts := e.carts()
	for _, id := range []string{"a", "b", "c"} {
		_, err := carts.AddItem(ctx, "u1", id, 1, nil)
		require.NoError(t, err)
	}
	order, err := e.checkout().PlaceOrder(ctx, "u1", checkoutReq())
	require.NoError(t, err)
	advance(t, e.orders(), order.ID, entities.StatusConfirmed, entities.StatusProcessing, entities.StatusShipped)

	ledger := mocks.NewMockLedger(t)
	mock.InOrder(
		ledger.EXPECT().Commit(mock.Anything, "a", 1).Return(nil).Once(),
		ledger.EXPECT().Commit(mock.Anything, "b", 1).Return(nil).Once(),
		ledger.EXPECT().Commit(mock.Anything, "c", 1).Return(entities.ErrNothingReserved).Once(),
		ledger.EXPECT().Uncommit(mock.Anything, "b", 1).Return(nil).Once(),
		ledger.EXPECT().Uncommit(mock.Anything, "a", 1).Return(nil).Once(),
	)

	orders := service.NewOrderService(discardLogger(), trm.NewNopManager(), e.store, ledger, e.store,
		e.notifier, mocks.NewMockCache(t), service.WithRetry(fastRetry), service.WithOrderClock(e.clock.Now))

	_, err = orders.SetStatus(ctx, order.ID, change(entities.StatusDelivered))
	assert.ErrorIs(t, err, entities.ErrNothingReserved)

	for _, id := range []string{"a", "b", "c"} {
		p, err := e.store.GetProduct(ctx, id)
		require.NoError(t, err)
		assert.Zero(t, p.SoldCount, "sale of %s reverted", id)
		assert.Zero(t, p.Revenue, id)
	}
}

func TestOrderService_NoLedgerRetryInsideTransaction(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.store.PutProduct(product("p1", 1000, 10))
	order := placeOrder(t, e, "u1", "p1", 2)
	advance(t, e.orders(), order.ID, entities.StatusConfirmed, entities.StatusProcessing, entities.StatusShipped)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	dbErr := errors.New("current transaction is aborted")
	ledger := mocks.NewMockLedger(t)
	ledger.EXPECT().Commit(mock.Anything, "p1", 2).Return(dbErr).Once()

	orders := service.NewOrderService(discardLogger(), trm.NewManager(sqlx.NewDb(db, "sqlmock")), e.store, ledger, e.store,
		e.notifier, mocks.NewMockCache(t), service.WithRetry(fastRetry), service.WithOrderClock(e.clock.Now))

	_, err = orders.SetStatus(ctx, order.ID, change(entities.StatusDelivered))
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, sqlMock.ExpectationsWereMet())

	stored, err := e.store.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusShipped, stored.Status)
}

func TestOrderService_NotifierFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.store.PutProduct(product("p1", 1000, 10))
	order := placeOrder(t, e, "u1", "p1", 1)

	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(ev entities.OrderEvent) bool {
			return ev.Type == entities.EventOrderStatusChanged &&
				ev.Status == entities.StatusConfirmed &&
				ev.Previous == entities.StatusPending
		})).
		Return(errors.New("broker unavailable")).
		Once()

	orders := service.NewOrderService(discardLogger(), trm.NewNopManager(), e.store, e.store, e.store,
		notifier, invalidatingCache(t), service.WithRetry(fastRetry), service.WithOrderClock(e.clock.Now))

	confirmed, err := orders.SetStatus(ctx, order.ID, change(entities.StatusConfirmed))
	require.NoError(t, err)
	assert.Equal(t, entities.StatusConfirmed, confirmed.Status)
}

func TestOrderService_Cache(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.store.PutProduct(product("p1", 1000, 10))
	order := placeOrder(t, e, "u1", "p1", 1)

	cache := mocks.NewMockCache(t)
	orders := service.NewOrderService(discardLogger(), trm.NewNopManager(), e.store, e.store, e.store,
		e.notifier, cache, service.WithRetry(fastRetry), service.WithOrderClock(e.clock.Now))

	var cached []byte
	cache.EXPECT().Get(order.ID).Return(nil, false).Once()
	cache.EXPECT().Set(order.ID, mock.Anything).Run(func(_ string, value []byte) {
		cached = value
	}).Return().Once()

	got, err := orders.GetOrder(ctx, order.ID, customer)
	require.NoError(t, err)
	assert.Equal(t, order, got)
	require.NotEmpty(t, cached)

	cache.EXPECT().Get(order.ID).RunAndReturn(func(string) ([]byte, bool) { return cached, true }).Once()
	got, err = orders.GetOrder(ctx, order.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, order, got)

	cache.EXPECT().Delete(order.ID).Return().Once()
	_, err = orders.SetStatus(ctx, order.ID, change(entities.StatusConfirmed))
	require.NoError(t, err)

	cache.EXPECT().Get(order.ID).Return([]byte("garbage"), true).Once()
	_, err = orders.GetOrder(ctx, order.ID, admin)
	assert.ErrorIs(t, err, entities.ErrInvalidOrder)
}
