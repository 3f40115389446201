package entities_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors_Matching(t *testing.T) {
	unavailable := fmt.Errorf("place order: %w",
		entities.Unavailable("p1", nil, 3, 1, entities.ErrInsufficientStock))

	assert.ErrorIs(t, unavailable, entities.ErrProductUnavailable)
	assert.ErrorIs(t, unavailable, entities.ErrInsufficientStock)
	assert.NotErrorIs(t, unavailable, entities.ErrProductInactive)
	assert.EqualError(t, errors.Unwrap(unavailable), "product p1 unavailable: requested 3, sellable 1")

	var ue *entities.UnavailableError
	require.ErrorAs(t, unavailable, &ue)
	assert.Equal(t, "p1", ue.ProductID)

	inactive := entities.Unavailable("p2", &entities.Variant{Name: "size", Value: "L"}, 1, 0, entities.ErrProductInactive)
	assert.EqualError(t, inactive, "product p2 (size=L) unavailable: product is not active")

	transition := entities.CheckTransition(entities.StatusShipped, entities.StatusCancelled)
	assert.ErrorIs(t, transition, entities.ErrIllegalTransition)
	assert.NoError(t, entities.CheckTransition(entities.StatusShipped, entities.StatusDelivered))

	assert.ErrorIs(t, entities.Invalid("payment_method", "is required"), entities.ErrValidation)
}

func TestStatus(t *testing.T) {
	for _, s := range entities.Statuses {
		assert.True(t, s.Valid(), s)
		assert.False(t, entities.CanTransition(s, s), "%s re-entered", s)
	}
	assert.False(t, entities.Status("lost").Valid())

	assert.True(t, entities.StatusCancelled.Terminal())
	assert.True(t, entities.StatusRefunded.Terminal())
	assert.False(t, entities.StatusDelivered.Terminal())

	assert.Equal(t, entities.InventoryRelease, entities.StatusCancelled.InventoryAction())
	assert.Equal(t, entities.InventoryCommit, entities.StatusDelivered.InventoryAction())
	assert.Equal(t, entities.InventoryNone, entities.StatusShipped.InventoryAction())
}

func TestActor_CanManage(t *testing.T) {
	order := entities.Order{CustomerID: "u1"}

	assert.True(t, entities.Actor{ID: "u1", Role: entities.RoleCustomer}.CanManage(order))
	assert.False(t, entities.Actor{ID: "u2", Role: entities.RoleCustomer}.CanManage(order))
	assert.True(t, entities.Actor{ID: "ops", Role: entities.RoleAdmin}.CanManage(order))
	assert.True(t, entities.Actor{ID: "fulfillment", Role: entities.RoleSystem}.CanManage(order))
}

func TestCart_Lines(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	small := &entities.Variant{Name: "size", Value: "S", PriceAdjustment: -100}
	large := &entities.Variant{Name: "size", Value: "L", PriceAdjustment: 200}

	cart := entities.NewCart("c1", "u1", now)
	cart.Items = []entities.LineItem{
		{ProductID: "tee", Price: 1000, Quantity: 2, Variant: small},
		{ProductID: "tee", Price: 1000, Quantity: 1, Variant: large},
		{ProductID: "mug", Price: 600, Quantity: 1, Expired: true},
	}

	assert.Equal(t, int64(1800), cart.Items[0].LineTotal())
	assert.Equal(t, int64(1200), cart.Items[1].UnitPrice())
	assert.Equal(t, 1, cart.FindItem("tee", &entities.Variant{Name: "size", Value: "L"}))
	assert.Equal(t, -1, cart.FindItem("tee", nil))
	assert.Len(t, cart.ActiveItems(), 2)

	assert.Equal(t, 1, cart.RemoveItems("tee", small, false))
	assert.Equal(t, 1, cart.RemoveItems("tee", nil, true))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "mug", cart.Items[0].ProductID)

	cart.PutCoupon(entities.AppliedCoupon{Coupon: entities.Coupon{Code: "SAVE10"}, Discount: 100})
	cart.PutCoupon(entities.AppliedCoupon{Coupon: entities.Coupon{Code: "SAVE10"}, Discount: 60})
	require.Len(t, cart.Coupons, 1)
	assert.Equal(t, int64(60), cart.Coupons[0].Discount)
	assert.True(t, cart.RemoveCoupon("SAVE10"))
	assert.False(t, cart.RemoveCoupon("SAVE10"))

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.Empty(t, cart.Coupons)
}

func TestCart_Touch(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	cart := entities.NewCart("c1", "u1", start)

	cart.Touch(start.Add(time.Hour), 24*time.Hour)
	assert.False(t, cart.Abandoned)

	cart.Touch(start.Add(26*time.Hour), 24*time.Hour)
	assert.True(t, cart.Abandoned, "gap since the previous activity exceeds the window")
	assert.Equal(t, start.Add(26*time.Hour), cart.LastActivity)

	cart.Touch(start.Add(27*time.Hour), 24*time.Hour)
	assert.False(t, cart.Abandoned)
}

func TestOrder_Codec(t *testing.T) {
	order := entities.Order{
		ID:         "o1",
		CustomerID: "u1",
		Status:     entities.StatusShipped,
		Tracking:   &entities.Tracking{Carrier: "DHL", TrackingNumber: "JD01"},
		CreatedAt:  time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := order.Marshal()
	require.NoError(t, err)

	var decoded entities.Order
	require.NoError(t, decoded.Unmarshal(data))
	assert.Equal(t, order.ID, decoded.ID)
	assert.Equal(t, order.Tracking, decoded.Tracking)
	assert.True(t, order.CreatedAt.Equal(decoded.CreatedAt))

	assert.ErrorIs(t, decoded.Unmarshal([]byte("garbage")), entities.ErrInvalidOrder)
}
