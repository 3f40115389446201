package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	customer = entities.Actor{ID: "u1", Role: entities.RoleCustomer}
	admin    = entities.Actor{ID: "ops", Role: entities.RoleAdmin}
)

type services struct {
	carts     *mocks.MockCartService
	checkout  *mocks.MockCheckoutService
	orders    *mocks.MockOrderService
	inventory *mocks.MockInventoryService
}

func newRouter(t *testing.T) (chi.Router, services) {
	t.Helper()
	s := services{
		carts:     mocks.NewMockCartService(t),
		checkout:  mocks.NewMockCheckoutService(t),
		orders:    mocks.NewMockOrderService(t),
		inventory: mocks.NewMockInventoryService(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, s.carts, s.checkout, s.orders, s.inventory)

	r := chi.NewRouter()
	r.Use(middleware.Actor)
	h.Init(r)
	return r, s
}

func do(r chi.Router, method, target, body string, actor *entities.Actor) (int, string) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if actor != nil {
		req.Header.Set(middleware.ActorIDHeader, actor.ID)
		req.Header.Set(middleware.ActorRoleHeader, string(actor.Role))
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()
	data, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(data)
}

func sampleCart() entities.Cart {
	return entities.Cart{
		ID:      "cart-1",
		OwnerID: "u1",
		Items: []entities.LineItem{{
			ProductID: "p1",
			Name:      "Mug",
			Price:     1000,
			Quantity:  2,
			Variant:   &entities.Variant{Name: "color", Value: "red", PriceAdjustment: 50},
		}},
		Coupons: []entities.AppliedCoupon{},
		Totals:  entities.Totals{Subtotal: 2100, Tax: 336, Shipping: 300, Total: 2736, ItemCount: 2, UniqueItems: 1},
	}
}

func sampleOrder() entities.Order {
	return entities.Order{
		ID:         "order-1",
		CustomerID: "u1",
		Status:     entities.StatusPending,
		Items:      []entities.OrderItem{{ProductID: "p1", Price: 1000, Quantity: 2, LineTotal: 2000}},
		Summary:    entities.Summary{Subtotal: 2000, Total: 2620},
		Payment:    entities.Payment{Method: "card", Amount: 2620, Status: entities.PaymentPending},
		CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestHTTPHandler_RequiresActor(t *testing.T) {
	r, _ := newRouter(t)

	status, body := do(r, http.MethodGet, "/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, `"missing actor"`)

	status, _ = do(r, http.MethodGet, "/inventory/p1", "", &customer)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = do(r, http.MethodPatch, "/admin/orders/order-1/status", `{"status":"confirmed"}`, &customer)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestHTTPHandler_GetCart(t *testing.T) {
	r, s := newRouter(t)
	s.carts.EXPECT().GetOrCreate(mock.Anything, "u1").Return(sampleCart(), nil).Once()

	status, body := do(r, http.MethodGet, "/cart", "", &customer)
	require.Equal(t, http.StatusOK, status)

	var resp handler.Cart
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "cart-1", resp.ID)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(1050), resp.Items[0].Price)
	assert.Equal(t, int64(2100), resp.Items[0].LineTotal)
	assert.Equal(t, int64(2736), resp.Totals.Total)
	assert.NotNil(t, resp.Coupons)
}

func TestHTTPHandler_AddItem(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(s services)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"product_id":"p1","quantity":2,"variant":{"name":"color","value":"red"}}`,
			mockBehavior: func(s services) {
				s.carts.EXPECT().
					AddItem(mock.Anything, "u1", "p1", 2, &entities.Variant{Name: "color", Value: "red"}).
					Return(sampleCart(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"cart-1"`,
		},
		{
			name:       "missing product",
			body:       `{"quantity":2}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"product_id":"required"`,
		},
		{
			name:       "incomplete variant",
			body:       `{"product_id":"p1","quantity":1,"variant":{"name":"color"}}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"variant.value":"required"`,
		},
		{
			name:       "price adjustment is not accepted from the shopper",
			body:       `{"product_id":"p1","quantity":1,"variant":{"name":"color","value":"red","price_adjustment":-900}}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"malformed json"`,
		},
		{
			name:       "malformed json",
			body:       `{"product_id":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"malformed json"`,
		},
		{
			name: "invalid quantity",
			body: `{"product_id":"p1","quantity":0}`,
			mockBehavior: func(s services) {
				s.carts.EXPECT().
					AddItem(mock.Anything, "u1", "p1", 0, (*entities.Variant)(nil)).
					Return(entities.Cart{}, entities.ErrInvalidQuantity).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"quantity"`,
		},
		{
			name: "insufficient stock",
			body: `{"product_id":"p1","quantity":5}`,
			mockBehavior: func(s services) {
				s.carts.EXPECT().
					AddItem(mock.Anything, "u1", "p1", 5, (*entities.Variant)(nil)).
					Return(entities.Cart{}, entities.Unavailable("p1", nil, 5, 3, entities.ErrInsufficientStock)).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"sellable":3`,
		},
		{
			name: "unknown product",
			body: `{"product_id":"nope","quantity":1}`,
			mockBehavior: func(s services) {
				s.carts.EXPECT().
					AddItem(mock.Anything, "u1", "nope", 1, (*entities.Variant)(nil)).
					Return(entities.Cart{}, entities.Unavailable("nope", nil, 1, 0, entities.ErrProductNotFound)).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"product_id":"nope"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, s := newRouter(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(s)
			}

			status, body := do(r, http.MethodPost, "/cart/items", tc.body, &customer)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_CartMutations(t *testing.T) {
	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior func(s services)
		wantStatus   int
	}{
		{
			name:   "update quantity",
			method: http.MethodPatch,
			target: "/cart/items/p1",
			body:   `{"quantity":3}`,
			mockBehavior: func(s services) {
				s.carts.EXPECT().UpdateQuantity(mock.Anything, "u1", "p1", 3, (*entities.Variant)(nil)).Return(sampleCart(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "update missing line",
			method: http.MethodPatch,
			target: "/cart/items/p9",
			body:   `{"quantity":3}`,
			mockBehavior: func(s services) {
				s.carts.EXPECT().UpdateQuantity(mock.Anything, "u1", "p9", 3, (*entities.Variant)(nil)).Return(entities.Cart{}, entities.ErrLineNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "negative quantity",
			method:     http.MethodPatch,
			target:     "/cart/items/p1",
			body:       `{"quantity":-1}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "remove all variants",
			method: http.MethodDelete,
			target: "/cart/items/p1",
			mockBehavior: func(s services) {
				s.carts.EXPECT().RemoveItem(mock.Anything, "u1", "p1", (*entities.Variant)(nil)).Return(sampleCart(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "remove one variant",
			method: http.MethodDelete,
			target: "/cart/items/p1?variant_name=color&variant_value=red",
			mockBehavior: func(s services) {
				s.carts.EXPECT().RemoveItem(mock.Anything, "u1", "p1", &entities.Variant{Name: "color", Value: "red"}).Return(sampleCart(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "half a variant",
			method:     http.MethodDelete,
			target:     "/cart/items/p1?variant_name=color",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "clear",
			method: http.MethodDelete,
			target: "/cart",
			mockBehavior: func(s services) {
				s.carts.EXPECT().Clear(mock.Anything, "u1").Return(entities.Cart{}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "apply coupon",
			method: http.MethodPost,
			target: "/cart/coupons",
			body:   `{"code":"SAVE10"}`,
			mockBehavior: func(s services) {
				s.carts.EXPECT().ApplyCoupon(mock.Anything, "u1", "SAVE10").Return(sampleCart(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "invalid coupon",
			method: http.MethodPost,
			target: "/cart/coupons",
			body:   `{"code":"BOGUS"}`,
			mockBehavior: func(s services) {
				s.carts.EXPECT().ApplyCoupon(mock.Anything, "u1", "BOGUS").Return(entities.Cart{}, entities.ErrInvalidCoupon).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "coupon on empty cart",
			method: http.MethodPost,
			target: "/cart/coupons",
			body:   `{"code":"SAVE10"}`,
			mockBehavior: func(s services) {
				s.carts.EXPECT().ApplyCoupon(mock.Anything, "u1", "SAVE10").Return(entities.Cart{}, entities.ErrEmptyCart).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "remove coupon",
			method: http.MethodDelete,
			target: "/cart/coupons/SAVE10",
			mockBehavior: func(s services) {
				s.carts.EXPECT().RemoveCoupon(mock.Anything, "u1", "SAVE10").Return(entities.Cart{}, entities.ErrCouponNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, s := newRouter(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(s)
			}

			status, _ := do(r, tc.method, tc.target, tc.body, &customer)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestHTTPHandler_PlaceOrder(t *testing.T) {
	const validBody = `{
		"shipping_address": {"name":"Ann","line1":"1 Main St","city":"Springfield","postal_code":"12345","country":"US"},
		"payment_method": "card"
	}`
	wantReq := entities.CheckoutRequest{
		ShippingAddress: entities.Address{Name: "Ann", Line1: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US"},
		PaymentMethod:   "card",
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(s services)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: validBody,
			mockBehavior: func(s services) {
				s.checkout.EXPECT().PlaceOrder(mock.Anything, "u1", wantReq).Return(sampleOrder(), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"pending"`,
		},
		{
			name:       "missing address",
			body:       `{"payment_method":"card"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"shipping_address"`,
		},
		{
			name:       "bad country",
			body:       strings.Replace(validBody, `"US"`, `"USA"`, 1),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"shipping_address.country":"iso3166_1_alpha2"`,
		},
		{
			name: "empty cart",
			body: validBody,
			mockBehavior: func(s services) {
				s.checkout.EXPECT().PlaceOrder(mock.Anything, "u1", wantReq).Return(entities.Order{}, entities.ErrEmptyCart).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"cart is empty"`,
		},
		{
			name: "stock ran out",
			body: validBody,
			mockBehavior: func(s services) {
				s.checkout.EXPECT().PlaceOrder(mock.Anything, "u1", wantReq).
					Return(entities.Order{}, entities.Unavailable("p1", nil, 2, 1, entities.ErrInsufficientStock)).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"requested":2`,
		},
		{
			name: "internal error",
			body: validBody,
			mockBehavior: func(s services) {
				s.checkout.EXPECT().PlaceOrder(mock.Anything, "u1", wantReq).Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, s := newRouter(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(s)
			}

			status, body := do(r, http.MethodPost, "/checkout", tc.body, &customer)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_Orders(t *testing.T) {
	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		actor        entities.Actor
		mockBehavior func(s services)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "get own order",
			method: http.MethodGet,
			target: "/orders/order-1",
			actor:  customer,
			mockBehavior: func(s services) {
				s.orders.EXPECT().GetOrder(mock.Anything, "order-1", customer).Return(sampleOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"order-1"`,
		},
		{
			name:   "get foreign order",
			method: http.MethodGet,
			target: "/orders/order-1",
			actor:  customer,
			mockBehavior: func(s services) {
				s.orders.EXPECT().GetOrder(mock.Anything, "order-1", customer).Return(entities.Order{}, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "order not found",
			method: http.MethodGet,
			target: "/orders/nope",
			actor:  customer,
			mockBehavior: func(s services) {
				s.orders.EXPECT().GetOrder(mock.Anything, "nope", customer).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:   "list orders",
			method: http.MethodGet,
			target: "/orders",
			actor:  customer,
			mockBehavior: func(s services) {
				s.orders.EXPECT().ListOrders(mock.Anything, "u1").Return([]entities.Order{sampleOrder()}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"id":"order-1"`,
		},
		{
			name:   "cancel without body",
			method: http.MethodPost,
			target: "/orders/order-1/cancel",
			actor:  customer,
			mockBehavior: func(s services) {
				o := sampleOrder()
				o.Status = entities.StatusCancelled
				s.orders.EXPECT().Cancel(mock.Anything, "order-1", customer, "").Return(o, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"cancelled"`,
		},
		{
			name:   "cancel shipped order",
			method: http.MethodPost,
			target: "/orders/order-1/cancel",
			body:   `{"reason":"too slow"}`,
			actor:  customer,
			mockBehavior: func(s services) {
				s.orders.EXPECT().Cancel(mock.Anything, "order-1", customer, "too slow").
					Return(entities.Order{}, &entities.TransitionError{From: entities.StatusShipped, To: entities.StatusCancelled}).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `shipped to cancelled`,
		},
		{
			name:   "admin ships order",
			method: http.MethodPatch,
			target: "/admin/orders/order-1/status",
			body:   `{"status":"shipped","tracking":{"carrier":"UPS","tracking_number":"1Z999"}}`,
			actor:  admin,
			mockBehavior: func(s services) {
				s.orders.EXPECT().SetStatus(mock.Anything, "order-1", entities.StatusChange{
					To:       entities.StatusShipped,
					Actor:    admin,
					Tracking: &entities.Tracking{Carrier: "UPS", TrackingNumber: "1Z999"},
				}).Return(sampleOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown status",
			method:     http.MethodPatch,
			target:     "/admin/orders/order-1/status",
			body:       `{"status":"lost"}`,
			actor:      admin,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"status":"oneof"`,
		},
		{
			name:   "shipping without tracking",
			method: http.MethodPatch,
			target: "/admin/orders/order-1/status",
			body:   `{"status":"shipped"}`,
			actor:  admin,
			mockBehavior: func(s services) {
				s.orders.EXPECT().SetStatus(mock.Anything, "order-1", mock.Anything).
					Return(entities.Order{}, entities.Invalid("tracking", "tracking number is required to ship an order")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"tracking":"tracking number is required to ship an order"`,
		},
		{
			name:   "inventory",
			method: http.MethodGet,
			target: "/inventory/p1",
			actor:  admin,
			mockBehavior: func(s services) {
				s.inventory.EXPECT().GetProduct(mock.Anything, "p1").
					Return(entities.Product{ID: "p1", Status: entities.ProductActive, Available: 10, Reserved: 4}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"sellable":6`,
		},
		{
			name:   "inventory unknown product",
			method: http.MethodGet,
			target: "/inventory/nope",
			actor:  admin,
			mockBehavior: func(s services) {
				s.inventory.EXPECT().GetProduct(mock.Anything, "nope").Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, s := newRouter(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(s)
			}

			status, body := do(r, tc.method, tc.target, tc.body, &tc.actor)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}
