package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CartService interface {
	GetOrCreate(ctx context.Context, ownerID string) (entities.Cart, error)
	AddItem(ctx context.Context, ownerID, productID string, qty int, variant *entities.Variant) (entities.Cart, error)
	UpdateQuantity(ctx context.Context, ownerID, productID string, qty int, variant *entities.Variant) (entities.Cart, error)
	RemoveItem(ctx context.Context, ownerID, productID string, variant *entities.Variant) (entities.Cart, error)
	Clear(ctx context.Context, ownerID string) (entities.Cart, error)
	ApplyCoupon(ctx context.Context, ownerID, code string) (entities.Cart, error)
	RemoveCoupon(ctx context.Context, ownerID, code string) (entities.Cart, error)
}

type CheckoutService interface {
	PlaceOrder(ctx context.Context, ownerID string, req entities.CheckoutRequest) (entities.Order, error)
}

type OrderService interface {
	Cancel(ctx context.Context, orderID string, actor entities.Actor, reason string) (entities.Order, error)
	GetOrder(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error)
	ListOrders(ctx context.Context, customerID string) ([]entities.Order, error)
	SetStatus(ctx context.Context, orderID string, change entities.StatusChange) (entities.Order, error)
}

type InventoryService interface {
	GetProduct(ctx context.Context, productID string) (entities.Product, error)
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	carts     CartService
	checkout  CheckoutService
	orders    OrderService
	inventory InventoryService
}

func NewHTTPHandler(
	logger *slog.Logger,
	carts CartService,
	checkout CheckoutService,
	orders OrderService,
	inventory InventoryService,
) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  utils.NewValidator(),
		carts:     carts,
		checkout:  checkout,
		orders:    orders,
		inventory: inventory,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(requireActor)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Delete("/", h.ClearCart)
			r.Post("/items", h.AddItem)
			r.Patch("/items/{product_id}", h.UpdateQuantity)
			r.Delete("/items/{product_id}", h.RemoveItem)
			r.Post("/coupons", h.ApplyCoupon)
			r.Delete("/coupons/{code}", h.RemoveCoupon)
		})

		r.Post("/checkout", h.PlaceOrder)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.ListOrders)
			r.Get("/{order_id}", h.GetOrder)
			r.Post("/{order_id}/cancel", h.CancelOrder)
		})

		r.Group(func(r chi.Router) {
			r.Use(requirePrivileged)
			r.Patch("/admin/orders/{order_id}/status", h.SetOrderStatus)
			r.Get("/inventory/{product_id}", h.GetProduct)
		})
	})
}

func requireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.ActorFromContext(r.Context()); !ok {
			utils.WriteError(w, "missing actor", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requirePrivileged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, _ := middleware.ActorFromContext(r.Context())
		if !actor.Privileged() {
			utils.WriteError(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func actorFrom(r *http.Request) entities.Actor {
	actor, _ := middleware.ActorFromContext(r.Context())
	return actor
}

// decode reads and validates a JSON body. It writes the 400 response itself
// and reports whether the handler may continue.
func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteFieldError(w, "body", "malformed json")
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

// writeError maps domain errors onto HTTP statuses. Anything unknown is
// logged and reported as an internal error.
func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var (
		unavailable *entities.UnavailableError
		invalid     *entities.ValidationError
	)

	switch {
	case errors.As(err, &unavailable):
		utils.WriteJSON(w, UnavailableResponse{
			Message:   unavailable.Error(),
			ProductID: unavailable.ProductID,
			Variant:   VariantEntityToJSON(unavailable.Variant),
			Requested: unavailable.Requested,
			Sellable:  unavailable.Sellable,
		}, http.StatusConflict)
	case errors.As(err, &invalid):
		utils.WriteFieldError(w, invalid.Field, invalid.Message)
	case errors.Is(err, entities.ErrInvalidQuantity):
		utils.WriteFieldError(w, "quantity", err.Error())
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrProductNotFound),
		errors.Is(err, entities.ErrCartNotFound),
		errors.Is(err, entities.ErrLineNotFound),
		errors.Is(err, entities.ErrCouponNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrEmptyCart),
		errors.Is(err, entities.ErrIllegalTransition):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidCoupon):
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		h.logger.ErrorContext(r.Context(), "request failed", slog.String("op", op), slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
