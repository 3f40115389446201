package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/internal/pricing"
	"github.com/SergeyBogomolovv/storefront-service/pkg/keylock"
	"github.com/SergeyBogomolovv/storefront-service/pkg/trm"

	"github.com/google/uuid"
)

type checkoutService struct {
	logger    *slog.Logger
	txManager trm.Manager
	carts     CartRepo
	orders    OrderRepo
	catalog   Catalog
	ledger    Ledger
	notifier  Notifier
	locks     *keylock.Locker
	cfg       CartConfig
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	carts CartRepo,
	orders OrderRepo,
	catalog Catalog,
	ledger Ledger,
	notifier Notifier,
	locks *keylock.Locker,
	cfg CartConfig,
) *checkoutService {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &checkoutService{
		logger:    logger.With(slog.String("service", "checkout")),
		txManager: txManager,
		carts:     carts,
		orders:    orders,
		catalog:   catalog,
		ledger:    ledger,
		notifier:  notifier,
		locks:     locks,
		cfg:       cfg,
	}
}

// PlaceOrder turns the owner's cart into a pending order. Stock for every
// line is reserved as one unit; on any failure nothing stays reserved and
// the cart is left as it was.
func (s *checkoutService) PlaceOrder(ctx context.Context, ownerID string, req entities.CheckoutRequest) (entities.Order, error) {
	start := time.Now()
	defer func() { checkoutDuration.Observe(time.Since(start).Seconds()) }()

	if ownerID == "" {
		return entities.Order{}, entities.Invalid("owner_id", "is required")
	}
	if req.PaymentMethod == "" {
		return entities.Order{}, entities.Invalid("payment_method", "is required")
	}

	unlock := s.locks.Lock(ownerID)
	defer unlock()

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cart, err := s.carts.GetCart(ctx, ownerID)
		if errors.Is(err, entities.ErrCartNotFound) {
			return entities.ErrEmptyCart
		}
		if err != nil {
			return fmt.Errorf("failed to get cart: %w", err)
		}

		now := s.cfg.Now()
		pricing.Recompute(&cart, s.cfg.Rules, now)
		lines := cart.ActiveItems()
		if len(lines) == 0 {
			return entities.ErrEmptyCart
		}

		if err := s.validate(ctx, lines); err != nil {
			return err
		}

		reserved, err := s.reserve(ctx, lines)
		if err != nil {
			return err
		}

		order = entities.NewOrder(uuid.NewString(), ownerID, lines, cart.Totals, cart.Coupons, now)
		order.ShippingAddress = req.ShippingAddress
		order.BillingAddress = req.ShippingAddress
		if req.BillingAddress != nil {
			order.BillingAddress = *req.BillingAddress
		}
		order.Payment = entities.Payment{
			Method: req.PaymentMethod,
			Amount: order.Summary.Total,
			Status: entities.PaymentPending,
		}

		if err := s.orders.CreateOrder(ctx, order); err != nil {
			s.rollback(ctx, reserved)
			return fmt.Errorf("failed to create order: %w", err)
		}

		cart.Clear()
		cart.Touch(now, s.cfg.AbandonAfter)
		pricing.Recompute(&cart, s.cfg.Rules, now)
		if err := s.carts.SaveCart(ctx, cart); err != nil {
			s.rollback(ctx, reserved)
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		checkoutFailures.WithLabelValues(failureReason(err)).Inc()
		return entities.Order{}, err
	}

	ordersPlaced.Inc()
	s.logger.Info("order placed",
		slog.String("order_id", order.ID),
		slog.String("customer_id", ownerID),
		slog.Int64("total", order.Summary.Total),
	)

	if err := s.notifier.Notify(ctx, entities.NewOrderEvent(entities.EventOrderPlaced, order, "", "")); err != nil {
		notificationsFailed.Inc()
		s.logger.Warn("failed to notify", slog.String("order_id", order.ID), slog.Any("error", err))
	}
	return order, nil
}

// validate re-reads every product. Quantities of lines sharing a product
// are summed, since they draw on the same stock.
func (s *checkoutService) validate(ctx context.Context, lines []entities.LineItem) error {
	requested := make(map[string]int, len(lines))
	for _, l := range lines {
		requested[l.ProductID] += l.Quantity
	}

	for _, l := range lines {
		product, err := s.catalog.GetProduct(ctx, l.ProductID)
		if errors.Is(err, entities.ErrProductNotFound) {
			return entities.Unavailable(l.ProductID, l.Variant, l.Quantity, 0, err)
		}
		if err != nil {
			return fmt.Errorf("failed to get product: %w", err)
		}
		if _, err := product.ResolveVariant(l.Variant, l.Quantity); err != nil {
			return err
		}
		if l.UnitPrice() < 0 {
			return entities.Unavailable(l.ProductID, l.Variant, l.Quantity, product.Sellable(), entities.ErrInvalidPrice)
		}
		if err := product.CheckSellable(requested[l.ProductID], l.Variant); err != nil {
			return err
		}
	}
	return nil
}

// reserve takes stock for every line in product id order. On the first
// failure the lines already reserved are released in reverse order.
func (s *checkoutService) reserve(ctx context.Context, lines []entities.LineItem) ([]entities.LineItem, error) {
	ordered := slices.Clone(lines)
	slices.SortStableFunc(ordered, func(a, b entities.LineItem) int {
		return cmp.Or(cmp.Compare(a.ProductID, b.ProductID), cmp.Compare(variantKey(a.Variant), variantKey(b.Variant)))
	})

	reserved := make([]entities.LineItem, 0, len(ordered))
	for _, l := range ordered {
		err := s.ledger.Reserve(ctx, l.ProductID, l.Quantity)
		if err == nil {
			reserved = append(reserved, l)
			continue
		}

		s.rollback(ctx, reserved)
		if errors.Is(err, entities.ErrInsufficientStock) || errors.Is(err, entities.ErrProductNotFound) {
			sellable := 0
			if p, perr := s.catalog.GetProduct(ctx, l.ProductID); perr == nil {
				sellable = p.Sellable()
			}
			return nil, entities.Unavailable(l.ProductID, l.Variant, l.Quantity, sellable, err)
		}
		return nil, fmt.Errorf("failed to reserve stock: %w", err)
	}
	return reserved, nil
}

func (s *checkoutService) rollback(ctx context.Context, reserved []entities.LineItem) {
	if len(reserved) == 0 {
		return
	}
	reservationRollbacks.Inc()
	for i := len(reserved) - 1; i >= 0; i-- {
		l := reserved[i]
		if err := s.ledger.Release(ctx, l.ProductID, l.Quantity); err != nil {
			s.logger.Error("failed to release reservation",
				slog.String("product_id", l.ProductID),
				slog.Int("quantity", l.Quantity),
				slog.Any("error", err),
			)
		}
	}
}

func variantKey(v *entities.Variant) string {
	if v == nil {
		return ""
	}
	return v.Key()
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, entities.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, entities.ErrProductUnavailable):
		return "unavailable"
	case errors.Is(err, entities.ErrValidation):
		return "validation"
	default:
		return "internal"
	}
}
