package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/coupon"
	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/internal/pricing"
	"github.com/SergeyBogomolovv/storefront-service/pkg/keylock"
	"github.com/SergeyBogomolovv/storefront-service/pkg/trm"

	"github.com/google/uuid"
)

type CartConfig struct {
	Rules pricing.Rules
	// AbandonAfter is the inactivity window after which a cart is flagged
	// abandoned. Zero disables flagging.
	AbandonAfter  time.Duration
	SweepInterval time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

type cartService struct {
	logger    *slog.Logger
	txManager trm.Manager
	carts     CartRepo
	catalog   Catalog
	coupons   CouponEvaluator
	locks     *keylock.Locker
	cfg       CartConfig
}

func NewCartService(
	logger *slog.Logger,
	txManager trm.Manager,
	carts CartRepo,
	catalog Catalog,
	coupons CouponEvaluator,
	locks *keylock.Locker,
	cfg CartConfig,
) *cartService {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &cartService{
		logger:    logger.With(slog.String("service", "cart")),
		txManager: txManager,
		carts:     carts,
		catalog:   catalog,
		coupons:   coupons,
		locks:     locks,
		cfg:       cfg,
	}
}

// GetOrCreate returns the owner's cart, creating an empty one if needed.
func (s *cartService) GetOrCreate(ctx context.Context, ownerID string) (entities.Cart, error) {
	if ownerID == "" {
		return entities.Cart{}, entities.Invalid("owner_id", "is required")
	}

	cart, err := s.load(ctx, ownerID, s.cfg.Now())
	if err != nil {
		return entities.Cart{}, err
	}
	pricing.Recompute(&cart, s.cfg.Rules, s.cfg.Now())
	return cart, nil
}

func (s *cartService) AddItem(ctx context.Context, ownerID, productID string, qty int, variant *entities.Variant) (entities.Cart, error) {
	if qty < 1 {
		return entities.Cart{}, entities.ErrInvalidQuantity
	}

	return s.mutate(ctx, ownerID, func(ctx context.Context, cart *entities.Cart, now time.Time) error {
		product, err := s.lookup(ctx, productID, qty, variant)
		if err != nil {
			return err
		}
		variant, err := product.ResolveVariant(variant, qty)
		if err != nil {
			return err
		}

		idx := cart.FindItem(productID, variant)
		if idx >= 0 && !cart.Items[idx].Expired {
			qty += cart.Items[idx].Quantity
		}
		if err := product.CheckSellable(qty, variant); err != nil {
			return err
		}

		line := entities.LineItem{
			ProductID:    product.ID,
			Name:         product.Name,
			SKU:          product.SKU,
			Price:        product.Price,
			Quantity:     qty,
			Variant:      variant,
			Availability: availability(product, now),
			AddedAt:      now,
		}
		if idx >= 0 {
			if !cart.Items[idx].Expired {
				line.Price = cart.Items[idx].Price
				line.AddedAt = cart.Items[idx].AddedAt
			}
			cart.Items[idx] = line
			return nil
		}
		cart.Items = append(cart.Items, line)
		return nil
	})
}

// UpdateQuantity sets a line's quantity. Zero or less removes the line.
// An expired line is re-snapshotted from the catalog, like a fresh add.
func (s *cartService) UpdateQuantity(ctx context.Context, ownerID, productID string, qty int, variant *entities.Variant) (entities.Cart, error) {
	return s.mutate(ctx, ownerID, func(ctx context.Context, cart *entities.Cart, now time.Time) error {
		idx := cart.FindItem(productID, variant)
		if idx < 0 {
			return entities.ErrLineNotFound
		}
		if qty <= 0 {
			cart.RemoveItems(productID, variant, false)
			return nil
		}

		product, err := s.lookup(ctx, productID, qty, variant)
		if err != nil {
			return err
		}
		resolved, err := product.ResolveVariant(variant, qty)
		if err != nil {
			return err
		}
		if err := product.CheckSellable(qty, variant); err != nil {
			return err
		}

		line := &cart.Items[idx]
		if line.Expired {
			line.Name = product.Name
			line.SKU = product.SKU
			line.Price = product.Price
			line.Variant = resolved
			line.AddedAt = now
		}
		line.Quantity = qty
		line.Availability = availability(product, now)
		return nil
	})
}

// RemoveItem drops the matching line. Without a variant every variant of
// the product is removed.
func (s *cartService) RemoveItem(ctx context.Context, ownerID, productID string, variant *entities.Variant) (entities.Cart, error) {
	return s.mutate(ctx, ownerID, func(_ context.Context, cart *entities.Cart, _ time.Time) error {
		cart.RemoveItems(productID, variant, variant == nil)
		return nil
	})
}

func (s *cartService) Clear(ctx context.Context, ownerID string) (entities.Cart, error) {
	return s.mutate(ctx, ownerID, func(_ context.Context, cart *entities.Cart, _ time.Time) error {
		cart.Clear()
		return nil
	})
}

func (s *cartService) ApplyCoupon(ctx context.Context, ownerID, code string) (entities.Cart, error) {
	return s.mutate(ctx, ownerID, func(ctx context.Context, cart *entities.Cart, now time.Time) error {
		pricing.Recompute(cart, s.cfg.Rules, now)
		if len(cart.ActiveItems()) == 0 {
			return entities.ErrEmptyCart
		}

		applied, err := s.coupons.Evaluate(ctx, code, cart.Totals.Subtotal, cart.Totals.Shipping)
		if err != nil {
			return err
		}
		cart.PutCoupon(applied)
		return nil
	})
}

func (s *cartService) RemoveCoupon(ctx context.Context, ownerID, code string) (entities.Cart, error) {
	return s.mutate(ctx, ownerID, func(_ context.Context, cart *entities.Cart, _ time.Time) error {
		if !cart.RemoveCoupon(coupon.Normalize(code)) {
			return entities.ErrCouponNotFound
		}
		return nil
	})
}

// MarkAbandoned flags carts idle for longer than the abandon window.
func (s *cartService) MarkAbandoned(ctx context.Context) (int64, error) {
	if s.cfg.AbandonAfter <= 0 {
		return 0, nil
	}
	n, err := s.carts.MarkAbandonedCarts(ctx, s.cfg.Now().Add(-s.cfg.AbandonAfter))
	if err != nil {
		return 0, fmt.Errorf("failed to mark abandoned carts: %w", err)
	}
	abandonedCarts.Add(float64(n))
	return n, nil
}

// Start runs the abandoned cart sweeper until ctx is done.
func (s *cartService) Start(ctx context.Context) error {
	if s.cfg.AbandonAfter <= 0 || s.cfg.SweepInterval <= 0 {
		return nil
	}

	go func() {
		ticker := time.NewTicker(s.cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n, err := s.MarkAbandoned(ctx)
				if err != nil {
					s.logger.Error("sweep failed", slog.Any("error", err))
					continue
				}
				if n > 0 {
					s.logger.Info("carts flagged abandoned", slog.Int64("count", n))
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

// mutate runs fn against the owner's cart under the owner lock, then
// recomputes totals and persists the result. Nothing is saved if fn fails.
func (s *cartService) mutate(
	ctx context.Context,
	ownerID string,
	fn func(ctx context.Context, cart *entities.Cart, now time.Time) error,
) (entities.Cart, error) {
	if ownerID == "" {
		return entities.Cart{}, entities.Invalid("owner_id", "is required")
	}

	unlock := s.locks.Lock(ownerID)
	defer unlock()

	var result entities.Cart
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		now := s.cfg.Now()
		cart, err := s.load(ctx, ownerID, now)
		if err != nil {
			return err
		}
		pricing.Recompute(&cart, s.cfg.Rules, now)

		if err := fn(ctx, &cart, now); err != nil {
			return err
		}

		cart.Touch(now, s.cfg.AbandonAfter)
		pricing.Recompute(&cart, s.cfg.Rules, now)

		if err := s.carts.SaveCart(ctx, cart); err != nil {
			return fmt.Errorf("failed to save cart: %w", err)
		}
		result = cart
		return nil
	})
	if err != nil {
		return entities.Cart{}, err
	}

	s.logger.Debug("cart updated",
		slog.String("owner_id", ownerID),
		slog.Int("lines", result.Totals.UniqueItems),
		slog.Int64("total", result.Totals.Total),
	)
	return result, nil
}

func (s *cartService) load(ctx context.Context, ownerID string, now time.Time) (entities.Cart, error) {
	cart, err := s.carts.GetCart(ctx, ownerID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, entities.ErrCartNotFound) {
		return entities.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	cart, err = s.carts.CreateCart(ctx, entities.NewCart(uuid.NewString(), ownerID, now))
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to create cart: %w", err)
	}
	return cart, nil
}

// lookup reads the product and maps a missing product to an unavailable
// line.
func (s *cartService) lookup(ctx context.Context, productID string, qty int, variant *entities.Variant) (entities.Product, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if errors.Is(err, entities.ErrProductNotFound) {
		return entities.Product{}, entities.Unavailable(productID, variant, qty, 0, err)
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func availability(p entities.Product, now time.Time) entities.Availability {
	return entities.Availability{
		InStock:   p.Sellable() > 0,
		Sellable:  p.Sellable(),
		CheckedAt: now,
	}
}
