package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/pkg/keylock"
	"github.com/SergeyBogomolovv/storefront-service/pkg/trm"
	"github.com/SergeyBogomolovv/storefront-service/pkg/utils"

	"golang.org/x/sync/singleflight"
)

var defaultRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	ledger    Ledger
	sales     SalesRecorder
	notifier  Notifier
	cache     Cache
	locks     *keylock.Locker
	reads     singleflight.Group
	retry     utils.RetryConfig
	now       func() time.Time
}

type OrderOption func(*orderService)

// WithRetry overrides the backoff used for ledger calls and reads.
func WithRetry(cfg utils.RetryConfig) OrderOption {
	return func(s *orderService) { s.retry = cfg }
}

func WithOrderClock(now func() time.Time) OrderOption {
	return func(s *orderService) { s.now = now }
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	ledger Ledger,
	sales SalesRecorder,
	notifier Notifier,
	cache Cache,
	opts ...OrderOption,
) *orderService {
	s := &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		ledger:    ledger,
		sales:     sales,
		notifier:  notifier,
		cache:     cache,
		locks:     keylock.New(),
		retry:     defaultRetry,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetStatus moves the order along the lifecycle and applies the stock
// effect of the target status. The order and the stock change together or
// not at all.
func (s *orderService) SetStatus(ctx context.Context, orderID string, change entities.StatusChange) (entities.Order, error) {
	if !change.To.Valid() {
		return entities.Order{}, entities.Invalid("status", fmt.Sprintf("unknown status %q", change.To))
	}

	unlock := s.locks.Lock(orderID)
	defer unlock()

	var order entities.Order
	var previous entities.Status
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		o, err := s.repo.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		previous = o.Status

		err = o.Apply(entities.Transition{
			To:       change.To,
			Note:     change.Note,
			Actor:    change.Actor.ID,
			Tracking: change.Tracking,
			Reason:   change.Reason,
			At:       s.now(),
		})
		if err != nil {
			return err
		}

		switch change.To.InventoryAction() {
		case entities.InventoryRelease:
			if err := s.release(ctx, o.Items); err != nil {
				return err
			}
		case entities.InventoryCommit:
			if err := s.commit(ctx, o.Items); err != nil {
				return err
			}
		}

		if err := s.repo.UpdateOrderStatus(ctx, o, o.History[len(o.History)-1]); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}
		order = o
		return nil
	})
	if errors.Is(err, entities.ErrIllegalTransition) {
		rejectedTransitions.Inc()
	}
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(orderID)
	orderTransitions.WithLabelValues(string(order.Status)).Inc()
	s.logger.Info("order status changed",
		slog.String("order_id", orderID),
		slog.String("from", string(previous)),
		slog.String("to", string(order.Status)),
		slog.String("actor", change.Actor.ID),
	)

	event := entities.NewOrderEvent(entities.EventOrderStatusChanged, order, previous, change.Note)
	if err := s.notifier.Notify(ctx, event); err != nil {
		notificationsFailed.Inc()
		s.logger.Warn("failed to notify", slog.String("order_id", orderID), slog.Any("error", err))
	}
	return order, nil
}

// Cancel cancels the order on behalf of actor. Shoppers may only cancel
// their own orders.
func (s *orderService) Cancel(ctx context.Context, orderID string, actor entities.Actor, reason string) (entities.Order, error) {
	if !actor.Privileged() {
		o, err := s.repo.GetOrder(ctx, orderID)
		if err != nil {
			return entities.Order{}, err
		}
		if !actor.CanManage(o) {
			return entities.Order{}, entities.ErrForbidden
		}
	}

	return s.SetStatus(ctx, orderID, entities.StatusChange{
		To:     entities.StatusCancelled,
		Note:   reason,
		Reason: reason,
		Actor:  actor,
	})
}

// release returns every line to sellable stock. Each call is retried with
// backoff; if a line still cannot be released the cancellation fails.
func (s *orderService) release(ctx context.Context, items []entities.OrderItem) error {
	for i, it := range items {
		err := s.retryLedger(ctx, func() error {
			return s.ledger.Release(ctx, it.ProductID, it.Quantity)
		}, entities.ErrProductNotFound)
		if err == nil {
			continue
		}

		s.logger.Error("failed to release stock",
			slog.String("product_id", it.ProductID),
			slog.Int("quantity", it.Quantity),
			slog.Any("error", err),
		)
		s.restore(ctx, items[:i])
		return fmt.Errorf("failed to release stock for product %s: %w", it.ProductID, err)
	}
	return nil
}

// restore re-reserves lines released by a failed cancellation. Storage
// with transactions rolls these back anyway.
func (s *orderService) restore(ctx context.Context, released []entities.OrderItem) {
	for i := len(released) - 1; i >= 0; i-- {
		it := released[i]
		if err := s.ledger.Reserve(ctx, it.ProductID, it.Quantity); err != nil {
			s.logger.Error("failed to restore reservation",
				slog.String("product_id", it.ProductID),
				slog.Int("quantity", it.Quantity),
				slog.Any("error", err),
			)
		}
	}
}

// commit moves every line from reserved to sold. If a line fails, the lines
// before it are put back so the order stays shipped with its stock intact.
func (s *orderService) commit(ctx context.Context, items []entities.OrderItem) error {
	for i, it := range items {
		err := s.retryLedger(ctx, func() error {
			return s.ledger.Commit(ctx, it.ProductID, it.Quantity)
		}, entities.ErrProductNotFound, entities.ErrNothingReserved)
		if err != nil {
			s.logger.Error("failed to commit stock",
				slog.String("product_id", it.ProductID),
				slog.Int("quantity", it.Quantity),
				slog.Any("error", err),
			)
			s.uncommit(ctx, items[:i], i)
			return fmt.Errorf("failed to commit stock for product %s: %w", it.ProductID, err)
		}
		if err := s.sales.RecordSale(ctx, it.ProductID, it.Quantity, it.LineTotal); err != nil {
			s.uncommit(ctx, items[:i+1], i)
			return fmt.Errorf("failed to record sale for product %s: %w", it.ProductID, err)
		}
	}
	return nil
}

// uncommit reverts committed lines in reverse order. Only the first sold
// of them had their sale recorded.
func (s *orderService) uncommit(ctx context.Context, committed []entities.OrderItem, sold int) {
	for i := len(committed) - 1; i >= 0; i-- {
		it := committed[i]
		if i < sold {
			if err := s.sales.RecordSale(ctx, it.ProductID, -it.Quantity, -it.LineTotal); err != nil {
				s.logger.Error("failed to revert sale",
					slog.String("product_id", it.ProductID),
					slog.Int("quantity", it.Quantity),
					slog.Any("error", err),
				)
			}
		}
		if err := s.ledger.Uncommit(ctx, it.ProductID, it.Quantity); err != nil {
			s.logger.Error("failed to uncommit stock",
				slog.String("product_id", it.ProductID),
				slog.Int("quantity", it.Quantity),
				slog.Any("error", err),
			)
		}
	}
}

// retryLedger retries fn with backoff unless ctx carries a database
// transaction. A failed statement aborts the transaction, so there the
// whole status change is the unit to retry.
func (s *orderService) retryLedger(ctx context.Context, fn func() error, stop ...error) error {
	if trm.ExtractTx(ctx) != nil {
		return fn()
	}
	return utils.Retry(ctx, s.retry, fn, stop...)
}

// GetOrder reads through the cache. Concurrent misses for the same order
// share one repository call.
func (s *orderService) GetOrder(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !actor.CanManage(order) {
		return entities.Order{}, entities.ErrForbidden
	}
	return order, nil
}

func (s *orderService) getOrder(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	v, err, _ := s.reads.Do(orderID, func() (any, error) {
		var order entities.Order
		fn := func() error {
			var err error
			order, err = s.repo.GetOrder(ctx, orderID)
			return err
		}
		if err := utils.Retry(ctx, s.retry, fn, entities.ErrOrderNotFound); err != nil {
			return entities.Order{}, err
		}

		data, err := order.Marshal()
		if err != nil {
			s.logger.Error("failed to marshal order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		s.cache.Set(orderID, data)
		return order, nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	return v.(entities.Order), nil
}

func (s *orderService) ListOrders(ctx context.Context, customerID string) ([]entities.Order, error) {
	orders, err := s.repo.ListOrders(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
