package repo

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
)

// MemoryStore keeps everything in process memory. A single mutex makes each
// ledger call atomic; values are copied in and out so callers never share
// slices with the store.
type MemoryStore struct {
	mu       sync.Mutex
	products map[string]entities.Product
	carts    map[string]entities.Cart
	orders   map[string]entities.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[string]entities.Product),
		carts:    make(map[string]entities.Cart),
		orders:   make(map[string]entities.Order),
	}
}

// PutProduct seeds or replaces a catalog entry.
func (s *MemoryStore) PutProduct(p entities.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.Variants = slices.Clone(p.Variants)
	s.products[p.ID] = p
}

func (s *MemoryStore) GetProduct(_ context.Context, productID string) (entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return entities.Product{}, entities.ErrProductNotFound
	}
	p.Variants = slices.Clone(p.Variants)
	return p, nil
}

func (s *MemoryStore) Reserve(_ context.Context, productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return entities.ErrProductNotFound
	}
	if p.Available-p.Reserved < qty {
		return fmt.Errorf("%w: product %s", entities.ErrInsufficientStock, productID)
	}
	p.Reserved += qty
	s.products[productID] = p
	return nil
}

func (s *MemoryStore) Release(_ context.Context, productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return entities.ErrProductNotFound
	}
	p.Reserved = max(p.Reserved-qty, 0)
	s.products[productID] = p
	return nil
}

func (s *MemoryStore) Commit(_ context.Context, productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return entities.ErrProductNotFound
	}
	if p.Reserved < qty {
		return fmt.Errorf("%w: product %s", entities.ErrNothingReserved, productID)
	}
	p.Available -= qty
	p.Reserved -= qty
	s.products[productID] = p
	return nil
}

func (s *MemoryStore) Uncommit(_ context.Context, productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return entities.ErrProductNotFound
	}
	p.Available += qty
	p.Reserved += qty
	s.products[productID] = p
	return nil
}

func (s *MemoryStore) RecordSale(_ context.Context, productID string, qty int, revenue int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return entities.ErrProductNotFound
	}
	p.SoldCount += int64(qty)
	p.Revenue += revenue
	s.products[productID] = p
	return nil
}

func (s *MemoryStore) GetCart(_ context.Context, ownerID string) (entities.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[ownerID]
	if !ok {
		return entities.Cart{}, entities.ErrCartNotFound
	}
	return copyCart(c), nil
}

func (s *MemoryStore) CreateCart(_ context.Context, c entities.Cart) (entities.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.carts[c.OwnerID]; ok {
		return copyCart(existing), nil
	}
	s.carts[c.OwnerID] = copyCart(c)
	return copyCart(c), nil
}

func (s *MemoryStore) SaveCart(_ context.Context, c entities.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.carts[c.OwnerID]
	if !ok || existing.ID != c.ID {
		return entities.ErrCartNotFound
	}
	s.carts[c.OwnerID] = copyCart(c)
	return nil
}

func (s *MemoryStore) MarkAbandonedCarts(_ context.Context, idleSince time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for owner, c := range s.carts {
		if !c.Abandoned && c.LastActivity.Before(idleSince) {
			c.Abandoned = true
			s.carts[owner] = c
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) CreateOrder(_ context.Context, o entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[o.ID]; ok {
		return fmt.Errorf("failed to save order: duplicate id %s", o.ID)
	}
	s.orders[o.ID] = copyOrder(o)
	return nil
}

func (s *MemoryStore) GetOrder(_ context.Context, orderID string) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return copyOrder(o), nil
}

func (s *MemoryStore) ListOrders(_ context.Context, customerID string) ([]entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []entities.Order{}
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			result = append(result, copyOrder(o))
		}
	}
	slices.SortFunc(result, func(a, b entities.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return result, nil
}

// UpdateOrderStatus stores the mutable order fields. Items and summary of
// the stored snapshot are kept as they were written at creation.
func (s *MemoryStore) UpdateOrderStatus(_ context.Context, o entities.Order, entry entities.StatusHistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.orders[o.ID]
	if !ok {
		return entities.ErrOrderNotFound
	}
	updated := copyOrder(o)
	stored.Status = updated.Status
	stored.Payment = updated.Payment
	stored.Tracking = updated.Tracking
	stored.Cancellation = updated.Cancellation
	stored.UpdatedAt = updated.UpdatedAt
	stored.History = append(slices.Clone(stored.History), entry)
	s.orders[o.ID] = stored
	return nil
}

func copyVariant(v *entities.Variant) *entities.Variant {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

func copyCart(c entities.Cart) entities.Cart {
	items := make([]entities.LineItem, len(c.Items))
	for i, it := range c.Items {
		it.Variant = copyVariant(it.Variant)
		items[i] = it
	}
	c.Items = items
	c.Coupons = append([]entities.AppliedCoupon{}, c.Coupons...)
	return c
}

func copyOrder(o entities.Order) entities.Order {
	if o.Items != nil {
		items := make([]entities.OrderItem, len(o.Items))
		for i, it := range o.Items {
			it.Variant = copyVariant(it.Variant)
			items[i] = it
		}
		o.Items = items
	}
	o.History = slices.Clone(o.History)
	o.Summary.Coupons = slices.Clone(o.Summary.Coupons)
	if o.Payment.PaidAt != nil {
		paidAt := *o.Payment.PaidAt
		o.Payment.PaidAt = &paidAt
	}
	if o.Tracking != nil {
		t := *o.Tracking
		o.Tracking = &t
	}
	if o.Cancellation != nil {
		c := *o.Cancellation
		o.Cancellation = &c
	}
	return o
}
