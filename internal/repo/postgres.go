package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	cartColumns = []string{
		"id", "owner_id", "items", "coupons", "totals",
		"last_activity", "abandoned", "created_at", "updated_at",
	}
	orderColumns = []string{
		"id", "customer_id", "status", "subtotal", "shipping", "tax", "discount", "total",
		"coupons", "shipping_address", "billing_address",
		"payment_method", "payment_amount", "payment_status", "paid_at",
		"tracking", "cancellation", "created_at", "updated_at",
	}
	orderItemColumns = []string{
		"order_id", "position", "product_id", "name", "sku", "variant", "price", "quantity", "line_total",
	}
	historyColumns = []string{"order_id", "status", "note", "actor", "created_at"}
)

// invalid_text_representation, returned for malformed uuids.
const pqInvalidText = "22P02"

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetProduct(ctx context.Context, productID string) (entities.Product, error) {
	query, args := r.qb.Select(
		"id", "name", "sku", "price", "status", "variants",
		"available", "reserved", "sold_count", "revenue").
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product)
}

// Reserve holds qty units. The sellable check and the increment are one
// conditional UPDATE, so two callers can never both take the last unit.
func (r *postgresRepo) Reserve(ctx context.Context, productID string, qty int) error {
	query, args := r.qb.Update("products").
		Set("reserved", sq.Expr("reserved + ?", qty)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID}).
		Where(sq.Expr("available - reserved >= ?", qty)).
		Suffix("RETURNING id").
		MustSql()

	var id string
	err := r.getContext(ctx, &id, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return r.missingOr(ctx, productID, entities.ErrInsufficientStock)
	}
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	return nil
}

func (r *postgresRepo) Release(ctx context.Context, productID string, qty int) error {
	query, args := r.qb.Update("products").
		Set("reserved", sq.Expr("GREATEST(reserved - ?, 0)", qty)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to release stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to release stock: %w", err)
	}
	if n == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

func (r *postgresRepo) Commit(ctx context.Context, productID string, qty int) error {
	query, args := r.qb.Update("products").
		Set("available", sq.Expr("available - ?", qty)).
		Set("reserved", sq.Expr("reserved - ?", qty)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID}).
		Where(sq.Expr("reserved >= ?", qty)).
		Suffix("RETURNING id").
		MustSql()

	var id string
	err := r.getContext(ctx, &id, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return r.missingOr(ctx, productID, entities.ErrNothingReserved)
	}
	if err != nil {
		return fmt.Errorf("failed to commit stock: %w", err)
	}
	return nil
}

func (r *postgresRepo) Uncommit(ctx context.Context, productID string, qty int) error {
	query, args := r.qb.Update("products").
		Set("available", sq.Expr("available + ?", qty)).
		Set("reserved", sq.Expr("reserved + ?", qty)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID}).
		Suffix("RETURNING id").
		MustSql()

	var id string
	err := r.getContext(ctx, &id, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to uncommit stock: %w", err)
	}
	return nil
}

func (r *postgresRepo) RecordSale(ctx context.Context, productID string, qty int, revenue int64) error {
	query, args := r.qb.Update("products").
		Set("sold_count", sq.Expr("sold_count + ?", qty)).
		Set("revenue", sq.Expr("revenue + ?", revenue)).
		Where(sq.Eq{"id": productID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record sale: %w", err)
	}
	return nil
}

// missingOr tells a missing product apart from a failed counter condition.
func (r *postgresRepo) missingOr(ctx context.Context, productID string, cause error) error {
	query, args := r.qb.Select("1").
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var one int
	err := r.getContext(ctx, &one, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check product: %w", err)
	}
	return fmt.Errorf("%w: product %s", cause, productID)
}

func (r *postgresRepo) FindCoupon(ctx context.Context, code string) (entities.Coupon, error) {
	query, args := r.qb.Select("code", "type", "value").
		From("coupons").
		Where(sq.Eq{"code": code}).
		Where(sq.Expr("active")).
		Where(sq.Or{sq.Eq{"expires_at": nil}, sq.Expr("expires_at > now()")}).
		MustSql()

	var coupon Coupon
	err := r.getContext(ctx, &coupon, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Coupon{}, entities.ErrCouponNotFound
	}
	if err != nil {
		return entities.Coupon{}, fmt.Errorf("failed to get coupon: %w", err)
	}
	return CouponToEntity(coupon), nil
}

// GetCart locks the cart row when called inside a transaction.
func (r *postgresRepo) GetCart(ctx context.Context, ownerID string) (entities.Cart, error) {
	q := r.qb.Select(cartColumns...).
		From("carts").
		Where(sq.Eq{"owner_id": ownerID})
	if trm.ExtractTx(ctx) != nil {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var cart Cart
	err := r.getContext(ctx, &cart, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Cart{}, entities.ErrCartNotFound
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}
	return CartToEntity(cart)
}

// CreateCart inserts the cart unless the owner already has one, and returns
// whichever cart is stored.
func (r *postgresRepo) CreateCart(ctx context.Context, c entities.Cart) (entities.Cart, error) {
	row, err := CartFromEntity(c)
	if err != nil {
		return entities.Cart{}, err
	}

	query, args := r.qb.Insert("carts").
		Columns(cartColumns...).
		Values(
			row.ID, row.OwnerID, row.Items, row.Coupons, row.Totals,
			row.LastActivity, row.Abandoned, row.CreatedAt, row.UpdatedAt,
		).
		Suffix("ON CONFLICT (owner_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to create cart: %w", err)
	}
	return r.GetCart(ctx, c.OwnerID)
}

func (r *postgresRepo) SaveCart(ctx context.Context, c entities.Cart) error {
	row, err := CartFromEntity(c)
	if err != nil {
		return err
	}

	query, args := r.qb.Update("carts").
		Set("items", row.Items).
		Set("coupons", row.Coupons).
		Set("totals", row.Totals).
		Set("last_activity", row.LastActivity).
		Set("abandoned", row.Abandoned).
		Set("updated_at", row.UpdatedAt).
		Where(sq.Eq{"id": row.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	if n == 0 {
		return entities.ErrCartNotFound
	}
	return nil
}

func (r *postgresRepo) MarkAbandonedCarts(ctx context.Context, idleSince time.Time) (int64, error) {
	query, args := r.qb.Update("carts").
		Set("abandoned", true).
		Where(sq.Eq{"abandoned": false}).
		Where(sq.Lt{"last_activity": idleSince}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to mark abandoned carts: %w", err)
	}
	return res.RowsAffected()
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	shipping, err := addressToJSON(o.ShippingAddress)
	if err != nil {
		return fmt.Errorf("failed to encode shipping address: %w", err)
	}
	billing, err := addressToJSON(o.BillingAddress)
	if err != nil {
		return fmt.Errorf("failed to encode billing address: %w", err)
	}
	tracking, err := trackingToJSON(o.Tracking)
	if err != nil {
		return fmt.Errorf("failed to encode tracking: %w", err)
	}
	cancellation, err := cancellationToJSON(o.Cancellation)
	if err != nil {
		return fmt.Errorf("failed to encode cancellation: %w", err)
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.CustomerID, string(o.Status),
			o.Summary.Subtotal, o.Summary.Shipping, o.Summary.Tax, o.Summary.Discount, o.Summary.Total,
			pq.StringArray(nonNil(o.Summary.Coupons)), shipping, billing,
			o.Payment.Method, o.Payment.Amount, string(o.Payment.Status), nullTime(o.Payment.PaidAt),
			tracking, cancellation, o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if len(o.Items) > 0 {
		q := r.qb.Insert("order_items").Columns(orderItemColumns...)
		for i, it := range o.Items {
			variant, err := variantToJSON(it.Variant)
			if err != nil {
				return fmt.Errorf("failed to encode variant: %w", err)
			}
			q = q.Values(o.ID, i, it.ProductID, it.Name, it.SKU, variant, it.Price, it.Quantity, it.LineTotal)
		}
		query, args = q.MustSql()
		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to save order items: %w", err)
		}
	}

	if len(o.History) > 0 {
		q := r.qb.Insert("order_status_history").Columns(historyColumns...)
		for _, h := range o.History {
			q = q.Values(o.ID, string(h.Status), h.Note, h.Actor, h.CreatedAt)
		}
		query, args = q.MustSql()
		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to save status history: %w", err)
		}
	}

	return nil
}

// GetOrder locks the order row when called inside a transaction.
func (r *postgresRepo) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})
	if trm.ExtractTx(ctx) != nil {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	query, args = r.qb.Select(historyColumns...).
		From("order_status_history").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id").
		MustSql()

	var history []StatusHistory
	if err := r.selectContext(ctx, &history, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get status history: %w", err)
	}

	return OrderToEntity(order, items, history)
}

func (r *postgresRepo) ListOrders(ctx context.Context, customerID string) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	query, args = r.qb.Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(orders))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	query, args = r.qb.Select(historyColumns...).
		From("order_status_history").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "id").
		MustSql()

	var history []StatusHistory
	if err := r.selectContext(ctx, &history, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select status history: %w", err)
	}
	historyMap := make(map[string][]StatusHistory, len(orders))
	for _, h := range history {
		historyMap[h.OrderID] = append(historyMap[h.OrderID], h)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		order, err := OrderToEntity(o, itemsMap[o.ID], historyMap[o.ID])
		if err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, nil
}

// UpdateOrderStatus writes the mutable part of the order and appends entry
// to its history. Items and summary are never touched.
func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, o entities.Order, entry entities.StatusHistoryEntry) error {
	tracking, err := trackingToJSON(o.Tracking)
	if err != nil {
		return fmt.Errorf("failed to encode tracking: %w", err)
	}
	cancellation, err := cancellationToJSON(o.Cancellation)
	if err != nil {
		return fmt.Errorf("failed to encode cancellation: %w", err)
	}

	query, args := r.qb.Update("orders").
		Set("status", string(o.Status)).
		Set("payment_status", string(o.Payment.Status)).
		Set("paid_at", nullTime(o.Payment.PaidAt)).
		Set("tracking", tracking).
		Set("cancellation", cancellation).
		Set("updated_at", o.UpdatedAt).
		Where(sq.Eq{"id": o.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}

	query, args = r.qb.Insert("order_status_history").
		Columns(historyColumns...).
		Values(o.ID, string(entry.Status), entry.Note, entry.Actor, entry.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save status history: %w", err)
	}
	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func isInvalidText(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqInvalidText
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
