package coupon

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/internal/pricing"
)

// Source resolves a coupon code to its definition.
type Source interface {
	FindCoupon(ctx context.Context, code string) (entities.Coupon, error)
}

type Evaluator struct {
	source Source
}

func NewEvaluator(source Source) *Evaluator {
	return &Evaluator{source: source}
}

// Evaluate resolves code and prices it against the current subtotal and
// shipping. Unknown codes fail with entities.ErrInvalidCoupon.
func (e *Evaluator) Evaluate(ctx context.Context, code string, subtotal, shipping int64) (entities.AppliedCoupon, error) {
	code = Normalize(code)
	if code == "" {
		return entities.AppliedCoupon{}, entities.ErrInvalidCoupon
	}

	c, err := e.source.FindCoupon(ctx, code)
	if errors.Is(err, entities.ErrCouponNotFound) {
		return entities.AppliedCoupon{}, fmt.Errorf("%w: %s", entities.ErrInvalidCoupon, code)
	}
	if err != nil {
		return entities.AppliedCoupon{}, fmt.Errorf("failed to find coupon: %w", err)
	}
	if !c.Type.Valid() {
		return entities.AppliedCoupon{}, fmt.Errorf("%w: %s has unsupported type %q", entities.ErrInvalidCoupon, code, c.Type)
	}

	return entities.AppliedCoupon{
		Coupon:   c,
		Discount: pricing.Discount(c, subtotal, shipping),
	}, nil
}

func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Table is an in-process coupon source.
type Table map[string]entities.Coupon

func (t Table) FindCoupon(_ context.Context, code string) (entities.Coupon, error) {
	c, ok := t[Normalize(code)]
	if !ok {
		return entities.Coupon{}, entities.ErrCouponNotFound
	}
	return c, nil
}

// DefaultTable holds the storefront's standing promotions.
func DefaultTable() Table {
	return Table{
		"SAVE10":   {Code: "SAVE10", Type: entities.CouponPercentage, Value: 10},
		"SAVE20":   {Code: "SAVE20", Type: entities.CouponPercentage, Value: 20},
		"FLAT500":  {Code: "FLAT500", Type: entities.CouponFixedAmount, Value: 500},
		"FREESHIP": {Code: "FREESHIP", Type: entities.CouponFreeShipping},
	}
}
