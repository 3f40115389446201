package entities

import (
	"errors"
	"fmt"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrCouponNotFound  = errors.New("coupon not found")
	ErrLineNotFound    = errors.New("cart item not found")

	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidCoupon      = errors.New("invalid coupon")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrProductInactive    = errors.New("product is not active")
	ErrUnknownVariant     = errors.New("variant is not offered for product")
	ErrInvalidPrice       = errors.New("unit price is negative")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrNothingReserved    = errors.New("reserved quantity is lower than requested")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation failed")
)

// UnavailableError names the line that could not be sold. It matches
// ErrProductUnavailable and unwraps to the underlying cause.
type UnavailableError struct {
	ProductID string
	Variant   *Variant
	Requested int
	Sellable  int
	Cause     error
}

func (e *UnavailableError) Error() string {
	name := e.ProductID
	if e.Variant != nil {
		name += " (" + e.Variant.Key() + ")"
	}
	if errors.Is(e.Cause, ErrInsufficientStock) {
		return fmt.Sprintf("product %s unavailable: requested %d, sellable %d", name, e.Requested, e.Sellable)
	}
	return fmt.Sprintf("product %s unavailable: %v", name, e.Cause)
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrProductUnavailable
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

func Unavailable(productID string, variant *Variant, requested, sellable int, cause error) error {
	return &UnavailableError{
		ProductID: productID,
		Variant:   variant,
		Requested: requested,
		Sellable:  sellable,
		Cause:     cause,
	}
}

type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

// ValidationError is a caller mistake bound to a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
