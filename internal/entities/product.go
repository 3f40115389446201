package entities

type ProductStatus string

const (
	ProductDraft    ProductStatus = "draft"
	ProductActive   ProductStatus = "active"
	ProductArchived ProductStatus = "archived"
)

type Product struct {
	ID     string
	Name   string
	SKU    string
	Price  int64
	Status ProductStatus

	// Variants are the selectable options. A line may only carry a variant
	// listed here, and its price adjustment always comes from this list.
	Variants []Variant

	Available int
	Reserved  int

	SoldCount int64
	Revenue   int64
}

// Sellable is the stock that can still be promised to a shopper.
func (p Product) Sellable() int {
	if s := p.Available - p.Reserved; s > 0 {
		return s
	}
	return 0
}

// CheckSellable reports why qty units of the product cannot be sold, or nil.
func (p Product) CheckSellable(qty int, variant *Variant) error {
	if p.Status != ProductActive {
		return Unavailable(p.ID, variant, qty, p.Sellable(), ErrProductInactive)
	}
	if p.Sellable() < qty {
		return Unavailable(p.ID, variant, qty, p.Sellable(), ErrInsufficientStock)
	}
	return nil
}

// ResolveVariant maps the shopper's selection to the catalog variant. The
// selection's own price adjustment is ignored.
func (p Product) ResolveVariant(selected *Variant, qty int) (*Variant, error) {
	if selected == nil {
		return nil, nil
	}
	for _, v := range p.Variants {
		if v.Name != selected.Name || v.Value != selected.Value {
			continue
		}
		if p.Price+v.PriceAdjustment < 0 {
			return nil, Unavailable(p.ID, selected, qty, p.Sellable(), ErrInvalidPrice)
		}
		resolved := v
		return &resolved, nil
	}
	return nil, Unavailable(p.ID, selected, qty, p.Sellable(), ErrUnknownVariant)
}
