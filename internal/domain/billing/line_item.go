package billing

import "github.com/garyjia/edu-billing/internal/domain/catalog"

// LineItem is a purchased quantity of one catalog kind. Immutable once
// created; quantities are taken as given, so a zero or negative quantity
// yields a degenerate cost rather than an error.
type LineItem struct {
	Kind     catalog.Kind
	Quantity int
}

// Cost returns unit price times quantity.
func (li LineItem) Cost() float64 {
	return catalog.UnitPrice(li.Kind) * float64(li.Quantity)
}
