package billing

import (
	"strings"

	"github.com/garyjia/edu-billing/internal/domain/catalog"
)

// Invoice is the aggregate root of one billing run. It accumulates line
// items, membership state and the selected coupon policy, and derives all
// bill figures from current state on demand. Nothing is memoized: a bill
// produced after a set of mutations is the same regardless of the order
// the mutations arrived in.
type Invoice struct {
	items []LineItem

	// runningItemCount counts quantities across all added items including
	// Unknown kinds. It gates coupon eligibility only and is deliberately
	// distinct from DiscountableQuantity, which counts known kinds only.
	runningItemCount int

	policy           DiscountPolicy
	couponLabel      string
	membershipActive bool
}

// NewInvoice returns an empty invoice with the zero-discount policy.
func NewInvoice() *Invoice {
	return &Invoice{}
}

// AddItem appends a line item and unconditionally counts its quantity,
// Unknown kinds included.
func (inv *Invoice) AddItem(kind catalog.Kind, quantity int) {
	inv.items = append(inv.items, LineItem{Kind: kind, Quantity: quantity})
	inv.runningItemCount += quantity
}

// ActivateMembership turns on pro membership. Idempotent: repeated calls
// never double-charge the flat membership fee.
func (inv *Invoice) ActivateMembership() {
	inv.membershipActive = true
}

// ApplyCoupon applies at most one coupon per run. The first successful
// application wins; later calls are no-ops.
//
// When the raw item count has reached the bulk threshold and the command
// carried a token (any content), the invoice is labelled with the
// buy-4-get-1 coupon without installing a percentage policy; the bulk
// discount itself is computed as an override at bill time. Otherwise the
// token is resolved against the known coupon names and, on a match,
// installs that policy. Unrecognized names are ignored.
func (inv *Invoice) ApplyCoupon(token string, present bool) bool {
	if inv.couponLabel != "" {
		return false
	}

	if inv.runningItemCount >= bulkDiscountThreshold && present {
		inv.couponLabel = bulkCouponLabel
		return true
	}

	if !present {
		return false
	}

	policy, ok := LookupCoupon(token)
	if !ok {
		return false
	}
	inv.policy = policy
	inv.couponLabel = strings.ToUpper(token)
	return true
}

// Items returns a copy of the line items in insertion order.
func (inv *Invoice) Items() []LineItem {
	items := make([]LineItem, len(inv.items))
	copy(items, inv.items)
	return items
}

// RunningItemCount returns the raw quantity count across all items.
func (inv *Invoice) RunningItemCount() int {
	return inv.runningItemCount
}

// CouponLabel returns the applied coupon label, empty if none.
func (inv *Invoice) CouponLabel() string {
	return inv.couponLabel
}

// MembershipActive reports whether pro membership has been purchased.
func (inv *Invoice) MembershipActive() bool {
	return inv.membershipActive
}

// Subtotal sums the cost of all line items.
func (inv *Invoice) Subtotal() float64 {
	var subtotal float64
	for _, li := range inv.items {
		subtotal += li.Cost()
	}
	return subtotal
}

// DiscountableQuantity sums quantities over items of known kinds only.
func (inv *Invoice) DiscountableQuantity() int {
	var qty int
	for _, li := range inv.items {
		if li.Kind.IsKnown() {
			qty += li.Quantity
		}
	}
	return qty
}

// MembershipDiscount returns the per-kind rate discount over the current
// item list when membership is active, 0 otherwise. Always recomputed, so
// items added after activation are included.
func (inv *Invoice) MembershipDiscount() float64 {
	if !inv.membershipActive {
		return 0
	}
	return MembershipDiscount(inv.items)
}

// MembershipFee returns the flat pro membership fee, 0 without membership.
func (inv *Invoice) MembershipFee() float64 {
	if !inv.membershipActive {
		return 0
	}
	return membershipFee
}

// EnrollmentFee returns the enrollment fee derived from the subtotal.
func (inv *Invoice) EnrollmentFee() float64 {
	return EnrollmentFee(inv.Subtotal())
}

// Discount returns the coupon discount for the current state.
//
// When the discountable quantity has reached the bulk threshold the
// cheapest eligible unit is free; this override supersedes whatever
// percentage policy a coupon may have installed.
func (inv *Invoice) Discount() float64 {
	if price, ok := inv.bulkDiscount(); ok {
		return price
	}
	base := inv.Subtotal() + inv.EnrollmentFee() + inv.MembershipFee() - inv.MembershipDiscount()
	return inv.policy.Apply(base)
}

// Total returns the amount due.
func (inv *Invoice) Total() float64 {
	return inv.Subtotal() + inv.EnrollmentFee() + inv.MembershipFee() -
		inv.MembershipDiscount() - inv.Discount()
}

// bulkDiscount returns the minimum single-unit price among line items of
// known kinds when the discountable quantity meets the bulk threshold.
func (inv *Invoice) bulkDiscount() (float64, bool) {
	if inv.DiscountableQuantity() < bulkDiscountThreshold {
		return 0, false
	}
	min := 0.0
	found := false
	for _, li := range inv.items {
		if !li.Kind.IsKnown() {
			continue
		}
		price := catalog.UnitPrice(li.Kind)
		if !found || price < min {
			min = price
			found = true
		}
	}
	return min, found
}

// Bill snapshots the six bill figures from current state.
func (inv *Invoice) Bill() Bill {
	return Bill{
		Subtotal:           inv.Subtotal(),
		MembershipDiscount: inv.MembershipDiscount(),
		MembershipFee:      inv.MembershipFee(),
		EnrollmentFee:      inv.EnrollmentFee(),
		CouponLabel:        inv.couponLabel,
		Discount:           inv.Discount(),
		Total:              inv.Total(),
	}
}
